package audit

import (
	"context"
)

// Store persists audit records. Implementations are append-only: there is
// no update or delete.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, page Page) ([]Record, error)
}
