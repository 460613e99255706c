package ports

import (
	"context"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/auth/models"
)

// UserWriter inserts identities. Create returns sentinel.ErrAlreadyUsed on a
// duplicate email.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
}

// ArtistWriter inserts artist profiles.
type ArtistWriter interface {
	Create(ctx context.Context, profile *artistmodels.Profile) error
}

// TxStores are the stores bound to one registration transaction.
type TxStores struct {
	Users   UserWriter
	Artists ArtistWriter
	Audit   audit.Store
}

// RegistrationTx provides the transactional boundary for registration.
// Implementations commit when fn returns nil and roll back otherwise, and
// build TxStores on the transaction handle.
type RegistrationTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error
}
