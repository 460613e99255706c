package audit

import (
	"time"

	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

// Action names a privileged state change.
type Action string

const (
	ActionRegister         Action = "REGISTER"
	ActionLogin            Action = "LOGIN"
	ActionUpdateProfile    Action = "UPDATE_PROFILE"
	ActionCreateEvent      Action = "CREATE_EVENT"
	ActionUpdateEvent      Action = "UPDATE_EVENT"
	ActionDeleteEvent      Action = "DELETE_EVENT"
	ActionValidateArtist   Action = "VALIDATE_ARTIST"
	ActionInvalidateArtist Action = "INVALIDATE_ARTIST"
	ActionDeleteArtist     Action = "DELETE_ARTIST"
	ActionAdminDeleteEvent Action = "ADMIN_DELETE_EVENT"
	ActionBootstrapAdmin   Action = "BOOTSTRAP_ADMIN"
)

// EntityKind names the table an audit record points at.
type EntityKind string

const (
	EntityUser   EntityKind = "user"
	EntityArtist EntityKind = "artist"
	EntityEvent  EntityKind = "event"
)

// Snapshot is the structured before/after state of an entity. It must never
// carry a password digest.
type Snapshot map[string]any

// Entry is what callers hand to the Recorder. Zero Timestamp, ActorID and
// OriginAddress are filled from the request context.
type Entry struct {
	ActorID       id.IdentityID
	Action        Action
	EntityKind    EntityKind
	EntityID      uuid.UUID
	Prior         Snapshot
	New           Snapshot
	OriginAddress string
	Timestamp     time.Time
}

// Record is a persisted audit entry as returned by List.
type Record struct {
	ID            id.AuditID `json:"id"`
	ActorID       *string    `json:"user_id"`
	ActorEmail    *string    `json:"user_email"`
	Action        Action     `json:"action"`
	EntityKind    EntityKind `json:"entity"`
	EntityID      *string    `json:"entity_id"`
	Prior         Snapshot   `json:"old_values"`
	New           Snapshot   `json:"new_values"`
	OriginAddress string     `json:"ip_address"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Page bounds a List query.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// Normalize clamps the page into the accepted range.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
