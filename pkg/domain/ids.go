// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "oirla/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing an ArtistID where an EventID is expected.
type (
	IdentityID uuid.UUID
	ArtistID   uuid.UUID
	EventID    uuid.UUID
	AuditID    uuid.UUID
)

// Constructors for freshly generated IDs. Rows are keyed by application-side
// UUIDs so a transaction knows every ID before its first insert.

func NewIdentityID() IdentityID { return IdentityID(uuid.New()) }
func NewArtistID() ArtistID     { return ArtistID(uuid.New()) }
func NewEventID() EventID       { return EventID(uuid.New()) }
func NewAuditID() AuditID       { return AuditID(uuid.New()) }

// Parse functions - use at trust boundaries (handlers, token claims).

func ParseIdentityID(s string) (IdentityID, error) {
	id, err := parseUUID(s, "identity ID")
	return IdentityID(id), err
}

func ParseArtistID(s string) (ArtistID, error) {
	id, err := parseUUID(s, "artist ID")
	return ArtistID(id), err
}

func ParseEventID(s string) (EventID, error) {
	id, err := parseUUID(s, "event ID")
	return EventID(id), err
}

// String methods - for logging and debugging.

func (id IdentityID) String() string { return uuid.UUID(id).String() }
func (id ArtistID) String() string   { return uuid.UUID(id).String() }
func (id EventID) String() string    { return uuid.UUID(id).String() }
func (id AuditID) String() string    { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id IdentityID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ArtistID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AuditID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// UUID methods - for stores and audit entity references.

func (id IdentityID) UUID() uuid.UUID { return uuid.UUID(id) }
func (id ArtistID) UUID() uuid.UUID   { return uuid.UUID(id) }
func (id EventID) UUID() uuid.UUID    { return uuid.UUID(id) }
func (id AuditID) UUID() uuid.UUID    { return uuid.UUID(id) }

// MarshalText lets typed IDs render as plain UUID strings in JSON responses.
func (id IdentityID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id ArtistID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id EventID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id AuditID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }

// parseUUID is the shared validation logic. Nil UUIDs are rejected: no row is
// ever stored under one.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "invalid "+label+" format")
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "invalid "+label+" format")
	}
	return id, nil
}
