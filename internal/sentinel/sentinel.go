package sentinel

import "errors"

// Sentinel dependency errors. Stores return these (optionally wrapped) so
// services can translate them into domain errors exactly once.
var (
	ErrNotFound       = errors.New("not found")
	ErrForbiddenOwner = errors.New("owned by another identity")
	ErrAlreadyUsed    = errors.New("already used")
	ErrUnavailable    = errors.New("unavailable")
)
