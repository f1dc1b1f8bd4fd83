package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the given id
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session has passed its expiry
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a malformed session record
	ErrInvalidSession = errors.New("session.invalid")

	// ErrDuplicateID indicates an attempt to create a session with an id that
	// is already stored
	ErrDuplicateID = errors.New("session.duplicate_id")

	// ErrIDGeneration indicates session id generation failed
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrStoreFailure indicates the backing store rejected a read or write
	ErrStoreFailure = errors.New("session.store_failure")
)
