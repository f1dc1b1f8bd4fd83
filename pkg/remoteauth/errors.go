package remoteauth

import "errors"

var (
	// ErrPriorityRequired indicates the provider was constructed without a
	// priority
	ErrPriorityRequired = errors.New("remoteauth.priority_required")

	// ErrPriorityOutOfRange indicates the configured priority lies outside
	// the provider priority range
	ErrPriorityOutOfRange = errors.New("remoteauth.priority_out_of_range")

	// ErrNoIdentity indicates the trusted header carried no identity; the
	// request yields no session from this provider
	ErrNoIdentity = errors.New("remoteauth.no_identity")

	// ErrNoTransport indicates no session transport is configured
	ErrNoTransport = errors.New("remoteauth.no_transport")

	// ErrSessionPersist indicates the freshly provisioned session could not
	// be persisted
	ErrSessionPersist = errors.New("remoteauth.session_persist_failed")
)
