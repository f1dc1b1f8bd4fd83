package user

import "errors"

var (
	// ErrNotFound indicates no account exists for the given name
	ErrNotFound = errors.New("user.not_found")

	// ErrNameTaken indicates a concurrent request already created an account
	// with the same name
	ErrNameTaken = errors.New("user.name_taken")

	// ErrInvalidUsername indicates the proposed account name fails validation
	ErrInvalidUsername = errors.New("user.invalid_username")

	// ErrInvalidAccount indicates a malformed account record
	ErrInvalidAccount = errors.New("user.invalid_account")

	// ErrInitHook indicates the account initialization hook failed
	ErrInitHook = errors.New("user.init_hook_failed")

	// ErrTokenGeneration indicates auth token generation failed
	ErrTokenGeneration = errors.New("user.token_generation_failed")

	// ErrStoreFailure indicates the backing store rejected a read or write
	ErrStoreFailure = errors.New("user.store_failure")
)
