package user

import "context"

// Store defines the interface for account persistence. Implementations must
// enforce name uniqueness: Create returns ErrNameTaken when an account with
// the same name already exists, which is how concurrent first-logins converge
// to a single record.
type Store interface {
	// GetByName retrieves an account by its normalized name. Returns
	// ErrNotFound when no account exists.
	GetByName(ctx context.Context, name string) (*Account, error)

	// Create stores a new account. Returns ErrNameTaken when the name is
	// already in use.
	Create(ctx context.Context, account *Account) error
}
