package user

import (
	"context"
	"sync"
)

// MemoryStore implements Store using in-memory storage. The single map mutex
// gives Create the same atomic create-if-absent semantics a database unique
// index provides.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewMemoryStore creates a new in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*Account),
	}
}

// GetByName retrieves an account by its normalized name.
func (m *MemoryStore) GetByName(ctx context.Context, name string) (*Account, error) {
	m.mu.RLock()
	account, exists := m.accounts[name]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	accountCopy := *account
	return &accountCopy, nil
}

// Create stores a new account, rejecting duplicates by name.
func (m *MemoryStore) Create(ctx context.Context, account *Account) error {
	if account == nil || account.Name == "" {
		return ErrInvalidAccount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Name]; exists {
		return ErrNameTaken
	}

	accountCopy := *account
	m.accounts[account.Name] = &accountCopy
	return nil
}

// Len returns the number of stored accounts.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts)
}
