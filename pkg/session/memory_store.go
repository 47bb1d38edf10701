package session

import (
	"context"
	"sync"
)

// MemoryStore implements Store with in-process storage.
// Suitable for tests and hosts that do not persist sessions across runs.
type MemoryStore struct {
	mu   sync.RWMutex
	sess Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get retrieves the current session.
func (m *MemoryStore) Get(ctx context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.sess.IsZero() {
		return Session{}, ErrNoSession
	}
	return m.sess, nil
}

// Set stores both credentials under a single lock acquisition.
func (m *MemoryStore) Set(ctx context.Context, token, walletAddress string) error {
	if token == "" || walletAddress == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sess = Session{Token: token, WalletAddress: walletAddress}
	return nil
}

// Clear removes both credentials.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sess = Session{}
	return nil
}
