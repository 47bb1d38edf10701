package session

import "context"

// Store defines the interface for session persistence.
//
// Set must be atomic with respect to readers: a concurrent Get never
// observes the token of one session paired with the address of
// another. Absence of either value is reported as ErrNoSession.
//
// Stores perform no validation beyond rejecting partial writes; they
// are purely mechanical storage.
type Store interface {
	// Get retrieves the current session.
	Get(ctx context.Context) (Session, error)

	// Set stores both credentials in one atomic write.
	Set(ctx context.Context, token, walletAddress string) error

	// Clear removes both credentials.
	Clear(ctx context.Context) error
}
