package auth

import "errors"

var (
	// ErrNilAPI is returned when constructing a component without an API client.
	ErrNilAPI = errors.New("auth: api client is required")

	// ErrNilStore is returned when constructing a component without a session store.
	ErrNilStore = errors.New("auth: session store is required")

	// ErrNilReauthenticator is returned when constructing a Guard without a reauthenticator.
	ErrNilReauthenticator = errors.New("auth: reauthenticator is required")

	// ErrMissingWalletAddress is returned by Refresh when no address is provided.
	ErrMissingWalletAddress = errors.New("auth: wallet address is required")

	// ErrLoginFailed wraps a failed login round-trip.
	ErrLoginFailed = errors.New("auth: login request failed")

	// ErrMissingToken is returned when a successful login response omits the token.
	ErrMissingToken = errors.New("auth: login response missing token")

	// ErrSessionWriteFailed wraps a failed session store write.
	ErrSessionWriteFailed = errors.New("auth: failed to persist session")

	// ErrSessionVerifyFailed is returned when the post-write read-back
	// does not return the token that was just stored.
	ErrSessionVerifyFailed = errors.New("auth: stored session does not match issued token")
)
