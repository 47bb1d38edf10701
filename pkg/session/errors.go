package session

import "errors"

var (
	// ErrNoSession is returned by Store.Get when either credential is absent.
	ErrNoSession = errors.New("session: no session")

	// ErrInvalidSession is returned by Store.Set when given an empty
	// token or wallet address; partial sessions are never persisted.
	ErrInvalidSession = errors.New("session: token and wallet address are required")

	// ErrStoreUnavailable wraps failures of the underlying persistence medium.
	ErrStoreUnavailable = errors.New("session: store unavailable")

	// ErrInvalidPath is returned when constructing a FileStore without a path.
	ErrInvalidPath = errors.New("session: store path is required")

	// ErrNilRedisClient is returned when constructing a RedisStore without a client.
	ErrNilRedisClient = errors.New("session: redis client is required")
)
