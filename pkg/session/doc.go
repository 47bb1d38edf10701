// Package session models the client's wallet session and its local
// evaluation, plus pluggable persistence for the two credentials the
// marketplace client keeps between runs: the bearer token and the
// wallet address it belongs to.
//
// The two values form one unit. Stores write them atomically and
// report the absence of either as ErrNoSession; a token with no
// address is unusable and never treated as a session.
//
// # Evaluation
//
// Validate classifies a session without touching the network:
//
//	switch session.Validate(sess, time.Now()) {
//	case session.StateUnauthenticated:
//	    // no credentials; prompt for wallet connection
//	case session.StateExpiringSoon:
//	    // refresh before the server starts rejecting requests
//	case session.StateValid:
//	    // proceed (the server still has the final say)
//	}
//
// # Stores
//
//   - MemoryStore – ephemeral, for tests and short-lived hosts.
//   - FileStore – JSON file with atomic replace, the usual choice for
//     a desktop or CLI client.
//   - RedisStore – one Redis hash, for hosts that already run Redis.
//
// All stores are safe for concurrent use.
package session
