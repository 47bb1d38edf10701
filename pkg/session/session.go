package session

import (
	"time"

	"github.com/giftchain/giftchain-go/pkg/claims"
)

// ExpiryWindow is how close to expiry a token may get before the
// client proactively refreshes it.
const ExpiryWindow = 10 * time.Minute

// Session holds the credentials of the current wallet session.
// Token and WalletAddress are set and cleared together; a token
// without an associated address is unusable.
type Session struct {
	Token         string `json:"token"`
	WalletAddress string `json:"walletAddress"`
}

// IsZero reports whether the session is missing either credential.
func (s Session) IsZero() bool {
	return s.Token == "" || s.WalletAddress == ""
}

// State is the result of evaluating a session locally.
type State int

const (
	// StateUnauthenticated means no usable credentials are present.
	StateUnauthenticated State = iota
	// StateValid means the session looks usable as far as the client can tell.
	StateValid
	// StateExpiringSoon means the token expires within ExpiryWindow
	// (or already has) and should be refreshed.
	StateExpiringSoon
	// StateInvalid means the server rejected the session outright.
	StateInvalid
	// StateUnreachable means the session could not be checked remotely.
	StateUnreachable
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateValid:
		return "valid"
	case StateExpiringSoon:
		return "expiring_soon"
	case StateInvalid:
		return "invalid"
	case StateUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Validate evaluates a session against the given instant without any
// network access. It is deterministic in its inputs.
//
// A token whose payload cannot be decoded evaluates to StateValid:
// structural opacity is tolerated and only a successfully decoded
// expiry is acted upon. Rejecting such tokens locally would log users
// out on cosmetic token-format changes; the server remains the
// authority on whether an opaque token is acceptable.
//
// An already-expired token evaluates to StateExpiringSoon, not to a
// distinct hard-expired state: both conditions share the same
// remediation, a refresh.
func Validate(sess Session, now time.Time) State {
	if sess.IsZero() {
		return StateUnauthenticated
	}

	c, err := claims.Decode(sess.Token)
	if err != nil {
		return StateValid
	}

	if c.HasExpiry() && c.Expiry().Sub(now) < ExpiryWindow {
		return StateExpiringSoon
	}

	return StateValid
}
