package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/session"
)

// Result is the outcome of a usability check. Message is a
// human-readable explanation meant for the UI layer; it never carries
// a raw transport error object.
type Result struct {
	Authenticated bool
	Message       string
}

// Guard decides whether the current session is usable, repairing it
// with a refresh when possible.
//
// The decision is two-tiered: a free local evaluation first, then at
// most one network probe, then at most one repair refresh. The common
// path costs one network call, the repair path two.
//
// Concurrent EnsureUsable calls that both need a refresh share a
// single in-flight login instead of issuing their own, so a burst of
// simultaneous API calls against an expiring session produces exactly
// one POST /api/auth/login.
type Guard struct {
	api    API
	store  session.Store
	reauth *Reauthenticator
	now    func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	inflight *refreshCall
}

type refreshCall struct {
	done chan struct{}
	sess session.Session
	err  error
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithGuardLogger sets the logger.
func WithGuardLogger(logger *slog.Logger) GuardOption {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithClock replaces the time source, for deterministic expiry tests.
func WithClock(now func() time.Time) GuardOption {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGuard creates a session guard.
func NewGuard(api API, store session.Store, reauth *Reauthenticator, opts ...GuardOption) (*Guard, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if reauth == nil {
		return nil, ErrNilReauthenticator
	}

	g := &Guard{
		api:    api,
		store:  store,
		reauth: reauth,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// EnsureUsable reports whether the session is currently usable,
// refreshing it on the way when it is about to expire or the server
// has already started rejecting it.
//
//  1. No local credentials: not authenticated, zero network calls.
//  2. Token expiring (or expired): one refresh decides the outcome.
//  3. Locally valid: one liveness probe. A 401-class rejection means
//     the local check was too optimistic (clock skew, server-side
//     revocation), so exactly one refresh is attempted. Any other
//     probe failure reports not-authenticated without a refresh - a
//     login against an unreachable server cannot help.
func (g *Guard) EnsureUsable(ctx context.Context) Result {
	sess, err := g.store.Get(ctx)
	if err != nil {
		// An unreadable store and an empty store look the same from
		// here: there is no session to work with.
		sess = session.Session{}
	}

	switch session.Validate(sess, g.now()) {
	case session.StateUnauthenticated:
		return Result{Message: "no active session"}

	case session.StateExpiringSoon:
		if _, err := g.refresh(ctx, sess.WalletAddress); err != nil {
			return Result{Message: err.Error()}
		}
		return Result{Authenticated: true, Message: "session refreshed"}
	}

	if _, err := g.api.Me(ctx); err != nil {
		if apiclient.IsUnauthorized(err) {
			g.logger.DebugContext(ctx, "liveness probe rejected, attempting refresh")
			if _, rerr := g.refresh(ctx, sess.WalletAddress); rerr != nil {
				return Result{Message: rerr.Error()}
			}
			return Result{Authenticated: true, Message: "session refreshed"}
		}
		return Result{Message: "session check failed: " + err.Error()}
	}

	return Result{Authenticated: true}
}

// refresh funnels concurrent callers through one in-flight login.
// Whoever arrives first issues the request; the rest wait on its
// result (or their own context, whichever ends first).
func (g *Guard) refresh(ctx context.Context, walletAddress string) (session.Session, error) {
	g.mu.Lock()
	if call := g.inflight; call != nil {
		g.mu.Unlock()
		select {
		case <-call.done:
			return call.sess, call.err
		case <-ctx.Done():
			return session.Session{}, ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	g.inflight = call
	g.mu.Unlock()

	call.sess, call.err = g.reauth.Refresh(ctx, walletAddress)

	g.mu.Lock()
	g.inflight = nil
	g.mu.Unlock()
	close(call.done)

	return call.sess, call.err
}
