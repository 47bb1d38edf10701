package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/session"
)

// API is the narrow slice of the marketplace client the auth layer
// needs. *apiclient.Client satisfies it.
type API interface {
	Login(ctx context.Context, address, signature string) (apiclient.LoginResponse, error)
	Me(ctx context.Context) (apiclient.MeResponse, error)
}

// Reauthenticator performs the login round-trip that creates or
// refreshes a session, writing the result through the session store.
type Reauthenticator struct {
	api     API
	store   session.Store
	signer  Signer
	logger  *slog.Logger
	metrics *metrics
}

// ReauthOption configures a Reauthenticator.
type ReauthOption func(*Reauthenticator)

// WithSigner replaces the placeholder AddressSigner with a wallet-backed one.
func WithSigner(s Signer) ReauthOption {
	return func(r *Reauthenticator) {
		if s != nil {
			r.signer = s
		}
	}
}

// WithReauthLogger sets the logger.
func WithReauthLogger(logger *slog.Logger) ReauthOption {
	return func(r *Reauthenticator) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithReauthMetrics registers refresh-outcome counters on the given registerer.
func WithReauthMetrics(reg prometheus.Registerer) ReauthOption {
	return func(r *Reauthenticator) {
		if reg != nil {
			r.metrics = newMetrics(reg)
		}
	}
}

// NewReauthenticator creates a Reauthenticator.
func NewReauthenticator(api API, store session.Store, opts ...ReauthOption) (*Reauthenticator, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	if store == nil {
		return nil, ErrNilStore
	}

	r := &Reauthenticator{
		api:    api,
		store:  store,
		signer: AddressSigner{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Refresh performs one login for the given wallet address and persists
// the resulting session.
//
// The address is lowercased for the wire request only; the store keeps
// the caller's original casing so displayed addresses keep their
// checksum form. After writing, the store is read back and the token
// compared, guarding against a storage layer that fails silently.
// On any failure the store is left as it was.
func (r *Reauthenticator) Refresh(ctx context.Context, walletAddress string) (session.Session, error) {
	if walletAddress == "" {
		return session.Session{}, ErrMissingWalletAddress
	}

	signature, err := r.signer.SignAddress(ctx, walletAddress)
	if err != nil {
		r.metrics.refreshFailure()
		return session.Session{}, errors.Join(ErrLoginFailed, err)
	}

	resp, err := r.api.Login(ctx, strings.ToLower(walletAddress), signature)
	if err != nil {
		r.metrics.refreshFailure()
		return session.Session{}, errors.Join(ErrLoginFailed, err)
	}
	if resp.Token == "" {
		r.metrics.refreshFailure()
		return session.Session{}, ErrMissingToken
	}

	if err := r.store.Set(ctx, resp.Token, walletAddress); err != nil {
		r.metrics.refreshFailure()
		return session.Session{}, errors.Join(ErrSessionWriteFailed, err)
	}

	stored, err := r.store.Get(ctx)
	if err != nil || stored.Token != resp.Token {
		r.metrics.refreshFailure()
		if err != nil {
			return session.Session{}, errors.Join(ErrSessionVerifyFailed, err)
		}
		return session.Session{}, ErrSessionVerifyFailed
	}

	r.metrics.refreshSuccess()
	r.logger.DebugContext(ctx, "session refreshed",
		slog.String("wallet_address", walletAddress),
	)
	return stored, nil
}
