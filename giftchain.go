package giftchain

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/auth"
	"github.com/giftchain/giftchain-go/pkg/background"
	"github.com/giftchain/giftchain-go/pkg/chat"
	"github.com/giftchain/giftchain-go/pkg/confirm"
	"github.com/giftchain/giftchain-go/pkg/eventbus"
	"github.com/giftchain/giftchain-go/pkg/giftcard"
	"github.com/giftchain/giftchain-go/pkg/session"
)

// Config aggregates the SDK-level settings. Load it with pkg/config:
//
//	var cfg giftchain.Config
//	config.MustLoad(&cfg)
type Config struct {
	API          apiclient.Config
	SessionFile  string        `env:"GIFTCHAIN_SESSION_FILE"`                   // Path of the persisted session; empty means in-memory only
	PollInterval time.Duration `env:"GIFTCHAIN_POLL_INTERVAL" envDefault:"10s"` // Confirmation poll period
}

// SDK wires the marketplace client stack together: one API client,
// one session store, the auth layer around it, the confirmation
// poller, the event bus they publish on, and the domain services.
type SDK struct {
	Store       session.Store
	Bus         *eventbus.Bus
	Client      *apiclient.Client
	Reauth      *auth.Reauthenticator
	Guard       *auth.Guard
	Poller      *confirm.Poller
	Backgrounds *background.Service
	GiftCards   *giftcard.Service
	Chat        *chat.Service
}

type sdkOptions struct {
	store      session.Store
	logger     *slog.Logger
	signer     auth.Signer
	httpClient *http.Client
	registerer prometheus.Registerer
}

// Option configures SDK construction.
type Option func(*sdkOptions)

// WithStore replaces the store chosen from Config (file-backed when
// SessionFile is set, otherwise in-memory).
func WithStore(store session.Store) Option {
	return func(o *sdkOptions) { o.store = store }
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *sdkOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSigner wires a wallet-backed proof signer.
func WithSigner(signer auth.Signer) Option {
	return func(o *sdkOptions) { o.signer = signer }
}

// WithHTTPClient replaces the API client's HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *sdkOptions) { o.httpClient = httpClient }
}

// WithMetrics registers the SDK's counters on the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *sdkOptions) { o.registerer = reg }
}

// New assembles the SDK. Components can also be constructed and wired
// individually; this is the default arrangement.
func New(cfg Config, opts ...Option) (*SDK, error) {
	o := &sdkOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		if cfg.SessionFile != "" {
			fileStore, err := session.NewFileStore(cfg.SessionFile)
			if err != nil {
				return nil, err
			}
			store = fileStore
		} else {
			store = session.NewMemoryStore()
		}
	}

	bus := eventbus.New(eventbus.WithLogger(o.logger))

	clientOpts := []apiclient.Option{
		apiclient.WithLogger(o.logger),
		apiclient.WithTokenSource(func(ctx context.Context) (string, bool) {
			sess, err := store.Get(ctx)
			if err != nil {
				return "", false
			}
			return sess.Token, true
		}),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(o.httpClient))
	}

	client, err := apiclient.New(cfg.API, clientOpts...)
	if err != nil {
		return nil, err
	}

	reauthOpts := []auth.ReauthOption{auth.WithReauthLogger(o.logger)}
	if o.signer != nil {
		reauthOpts = append(reauthOpts, auth.WithSigner(o.signer))
	}
	if o.registerer != nil {
		reauthOpts = append(reauthOpts, auth.WithReauthMetrics(o.registerer))
	}
	reauth, err := auth.NewReauthenticator(client, store, reauthOpts...)
	if err != nil {
		return nil, err
	}

	guard, err := auth.NewGuard(client, store, reauth, auth.WithGuardLogger(o.logger))
	if err != nil {
		return nil, err
	}

	checker, err := background.NewStatusChecker(client)
	if err != nil {
		return nil, err
	}

	pollerOpts := []confirm.Option{
		confirm.WithLogger(o.logger),
		confirm.WithInterval(cfg.PollInterval),
	}
	if o.registerer != nil {
		pollerOpts = append(pollerOpts, confirm.WithMetrics(o.registerer))
	}
	poller, err := confirm.New(checker, bus, pollerOpts...)
	if err != nil {
		return nil, err
	}

	backgrounds, err := background.NewService(client, bus,
		background.WithConfirmations(poller),
		background.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	giftCards, err := giftcard.NewService(client)
	if err != nil {
		return nil, err
	}

	chatSvc, err := chat.NewService(client)
	if err != nil {
		return nil, err
	}

	return &SDK{
		Store:       store,
		Bus:         bus,
		Client:      client,
		Reauth:      reauth,
		Guard:       guard,
		Poller:      poller,
		Backgrounds: backgrounds,
		GiftCards:   giftCards,
		Chat:        chatSvc,
	}, nil
}

// Logout clears the persisted session. Any in-flight confirmation
// polling keeps running; it does not depend on the session's identity.
func (s *SDK) Logout(ctx context.Context) error {
	return s.Store.Clear(ctx)
}

// Close tears the SDK down: all confirmation timers are cancelled and
// the domain services detach from the bus.
func (s *SDK) Close() {
	s.Poller.Close()
	s.Backgrounds.Close()
}
