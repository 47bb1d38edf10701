package background

import (
	"context"
	"log/slog"

	"github.com/giftchain/giftchain-go/pkg/apiclient"
	"github.com/giftchain/giftchain-go/pkg/confirm"
	"github.com/giftchain/giftchain-go/pkg/eventbus"
)

// Event types published for UI consumers.
const (
	// EventAdded fires when a new background enters the collection
	// (minting may still be pending at that point).
	EventAdded = "background.added"
	// EventUpdated fires when an existing background changes, most
	// importantly when its mint reaches a terminal state.
	EventUpdated = "background.updated"
)

// API is the slice of the marketplace client this service needs.
// *apiclient.Client satisfies it.
type API interface {
	ListBackgrounds(ctx context.Context) ([]apiclient.Background, error)
	MintBackground(ctx context.Context, req apiclient.MintBackgroundRequest) (apiclient.MintBackgroundResponse, error)
	VerifyBackground(ctx context.Context, id string) (apiclient.VerifyBackgroundResponse, error)
}

// ConfirmationStarter registers a pending operation for status polling.
// *confirm.Poller satisfies it.
type ConfirmationStarter interface {
	Start(id string)
}

// Service exposes the background-NFT operations: listing, minting, and
// the plumbing that turns mint confirmations into domain events.
type Service struct {
	api           API
	bus           *eventbus.Bus
	confirmations ConfirmationStarter
	logger        *slog.Logger
	unsubscribe   []func()
}

// Option configures a Service.
type Option func(*Service)

// WithConfirmations wires the poller that tracks pending mints.
// Without one, Mint still works but nobody watches the confirmation.
func WithConfirmations(c ConfirmationStarter) Option {
	return func(s *Service) {
		s.confirmations = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates the background service and subscribes it to the
// poller's terminal events so confirmations are rebroadcast as
// EventUpdated. Call Close when the owner goes away.
func NewService(api API, bus *eventbus.Bus, opts ...Option) (*Service, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	if bus == nil {
		return nil, ErrNilBus
	}

	s := &Service{
		api:    api,
		bus:    bus,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.unsubscribe = append(s.unsubscribe,
		bus.Subscribe(confirm.EventOperationConfirmed, s.rebroadcast),
		bus.Subscribe(confirm.EventOperationFailed, s.rebroadcast),
	)
	return s, nil
}

// Close detaches the service from the event bus.
func (s *Service) Close() {
	for _, off := range s.unsubscribe {
		off()
	}
	s.unsubscribe = nil
}

// List fetches the caller's backgrounds.
func (s *Service) List(ctx context.Context) ([]apiclient.Background, error) {
	return s.api.ListBackgrounds(ctx)
}

// Mint submits an image for NFT minting. The new background is
// announced as EventAdded immediately; if the mint comes back
// non-terminal, its id is handed to the confirmation poller and the
// eventual outcome arrives later as EventUpdated.
func (s *Service) Mint(ctx context.Context, imageURL, name string) (apiclient.Background, error) {
	resp, err := s.api.MintBackground(ctx, apiclient.MintBackgroundRequest{
		ImageURL: imageURL,
		Name:     name,
	})
	if err != nil {
		return apiclient.Background{}, err
	}

	bg := resp.Background
	if bg.TransactionHash == "" {
		bg.TransactionHash = resp.TransactionHash
	}

	s.bus.Publish(ctx, eventbus.Event{Type: EventAdded, Payload: bg})

	if bg.Status != string(confirm.StatusConfirmed) && s.confirmations != nil && bg.ID != "" {
		s.confirmations.Start(bg.ID)
	}

	return bg, nil
}

// rebroadcast translates a poller outcome into the domain event the
// UI layer actually subscribes to.
func (s *Service) rebroadcast(ctx context.Context, evt eventbus.Event) {
	outcome, ok := evt.Payload.(confirm.Outcome)
	if !ok {
		return
	}

	s.logger.DebugContext(ctx, "mint reached terminal state",
		slog.String("background_id", outcome.ID),
		slog.String("status", string(outcome.Status)),
	)

	s.bus.Publish(ctx, eventbus.Event{
		Type: EventUpdated,
		Payload: apiclient.Background{
			ID:              outcome.ID,
			BlockchainID:    outcome.BlockchainID,
			TransactionHash: outcome.TransactionHash,
			Status:          string(outcome.Status),
		},
	})
}
