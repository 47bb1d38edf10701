package eventbus

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Event is a transient domain-change notification. It is fanned out to
// the handlers subscribed at publish time and never persisted.
type Event struct {
	Type    string
	Payload any
}

// Handler processes one published event. Handlers run synchronously on
// the publisher's goroutine; a panicking handler is isolated and
// reported without affecting its siblings.
type Handler func(ctx context.Context, evt Event)

type subscription struct {
	fn Handler
}

// Bus is a synchronous in-process publish/subscribe hub. It decouples
// data producers from UI consumers without hidden global state: each
// Bus is explicitly constructed and injected where needed.
//
// All methods are safe for concurrent use.
type Bus struct {
	mu     sync.Mutex
	subs   map[string][]*subscription
	logger *slog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used to report handler panics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		subs:   make(map[string][]*subscription),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for the given event type and returns
// its unsubscribe function. Registration order is preserved and
// duplicates are allowed: subscribing the same handler twice registers
// it twice, and each registration needs its own unsubscribe call.
// The returned unsubscribe is idempotent.
func (b *Bus) Subscribe(eventType string, h Handler) func() {
	if h == nil {
		return func() {}
	}

	sub := &subscription{fn: h}

	b.mu.Lock()
	b.subs[eventType] = append(b.subs[eventType], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.unsubscribe(eventType, sub)
		})
	}
}

// Publish delivers the event to every handler registered for its type
// at the moment of publication, in registration order, before
// returning. A handler that subscribes during its own invocation is
// not included in the in-flight delivery. Handler panics are recovered
// and logged; they never abort the broadcast or escape Publish.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.Lock()
	subs := slices.Clone(b.subs[evt.Type])
	b.mu.Unlock()

	for _, sub := range subs {
		b.dispatch(ctx, sub, evt)
	}
}

func (b *Bus) dispatch(ctx context.Context, sub *subscription, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "event handler panicked",
				slog.String("event_type", evt.Type),
				slog.Any("panic", r),
			)
		}
	}()

	sub.fn(ctx, evt)
}

func (b *Bus) unsubscribe(eventType string, sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[eventType]
	for i, s := range subs {
		if s == sub {
			b.subs[eventType] = slices.Delete(subs, i, i+1)
			break
		}
	}
	if len(b.subs[eventType]) == 0 {
		delete(b.subs, eventType)
	}
}
