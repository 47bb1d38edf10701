package confirm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/giftchain/giftchain-go/pkg/eventbus"
)

// Event types published on the bus when an operation reaches a
// terminal state. Cancellation publishes nothing: a cancelled
// operation has no audience by definition.
const (
	EventOperationConfirmed = "operation.confirmed"
	EventOperationFailed    = "operation.failed"
)

// Status of a tracked operation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// CheckResult is what one remote status check reports.
type CheckResult struct {
	Status          Status
	BlockchainID    string
	TransactionHash string
}

// StatusChecker queries the remote status of one operation.
type StatusChecker interface {
	CheckStatus(ctx context.Context, id string) (CheckResult, error)
}

// Outcome is the payload of terminal-event publications.
type Outcome struct {
	ID              string
	Kind            string
	Status          Status
	Attempts        int
	BlockchainID    string
	TransactionHash string
}

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 10 * time.Second

type operation struct {
	id       string
	attempts int
	cancel   context.CancelFunc
}

// Poller tracks externally confirmed long-running operations (such as
// a background NFT mint awaiting its blockchain confirmation) by
// polling a status endpoint until each reaches a terminal state.
//
// One timer exists per active operation; Start is single-flight per
// id. Transient check failures are swallowed and polling continues
// unbounded - the operation either terminates remotely or the owner
// cancels it. Late responses arriving after a cancellation are
// discarded: the entry's identity is re-checked before any terminal
// transition, so a cancelled run can neither publish nor resurrect
// its entry.
type Poller struct {
	checker  StatusChecker
	bus      *eventbus.Bus
	kind     string
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics

	mu     sync.Mutex
	ops    map[string]*operation
	closed bool
	wg     sync.WaitGroup
}

// New creates a poller that queries checker and publishes terminal
// outcomes on bus.
func New(checker StatusChecker, bus *eventbus.Bus, opts ...Option) (*Poller, error) {
	if checker == nil {
		return nil, ErrNilChecker
	}
	if bus == nil {
		return nil, ErrNilBus
	}

	p := &Poller{
		checker:  checker,
		bus:      bus,
		kind:     "backgroundMint",
		interval: DefaultInterval,
		logger:   slog.Default(),
		ops:      make(map[string]*operation),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Start begins tracking the operation. If the id is already being
// tracked (non-terminal), the call is a no-op: starting twice never
// creates a second timer. The first status check is issued
// immediately, subsequent ones on the configured interval.
func (p *Poller) Start(id string) {
	if id == "" {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if _, exists := p.ops[id]; exists {
		p.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	op := &operation{id: id, cancel: cancel}
	p.ops[id] = op
	p.wg.Add(1)
	p.mu.Unlock()

	p.metrics.started()
	go p.run(ctx, op)
}

// Cancel stops tracking the operation. Unknown or already-terminal ids
// are a no-op. No event is published and any response still in flight
// is discarded when it arrives.
func (p *Poller) Cancel(id string) {
	p.mu.Lock()
	op, ok := p.ops[id]
	if ok {
		delete(p.ops, id)
	}
	p.mu.Unlock()

	if ok {
		op.cancel()
		p.metrics.terminal(StatusCancelled)
	}
}

// Close cancels every active operation and rejects future Starts.
// It waits for the poll goroutines to finish, so no timer outlives
// the owner.
func (p *Poller) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	ops := make([]*operation, 0, len(p.ops))
	for _, op := range p.ops {
		ops = append(ops, op)
	}
	clear(p.ops)
	p.mu.Unlock()

	for _, op := range ops {
		op.cancel()
	}
	p.wg.Wait()
}

// Active reports whether the id is currently tracked.
func (p *Poller) Active(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ops[id]
	return ok
}

func (p *Poller) run(ctx context.Context, op *operation) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if p.check(ctx, op) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// check performs one status query. It returns true when the operation
// has reached a terminal state (or was cancelled mid-flight) and the
// poll loop should stop.
func (p *Poller) check(ctx context.Context, op *operation) bool {
	op.attempts++

	res, err := p.checker.CheckStatus(ctx, op.id)

	// A response that raced a cancellation is stale; act on nothing.
	if ctx.Err() != nil {
		return true
	}

	if err != nil {
		// Transient failure: swallowed, not surfaced, polling continues.
		p.metrics.check("error")
		p.logger.Debug("confirmation check failed, will retry",
			slog.String("operation_id", op.id),
			slog.Int("attempts", op.attempts),
			slog.Any("error", err),
		)
		return false
	}

	switch {
	case res.Status == StatusConfirmed && res.BlockchainID != "":
		p.metrics.check("confirmed")
		p.finish(op, StatusConfirmed, res)
		return true
	case res.Status == StatusFailed:
		p.metrics.check("failed")
		p.finish(op, StatusFailed, res)
		return true
	default:
		// Pending, or confirmed without its blockchain id yet.
		p.metrics.check("pending")
		return false
	}
}

// finish removes the entry and publishes the terminal outcome. The
// entry is compared by identity: if Cancel (or Close) got there first,
// or even a cancel-then-restart replaced it, this run owns nothing and
// publishes nothing.
func (p *Poller) finish(op *operation, status Status, res CheckResult) {
	p.mu.Lock()
	current, ok := p.ops[op.id]
	if !ok || current != op {
		p.mu.Unlock()
		return
	}
	delete(p.ops, op.id)
	p.mu.Unlock()

	op.cancel()
	p.metrics.terminal(status)

	eventType := EventOperationConfirmed
	if status == StatusFailed {
		eventType = EventOperationFailed
	}

	p.bus.Publish(context.Background(), eventbus.Event{
		Type: eventType,
		Payload: Outcome{
			ID:              op.id,
			Kind:            p.kind,
			Status:          status,
			Attempts:        op.attempts,
			BlockchainID:    res.BlockchainID,
			TransactionHash: res.TransactionHash,
		},
	})

	p.logger.Debug("operation reached terminal state",
		slog.String("operation_id", op.id),
		slog.String("status", string(status)),
		slog.Int("attempts", op.attempts),
	)
}
