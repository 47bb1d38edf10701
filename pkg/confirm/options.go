package confirm

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the poll period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithKind labels the operations this poller tracks (e.g. "backgroundMint").
func WithKind(kind string) Option {
	return func(p *Poller) {
		if kind != "" {
			p.kind = kind
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics registers poll counters on the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Poller) {
		if reg != nil {
			p.metrics = newMetrics(reg)
		}
	}
}
