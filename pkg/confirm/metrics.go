package confirm

import "github.com/prometheus/client_golang/prometheus"

// metrics counts poll activity. A nil *metrics records nothing.
type metrics struct {
	checks     *prometheus.CounterVec
	operations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "giftchain_confirm_checks_total",
			Help: "Status checks by outcome",
		}, []string{"outcome"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "giftchain_confirm_operations_total",
			Help: "Tracked operations by terminal result",
		}, []string{"result"}),
	}
	reg.MustRegister(m.checks, m.operations)
	return m
}

func (m *metrics) started() {
	if m == nil {
		return
	}
	m.operations.WithLabelValues("started").Inc()
}

func (m *metrics) check(outcome string) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(outcome).Inc()
}

func (m *metrics) terminal(status Status) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(string(status)).Inc()
}
