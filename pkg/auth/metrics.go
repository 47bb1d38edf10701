package auth

import "github.com/prometheus/client_golang/prometheus"

// metrics counts refresh outcomes. A nil *metrics is valid and records
// nothing, so instrumentation stays opt-in.
type metrics struct {
	refreshes *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "giftchain_auth_refreshes_total",
			Help: "Session refresh attempts by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.refreshes)
	return m
}

func (m *metrics) refreshSuccess() {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues("success").Inc()
}

func (m *metrics) refreshFailure() {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues("failure").Inc()
}
