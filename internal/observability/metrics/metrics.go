package metrics

import "github.com/prometheus/client_golang/prometheus"

// PortalMetrics exposes counters for the portal's auth, chat, and booking flows.
type PortalMetrics struct {
	authSubmitTotal   *prometheus.CounterVec
	chatMessagesTotal *prometheus.CounterVec
	bookingsTotal     *prometheus.CounterVec
}

func NewPortalMetrics(reg prometheus.Registerer) *PortalMetrics {
	m := &PortalMetrics{
		authSubmitTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayurclinic",
			Subsystem: "auth",
			Name:      "submissions_total",
			Help:      "Total auth form submissions",
		}, []string{"role", "mode", "outcome"}),
		chatMessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayurclinic",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total chat utterances answered, by matched category",
		}, []string{"category"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayurclinic",
			Subsystem: "booking",
			Name:      "appointments_total",
			Help:      "Total appointment transitions",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.authSubmitTotal, m.chatMessagesTotal, m.bookingsTotal)
	return m
}

func (m *PortalMetrics) ObserveAuthSubmit(role, mode, outcome string) {
	if m == nil {
		return
	}
	m.authSubmitTotal.WithLabelValues(role, mode, outcome).Inc()
}

func (m *PortalMetrics) ObserveChatMessage(category string) {
	if m == nil {
		return
	}
	m.chatMessagesTotal.WithLabelValues(category).Inc()
}

func (m *PortalMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}
