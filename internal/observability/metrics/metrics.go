package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded by the lead pipeline.
const (
	OutcomeAccepted   = "accepted"
	OutcomeInvalid    = "invalid"
	OutcomeThrottled  = "throttled"
	OutcomeStoreError = "store_error"
)

// LeadMetrics exposes counters for the lead submission pipeline.
type LeadMetrics struct {
	submissions *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marekit",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Lead form submissions by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions)
	return m
}

// ObserveSubmission counts one submission with the given outcome.
func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}
