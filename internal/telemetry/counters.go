package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters tracks stored readings and failures per metric table.
type Counters struct {
	stored     *prometheus.CounterVec
	storage    *prometheus.CounterVec
	validation *prometheus.CounterVec
}

// NewCounters registers the gateway counters with reg.
func NewCounters(reg prometheus.Registerer) *Counters {
	f := promauto.With(reg)
	return &Counters{
		stored: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petcare_readings_stored_total",
			Help: "Readings written, by metric table.",
		}, []string{"metric"}),
		storage: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petcare_storage_errors_total",
			Help: "Failed queries, by metric table.",
		}, []string{"metric"}),
		validation: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petcare_validation_errors_total",
			Help: "Rejected requests, by metric table.",
		}, []string{"metric"}),
	}
}

func (c *Counters) recordStored(metric string, n int) {
	c.stored.WithLabelValues(metric).Add(float64(n))
}

func (c *Counters) recordStorageError(metric string) {
	c.storage.WithLabelValues(metric).Inc()
}

func (c *Counters) recordValidationError(metric string) {
	c.validation.WithLabelValues(metric).Inc()
}
