// Package metrics exposes business counters next to the HTTP metrics
// collected by fiberfx.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

type Metrics struct {
	operations *prometheus.CounterVec
	records    *prometheus.GaugeVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moviehub",
			Name:      "entity_operations_total",
			Help:      "Number of entity operations by kind, operation and result.",
		}, []string{"entity", "operation", "result"}),
		records: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "moviehub",
			Name:      "entity_records",
			Help:      "Number of stored records by kind, as seen by the last list call.",
		}, []string{"entity"}),
	}
}

// Observe counts one operation on entity.
func (m *Metrics) Observe(entity, operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}

	m.operations.WithLabelValues(entity, operation, result).Inc()
}

// SetRecords records the number of stored records of entity.
func (m *Metrics) SetRecords(entity string, count int) {
	m.records.WithLabelValues(entity).Set(float64(count))
}
