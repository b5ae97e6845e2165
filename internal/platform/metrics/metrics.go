// Package metrics records Asaas resource operations as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/ports"
)

// Outcome labels.
const (
	OutcomeOK              = "ok"
	OutcomeNotFound        = "not_found"
	OutcomeAPIError        = "api_error"
	OutcomeTransportError  = "transport_error"
	OutcomeDecodeError     = "decode_error"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeUnknown         = "unknown"
)

// Recorder counts resource operations and observes their latency.
// It implements ports.OperationObserver. A nil *Recorder records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

var _ ports.OperationObserver = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "asaas_operations_total",
			Help: "Total Asaas resource operations",
		}, []string{"resource", "operation", "outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "asaas_operation_duration_seconds",
			Help:    "Asaas resource operation latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource", "operation"}),
	}
}

// Observe records one finished operation.
func (r *Recorder) Observe(resource, operation string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}

	r.operations.WithLabelValues(resource, operation, Outcome(err)).Inc()
	r.latency.WithLabelValues(resource, operation).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, e.g. for a push gateway or tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Outcome maps an operation error onto its label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsNotFound(err):
		return OutcomeNotFound
	case domain.IsAPIError(err):
		return OutcomeAPIError
	case domain.IsTransport(err):
		return OutcomeTransportError
	case domain.IsDecode(err):
		return OutcomeDecodeError
	case domain.IsInvalidArgument(err):
		return OutcomeInvalidArgument
	default:
		return OutcomeUnknown
	}
}
