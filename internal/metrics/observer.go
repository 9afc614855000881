// Package metrics exports telemetry for requests made to the rendering service.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operations recorded by the observer
const (
	OperationGenerate   = "generate"
	OperationSampleData = "sample_data"
)

// Observer captures telemetry for rendering service calls. outcome is
// "success" or an error kind label.
type Observer interface {
	RecordRequest(operation string, duration time.Duration, outcome string)
	RecordArtifact(sizeBytes int)
}

// NopObserver discards everything.
type NopObserver struct{}

// RecordRequest implements Observer.
func (NopObserver) RecordRequest(string, time.Duration, string) {}

// RecordArtifact implements Observer.
func (NopObserver) RecordArtifact(int) {}

// PrometheusObserver exports request metrics to Prometheus.
type PrometheusObserver struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	artifactBytes   prometheus.Counter
}

// NewPrometheusObserver registers request and artifact metrics.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "resume_builder"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	observer := &PrometheusObserver{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_request_duration_seconds",
			Help:      "Latency of calls to the rendering service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_requests_total",
			Help:      "Calls to the rendering service by outcome.",
		}, []string{"operation", "outcome"}),
		artifactBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifact_bytes_total",
			Help:      "Cumulative size of generated resume artifacts.",
		}),
	}

	var err error
	if observer.requestDuration, err = register(reg, observer.requestDuration); err != nil {
		return nil, err
	}
	if observer.requestsTotal, err = register(reg, observer.requestsTotal); err != nil {
		return nil, err
	}
	if observer.artifactBytes, err = register(reg, observer.artifactBytes); err != nil {
		return nil, err
	}
	return observer, nil
}

// RecordRequest tracks request latency and outcome.
func (o *PrometheusObserver) RecordRequest(operation string, duration time.Duration, outcome string) {
	if o == nil {
		return
	}
	o.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	o.requestsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordArtifact tracks the size of a stored artifact.
func (o *PrometheusObserver) RecordArtifact(sizeBytes int) {
	if o == nil {
		return
	}
	o.artifactBytes.Add(float64(sizeBytes))
}

// register adds c to reg, reusing an identical collector that is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register resume builder metric: %w", err)
	}
	return c, nil
}
