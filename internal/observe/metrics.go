// Package observe provides observability primitives for the OrderVox
// resolution engine: OpenTelemetry metrics, tracing helpers, and structured
// logging glue.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped from a standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all OrderVox metrics.
const meterName = "github.com/ordervox/ordervox"

// Metrics holds all OpenTelemetry metric instruments for the engine.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// ResolveDuration tracks wall time of a single resolve call, including
	// correction. Attribute: attribute.String("pass", ...).
	ResolveDuration metric.Float64Histogram

	// DecomposeDuration tracks wall time of a full utterance decomposition.
	DecomposeDuration metric.Float64Histogram

	// Resolutions counts resolve outcomes. Attributes:
	//   attribute.String("status", "resolved"|"ambiguous"|"not_found")
	//   attribute.String("pass", ...), set for resolved outcomes.
	Resolutions metric.Int64Counter

	// Corrections counts phrases the corrector actually rewrote.
	Corrections metric.Int64Counter

	// OrderLines counts decomposed line proposals. Attribute:
	//   attribute.String("status", ...), one of the order statuses.
	OrderLines metric.Int64Counter

	// PhoneNormalizations counts phone normalization attempts. Attribute:
	//   attribute.Bool("valid", ...).
	PhoneNormalizations metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds). The engine
// is purely computational, so buckets skew far lower than network latencies.
var latencyBuckets = []float64{
	0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ResolveDuration, err = m.Float64Histogram("ordervox.resolve.duration",
		metric.WithDescription("Latency of one query resolution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.DecomposeDuration, err = m.Float64Histogram("ordervox.decompose.duration",
		metric.WithDescription("Latency of one utterance decomposition."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.Resolutions, err = m.Int64Counter("ordervox.resolutions",
		metric.WithDescription("Total resolve calls by status and pass."),
	); err != nil {
		return nil, err
	}
	if met.Corrections, err = m.Int64Counter("ordervox.corrections",
		metric.WithDescription("Total phrases rewritten by the corrector."),
	); err != nil {
		return nil, err
	}
	if met.OrderLines, err = m.Int64Counter("ordervox.order_lines",
		metric.WithDescription("Total decomposed order lines by status."),
	); err != nil {
		return nil, err
	}
	if met.PhoneNormalizations, err = m.Int64Counter("ordervox.phone_normalizations",
		metric.WithDescription("Total phone normalizations by validity."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: creating default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}
