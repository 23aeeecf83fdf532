// Package engine exposes the voice utterance resolution engine behind a
// single type: phrase correction, catalog resolution, multi-item utterance
// decomposition, phone normalization, and phonetic suggestion.
//
// The engine is purely computational. It holds only read-only data (the
// catalog, the correction table, tuning constants) that is fixed at
// construction, so every method is safe to call concurrently without
// coordination. Methods accept a [context.Context] solely to participate in
// tracing; no engine operation blocks, retries, or observes cancellation.
//
// Negative outcomes (item not found, size ambiguity, quantity over the cap,
// invalid phone input) are ordinary result values, never errors. The engine
// does not panic on any input string.
package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ordervox/ordervox/internal/correct"
	"github.com/ordervox/ordervox/internal/observe"
	"github.com/ordervox/ordervox/internal/order"
	"github.com/ordervox/ordervox/internal/phone"
	"github.com/ordervox/ordervox/internal/resolve"
	"github.com/ordervox/ordervox/pkg/menu"
)

// Service is the engine surface consumed by the dialogue orchestrator.
type Service interface {
	// Correct rewrites a raw phrase using the correction rule table.
	Correct(ctx context.Context, phrase string) string

	// Resolve matches a query against the catalog.
	Resolve(ctx context.Context, query string) resolve.Result

	// Decompose splits a multi-item utterance into resolved order lines.
	Decompose(ctx context.Context, utterance string) order.Decomposition

	// NormalizePhone converts spoken or typed phone text into digits.
	NormalizePhone(ctx context.Context, text string) phone.Normalized

	// Suggest proposes the closest-sounding catalog item name for a phrase
	// that no correction rule covered.
	Suggest(ctx context.Context, phrase string) (name string, confidence float64, ok bool)
}

// Option is a functional option for configuring an [Engine].
type Option func(*Engine)

// WithCorrector replaces the default correction rule table.
func WithCorrector(c *correct.Corrector) Option {
	return func(e *Engine) {
		e.corrector = c
	}
}

// WithThreshold overrides the fuzzy-pass acceptance threshold.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithMaxQuantity overrides the per-line quantity cap.
func WithMaxQuantity(max int) Option {
	return func(e *Engine) {
		e.maxQuantity = max
	}
}

// WithMetrics sets the metrics instance. Defaults to
// [observe.DefaultMetrics] when not provided.
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// Engine is the concrete [Service] implementation. Construct with [New];
// the zero value is not usable.
type Engine struct {
	catalog    *menu.Catalog
	corrector  *correct.Corrector
	suggester  *correct.Suggester
	resolver   *resolve.Resolver
	decomposer *order.Decomposer
	metrics    *observe.Metrics

	threshold   float64
	maxQuantity int

	itemNames []string
}

// Ensure Engine satisfies the Service interface at compile time.
var _ Service = (*Engine)(nil)

// New builds an Engine over catalog with the supplied options. Defaults:
// built-in correction table, fuzzy threshold [resolve.DefaultThreshold],
// quantity cap [order.DefaultMaxQuantity], global default metrics.
func New(catalog *menu.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:     catalog,
		threshold:   resolve.DefaultThreshold,
		maxQuantity: order.DefaultMaxQuantity,
	}
	for _, o := range opts {
		o(e)
	}

	if e.corrector == nil {
		e.corrector = correct.Default()
	}
	if e.metrics == nil {
		e.metrics = observe.DefaultMetrics()
	}
	e.suggester = correct.NewSuggester()
	e.resolver = resolve.New(catalog, resolve.WithThreshold(e.threshold))
	e.decomposer = order.New(e.corrector, e.resolver, order.WithMaxQuantity(e.maxQuantity))

	for _, it := range catalog.Items() {
		e.itemNames = append(e.itemNames, it.Name)
	}
	return e
}

// Catalog returns the catalog the engine resolves against.
func (e *Engine) Catalog() *menu.Catalog {
	return e.catalog
}

// Correct rewrites phrase using the correction rule table and records
// whether a rewrite happened.
func (e *Engine) Correct(ctx context.Context, phrase string) string {
	corrected := e.corrector.Correct(phrase)
	if corrected != menu.Normalize(phrase) {
		e.metrics.Corrections.Add(ctx, 1)
		observe.Logger(ctx).Debug("phrase corrected",
			"raw", phrase,
			"corrected", corrected,
		)
	}
	return corrected
}

// Resolve corrects query and matches it against the catalog.
func (e *Engine) Resolve(ctx context.Context, query string) resolve.Result {
	ctx, span := observe.StartSpan(ctx, "engine.Resolve")
	defer span.End()
	start := time.Now()

	res := e.resolver.Resolve(e.Correct(ctx, query))

	status, pass := resultAttrs(res)
	e.metrics.Resolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
		attribute.String("pass", pass),
	))
	e.metrics.ResolveDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("pass", pass),
	))

	observe.Logger(ctx).Debug("query resolved",
		"query", query,
		"status", status,
		"candidates", len(res.Candidates),
	)
	return res
}

// Decompose splits utterance into order-line proposals and resolves each.
func (e *Engine) Decompose(ctx context.Context, utterance string) order.Decomposition {
	ctx, span := observe.StartSpan(ctx, "engine.Decompose")
	defer span.End()
	start := time.Now()

	dec := e.decomposer.Decompose(utterance)

	for _, line := range dec.Lines {
		e.metrics.OrderLines.Add(ctx, 1, metric.WithAttributes(
			attribute.String("status", string(line.Status)),
		))
	}
	e.metrics.DecomposeDuration.Record(ctx, time.Since(start).Seconds())

	observe.Logger(ctx).Debug("utterance decomposed",
		"utterance", utterance,
		"lines", len(dec.Lines),
		"total", dec.Total,
	)
	return dec
}

// NormalizePhone converts spoken or typed phone text into digits.
func (e *Engine) NormalizePhone(ctx context.Context, text string) phone.Normalized {
	n := phone.Normalize(text)
	e.metrics.PhoneNormalizations.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("valid", n.Valid),
	))
	return n
}

// Suggest proposes the closest-sounding catalog item name for phrase. Useful
// for "did you mean" prompts when Resolve came back empty.
func (e *Engine) Suggest(ctx context.Context, phrase string) (string, float64, bool) {
	name, conf, ok := e.suggester.Suggest(phrase, e.itemNames)
	if ok {
		observe.Logger(ctx).Debug("phonetic suggestion",
			"phrase", phrase,
			"suggestion", name,
			"confidence", conf,
		)
	}
	return name, conf, ok
}

// resultAttrs maps a resolve result onto metric attribute values.
func resultAttrs(res resolve.Result) (status, pass string) {
	switch {
	case res.Ambiguous():
		return "ambiguous", ""
	case res.Found():
		return "resolved", string(res.Candidates[0].Pass)
	default:
		return "not_found", ""
	}
}
