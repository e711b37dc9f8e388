package session

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/graphsearch/session"

// instruments groups the metrics recorded by a Session.
type instruments struct {
	traversals metric.Int64Counter
	visited    metric.Int64Histogram
	duration   metric.Float64Histogram
	edges      metric.Int64Counter
	inits      metric.Int64Counter
}

// newInstruments creates the instruments on meter. If any of them cannot be
// created the whole set falls back to no-op instruments.
func newInstruments(meter metric.Meter, logger *slog.Logger) instruments {
	inst, err := buildInstruments(meter)
	if err != nil {
		logger.Warn("metrics disabled", slog.String("error", err.Error()))
		inst, _ = buildInstruments(noop.NewMeterProvider().Meter(instrumentationName))
	}

	return inst
}

func buildInstruments(meter metric.Meter) (instruments, error) {
	var (
		inst instruments
		err  error
	)
	inst.traversals, err = meter.Int64Counter(
		"graphsearch_traversals_total",
		metric.WithDescription("Total number of traversals run"),
	)
	if err != nil {
		return inst, err
	}
	inst.visited, err = meter.Int64Histogram(
		"graphsearch_traversal_visited",
		metric.WithDescription("Number of vertices emitted per traversal"),
	)
	if err != nil {
		return inst, err
	}
	inst.duration, err = meter.Float64Histogram(
		"graphsearch_traversal_duration_seconds",
		metric.WithDescription("Duration of traversals"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return inst, err
	}
	inst.edges, err = meter.Int64Counter(
		"graphsearch_edges_added_total",
		metric.WithDescription("Total number of edges added"),
	)
	if err != nil {
		return inst, err
	}
	inst.inits, err = meter.Int64Counter(
		"graphsearch_graph_inits_total",
		metric.WithDescription("Total number of graph initializations"),
	)

	return inst, err
}

// recordTraversal records metrics for one traversal.
func (i instruments) recordTraversal(ctx context.Context, algorithm string, visited int, d time.Duration, success bool) {
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.Bool("success", success),
	)
	i.traversals.Add(ctx, 1, attrs)
	i.duration.Record(ctx, d.Seconds(), attrs)
	if success {
		i.visited.Record(ctx, int64(visited), metric.WithAttributes(attribute.String("algorithm", algorithm)))
	}
}

// startTraversalSpan creates a span for a traversal.
func (s *Session) startTraversalSpan(ctx context.Context, algorithm string, start int) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "Session."+algorithm,
		trace.WithAttributes(
			attribute.String("graph.id", s.id),
			attribute.Int("graph.capacity", s.capacity),
			attribute.Int("traversal.start", start),
		),
	)
}
