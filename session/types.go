package session

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphsearch/core"
)

// ErrGraphNotInitialized is returned by every operation issued before Init.
var ErrGraphNotInitialized = errors.New("session: graph not initialized")

// Algorithm names used in logs, spans and metric attributes.
const (
	AlgorithmDFS = "dfs"
	AlgorithmBFS = "bfs"
)

// Option configures a Session.
type Option func(*Session)

// WithCapacity sets the vertex count of graphs created by Init.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.capacity = n
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Session) {
		if tp != nil {
			s.tracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Session) {
		if mp != nil {
			s.meterProvider = mp
		}
	}
}

// Session owns at most one graph at a time.
type Session struct {
	capacity int
	graph    *core.Graph
	id       string

	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider

	tracer trace.Tracer
	inst   instruments
}

// New returns a Session with no graph.
func New(opts ...Option) *Session {
	s := &Session{
		capacity:       core.DefaultCapacity,
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tracer = s.tracerProvider.Tracer(instrumentationName)
	s.inst = newInstruments(s.meterProvider.Meter(instrumentationName), s.logger)

	return s
}
