package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
)

// Capacity returns the vertex count used by Init.
func (s *Session) Capacity() int { return s.capacity }

// Graph returns the current graph, or nil before Init.
func (s *Session) Graph() *core.Graph { return s.graph }

// ID returns the generation id of the current graph, or "" before Init.
func (s *Session) ID() string { return s.id }

// Initialized reports whether Init has been called.
func (s *Session) Initialized() bool { return s.graph != nil }

// Init replaces the current graph with an empty one of Capacity() vertices.
func (s *Session) Init() (*core.Graph, error) {
	g, err := core.NewGraph(s.capacity)
	if err != nil {
		return nil, err
	}
	replaced := s.graph != nil
	prev := s.id

	s.graph = g
	s.id = uuid.NewString()
	s.inst.inits.Add(context.Background(), 1)

	s.logger.Info("graph initialized",
		slog.String("graph_id", s.id),
		slog.Int("capacity", s.capacity),
		slog.Bool("replaced", replaced),
		slog.String("previous_graph_id", prev),
	)

	return g, nil
}

// AddVertex validates v against the current graph.
func (s *Session) AddVertex(v int) error {
	if s.graph == nil {
		return ErrGraphNotInitialized
	}

	return s.graph.AddVertex(v)
}

// AddEdge adds the undirected edge (u, v).
func (s *Session) AddEdge(u, v int) error {
	if s.graph == nil {
		s.logger.Warn("add edge before init", slog.Int("u", u), slog.Int("v", v))
		return ErrGraphNotInitialized
	}
	if err := s.graph.AddEdge(u, v); err != nil {
		s.logger.Warn("add edge rejected",
			slog.String("graph_id", s.id),
			slog.Int("u", u),
			slog.Int("v", v),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.inst.edges.Add(context.Background(), 1)
	s.logger.Debug("edge added",
		slog.String("graph_id", s.id),
		slog.Int("u", u),
		slog.Int("v", v),
		slog.Int("edges", s.graph.EdgeCount()),
	)

	return nil
}

// DFS runs a depth-first traversal from start, calling emit for each vertex
// as it is visited. emit may be nil.
func (s *Session) DFS(ctx context.Context, start int, emit func(v int)) ([]int, error) {
	return s.traverse(ctx, AlgorithmDFS, start, func(g *core.Graph) ([]int, error) {
		res, err := dfs.DFS(g, start,
			dfs.WithContext(ctx),
			dfs.WithOnVisit(func(v, _ int) error {
				if emit != nil {
					emit(v)
				}
				return nil
			}),
		)
		if res == nil {
			return nil, err
		}
		return res.Order, err
	})
}

// BFS runs a breadth-first traversal from start, calling emit for each vertex
// as it is visited. The adjacency list of every visited vertex is left
// sorted ascending.
func (s *Session) BFS(ctx context.Context, start int, emit func(v int)) ([]int, error) {
	return s.traverse(ctx, AlgorithmBFS, start, func(g *core.Graph) ([]int, error) {
		res, err := bfs.BFS(g, start,
			bfs.WithContext(ctx),
			bfs.WithOnVisit(func(v, _ int) error {
				if emit != nil {
					emit(v)
				}
				return nil
			}),
		)
		if res == nil {
			return nil, err
		}
		if len(res.Dropped) > 0 {
			s.logger.Warn("bfs queue overflow",
				slog.String("graph_id", s.id),
				slog.Any("dropped", res.Dropped),
			)
		}
		return res.Order, err
	})
}

// traverse wraps one traversal with validation, a span, metrics and logs.
func (s *Session) traverse(ctx context.Context, algorithm string, start int, run func(*core.Graph) ([]int, error)) ([]int, error) {
	if s.graph == nil {
		s.logger.Warn("traversal before init", slog.String("algorithm", algorithm))
		return nil, ErrGraphNotInitialized
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := s.startTraversalSpan(ctx, algorithm, start)
	defer span.End()

	began := time.Now()
	order, err := run(s.graph)
	elapsed := time.Since(began)

	s.inst.recordTraversal(ctx, algorithm, len(order), elapsed, err == nil)
	span.SetAttributes(attribute.Int("traversal.visited", len(order)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("traversal failed",
			slog.String("graph_id", s.id),
			slog.String("algorithm", algorithm),
			slog.Int("start", start),
			slog.String("error", err.Error()),
		)
		return order, fmt.Errorf("%s from %d: %w", algorithm, start, err)
	}

	s.logger.Debug("traversal complete",
		slog.String("graph_id", s.id),
		slog.String("algorithm", algorithm),
		slog.Int("start", start),
		slog.Any("order", order),
		slog.Duration("elapsed", elapsed),
	)

	return order, nil
}

// Print writes every adjacency list of the current graph to w.
func (s *Session) Print(w io.Writer) error {
	if s.graph == nil {
		return ErrGraphNotInitialized
	}
	_, err := s.graph.WriteTo(w)

	return err
}
