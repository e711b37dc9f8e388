package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when DFS is given a nil *core.Graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start id is not a vertex of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is emitted (pre-order),
	// with its depth in the DFS tree. Returning an error aborts traversal.
	OnVisit func(v, depth int) error

	// MaxDepth, if non-negative, stops recursion below the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no hook and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth. -1 disables the limit; any other
// negative value is an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of one depth-first traversal.
// Slices are indexed by vertex id and sized to the graph capacity.
type DFSResult struct {
	// Order lists vertices in the order they were emitted (pre-order).
	Order []int

	// Depth is the tree depth of each visited vertex, -1 if not visited.
	Depth []int

	// Parent is the vertex each vertex was discovered from; -1 for the
	// start vertex and for unvisited vertices.
	Parent []int

	// Visited is the per-call marker array.
	Visited []bool
}
