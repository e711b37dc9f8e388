package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// walker encapsulates state during one DFS call.
type walker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs a depth-first search of g from start.
// On a hook error or cancellation the partial result is returned with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if _, err := g.Neighbors(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	n := g.Capacity()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   filled(n, -1),
		Parent:  filled(n, -1),
		Visited: make([]bool, n),
	}
	w := &walker{graph: g, opts: o, res: res}

	return res, w.traverse(start, 0)
}

// traverse marks and emits v, then recurses into each unvisited neighbor in
// list order.
func (w *walker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// v was validated by its caller, so the error is always nil here.
	adj, _ := w.graph.Adjacency(v)

	var err error
	adj.Each(func(nbr int) bool {
		if w.res.Visited[nbr] {
			return true
		}
		w.res.Parent[nbr] = v
		err = w.traverse(nbr, depth+1)

		return err == nil
	})

	return err
}

// filled returns a slice of n copies of x.
func filled(n, x int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = x
	}

	return s
}
