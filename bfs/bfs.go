package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/queue"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   *queue.Queue
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// It sorts the adjacency list of every vertex it dequeues; see the package
// documentation.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := g.Neighbors(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	n := g.Capacity()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   queue.New(n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and queues it. A rejected enqueue is
// recorded in Dropped.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	if err := w.queue.Enqueue(v); err != nil {
		w.res.Dropped = append(w.res.Dropped, v)
		return
	}
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v, err := w.queue.Dequeue()
		if err != nil {
			return err
		}
		d := w.res.Depth[v]
		w.opts.OnDequeue(v, d)

		w.res.Order = append(w.res.Order, v)
		if err = w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		if err = w.enqueueNeighbors(v, d); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors sorts v's list in the graph, then enqueues each unvisited
// neighbor in ascending order.
func (w *walker) enqueueNeighbors(v, d int) error {
	if err := w.graph.SortAdjacency(v); err != nil {
		return err
	}
	next := d + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	adj, err := w.graph.Adjacency(v)
	if err != nil {
		return err
	}
	adj.Each(func(nbr int) bool {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, v)
		}
		return true
	})

	return nil
}

// filled returns a slice of n copies of x.
func filled(n, x int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = x
	}

	return s
}
