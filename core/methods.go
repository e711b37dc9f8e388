package core

import "fmt"

// Capacity returns the fixed number of vertices.
func (g *Graph) Capacity() int { return len(g.lists) }

// EdgeCount returns the number of edges added so far, parallel edges and
// self-loops included.
func (g *Graph) EdgeCount() int { return g.edges }

// HasVertex reports whether v is a valid vertex id for g.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.lists) }

// checkVertex returns ErrVertexOutOfRange wrapped with the offending id.
func (g *Graph) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.lists))
	}

	return nil
}

// AddVertex validates v. Vertices are preallocated, so there is nothing
// else to do.
func (g *Graph) AddVertex(v int) error {
	return g.checkVertex(v)
}

// AddEdge connects u and v by prepending v to u's list and u to v's list.
// Both ids are validated first; on error the graph is left unchanged.
// A self-loop (u == v) inserts u twice into its own list.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.lists[u].PushFront(v)
	g.lists[v].PushFront(u)
	g.edges++

	return nil
}

// Neighbors returns a snapshot of v's adjacency list in its current order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.lists[v].Values(), nil
}

// Adjacency returns the live list of v. Callers that mutate it change g.
func (g *Graph) Adjacency(v int) (*AdjacencyList, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return &g.lists[v], nil
}

// SortAdjacency sorts v's list into ascending order in place.
// The order persists until the next AddEdge touching v.
func (g *Graph) SortAdjacency(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.lists[v].Sort()

	return nil
}
