// Package core defines the fixed-capacity undirected Graph used by the
// traversal packages, together with its per-vertex AdjacencyList.
//
// What
//
//   - Vertices are the integers 0..Capacity()-1. They exist for the whole
//     lifetime of a Graph; "adding" a vertex only checks its bounds.
//   - Each vertex owns a singly linked AdjacencyList of neighbor ids.
//   - AddEdge(u, v) inserts v at the head of u's list and u at the head of
//     v's list, so an unsorted list reads most-recent-first.
//   - Self-loops and parallel edges are accepted as-is.
//   - SortAdjacency(v) relinks v's list into ascending order. bfs calls it
//     for every vertex it dequeues; the new order persists and is visible to
//     later WriteTo and dfs calls.
//
// Example (capacity 10):
//
//	g, _ := core.NewGraph(core.DefaultCapacity)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(0, 2)
//	_ = g.AddEdge(1, 2)
//	ns, _ := g.Neighbors(0) // [2 1]
//
// Errors:
//
//	ErrInvalidCapacity   - NewGraph called with capacity < 1.
//	ErrVertexOutOfRange  - a vertex id outside [0, Capacity()).
//
// Concurrency:
//
//	A Graph is owned by a single caller. Nothing is locked; concurrent
//	mutation is not supported.
package core
