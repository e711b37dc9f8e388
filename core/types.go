package core

import "errors"

// DefaultCapacity is the vertex count used when no other capacity is configured.
const DefaultCapacity = 10

// Sentinel errors for core graph operations.
var (
	// ErrInvalidCapacity indicates a non-positive vertex capacity.
	ErrInvalidCapacity = errors.New("core: capacity must be positive")

	// ErrVertexOutOfRange indicates a vertex id outside [0, Capacity()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Graph is an undirected graph over a fixed range of integer vertices.
//
// lists[v] holds the neighbors of v; edges counts successful AddEdge calls.
type Graph struct {
	lists []AdjacencyList
	edges int
}

// NewGraph allocates a Graph with exactly capacity vertices and no edges.
// Complexity: O(capacity).
func NewGraph(capacity int) (*Graph, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Graph{lists: make([]AdjacencyList, capacity)}, nil
}
