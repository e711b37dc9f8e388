// Package graphsearch builds small undirected graphs over a fixed number of
// integer vertices and walks them depth-first and breadth-first.
//
// The module is organized as flat packages:
//
//	core/     - Graph and AdjacencyList: fixed capacity, head insertion, in-place sort
//	queue/    - fixed-capacity FIFO used by breadth-first search
//	dfs/      - recursive depth-first traversal (never reorders lists)
//	bfs/      - level-order traversal (sorts each visited vertex's list)
//	builder/  - deterministic fixtures: Path, Cycle, Star, Complete
//	session/  - one graph at a time, with logging and OpenTelemetry
//	repl/     - the single-letter command loop
//	config/   - YAML settings
//	telemetry/ - stdout trace and metric exporters
//	cmd/graphsearch - the command-line entry point
//
// Quick example:
//
//	    0───1
//	    │  ╱
//	    2
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(0, 2)
//	_ = g.AddEdge(1, 2)
//	d, _ := dfs.DFS(g, 0) // d.Order == [0 2 1], lists untouched
//	b, _ := bfs.BFS(g, 0) // b.Order == [0 1 2], lists now ascending
//
// Adjacency lists grow at the head, so an unsorted list holds neighbors in
// reverse insertion order. BFS sorts the list of every vertex it dequeues and
// the new order persists: later prints and DFS runs observe it.
package graphsearch
