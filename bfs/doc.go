// Package bfs provides breadth-first search over a core.Graph, returning the
// visit order, hop distances and parent links.
//
// What
//
//   - Mark the start vertex and enqueue it on a queue.Queue sized to the
//     graph capacity.
//   - Until the queue drains: dequeue a vertex, emit it, sort its adjacency
//     list ascending, then mark and enqueue every unvisited neighbor in that
//     ascending order.
//   - Vertices come out in level order; ties within a level are broken by
//     the ascending scan of the vertex that enqueued them.
//
// Side effect
//
//	The sort is performed on the graph itself (core.Graph.SortAdjacency)
//	and persists. After BFS, a print of the graph shows the visited
//	vertices' lists in ascending order, and a later dfs.DFS follows that
//	order. A later AddEdge prepends again, so ascending order is not a
//	standing property of the graph.
//
// Example: edges (0,1), (0,2), (1,2) added in that order give
// BFS(g, 0).Order == [0 1 2], and vertex 0's list becomes [1 2].
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithMaxDepth(d):        do not enqueue beyond depth d (>0); 0 = no limit.
//   - WithOnEnqueue(fn):      called when a vertex is marked and enqueued.
//   - WithOnDequeue(fn):      called right after a vertex is dequeued.
//   - WithOnVisit(fn):        called as a vertex is emitted; an error aborts.
//
// Errors
//
//   - ErrGraphNil             the graph pointer is nil (graph not initialized).
//   - ErrStartVertexNotFound  start outside [0, Capacity()); wraps core.ErrVertexOutOfRange.
//   - ErrOptionViolation      invalid Option (e.g. negative MaxDepth).
//   - context.Canceled        ctx done.
//   - Wrapped errors from OnVisit.
//
// A full queue cannot happen while every vertex is enqueued at most once,
// but if it does the dropped vertex is recorded in BFSResult.Dropped and the
// traversal goes on.
//
// Complexity: O(V + Σ k²) time for adjacency lengths k (the per-vertex
// insertion sort dominates), O(V) memory.
package bfs
