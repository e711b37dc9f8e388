// Package dfs implements recursive, pre-order depth-first search over a
// core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) marks start, emits it, then walks its adjacency
//     list head to tail, recursing into each neighbor not yet visited before
//     moving on to the next one.
//   - Neighbor order is the list's current order. Lists are built by head
//     insertion, so an untouched list is visited in reverse edge-insertion
//     order; a list sorted by an earlier bfs call is visited ascending.
//     DFS itself never reorders anything.
//   - Visited markers live for one call only. Vertices outside the start's
//     component are not visited; run DFS again from them if needed.
//
// Example: edges (0,1), (0,2), (1,2) added in that order give
// DFS(g, 0).Order == [0 2 1].
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked once per vertex.
//   - WithOnVisit(fn)       called as each vertex is emitted; an error aborts.
//   - WithMaxDepth(limit)   do not descend below limit (-1 = unlimited).
//
// Errors:
//
//   - ErrGraphNil             g is nil (graph not initialized).
//   - ErrStartVertexNotFound  start outside [0, Capacity()); wraps core.ErrVertexOutOfRange.
//   - ErrOptionViolation      invalid option value.
//   - context.Canceled        ctx done.
//   - hook errors             wrapped OnVisit errors.
//
// Complexity: O(V + E) time, O(V) memory (recursion depth is bounded by V).
package dfs
