// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// Package builder assembles deterministic fixture graphs on a core.Graph:
// paths, cycles, stars and complete graphs. It backs the `demo` command,
// examples and benchmarks.
//
// Design contract:
//   - One orchestrator: BuildGraph(capacity, bopts, cons...). Creates g,
//     resolves the config, runs cons in order.
//   - Constructors emit edges through core.Graph.AddEdge in a documented
//     order. Because AddEdge inserts at the head of each list, that order
//     decides the unsorted neighbor order a later DFS will see.
//   - WithOffset(k) shifts every index by k so several constructors can lay
//     out disjoint components on one graph.
//   - Never panic; return sentinel errors wrapped with the constructor name.
package builder
