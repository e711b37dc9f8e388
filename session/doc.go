// Package session holds the single graph an interactive user works on and
// exposes the operations the command loop calls: Init, AddVertex, AddEdge,
// DFS, BFS and Print.
//
// A Session starts without a graph. Every operation other than Init returns
// ErrGraphNotInitialized until Init has run. Init always builds a fresh
// graph and drops the previous one; each graph gets a new generation id that
// is attached to log records and spans.
//
// Traversals stream each visited vertex to the caller's emit function as it
// is visited, and also return the collected order. BFS sorts the adjacency
// list of every vertex it visits (see package bfs), which changes what a
// later Print or DFS shows.
//
// All errors are recoverable: the session stays usable after any of them.
package session
