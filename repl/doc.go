// Package repl is the interactive command loop in front of a session.Session.
//
// Input is read as whitespace-separated tokens, so commands and their
// numeric arguments may share a line or be spread over several:
//
//	z            initialize the graph (replaces any previous one)
//	v            show how vertices are managed
//	e U V        add the undirected edge U-V
//	d S          depth-first traversal from S
//	b S          breadth-first traversal from S (sorts visited lists)
//	p            print every adjacency list
//	h, ?         show the menu
//	q            quit
//
// Long forms (init, vertex, edge, dfs, bfs, print, help, quit, exit) are
// accepted too. Every error is reported and the loop keeps reading; only q
// or the end of input stops it.
package repl
