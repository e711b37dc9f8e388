// Command graphsearch is an interactive shell for building a small undirected
// graph and running depth-first and breadth-first searches over it.
//
// Commands are read from stdin, or from a file with --script:
//
//	$ printf 'z e 0 1 e 0 2 d 0 q' | graphsearch
//	Graph initialized to 10 vertices.
//	Edge added between vertex 0 and vertex 1.
//	Edge added between vertex 0 and vertex 2.
//	DFS traversal starting from vertex 0: 0 2 1
//	Exiting program.
//
// The demo subcommand builds a fixture topology and runs both searches.
package main

import (
	"fmt"
	"os"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
