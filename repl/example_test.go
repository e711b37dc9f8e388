package repl_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/graphsearch/repl"
	"github.com/katalvlaran/graphsearch/session"
)

func ExampleLoop_Run() {
	script := "z e 0 1 e 0 2 e 1 2 d 0 b 0 q"
	loop := repl.New(strings.NewReader(script), os.Stdout, session.New(session.WithCapacity(3)))
	if err := loop.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Graph initialized to 3 vertices.
	// Edge added between vertex 0 and vertex 1.
	// Edge added between vertex 0 and vertex 2.
	// Edge added between vertex 1 and vertex 2.
	// DFS traversal starting from vertex 0: 0 2 1
	// BFS traversal starting from vertex 0: 0 1 2
	// Exiting program.
}
