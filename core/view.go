package core

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo prints every adjacency list in vertex order:
//
//	(blank line)
//	 Adjacency list of vertex 0
//	 head -> 2-> 1
//
// Lists are printed in their current order, sorted or not.
// It implements io.WriterTo.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for v := range g.lists {
		n, err := fmt.Fprintf(w, "\n Adjacency list of vertex %d\n %s\n", v, g.lists[v].String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// String returns the WriteTo rendering.
func (g *Graph) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)

	return sb.String()
}
