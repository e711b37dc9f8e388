// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_complete.go - Complete(n): edges (i, j) for i < j in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if !g.HasVertex(cfg.id(n - 1)) {
			return fmt.Errorf("%s: n=%d does not fit capacity %d: %w", methodComplete, n, g.Capacity(), ErrConstructFailed)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
