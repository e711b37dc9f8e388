// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_path.go - Path(n): edges (i-1, i) for i = 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg.id(i-1), cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
