// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_star.go - Star(n): hub at index 0, edges (0, i) for i = 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub index 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, hub, cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
