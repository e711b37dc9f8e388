// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_cycle.go - Cycle(n): edges (i, (i+1)%n) for i = 0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg.id(i), cfg.id((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
