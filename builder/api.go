// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// api.go - public entry points.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphsearch/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph of the given capacity and applies every
// constructor in order. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(capacity int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(capacity)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return fmt.Errorf("BuildGraph: %w", cfg.err)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// Topologies lists the names accepted by ByName.
var Topologies = []string{"complete", "cycle", "path", "star"}

// ByName returns the constructor for a topology name (case-insensitive).
func ByName(name string, n int) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, name, strings.Join(Topologies, ", "))
	}
}

// addEdge wraps core errors with the constructor name.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
