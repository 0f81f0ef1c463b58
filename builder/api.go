// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a shared edge accumulator, then freezes it into a core.Graph.
//   - Every edge is added in both directions, so built graphs are undirected.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// Constructor adds vertices and edges to acc using the resolved builderConfig.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(acc *accumulator, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting immutable graph.
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	acc := newAccumulator()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.New(acc.adj)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// accumulator collects an undirected adjacency map before it is frozen.
type accumulator struct {
	adj map[string]map[string]float64
}

func newAccumulator() *accumulator {
	return &accumulator{adj: make(map[string]map[string]float64)}
}

// addVertex registers id with no neighbors (idempotent).
func (a *accumulator) addVertex(id string) {
	if _, ok := a.adj[id]; !ok {
		a.adj[id] = make(map[string]float64)
	}
}

// addEdge records u—v with weight w in both directions.
func (a *accumulator) addEdge(u, v string, w float64) error {
	if w < 0 {
		return fmt.Errorf("edge %s—%s weight=%g: %w", u, v, w, ErrNegativeWeight)
	}
	a.addVertex(u)
	a.addVertex(v)
	a.adj[u][v] = w
	a.adj[v][u] = w

	return nil
}
