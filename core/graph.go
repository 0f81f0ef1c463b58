// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph constructors and input validation.
// Determinism:
//   - Validation walks vertices and neighbors in sorted order, so the first
//     reported error is stable for a given input.

package core

import (
	"fmt"
	"math"
	"sort"
)

// New builds a Graph from an adjacency map of the form
// node → (neighbor → weight). The input map is deep-copied; later changes to
// it are not observed by the returned Graph.
//
// Validation (in order, per vertex then per neighbor, both sorted):
//  1. Vertex and neighbor IDs must be non-empty (ErrEmptyVertexID).
//  2. Weights must be finite (ErrBadWeight) and ≥ 0 (ErrNegativeWeight).
//  3. With WithStrictSymmetry, every u→v must be mirrored by v→u with the
//     same weight (ErrAsymmetricEdge).
//
// Complexity: O(V log V + E log d) for the sorted validation walk.
func New(adj map[string]map[string]float64, opts ...GraphOption) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{adj: make(map[string]map[string]float64, len(adj))}
	for _, u := range sortedKeys(adj) {
		if u == "" {
			return nil, ErrEmptyVertexID
		}
		if _, ok := g.adj[u]; !ok {
			g.adj[u] = make(map[string]float64, len(adj[u]))
		}
		for _, v := range sortedKeys(adj[u]) {
			if err := g.addArc(u, v, adj[u][v]); err != nil {
				return nil, err
			}
		}
	}

	if cfg.strictSymmetry {
		if err := g.checkSymmetry(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromEdges builds an undirected Graph: each Edge is stored in both
// directions. A later edge between the same endpoints overwrites the weight
// of an earlier one.
//
// Complexity: O(E).
func FromEdges(edges []Edge) (*Graph, error) {
	g := &Graph{adj: make(map[string]map[string]float64)}
	for _, e := range edges {
		if err := g.addArc(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		if err := g.addArc(e.To, e.From, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// fixtures whose contents are known to be valid.
func MustNew(adj map[string]map[string]float64, opts ...GraphOption) *Graph {
	g, err := New(adj, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// addArc validates and records the directed entry u→v. Only constructors
// call it, before the Graph is published.
func (g *Graph) addArc(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, u, v, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, v, w)
	}

	if _, ok := g.adj[u]; !ok {
		g.adj[u] = make(map[string]float64)
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[string]float64)
	}
	if _, exists := g.adj[u][v]; !exists {
		g.edges++
	}
	g.adj[u][v] = w

	return nil
}

// checkSymmetry reports the first u→v (sorted) lacking an equal-weight mirror.
func (g *Graph) checkSymmetry() error {
	for _, u := range sortedKeys(g.adj) {
		for _, v := range sortedKeys(g.adj[u]) {
			w := g.adj[u][v]
			back, ok := g.adj[v][u]
			if !ok {
				return fmt.Errorf("%w: %s→%s has no %s→%s", ErrAsymmetricEdge, u, v, v, u)
			}
			if back != w {
				return fmt.Errorf("%w: %s→%s weight=%v but %s→%s weight=%v",
					ErrAsymmetricEdge, u, v, w, v, u, back)
			}
		}
	}

	return nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
