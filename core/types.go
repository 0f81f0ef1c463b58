// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, build options and the sentinel errors
// returned while building a graph.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrNegativeWeight - edge weight is below zero.
//	ErrBadWeight      - edge weight is NaN or infinite.
//	ErrAsymmetricEdge - mirrored edge missing or different (strict mode only).

package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyVertexID indicates that a vertex or neighbor ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates an edge carrying a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("core: edge weight is not a finite number")

	// ErrAsymmetricEdge indicates that u→v exists but v→u is missing or has a
	// different weight. Only reported when WithStrictSymmetry is set.
	ErrAsymmetricEdge = errors.New("core: edge has no matching mirror")
)

// Edge is a weighted connection between two vertices.
//
// Inside a Graph an undirected edge is stored twice (From→To and To→From);
// Edges() reports each such pair once with From < To.
type Edge struct {
	// From is the source vertex ID.
	From string `json:"from" yaml:"from"`

	// To is the destination vertex ID.
	To string `json:"to" yaml:"to"`

	// Weight is the non-negative traversal cost.
	Weight float64 `json:"weight" yaml:"weight"`
}

// String renders the edge as "From-To(Weight)".
func (e Edge) String() string {
	return e.From + "-" + e.To + "(" + strconv.FormatFloat(e.Weight, 'g', -1, 64) + ")"
}

// GraphOption configures validation performed by New and FromEdges.
type GraphOption func(*buildConfig)

// buildConfig collects construction-time policy flags.
type buildConfig struct {
	strictSymmetry bool // require every u→v to be mirrored by v→u with equal weight
}

// WithStrictSymmetry makes New reject adjacency maps whose edges are not
// mirrored with an identical weight.
func WithStrictSymmetry() GraphOption {
	return func(c *buildConfig) { c.strictSymmetry = true }
}

// Graph is an immutable weighted adjacency map.
//
// adj[u][v] = w means that u can be left towards v at cost w. Vertices that
// are only ever referenced as neighbors are present with an empty bucket.
type Graph struct {
	adj   map[string]map[string]float64
	edges int // directed entries, i.e. sum of len(adj[u])
}
