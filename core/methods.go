// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a Graph.
// Determinism:
//   - Vertices(), Neighbors() and Edges() return results sorted by vertex ID.
// Concurrency:
//   - All methods only read; a *Graph may be queried from many goroutines.
//   - A nil *Graph behaves like an empty graph.

package core

import "sort"

// HasVertex reports whether id is a vertex of g (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if g == nil || id == "" {
		return false
	}
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the directed entry from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether that entry exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	if g == nil {
		return 0, false
	}
	w, ok := g.adj[from][to]

	return w, ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}

	return sortedKeys(g.adj)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}

	return len(g.adj)
}

// Neighbors returns the outgoing entries of id as Edges sorted by To.
// An unknown vertex has no neighbors; the result is nil, not an error, so
// searches starting from it simply never expand.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) []Edge {
	if g == nil {
		return nil
	}
	bucket, ok := g.adj[id]
	if !ok || len(bucket) == 0 {
		return nil
	}

	out := make([]Edge, 0, len(bucket))
	for _, to := range sortedKeys(bucket) {
		out = append(out, Edge{From: id, To: to, Weight: bucket[to]})
	}

	return out
}

// Edges returns every connection once. A mirrored pair u→v / v→u is reported
// as a single Edge with From < To (the weight is taken from that direction);
// an entry without a mirror is reported as stored. Sorted by (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}

	out := make([]Edge, 0, g.edges/2+1)
	for u, bucket := range g.adj {
		for v, w := range bucket {
			if u > v {
				if _, mirrored := g.adj[v][u]; mirrored {
					continue // reported from the v side
				}
			}
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of connections as reported by Edges.
// Complexity: O(E).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	n := 0
	for u, bucket := range g.adj {
		for v := range bucket {
			if u > v {
				if _, mirrored := g.adj[v][u]; mirrored {
					continue
				}
			}
			n++
		}
	}

	return n
}

// Adjacency returns a deep copy of the adjacency map, suitable for
// serialization. Every vertex is present, with an empty map when it has no
// outgoing entries.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string]map[string]float64 {
	if g == nil {
		return map[string]map[string]float64{}
	}

	out := make(map[string]map[string]float64, len(g.adj))
	for u, bucket := range g.adj {
		cp := make(map[string]float64, len(bucket))
		for v, w := range bucket {
			cp[v] = w
		}
		out[u] = cp
	}

	return out
}
