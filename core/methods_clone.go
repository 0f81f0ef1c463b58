// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copy-on-write derivation of graphs.
// Concurrency:
//   - The receiver is only read; every result is a fresh, unshared Graph.

package core

// Clone returns a deep copy of g: vertices, adjacency buckets and weights.
// Cloning a nil Graph yields an empty, non-nil Graph.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return &Graph{adj: make(map[string]map[string]float64)}
	}

	clone := &Graph{
		adj:   make(map[string]map[string]float64, len(g.adj)),
		edges: g.edges,
	}
	for u, bucket := range g.adj {
		cp := make(map[string]float64, len(bucket))
		for v, w := range bucket {
			cp[v] = w
		}
		clone.adj[u] = cp
	}

	return clone
}

// WithoutEdge returns a deep copy of g with the entries u→v and v→u removed.
// Each removal is applied only if that entry exists and independently of the
// other, so a one-way entry is dropped on its own. Vertices are kept even
// when they lose their last neighbor. g itself is never modified.
//
// Complexity: O(V + E).
func (g *Graph) WithoutEdge(u, v string) *Graph {
	clone := g.Clone()
	clone.removeArc(u, v)
	clone.removeArc(v, u)

	return clone
}

// removeArc deletes from→to if present. Only called on unpublished clones.
func (g *Graph) removeArc(from, to string) {
	bucket, ok := g.adj[from]
	if !ok {
		return
	}
	if _, ok = bucket[to]; !ok {
		return
	}
	delete(bucket, to)
	g.edges--
}
