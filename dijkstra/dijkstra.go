// Package dijkstra implements point-to-point uniform-cost search (Dijkstra)
// on an immutable core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Each vertex is finalized at most once.
//   - Each edge out of a finalized vertex may push one frontier entry.
//   - Space: O(E · L) where L is the longest path length, since every
//     frontier entry carries its own path copy.
//
// Notes on implementation choices:
//
//   - There is no best-distance map. Duplicate entries per vertex are allowed
//     and stale ones are dropped when popped ("lazy deletion").
//   - The search stops as soon as the end vertex is popped.
//   - An unknown start vertex simply has no neighbors; the result degrades to
//     Unreachable instead of an error.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/pathfinder/core"
)

// ShortestPath returns a minimum-cost route from start to end in g.
//
// Behavior:
//
//   - start == end yields Cost 0 and Path [start], whether or not start is a
//     vertex of g.
//   - If no route exists (including unknown start or end, or a nil graph) the
//     result is Unreachable().
//   - Among routes of equal minimum cost the first one extracted by the
//     frontier order (cost, node, path) wins.
//
// g is only read. The function has no side effects and is safe to call
// concurrently on a shared graph.
func ShortestPath(g *core.Graph, start, end string) Result {
	s := &search{
		g:         g,
		end:       end,
		finalized: make(map[string]bool, g.VertexCount()),
		pq:        make(frontier, 0, g.VertexCount()),
	}
	heap.Push(&s.pq, &entry{cost: 0, node: start, path: []string{start}})

	return s.run()
}

// search holds the mutable state of one ShortestPath call.
type search struct {
	g         *core.Graph
	end       string
	finalized map[string]bool // vertices whose minimum cost is settled
	pq        frontier
}

// run drains the frontier until end is extracted or nothing is left.
func (s *search) run() Result {
	for s.pq.Len() > 0 {
		cur := heap.Pop(&s.pq).(*entry)

		// The cheapest frontier entry is optimal once weights are non-negative.
		if cur.node == s.end {
			return Result{Cost: cur.cost, Path: cur.path}
		}

		// Stale duplicate of an already finalized vertex.
		if s.finalized[cur.node] {
			continue
		}
		s.finalized[cur.node] = true

		s.expand(cur)
	}

	return Unreachable()
}

// expand pushes one entry for every neighbor of cur.node not yet finalized.
func (s *search) expand(cur *entry) {
	for _, e := range s.g.Neighbors(cur.node) {
		if s.finalized[e.To] {
			continue
		}
		heap.Push(&s.pq, &entry{
			cost: cur.cost + e.Weight,
			node: e.To,
			path: extend(cur.path, e.To),
		})
	}
}
