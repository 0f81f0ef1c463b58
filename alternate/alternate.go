// Package alternate finds a "second best" route between two vertices by
// knocking out one edge of the shortest route at a time.
//
// For a primary route P = v0 … vk the search runs k extra ShortestPath
// queries, each on a copy of the graph with the edge vi—vi+1 removed in both
// directions, and keeps the cheapest result whose vertex sequence differs
// from P.
//
// This is a heuristic, not a k-shortest-paths algorithm (e.g. Yen's): it only
// sees routes that avoid at least one edge of P and always picks the optimum
// of each reduced graph, so a cheaper alternative that happens to reuse every
// edge of P in a different order can be missed. Results are reproducible and
// that limitation is part of the contract.
//
// Complexity:
//
//   - Time:  O(k · (V + E) log E) for k = len(P)-1 queries plus one clone each.
//   - Space: O(V + E) per reduced copy; copies are discarded after each query.
package alternate

import (
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// Candidate is the outcome of one reduced-graph query.
type Candidate struct {
	// Removed is the primary-route edge that was taken out, oriented as
	// traversed by the primary route.
	Removed core.Edge

	// Result is the shortest route in the graph without Removed; it may be
	// Unreachable when Removed was a bridge.
	Result dijkstra.Result
}

// Pair bundles the shortest route and the best alternative found for it.
type Pair struct {
	Shortest dijkstra.Result
	Second   dijkstra.Result
}

// Candidates computes the primary route and one Candidate per edge of it, in
// route order. An unreachable primary (or a zero-length one, start == end)
// yields no candidates. g is never modified.
func Candidates(g *core.Graph, start, end string) (dijkstra.Result, []Candidate) {
	primary := dijkstra.ShortestPath(g, start, end)
	if !primary.Reachable() || len(primary.Path) < 2 {
		return primary, nil
	}

	out := make([]Candidate, 0, len(primary.Path)-1)
	for i := 0; i+1 < len(primary.Path); i++ {
		u, v := primary.Path[i], primary.Path[i+1]
		w, _ := g.Weight(u, v)

		reduced := g.WithoutEdge(u, v)
		out = append(out, Candidate{
			Removed: core.Edge{From: u, To: v, Weight: w},
			Result:  dijkstra.ShortestPath(reduced, start, end),
		})
	}

	return primary, out
}

// SecondBest returns the cheapest candidate route that differs from the
// shortest route, or dijkstra.Unreachable() when there is none (no route at
// all, start == end, or every removal disconnects start from end).
//
// Candidates are accepted only when strictly cheaper than the best so far,
// so among equal-cost alternatives the one from the earliest removed edge wins.
func SecondBest(g *core.Graph, start, end string) dijkstra.Result {
	return Paths(g, start, end).Second
}

// Paths returns both the shortest route and SecondBest's answer while running
// the primary search only once.
func Paths(g *core.Graph, start, end string) Pair {
	primary, cands := Candidates(g, start, end)

	return Pair{Shortest: primary, Second: pick(primary, cands)}
}

// pick reduces candidates to the best one distinct from primary.
func pick(primary dijkstra.Result, cands []Candidate) dijkstra.Result {
	best := dijkstra.Unreachable()
	for _, c := range cands {
		if c.Result.Cost < best.Cost && !c.Result.SamePath(primary) {
			best = c.Result
		}
	}

	return best
}
