// Package graphtest holds fixtures and brute-force oracles shared by the
// search packages' tests.
package graphtest

import (
	"math"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
)

// SampleAdjacency returns the ten-node demo graph (A..J) served by default.
func SampleAdjacency() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"A": {"B": 1, "C": 4, "E": 2},
		"B": {"A": 1, "C": 2, "D": 5},
		"C": {"A": 4, "B": 2, "D": 1, "F": 3},
		"D": {"B": 5, "C": 1, "F": 2, "G": 1},
		"E": {"A": 2, "F": 2, "H": 4},
		"F": {"C": 3, "D": 2, "E": 2, "I": 3},
		"G": {"D": 1, "J": 5},
		"H": {"E": 4, "I": 1},
		"I": {"F": 3, "H": 1, "J": 2},
		"J": {"G": 5, "I": 2},
	}
}

// Sample returns SampleAdjacency as a validated, symmetric graph.
func Sample() *core.Graph {
	return core.MustNew(SampleAdjacency(), core.WithStrictSymmetry())
}

// SimplePaths enumerates every simple path from start to end by DFS, in
// neighbor-sorted order. start == end yields the single path [start].
func SimplePaths(g *core.Graph, start, end string) [][]string {
	var out [][]string
	if !g.HasVertex(start) {
		return out
	}

	onPath := map[string]bool{start: true}
	path := []string{start}
	var walk func(u string)
	walk = func(u string) {
		if u == end {
			out = append(out, slices.Clone(path))
			return
		}
		for _, e := range g.Neighbors(u) {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			path = append(path, e.To)
			walk(e.To)
			path = path[:len(path)-1]
			onPath[e.To] = false
		}
	}
	walk(start)

	return out
}

// PathCost sums the weights along path; +Inf if some hop is missing.
func PathCost(g *core.Graph, path []string) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return math.Inf(1)
		}
		total += w
	}

	return total
}

// MinCost returns the cheapest simple-path cost from start to end, or +Inf.
func MinCost(g *core.Graph, start, end string) float64 {
	best := math.Inf(1)
	for _, p := range SimplePaths(g, start, end) {
		if c := PathCost(g, p); c < best {
			best = c
		}
	}

	return best
}
