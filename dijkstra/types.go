// Package dijkstra defines the query result type for point-to-point
// shortest-path search.
//
// A Result is a (cost, path) pair. The "unreachable" outcome is an ordinary
// value, not an error: Cost is +Inf and Path is empty.
package dijkstra

import (
	"math"
	"slices"
)

// Result is the outcome of one point-to-point query.
type Result struct {
	// Cost is the sum of edge weights along Path, or +Inf when no route exists.
	Cost float64

	// Path lists vertex IDs from start to end inclusive; empty when unreachable.
	Path []string
}

// Unreachable returns the result reported when no route connects start and end.
func Unreachable() Result {
	return Result{Cost: math.Inf(1)}
}

// Reachable reports whether r describes an actual route.
func (r Result) Reachable() bool {
	return !math.IsInf(r.Cost, 1) && len(r.Path) > 0
}

// SamePath reports whether r and other visit exactly the same vertex sequence.
func (r Result) SamePath(other Result) bool {
	return slices.Equal(r.Path, other.Path)
}
