package dijkstra

import "slices"

// entry is one partial route on the frontier: the accumulated cost of
// reaching node along path (path ends with node).
type entry struct {
	cost float64
	node string
	path []string
}

// frontier is a min-heap of *entry for container/heap.
//
// Entries are ordered by cost, then node ID, then path (lexicographic). The
// order is total, so the extraction sequence, and with it the winner among
// equal-cost routes, is fully determined by the graph contents.
//
// Several entries may exist for the same node ("lazy deletion"); the search
// discards any that surface after the node was finalized.
type frontier []*entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by (cost, node, path) ascending.
func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.node != b.node {
		return a.node < b.node
	}

	return slices.Compare(a.path, b.path) < 0
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be an *entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}

// extend returns a fresh copy of path with next appended. Paths are never
// shared between entries.
func extend(path []string, next string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = next

	return out
}
