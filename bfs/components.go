package bfs

import (
	"context"

	"github.com/katalvlaran/pathfinder/core"
)

// Components partitions the vertices of g into groups reachable from one
// another, following stored edges only. Groups are returned in order of
// their smallest vertex, each listed in visit order from that vertex.
//
// For a symmetric graph these are the connected components. With one-way
// entries a vertex joins the first group whose root can reach it.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v,
			WithContext(ctx),
			WithFilterEdge(func(_, to string, _ float64) bool { return !seen[to] }),
		)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
