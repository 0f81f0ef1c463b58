package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// BenchmarkShortestPath_Path measures an end-to-end query along a 1000-vertex chain.
func BenchmarkShortestPath_Path(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Path(1000))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(g, "0", "999")
	}
}

// BenchmarkShortestPath_RandomSparse measures queries on a seeded random graph.
func BenchmarkShortestPath_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(1),
			builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
		},
		builder.RandomSparse(300, 0.02),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(g, "0", "299")
	}
}
