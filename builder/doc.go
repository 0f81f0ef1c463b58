// Package builder generates deterministic undirected test graphs for the
// search packages: random sparse graphs for brute-force property checks and
// simple topologies (paths, cycles, complete graphs) for benchmarks.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithIDScheme(builder.SymbolIDFn),
//	        builder.WithWeightFn(builder.IntWeightFn(1, 5)),
//	    },
//	    builder.RandomSparse(8, 0.4),
//	)
//
// Constructors compose: BuildGraph applies them in order to one shared edge
// set, so Path(5) followed by Cycle(3) overlays a triangle on the path's
// first three vertices.
package builder
