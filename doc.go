// Package pathfinder answers "what is the cheapest route from A to B, and
// what is the best alternative if that route is unavailable?" over a small
// weighted, undirected graph.
//
// What is inside?
//
//	• core:      immutable weighted Graph with copy-on-write edge removal
//	• dijkstra:  point-to-point shortest path with deterministic tie-breaking
//	• alternate: second-best route by removing one primary edge at a time
//	• bfs:       hop-count traversal and connected components
//	• builder:   seeded graph generators (random sparse, path, cycle, complete)
//
// The HTTP service lives under cmd/pathfinder and internal/: a chi router
// with POST /get_paths, GET /graph and GET /health, a YAML graph catalog
// with optional hot reload, zap logging and Prometheus metrics.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
// shortest A → D costs 3 via [A B D]; with A—B removed the best
// alternative costs 5 via [A C D].
//
//	go run ./cmd/pathfinder -config pathfinder.yaml
package pathfinder
