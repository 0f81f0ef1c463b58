// Package core provides the immutable weighted Graph that every search in
// this module runs on.
//
// The Graph G = (V,E) is stored as a nested map:
//
//	adj[from][to] = weight
//
// Graphs are treated as undirected by convention: an edge u—v is expected as
// two entries u→v and v→u carrying the same weight. Only WithStrictSymmetry
// enforces that; searches merely follow whatever entries exist, and the
// alternate-path search relies on it when it removes an edge "in both
// directions".
//
// Why an immutable graph?
//
//   - Queries are pure functions of (graph, start, end); sharing one *Graph
//     between concurrent requests needs no locks.
//   - Derivations (Clone, WithoutEdge) are copy-on-write: the canonical graph
//     owned by the service layer can never be observed half-modified.
//
// Constructors:
//
//	New(adj map[string]map[string]float64, opts ...GraphOption) (*Graph, error)
//	FromEdges(edges []Edge) (*Graph, error)   // mirrors every edge
//	MustNew(adj, opts...) *Graph               // panics; fixtures only
//
// Queries:
//
//	HasVertex(id) bool                 // O(1)
//	HasEdge(from, to) bool             // O(1)
//	Weight(from, to) (float64, bool)   // O(1)
//	Neighbors(id) []Edge               // O(d log d), sorted by To, nil if unknown
//	Vertices() []string                // O(V log V), sorted
//	Edges() []Edge                     // O(E log E), each mirrored pair once
//	VertexCount(), EdgeCount() int
//	Adjacency() map[string]map[string]float64 // deep copy
//
// Derivations:
//
//	Clone() *Graph                     // O(V+E) deep copy
//	WithoutEdge(u, v) *Graph           // O(V+E) copy minus u→v and v→u
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex or neighbor ID
//	ErrNegativeWeight – weight < 0
//	ErrBadWeight      – NaN or ±Inf weight
//	ErrAsymmetricEdge – missing/unequal mirror under WithStrictSymmetry
package core
