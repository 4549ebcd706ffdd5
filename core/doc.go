// Package core provides the thread-safe, in-memory bipartite Graph that backs
// every sixdegrees query.
//
// The Graph G = (V,E) has two disjoint vertex kinds, movies and actors, and
// undirected, unweighted edges that only ever join a movie to an actor:
//
//   - Vertices are keyed by NodeID{Kind, Name}; a movie titled "Heat" and an
//     actor named "Heat" are two different vertices.
//   - Edges are simple: inserting an existing edge is a no-op, never an error.
//   - Same-kind edges are rejected with ErrSameKind, which keeps the graph
//     bipartite by construction (and rules out self-loops).
//   - Freeze() seals the graph; any later mutation returns ErrFrozen.
//
// Why the kind tag?
//
//	Movie titles and actor names live in the same string space. Classifying
//	a path node by looking its name up in a "movie titles" set breaks as soon
//	as one string is both. The tag makes the classification structural.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id NodeID) error                 // O(1)
//	HasVertex(id NodeID) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b NodeID) (added bool, err error) // O(1) amortized
//	HasEdge(a, b NodeID) bool                  // O(1)
//
//	// Query
//	NeighborIDs(id NodeID) ([]NodeID, error)   // O(d) frozen, O(d·log d) otherwise
//	RangeNeighbors(id NodeID, fn) error        // ordered iteration, no copy when frozen
//	Vertices() []NodeID                        // O(V·log V)
//	Names(kind Kind) []string                  // O(V·log V)
//	Degree(id NodeID) (int, error)             // O(1)
//	VertexCount(), EdgeCount() int             // O(1)
//	Stats() Stats                              // O(1)
//
//	// Lifecycle
//	Freeze()                                   // O(V·log d): caches sorted neighbor lists
//	Frozen() bool
//
// Determinism:
//
//	Neighbor lists, Vertices() and Names() are sorted (kind first, then name),
//	so breadth-first traversals over a Graph are reproducible run to run.
//
// Concurrency:
//
//	All methods take the graph's sync.RWMutex. After Freeze() the Graph is
//	read-only and may be shared by any number of goroutines.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex name
//	ErrBadKind        – NodeID.Kind is neither KindMovie nor KindActor
//	ErrVertexNotFound – missing vertex
//	ErrSameKind       – edge between two movies or two actors
//	ErrFrozen         – mutation after Freeze()
package core
