// SPDX-License-Identifier: MIT
//
// Package core defines the tagged NodeID, the bipartite Graph, GraphOption,
// sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex name is the empty string.
//	ErrBadKind        - vertex kind is not a known Kind.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrSameKind       - edge endpoints share a kind (movie–movie, actor–actor).
//	ErrFrozen         - mutation attempted on a frozen graph.
package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided NodeID has an empty Name.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadKind indicates that the provided NodeID carries an unknown Kind.
	ErrBadKind = errors.New("core: unknown vertex kind")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSameKind indicates an edge between two vertices of the same kind.
	ErrSameKind = errors.New("core: edge endpoints must differ in kind")

	// ErrFrozen indicates a mutation on a graph sealed by Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Kind discriminates the two vertex partitions of the bipartite graph.
// The zero value is invalid on purpose, so an uninitialised NodeID never
// passes validation.
type Kind uint8

const (
	// KindMovie marks a movie vertex.
	KindMovie Kind = iota + 1
	// KindActor marks an actor (cast member) vertex.
	KindActor
)

// String returns "movie", "actor" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindActor:
		return "actor"
	default:
		return "unknown"
	}
}

// Valid reports whether k is KindMovie or KindActor.
func (k Kind) Valid() bool { return k == KindMovie || k == KindActor }

// NodeID identifies a vertex: its partition plus its name within that partition.
// NodeID is comparable and is used directly as a map key.
type NodeID struct {
	Kind Kind
	Name string
}

// Movie returns the NodeID of the movie titled name.
func Movie(name string) NodeID { return NodeID{Kind: KindMovie, Name: name} }

// Actor returns the NodeID of the actor called name.
func Actor(name string) NodeID { return NodeID{Kind: KindActor, Name: name} }

// IsMovie reports whether id is a movie vertex.
func (id NodeID) IsMovie() bool { return id.Kind == KindMovie }

// IsActor reports whether id is an actor vertex.
func (id NodeID) IsActor() bool { return id.Kind == KindActor }

// String renders id as "kind:name", e.g. "actor:Kevin Bacon".
func (id NodeID) String() string { return id.Kind.String() + ":" + id.Name }

// validate returns ErrBadKind or ErrEmptyVertexID for malformed IDs.
func (id NodeID) validate() error {
	if !id.Kind.Valid() {
		return ErrBadKind
	}
	if id.Name == "" {
		return ErrEmptyVertexID
	}
	return nil
}

// CompareNodeIDs orders NodeIDs by Kind, then by Name (byte-wise).
// It is the ordering used by every sorted query on Graph.
func CompareNodeIDs(a, b NodeID) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for roughly n vertices.
// Non-positive hints are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[NodeID]map[NodeID]struct{}, n)
		}
	}
}

// Graph is the undirected, unweighted, simple bipartite graph.
//
// mu guards every field. Once frozen is set, adjacency and counts never
// change again and sorted holds a per-vertex neighbor list in
// CompareNodeIDs order.
type Graph struct {
	mu sync.RWMutex

	// adjacency[v][u] = struct{}{} for every edge {v,u}; both directions stored.
	adjacency map[NodeID]map[NodeID]struct{}

	// kinds[k] counts vertices of Kind k (index 0 unused).
	kinds [3]int
	edges int

	frozen bool
	sorted map[NodeID][]NodeID
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) plus any capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[NodeID]map[NodeID]struct{})
	}

	return g
}
