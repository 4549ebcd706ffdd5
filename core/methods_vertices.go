// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/Names/
//       VertexCount/Degree.
// Determinism:
//   - Vertices() returns IDs sorted by CompareNodeIDs.
//   - Names(kind) returns names sorted lexicographically.
// Concurrency:
//   - Mutations take mu write lock; queries take mu read lock.

package core

import (
	"slices"
	"sort"
)

// AddVertex inserts id into the graph if absent.
//
// Returns:
//   - nil on success (also when the vertex already exists).
//   - ErrBadKind / ErrEmptyVertexID for malformed IDs.
//   - ErrFrozen if the graph has been frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id NodeID) error {
	if err := id.validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id with an empty neighbor set. Caller holds mu.
func (g *Graph) ensureVertex(id NodeID) map[NodeID]struct{} {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[NodeID]struct{})
		g.adjacency[id] = nbrs
		g.kinds[id.Kind]++
	}
	return nbrs
}

// HasVertex reports whether the vertex exists. Malformed IDs are never present.
// Complexity: O(1).
func (g *Graph) HasVertex(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]
	return ok
}

// Vertices returns all vertex IDs, sorted by kind then name.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []NodeID {
	g.mu.RLock()
	ids := make([]NodeID, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	slices.SortFunc(ids, CompareNodeIDs)
	return ids
}

// Names returns the names of every vertex of the given kind, sorted.
// An unknown kind yields an empty, non-nil slice.
// Complexity: O(V + k·log k) for k vertices of that kind.
func (g *Graph) Names(kind Kind) []string {
	g.mu.RLock()
	names := make([]string, 0, g.kindCount(kind))
	for id := range g.adjacency {
		if id.Kind == kind {
			names = append(names, id.Name)
		}
	}
	g.mu.RUnlock()

	sort.Strings(names)
	return names
}

// kindCount returns the vertex count for kind. Caller holds mu.
func (g *Graph) kindCount(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return g.kinds[kind]
}

// VertexCount returns the total number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of distinct neighbors of id. For an actor this
// is the number of movies they appear in; for a movie, its cast size.
//
// Errors: ErrBadKind / ErrEmptyVertexID for malformed IDs, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	if err := id.validate(); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return len(nbrs), nil
}
