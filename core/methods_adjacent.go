// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries: NeighborIDs and RangeNeighbors.
// Determinism:
//   - Neighbors are always produced in CompareNodeIDs order.
// Performance:
//   - A frozen graph serves neighbors from the cache built by Freeze, so a
//     full BFS costs O(V + E) instead of O(V + E·log d).

package core

import "slices"

// NeighborIDs returns the neighbors of id, sorted by CompareNodeIDs.
// The returned slice is freshly allocated and safe to mutate.
//
// Errors: ErrBadKind / ErrEmptyVertexID for malformed IDs, ErrVertexNotFound.
// Complexity: O(d) when frozen, O(d·log d) otherwise.
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	var out []NodeID
	err := g.RangeNeighbors(id, func(nbr NodeID) bool {
		out = append(out, nbr)
		return true
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []NodeID{}
	}

	return out, nil
}

// RangeNeighbors calls fn for each neighbor of id in sorted order until fn
// returns false. The read lock is held for the duration of the iteration, so
// fn must not mutate g.
//
// Errors: ErrBadKind / ErrEmptyVertexID for malformed IDs, ErrVertexNotFound.
func (g *Graph) RangeNeighbors(id NodeID, fn func(nbr NodeID) bool) error {
	if err := id.validate(); err != nil {
		return err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}

	ordered, cached := g.sorted[id]
	if !cached {
		ordered = sortedKeys(nbrs)
	}
	for _, nbr := range ordered {
		if !fn(nbr) {
			break
		}
	}

	return nil
}

// sortedKeys returns the keys of set in CompareNodeIDs order.
func sortedKeys(set map[NodeID]struct{}) []NodeID {
	keys := make([]NodeID, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareNodeIDs)

	return keys
}
