// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeCount.
// Invariants:
//   - Every edge joins a movie and an actor (ErrSameKind otherwise).
//   - Edges are stored in both directions; EdgeCount counts each once.
//   - Re-adding an existing edge is a no-op (added == false, err == nil).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddEdge links a and b, creating either endpoint if needed.
//
// Steps:
//  1. Validate both IDs and require a.Kind != b.Kind.
//  2. Lock mu; reject with ErrFrozen if sealed.
//  3. Ensure both vertices; if b already neighbors a, return (false, nil).
//  4. Store the edge in both adjacency sets and bump the edge count.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID) (bool, error) {
	if err := a.validate(); err != nil {
		return false, err
	}
	if err := b.validate(); err != nil {
		return false, err
	}
	if a.Kind == b.Kind {
		return false, ErrSameKind
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, ErrFrozen
	}

	na := g.ensureVertex(a)
	if _, dup := na[b]; dup {
		return false, nil
	}
	nb := g.ensureVertex(b)
	na[b] = struct{}{}
	nb[a] = struct{}{}
	g.edges++

	return true, nil
}

// HasEdge reports whether a and b are adjacent. Unknown vertices ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]
	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
