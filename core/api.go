// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Lifecycle and snapshot facade: Freeze/Frozen/Stats.
// Policy:
//   - No algorithms here.
//   - A frozen graph is immutable for the rest of the process.

package core

// Stats is an O(1) snapshot of graph size, split by partition.
type Stats struct {
	Movies int `json:"movies"`
	Actors int `json:"actors"`
	Edges  int `json:"edges"`
}

// Freeze seals the graph against mutation and caches a sorted neighbor list
// per vertex. Calling Freeze more than once is a no-op.
//
// Complexity: O(V + Σ d·log d), paid once.
func (g *Graph) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return
	}
	g.sorted = make(map[NodeID][]NodeID, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		g.sorted[id] = sortedKeys(nbrs)
	}
	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats returns vertex counts per kind and the edge count.
// Complexity: O(1).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		Movies: g.kinds[KindMovie],
		Actors: g.kinds[KindActor],
		Edges:  g.edges,
	}
}
