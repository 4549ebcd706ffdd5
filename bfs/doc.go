// Package bfs is the breadth-first walker behind every separation query.
//
// What
//
//   - Discovers vertices layer by layer outward from one start vertex.
//   - Result records, per discovered vertex, its edge distance (Depth) and
//     BFS-tree predecessor (Parent), plus the dequeue sequence (Order).
//   - Optional knobs: a visit hook that can abort, an inclusive depth bound,
//     a target that ends the walk on discovery, and a cancellable context.
//
// Why
//
//   - The graph is unweighted, so first discovery is a shortest path.
//   - Movies and actors alternate along any path; actor-to-actor depths are
//     even and half of one is a degree of separation.
//
// Determinism
//
//	core.Graph yields neighbors sorted by kind, then name, and BFS enqueues
//	them in that order, so Order, Parent, and PathTo are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) on a frozen graph
//   - Memory: O(V)     (queue, Depth map, Parent map)
//
// Usage
//
//	result, err := bfs.BFS(g, core.Actor("Kevin Bacon"))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // ctx.Err(), or a wrapped OnVisit error
//	}
//
//	result, err := bfs.BFS(
//	    g, core.Actor("Kevin Bacon"),
//	    bfs.WithContext(ctx),
//	    bfs.WithTarget(core.Actor("Tom Hanks")),
//	)
//	path, err := result.PathTo(core.Actor("Tom Hanks")) // ErrNoPath if unreachable
//
// Errors
//
//	ErrGraphNil             nil graph
//	ErrStartVertexNotFound  start not in the graph
//	ErrOptionViolation      e.g. WithMaxDepth(-1)
//	ErrNeighbors            core.RangeNeighbors failed mid-walk
//	ErrNoPath               Result.PathTo on an undiscovered vertex
package bfs
