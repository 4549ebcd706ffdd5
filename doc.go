// Package sixdegrees answers "six degrees of Kevin Bacon" questions over a
// movie/cast dataset.
//
// 🎬 What is it?
//
//	Every movie and every actor becomes a vertex of one undirected bipartite
//	graph; an edge joins a movie to each member of its cast. Two actors who
//	share a movie are one degree apart, and in general
//
//		degree(a, b) = (shortest raw path length) / 2
//
// ✨ Layout
//
//	core/        — bipartite Graph of kind-tagged NodeIDs, RW-locked, freezable
//	bfs/         — breadth-first search with depth, parent and early exit
//	dataset/     — streaming loader for `Title (Year)/Cast 1/.../Cast N` lines
//	builder/     — one-pass construction of the Catalog (graph + name sets)
//	separation/  — ShortestActorPath and DistanceDistribution
//	cmd/sixdegrees, internal/… — CLI, HTTP service, config and logging
//
// Quick example:
//
//	Patriots Day (2016)/Mark Wahlberg/Kevin Bacon/Mark Falvo
//	Captain America: Civil War (2016)/Chris Evans/Mark Falvo/Tom Holland
//
//	Kevin Bacon ── Patriots Day ── Mark Falvo ── Civil War ── Tom Holland
//
//	c, _ := builder.LoadFile("movies.txt")
//	p, _ := separation.ShortestActorPath(c.Graph, "Kevin Bacon", "Tom Holland")
//	// p.Degree == 2
//
// The graph is built once, frozen, and then shared read-only by any number
// of concurrent queries.
package sixdegrees
