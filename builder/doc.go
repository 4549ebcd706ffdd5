// Package builder turns dataset Records into the frozen bipartite core.Graph
// that every sixdegrees query runs against, plus the movie-title and
// actor-name sets derived from the same pass.
//
// The package offers:
//
//   - Build(src, opts...)        one pass over any Source (dataset.Scanner, dataset.File).
//   - FromRecords(recs, opts...) the same over an in-memory slice.
//   - LoadFile(path, opts...)    dataset.Open + Build + Close.
//   - Catalog.RandomActors(rng, n) distinct actors drawn uniformly.
//   - Options:
//     – WithLogger(l):           slog logger for load-time warnings and the summary line.
//     – WithKeepEmptyMovies():   list cast-less titles in the movie set.
//     – WithCapacityHint(n):     pre-size the graph for ~n vertices.
//
// Guarantees:
//
//   - One pass, O(total record length).
//   - Idempotent edges: a repeated credit, or a title listed on two lines,
//     never produces a duplicate edge.
//   - No isolated vertices: a title with an empty cast never becomes a graph
//     vertex. By default it is also left out of the movie set and reported in
//     Catalog.Skipped with a warning.
//   - The returned graph is frozen.
//
// Errors:
//
//   - ErrNilSource         nil Source, or a nil *dataset.Scanner / *dataset.File.
//   - ErrConstructFailed   a core insert failed (wraps the core sentinel).
//   - Source errors (dataset.ErrFileLoad, read failures) are returned
//     wrapped, unchanged in identity. Lines without a title are not errors:
//     they are skipped and reported in Catalog.Skipped.
package builder
