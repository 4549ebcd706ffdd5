// Package separation answers the two "six degrees" queries against a built
// movie/actor graph:
//
//   - ShortestActorPath(g, a, b)   a shortest chain of actors from a to b and
//     its degree of separation (actor-to-actor hops, movies excluded).
//   - DistanceDistribution(g, a)   how many actors sit at each degree from a,
//     and the mean degree.
//
// Both are pure reads on a *core.Graph and are safe to run concurrently on a
// frozen graph. Neither logs; every failure is returned to the caller.
//
// Degrees from raw hops:
//
//	actor ─ movie ─ actor ─ movie ─ actor
//	  0       1       2       3       4      raw hops
//	  0               1               2      degree = hops / 2
//
// Errors:
//
//   - ErrGraphNil           nil graph.
//   - ErrNodeNotFound       a name is not an actor in the graph (check spelling).
//   - ErrNoPath             the two actors are in different components.
//   - ErrEmptyDistribution  no actor distances to average.
package separation
