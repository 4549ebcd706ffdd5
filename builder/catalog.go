// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/sixdegrees/core"
	"github.com/katalvlaran/sixdegrees/dataset"
)

// Catalog is the product of one Build: the frozen graph plus the movie-title
// and actor-name sets. Every field is read-only after Build returns.
type Catalog struct {
	Graph *core.Graph

	// Movies and Actors are the sorted member lists of the two sets.
	Movies []string
	Actors []string

	// Skipped holds records dropped for an empty cast or a missing title,
	// in file order.
	Skipped []dataset.Record

	movies map[string]struct{}
	actors map[string]struct{}
}

// IsMovie reports whether title is in the movie set.
func (c *Catalog) IsMovie(title string) bool {
	_, ok := c.movies[title]
	return ok
}

// IsActor reports whether name is in the actor set.
func (c *Catalog) IsActor(name string) bool {
	_, ok := c.actors[name]
	return ok
}

// Stats returns the graph's size snapshot.
func (c *Catalog) Stats() core.Stats { return c.Graph.Stats() }

// Summary is the catalog's size report. Movies counts movie vertices, so a
// title kept with an empty cast shows up in Titles only.
type Summary struct {
	core.Stats
	Titles  int `json:"titles"`
	Skipped int `json:"skipped"`
}

// Summary returns the graph sizes plus the movie-set and skip counts.
func (c *Catalog) Summary() Summary {
	return Summary{Stats: c.Graph.Stats(), Titles: len(c.Movies), Skipped: len(c.Skipped)}
}

// RandomActors returns min(n, len(Actors)) distinct actor names drawn
// uniformly with rng. rng is not safe for concurrent use; callers sharing
// one must serialize.
func (c *Catalog) RandomActors(rng *rand.Rand, n int) []string {
	total := len(c.Actors)
	if n <= 0 || total == 0 {
		return []string{}
	}
	if n >= total {
		n = total
	}

	// Dense draws shuffle a permutation; sparse ones reject repeats.
	if 2*n > total {
		perm := rng.Perm(total)
		out := make([]string, n)
		for i := range out {
			out[i] = c.Actors[perm[i]]
		}
		return out
	}

	seen := make(map[int]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		i := rng.IntN(total)
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, c.Actors[i])
	}
	return out
}
