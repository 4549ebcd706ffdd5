// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(src, opts...). Creates g, resolves cfg, consumes src once.
//   - FromRecords and LoadFile are thin adapters over Build.
//   - Determinism: the same records in the same order ⇒ identical graph and sets.
//   - Never panics on dataset input; returns wrapped sentinel errors. A nil
//     Source, including a nil *dataset.Scanner or *dataset.File, is ErrNilSource.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sixdegrees/core"
	"github.com/katalvlaran/sixdegrees/dataset"
)

// Source is a lazy record sequence. *dataset.Scanner and *dataset.File satisfy it.
type Source interface {
	Scan() bool
	Record() dataset.Record
	Err() error
}

// Build consumes src once and returns the Catalog.
//
// For each record: the title joins the movie set; every cast member joins the
// actor set and is linked to the title. Records with an empty cast are skipped
// (see WithKeepEmptyMovies), as are records without a title; both land in
// Catalog.Skipped with a warning. The graph is frozen before returning.
//
// Complexity: O(total record length) time, O(V + E) space.
func Build(src Source, opts ...Option) (*Catalog, error) {
	if isNilSource(src) {
		return nil, ErrNilSource
	}
	cfg := newBuilderConfig(opts...)

	c := &Catalog{
		Graph:  core.NewGraph(core.WithCapacity(cfg.capacity)),
		movies: make(map[string]struct{}),
		actors: make(map[string]struct{}),
	}

	for src.Scan() {
		if err := c.add(src.Record(), cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	c.Graph.Freeze()
	c.Movies = sortedSet(c.movies)
	c.Actors = sortedSet(c.actors)

	st := c.Graph.Stats()
	cfg.logger.Info("catalog built",
		"movies", len(c.Movies),
		"actors", len(c.Actors),
		"edges", st.Edges,
		"skipped", len(c.Skipped),
	)

	return c, nil
}

// isNilSource catches a nil interface and the typed nils of the dataset
// package's own sources. A typed nil of any other Source implementation is
// the caller's bug and will panic on first use.
func isNilSource(src Source) bool {
	switch s := src.(type) {
	case nil:
		return true
	case *dataset.Scanner:
		return s == nil
	case *dataset.File:
		return s == nil
	}
	return false
}

// add folds one record into the catalog.
func (c *Catalog) add(rec dataset.Record, cfg builderConfig) error {
	if !rec.Valid() {
		c.Skipped = append(c.Skipped, rec)
		cfg.logger.Warn("skipping line without title", "line", rec.Line, "cast", len(rec.Cast))
		return nil
	}
	if len(rec.Cast) == 0 {
		if cfg.keepEmpty {
			c.movies[rec.Title] = struct{}{}
			return nil
		}
		c.Skipped = append(c.Skipped, rec)
		cfg.logger.Warn("skipping movie without cast", "title", rec.Title, "line", rec.Line)
		return nil
	}

	movie := core.Movie(rec.Title)
	c.movies[rec.Title] = struct{}{}
	for _, name := range rec.Cast {
		if _, err := c.Graph.AddEdge(movie, core.Actor(name)); err != nil {
			return fmt.Errorf("%w: line %d: %q/%q: %w", ErrConstructFailed, rec.Line, rec.Title, name, err)
		}
		c.actors[name] = struct{}{}
	}
	return nil
}

// FromRecords builds a Catalog from an in-memory slice.
func FromRecords(recs []dataset.Record, opts ...Option) (*Catalog, error) {
	return Build(&sliceSource{recs: recs, i: -1}, opts...)
}

// LoadFile opens path, builds the Catalog, and closes the file.
// Open and read failures carry dataset.ErrFileLoad.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Build(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// sliceSource adapts []dataset.Record to Source.
type sliceSource struct {
	recs []dataset.Record
	i    int
}

func (s *sliceSource) Scan() bool {
	s.i++
	return s.i < len(s.recs)
}

func (s *sliceSource) Record() dataset.Record { return s.recs[s.i] }

func (s *sliceSource) Err() error { return nil }

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
