package separation

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdegrees/bfs"
	"github.com/katalvlaran/sixdegrees/core"
)

// Sentinel errors for separation queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("separation: graph is nil")

	// ErrNodeNotFound is returned when a queried name is not an actor in the graph.
	ErrNodeNotFound = errors.New("separation: actor not found")

	// ErrNoPath is returned when source and target are in different components.
	ErrNoPath = errors.New("separation: no path between actors")

	// ErrEmptyDistribution is returned when there are no distances to average.
	ErrEmptyDistribution = errors.New("separation: empty distribution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("separation: invalid option supplied")
)

// Option tunes a query.
type Option func(*options)

type options struct {
	ctx       context.Context
	maxDegree int
	err       error
}

func resolve(opts []Option) (options, error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext lets a long traversal be cancelled.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDegree bounds DistanceDistribution to actors at most d degrees away.
// 0 means no bound; negative values are rejected with ErrOptionViolation.
// ShortestActorPath ignores it.
func WithMaxDegree(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max degree cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDegree = d
	}
}

// requireActor checks g and that name is an actor vertex.
func requireActor(g *core.Graph, name string) (core.NodeID, error) {
	id := core.Actor(name)
	if g == nil {
		return id, ErrGraphNil
	}
	if !g.HasVertex(id) {
		return id, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return id, nil
}

// bfsOptions translates query options into bfs options.
func (o options) bfsOptions() []bfs.Option {
	opts := []bfs.Option{bfs.WithContext(o.ctx)}
	if o.maxDegree > 0 {
		opts = append(opts, bfs.WithMaxDepth(2*o.maxDegree))
	}
	return opts
}
