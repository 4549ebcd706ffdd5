package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdegrees/core"
)

// Sentinel errors; every failure of BFS or PathTo wraps one of these.
var (
	// ErrStartVertexNotFound: the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: BFS was handed a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option carried a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was never reached.
	ErrNoPath = errors.New("bfs: no path to destination")
)

// Option mutates Options. Invalid values are remembered and reported by BFS
// as ErrOptionViolation before any vertex is touched.
type Option func(*Options)

// Options is the resolved traversal configuration.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnVisit runs for each dequeued vertex; a non-nil error stops the
	// search and is returned wrapped.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth bounds discovery to vertices at most this many edges away.
	// Zero means unbounded.
	MaxDepth int

	// Target, when set, ends the search as soon as it is discovered.
	// Its Depth and Parent chain are final at that point.
	Target *core.NodeID

	// first invalid option seen
	err error
}

// DefaultOptions is a full, unbounded, uncancellable traversal with a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.NodeID, int) error { return nil },
	}
}

// WithContext attaches ctx; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook; nil is ignored.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to depth d inclusive. 0 lifts the limit;
// negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTarget stops the search once target has been discovered.
func WithTarget(target core.NodeID) Option {
	return func(o *Options) {
		t := target
		o.Target = &t
	}
}

// Result is what one traversal discovered. Depth holds edge distances from
// Start, Parent the BFS-tree predecessor of every non-start vertex, and
// Order the dequeue sequence.
//
// With WithTarget, Depth and Parent may include discovered-but-unvisited
// vertices of the last frontier; Order only lists visited ones.
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reached reports whether dest was discovered.
func (r *Result) Reached(dest core.NodeID) bool {
	_, ok := r.Depth[dest]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest, endpoints included.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	depth, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dest)
	}
	// Depth is exact, so the path can be filled back to front in place.
	path := make([]core.NodeID, depth+1)
	cur := dest
	for i := depth; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = cur

	return path, nil
}
