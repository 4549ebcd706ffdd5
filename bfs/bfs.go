package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdegrees/core"
)

// ErrNeighbors wraps a failed neighbor lookup during expansion.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker is the per-call traversal state; queue[head:] is the frontier.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	res   *Result
	found bool
}

// BFS walks g outward from start in nondecreasing depth, neighbors in
// core order, so repeated runs produce identical results.
// Errors: ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	// Prepare walker; a full traversal touches every vertex at most once.
	n := g.VertexCount()
	if o.Target != nil {
		n = 16
	}
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	// The start has depth 0 and no parent.
	w.enqueue(start, 0, nil)
	if w.found {
		w.res.Order = append(w.res.Order, start)
		return w.res, nil
	}

	return w.res, w.loop()
}

// enqueue records id at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent *core.NodeID) {
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if w.opts.Target != nil && id == *w.opts.Target {
		w.found = true
	}
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
		if w.found {
			return nil
		}
	}
	return nil
}

// visit appends to Order and runs the hook.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor in
// sorted order. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	parent := item.id
	err := w.graph.RangeNeighbors(item.id, func(nbr core.NodeID) bool {
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, &parent)
		}
		return !w.found
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %s: %v", ErrNeighbors, item.id, err)
	}
	return nil
}
