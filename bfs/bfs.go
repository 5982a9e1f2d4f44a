package bfs

import (
	"fmt"

	"github.com/katalvlaran/campuspath/core"
)

type queueItem struct {
	node  core.NodeHandle
	depth int
}

// walker holds the mutable state of one traversal.
type walker[K comparable] struct {
	view    core.View[K]
	opts    Options[K]
	queue   []queueItem
	visited map[core.NodeHandle]bool
	res     *Result[K]
}

// Walk traverses g breadth-first from start.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrStartNotFound on bad input.
//   - ctx.Err() if the context is cancelled mid-walk.
//   - The visitor's error, wrapped with the node identity.
//
// Complexity: O(V + E) time, O(V) space.
func Walk[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var res *Result[K]
	err := g.Read(func(v core.View[K]) error {
		h, ok := v.Lookup(start)
		if !ok {
			return fmt.Errorf("%w: %v", ErrStartNotFound, start)
		}
		w := newWalker(v, o)
		res = w.res

		return w.run(h)
	})

	return res, err
}

// Components partitions the nodes of g into groups reachable from one
// another, seeding walks in slot order. Intended for symmetric graphs (every
// edge mirrored), where groups are the connected components.
func Components[K comparable](g *core.Graph[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var groups [][]K
	err := g.Read(func(v core.View[K]) error {
		var err error
		groups, err = ComponentsOf(v)

		return err
	})

	return groups, err
}

// ComponentsOf is Components over a View, for callers already inside
// core.Graph.Read.
func ComponentsOf[K comparable](v core.View[K]) ([][]K, error) {
	var groups [][]K
	w := newWalker(v, DefaultOptions[K]())
	for h := range v.Nodes() {
		if w.visited[h] {
			continue
		}
		from := len(w.res.Order)
		if err := w.run(h); err != nil {
			return nil, err
		}
		groups = append(groups, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return groups, nil
}

func newWalker[K comparable](v core.View[K], o Options[K]) *walker[K] {
	n := v.NodeCount()

	return &walker[K]{
		view:    v,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeHandle]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}
}

// run drains the queue seeded with root.
func (w *walker[K]) run(root core.NodeHandle) error {
	w.enqueue(root, 0, nil)
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		id := w.view.ID(item.node)
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for nb := range w.view.Out(item.node) {
			if !w.visited[nb] {
				w.enqueue(nb, next, &id)
			}
		}
	}

	return nil
}

func (w *walker[K]) enqueue(h core.NodeHandle, depth int, parent *K) {
	w.visited[h] = true
	id := w.view.ID(h)
	w.res.Depth[id] = depth
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.queue = append(w.queue, queueItem{node: h, depth: depth})
}
