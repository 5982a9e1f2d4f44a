// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/campuspath/core"
)

// ShortestPath computes the cheapest directed walk from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be nodes of g (ErrUnknownNode).
//
// Returns:
//
//   - Result with Path, Costs and Total on success.
//   - ErrNoPath when the frontier empties before end is extracted.
//
// When start == end the result is [start], no costs, total 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPath[K comparable](g *core.Graph[K], start, end K, opts ...Option) (Result[K], error) {
	if g == nil {
		return Result[K]{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var res Result[K]
	err := g.Read(func(v core.View[K]) error {
		s, ok := v.Lookup(start)
		if !ok {
			return fmt.Errorf("%w: start %v", ErrUnknownNode, start)
		}
		e, ok := v.Lookup(end)
		if !ok {
			return fmt.Errorf("%w: end %v", ErrUnknownNode, end)
		}

		r := &runner[K]{
			view:   v,
			opts:   cfg,
			labels: make(map[core.NodeHandle]*label, v.NodeCount()),
		}
		last := r.search(s, e)
		if last == nil {
			return fmt.Errorf("%w: %v → %v", ErrNoPath, start, end)
		}
		res = r.materialize(last)

		return nil
	})
	if err != nil {
		return Result[K]{}, err
	}

	return res, nil
}

// runner holds the mutable state of a single query.
type runner[K comparable] struct {
	view   core.View[K]
	opts   Options
	labels map[core.NodeHandle]*label // node → best label so far
	pq     frontier
}

// search runs the greedy labeling loop and returns the label of end, or nil
// when end is unreachable.
func (r *runner[K]) search(start, end core.NodeHandle) *label {
	first := &label{node: start}
	r.labels[start] = first
	r.push(first)

	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*entry)
		cur := it.lbl
		// Lazy leaves outdated entries behind; only the cheapest one counts.
		if it.cost > cur.cost || cur.settled {
			continue
		}
		cur.entry = nil
		cur.settled = true

		if cur.node == end {
			return cur
		}
		r.relax(cur)
	}

	return nil
}

// relax offers every edge leaving cur to its successor's label.
func (r *runner[K]) relax(cur *label) {
	for next, w := range r.view.Out(cur.node) {
		cand := cur.cost + w

		nb, seen := r.labels[next]
		if !seen {
			nb = &label{node: next, cost: cand, step: w, pred: cur}
			r.labels[next] = nb
			r.push(nb)
			continue
		}
		if nb.settled || cand >= nb.cost {
			continue
		}

		nb.cost = cand
		nb.step = w
		nb.pred = cur
		if r.opts.Strategy == Reinsert && nb.entry != nil {
			heap.Remove(&r.pq, nb.entry.index)
		}
		r.push(nb)
	}
}

// push adds a frontier entry for l at its current cost.
func (r *runner[K]) push(l *label) {
	e := &entry{lbl: l, cost: l.cost}
	if r.opts.Strategy == Reinsert {
		l.entry = e
	}
	heap.Push(&r.pq, e)
}

// materialize walks predecessor links back to the start and returns the
// path in start → end order.
func (r *runner[K]) materialize(last *label) Result[K] {
	var path []K
	var costs []float64
	for l := last; l != nil; l = l.pred {
		path = append(path, r.view.ID(l.node))
		if l.pred != nil {
			costs = append(costs, l.step)
		}
	}
	slices.Reverse(path)
	slices.Reverse(costs)
	if costs == nil {
		costs = []float64{}
	}

	return Result[K]{Path: path, Costs: costs, Total: last.cost}
}
