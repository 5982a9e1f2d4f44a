// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/RemoveEdge/ContainsEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() walks nodes in slot order and each node's outgoing list in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"iter"
	"math"
)

// InsertEdge creates the directed edge from→to with weight w, or overwrites
// the weight of the existing edge for that ordered pair.
//
// Implementation:
//   - Stage 1: Validate w (ErrNegativeWeight for negative, NaN, ±Inf).
//   - Stage 2: Under the write lock resolve both endpoints (ErrUnknownNode).
//   - Stage 3: Overwrite an existing from→to edge, or allocate a new record and
//     append it to from's outgoing and to's incoming lists.
//
// Returns:
//   - bool: true if a new edge was created, false if an existing weight was replaced.
//   - error: nil on success, otherwise a wrapped sentinel.
//
// Complexity:
//   - Time O(out-degree(from)) for the duplicate scan, Space O(1) amortized.
func (g *Graph[K]) InsertEdge(from, to K, w float64) (bool, error) {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return false, fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fh, ok := g.lookup(from)
	if !ok {
		return false, unknownNode(from)
	}
	th, ok := g.lookup(to)
	if !ok {
		return false, unknownNode(to)
	}

	if eh, found := g.findEdge(fh, th); found {
		g.edges[eh.idx].weight = w
		return false, nil
	}

	eh := g.allocEdge(fh, th, w)
	g.nodes[fh.idx].out = append(g.nodes[fh.idx].out, eh)
	g.nodes[th.idx].in = append(g.nodes[th.idx].in, eh)
	g.edgeCount++

	return true, nil
}

// RemoveEdge deletes the directed edge from→to.
//
// Errors:
//   - ErrUnknownNode if either endpoint is absent.
//   - ErrEdgeNotFound if the ordered pair has no edge.
func (g *Graph[K]) RemoveEdge(from, to K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eh, err := g.resolveEdge(from, to)
	if err != nil {
		return err
	}
	g.detachEdge(eh)

	return nil
}

// ContainsEdge reports whether the directed edge from→to exists.
func (g *Graph[K]) ContainsEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, err := g.resolveEdge(from, to)

	return err == nil
}

// EdgeWeight returns the weight of the directed edge from→to.
func (g *Graph[K]) EdgeWeight(from, to K) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eh, err := g.resolveEdge(from, to)
	if err != nil {
		return 0, err
	}

	return g.edges[eh.idx].weight, nil
}

// EdgeCount returns the number of directed edges.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges yields every directed edge. The read lock is held while the sequence
// is being drained, so the loop body must not mutate the graph.
func (g *Graph[K]) Edges() iter.Seq[Edge[K]] {
	return func(yield func(Edge[K]) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()

		for i := range g.nodes {
			n := &g.nodes[i]
			if !n.live {
				continue
			}
			for _, eh := range n.out {
				e := g.edges[eh.idx]
				if !yield(Edge[K]{From: n.id, To: g.nodes[e.to.idx].id, Weight: e.weight}) {
					return
				}
			}
		}
	}
}

// NeighborsOf returns a lazy sequence of (successor, weight) pairs for the
// edges leaving id, in insertion order.
//
// Behavior highlights:
//   - The sequence is restartable: each range over it re-reads the graph.
//   - Each drain holds the read lock; the loop body must not mutate the graph.
//   - If id is removed after the call, later drains yield nothing.
//
// Errors:
//   - ErrUnknownNode if id is absent at call time.
func (g *Graph[K]) NeighborsOf(id K) (iter.Seq2[K, float64], error) {
	g.mu.RLock()
	h, ok := g.lookup(id)
	g.mu.RUnlock()
	if !ok {
		return nil, unknownNode(id)
	}

	return func(yield func(K, float64) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()

		if !g.nodeValid(h) {
			return
		}
		for _, eh := range g.nodes[h.idx].out {
			e := g.edges[eh.idx]
			if !yield(g.nodes[e.to.idx].id, e.weight) {
				return
			}
		}
	}, nil
}

// resolveEdge maps an ordered identity pair onto its live edge handle.
func (g *Graph[K]) resolveEdge(from, to K) (EdgeHandle, error) {
	fh, ok := g.lookup(from)
	if !ok {
		return EdgeHandle{}, unknownNode(from)
	}
	th, ok := g.lookup(to)
	if !ok {
		return EdgeHandle{}, unknownNode(to)
	}
	eh, found := g.findEdge(fh, th)
	if !found {
		return EdgeHandle{}, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return eh, nil
}

func unknownNode[K comparable](id K) error {
	return fmt.Errorf("%w: %v", ErrUnknownNode, id)
}
