// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Lock-scoped, handle-level read access for traversal algorithms.
// Concurrency:
//   - A View is only valid inside the Read callback that produced it; it takes
//     no locks of its own.

package core

import "iter"

// View exposes handle-level reads of a Graph while Read holds its read lock.
type View[K comparable] struct {
	g *Graph[K]
}

// Read runs fn with a View of g under the read lock and returns fn's error.
// No mutation can interleave with fn. fn must not call mutating methods on g
// and must not retain the View.
func (g *Graph[K]) Read(fn func(View[K]) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(View[K]{g: g})
}

// Lookup resolves id to its node handle.
func (v View[K]) Lookup(id K) (NodeHandle, bool) { return v.g.lookup(id) }

// ID returns the identity stored at h. h must be valid.
func (v View[K]) ID(h NodeHandle) K { return v.g.nodes[h.idx].id }

// Valid reports whether h still addresses a live node.
func (v View[K]) Valid(h NodeHandle) bool { return v.g.nodeValid(h) }

// NodeCount returns the number of live nodes.
func (v View[K]) NodeCount() int { return v.g.nodeCount }

// Nodes yields the handle of every live node in arena slot order.
func (v View[K]) Nodes() iter.Seq[NodeHandle] {
	return func(yield func(NodeHandle) bool) {
		for i := range v.g.nodes {
			rec := &v.g.nodes[i]
			if rec.live && !yield(NodeHandle{idx: int32(i), gen: rec.gen}) {
				return
			}
		}
	}
}

// Out yields (successor handle, weight) for each edge leaving h, in insertion order.
func (v View[K]) Out(h NodeHandle) iter.Seq2[NodeHandle, float64] {
	return func(yield func(NodeHandle, float64) bool) {
		if !v.g.nodeValid(h) {
			return
		}
		for _, eh := range v.g.nodes[h.idx].out {
			e := v.g.edges[eh.idx]
			if !yield(e.to, e.weight) {
				return
			}
		}
	}
}
