// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns identities in arena slot order (insertion order until
//     a removal frees a slot for reuse).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "slices"

// InsertNode adds a node for id if missing.
//
// Implementation:
//   - Stage 1: Under the write lock, check the identity index.
//   - Stage 2: If absent, allocate an arena slot and register it in the index.
//
// Returns:
//   - bool: true if a node was created, false if id was already present.
//
// Complexity:
//   - Time O(1) expected, amortized over index growth.
func (g *Graph[K]) InsertNode(id K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.index.ContainsKey(id) {
		return false
	}
	h := g.allocNode(id)
	if err := g.index.Put(id, h); err != nil {
		// Only a nil identity can fail here; roll the slot back.
		g.freeNode(h)
		return false
	}
	g.nodeCount++

	return true
}

// ContainsNode reports whether id is a node of the graph.
func (g *Graph[K]) ContainsNode(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index.ContainsKey(id)
}

// RemoveNode deletes the node for id and every edge entering or leaving it.
//
// Implementation:
//   - Stage 1: Resolve id (ErrUnknownNode).
//   - Stage 2: Detach every outgoing, then every incoming edge from both endpoint lists.
//   - Stage 3: Drop the identity from the index and free the slot.
//
// Complexity:
//   - Time O(deg(v) · d) where d is the largest list touched, Space O(deg(v)).
func (g *Graph[K]) RemoveNode(id K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.lookup(id)
	if !ok {
		return unknownNode(id)
	}
	rec := &g.nodes[h.idx]
	// Iterate over copies: detachEdge rewrites the lists in place.
	for _, eh := range slices.Clone(rec.out) {
		g.detachEdge(eh)
	}
	for _, eh := range slices.Clone(rec.in) {
		g.detachEdge(eh)
	}
	if _, err := g.index.Remove(id); err != nil {
		return err
	}
	g.freeNode(h)
	g.nodeCount--

	return nil
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Nodes returns every node identity in arena slot order.
// Complexity: O(arena size).
func (g *Graph[K]) Nodes() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]K, 0, g.nodeCount)
	for i := range g.nodes {
		if g.nodes[i].live {
			ids = append(ids, g.nodes[i].id)
		}
	}

	return ids
}

// Degree returns the number of edges entering and leaving id.
func (g *Graph[K]) Degree(id K) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.lookup(id)
	if !ok {
		return 0, 0, unknownNode(id)
	}

	return len(g.nodes[h.idx].in), len(g.nodes[h.idx].out), nil
}
