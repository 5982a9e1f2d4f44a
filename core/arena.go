// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: Slot allocation, release and handle validation for the node/edge arenas.
// Concurrency:
//   - Every helper here assumes the caller already holds g.mu.

package core

// allocNode places a fresh node record and returns its handle.
func (g *Graph[K]) allocNode(id K) NodeHandle {
	if n := len(g.freeNodes); n > 0 {
		idx := g.freeNodes[n-1]
		g.freeNodes = g.freeNodes[:n-1]
		rec := &g.nodes[idx]
		rec.id = id
		rec.live = true

		return NodeHandle{idx: idx, gen: rec.gen}
	}
	g.nodes = append(g.nodes, nodeRecord[K]{id: id, live: true})

	return NodeHandle{idx: int32(len(g.nodes) - 1)}
}

// freeNode releases a node slot. The record's edge lists must already be empty.
func (g *Graph[K]) freeNode(h NodeHandle) {
	rec := &g.nodes[h.idx]
	var zero K
	rec.id = zero
	rec.out = nil
	rec.in = nil
	rec.live = false
	rec.gen++
	g.freeNodes = append(g.freeNodes, h.idx)
}

// allocEdge places a fresh edge record and returns its handle.
func (g *Graph[K]) allocEdge(from, to NodeHandle, w float64) EdgeHandle {
	if n := len(g.freeEdges); n > 0 {
		idx := g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
		rec := &g.edges[idx]
		rec.from, rec.to, rec.weight, rec.live = from, to, w, true

		return EdgeHandle{idx: idx, gen: rec.gen}
	}
	g.edges = append(g.edges, edgeRecord{from: from, to: to, weight: w, live: true})

	return EdgeHandle{idx: int32(len(g.edges) - 1)}
}

// freeEdge releases an edge slot.
func (g *Graph[K]) freeEdge(h EdgeHandle) {
	rec := &g.edges[h.idx]
	rec.live = false
	rec.weight = 0
	rec.gen++
	g.freeEdges = append(g.freeEdges, h.idx)
}

func (g *Graph[K]) nodeValid(h NodeHandle) bool {
	return h.idx >= 0 && int(h.idx) < len(g.nodes) &&
		g.nodes[h.idx].live && g.nodes[h.idx].gen == h.gen
}

func (g *Graph[K]) edgeValid(h EdgeHandle) bool {
	return h.idx >= 0 && int(h.idx) < len(g.edges) &&
		g.edges[h.idx].live && g.edges[h.idx].gen == h.gen
}

// lookup resolves an identity through the index.
func (g *Graph[K]) lookup(id K) (NodeHandle, bool) {
	h, err := g.index.Get(id)
	if err != nil {
		return NodeHandle{}, false
	}

	return h, true
}

// findEdge returns the live edge from→to, scanning from's outgoing list.
func (g *Graph[K]) findEdge(from, to NodeHandle) (EdgeHandle, bool) {
	for _, eh := range g.nodes[from.idx].out {
		if g.edges[eh.idx].to == to {
			return eh, true
		}
	}

	return EdgeHandle{}, false
}

// detachEdge unlinks an edge from both endpoint lists and frees it.
// Stale handles are ignored, which keeps self-loop removal idempotent.
func (g *Graph[K]) detachEdge(eh EdgeHandle) {
	if !g.edgeValid(eh) {
		return
	}
	e := g.edges[eh.idx]
	from := &g.nodes[e.from.idx]
	from.out = dropHandle(from.out, eh)
	to := &g.nodes[e.to.idx]
	to.in = dropHandle(to.in, eh)
	g.freeEdge(eh)
	g.edgeCount--
}

// dropHandle removes h from list, preserving the order of the rest.
func dropHandle(list []EdgeHandle, h EdgeHandle) []EdgeHandle {
	for i := range list {
		if list[i] == h {
			copy(list[i:], list[i+1:])

			return list[:len(list)-1]
		}
	}

	return list
}
