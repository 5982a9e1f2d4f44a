// SPDX-License-Identifier: MIT

// Package core provides the Graph store: node and edge records for a weighted
// directed graph keyed by caller-supplied identities, with neighbor
// enumeration for search algorithms.
//
// Storage model:
//
//   - Nodes and edges live in two arenas (slices of records) and reference one
//     another through NodeHandle / EdgeHandle indices. The arena is the single
//     owner of every record; handles are plain values.
//   - Handles carry a generation counter. Removing a record bumps the slot
//     generation, so a handle kept across a removal is detected as stale.
//   - Freed slots are recycled through per-arena free lists.
//   - Identities are resolved through a hashtable.Table[K, NodeHandle].
//
// Graph semantics:
//
//   - InsertNode is idempotent; a second insert of the same identity is a no-op.
//   - InsertEdge is directed. Inserting the same ordered pair again overwrites
//     the weight instead of adding a parallel edge.
//   - Undirected links are modelled by two directed edges (A→B and B→A).
//   - Weights must be finite and non-negative (ErrNegativeWeight otherwise).
//   - RemoveNode detaches every incident edge, so no edge ever references a
//     node outside the node set.
//
// Concurrency:
//
//	One sync.RWMutex guards the whole store. Mutations take the write lock,
//	queries the read lock. Read(fn) holds the read lock for the duration of fn,
//	which lets a search traverse a store that cannot change underneath it.
//
// Errors (sentinel):
//
//	ErrUnknownNode    - an identity that was never inserted (or was removed).
//	ErrEdgeNotFound   - no edge for the requested ordered pair.
//	ErrNegativeWeight - negative, NaN or infinite edge weight.
//
// Complexity:
//
//	InsertNode/ContainsNode: expected O(1).
//	InsertEdge/EdgeWeight/RemoveEdge: expected O(1) + O(out-degree(from)).
//	RemoveNode: O(deg(v) · max-degree) for list detachment.
//	NeighborsOf: O(1) to create, O(out-degree) to drain.
package core
