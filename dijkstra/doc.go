// SPDX-License-Identifier: MIT

// Package dijkstra answers single-pair shortest-path queries over a core.Graph
// with non-negative edge weights, returning the path, the cost of every
// segment along it, and the total cost.
//
// Overview:
//
//   - A min-priority frontier of search labels is ordered by cumulative cost.
//   - The label index maps each reached node to its best label so far.
//   - The search starts from a zero-cost label at the start node, repeatedly
//     extracts the cheapest label, and stops as soon as the end node is
//     extracted. The path is rebuilt by following predecessor links.
//   - The whole search runs inside core.Graph.Read, so the store cannot change
//     mid-traversal.
//
// Frontier strategies:
//
//   - Reinsert (default): when a label's cost drops, its frontier entry is
//     removed and a fresh entry is pushed. The frontier never holds stale entries.
//   - Lazy: the improved label is pushed again and the outdated entry stays in
//     the heap; it is skipped at extraction because its recorded cost is above
//     the label's best. Both strategies return identical totals.
//
// Results:
//
//	Result.Path   - node identities from start to end (len ≥ 1).
//	Result.Costs  - weight of each traversed edge (len == len(Path)-1).
//	Result.Total  - sum of Costs, accumulated in path order; 0 when start == end.
//
// Ties between equal-cost alternatives are broken by heap order; no canonical
// path is guaranteed among equal-cost routes.
//
// Errors (sentinel):
//
//	ErrNilGraph    - nil *core.Graph.
//	ErrUnknownNode - start or end was never inserted (wraps core.ErrUnknownNode).
//	ErrNoPath      - both nodes exist but no directed walk connects them.
//
// Complexity:
//
//	Time  O((V + E) log V).
//	Space O(V) labels; the frontier holds at most V entries under Reinsert and
//	at most E under Lazy.
//
// Labels are owned by one ShortestPath call and discarded when it returns;
// nothing is cached between queries.
package dijkstra
