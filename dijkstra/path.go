// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/campuspath/core"

// PathData returns only the node sequence of the shortest path.
// Each call runs a full query.
func PathData[K comparable](g *core.Graph[K], start, end K, opts ...Option) ([]K, error) {
	res, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// SegmentCosts returns only the per-edge costs of the shortest path.
// Each call runs a full query.
func SegmentCosts[K comparable](g *core.Graph[K], start, end K, opts ...Option) ([]float64, error) {
	res, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return res.Costs, nil
}

// PathCost returns only the total cost of the shortest path.
// Each call runs a full query.
func PathCost[K comparable](g *core.Graph[K], start, end K, opts ...Option) (float64, error) {
	res, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return 0, err
	}

	return res.Total, nil
}
