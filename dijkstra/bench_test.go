package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/campuspath/core"
	"github.com/katalvlaran/campuspath/dijkstra"
)

// gridGraph builds an n×n grid with edges in both directions between
// horizontal and vertical neighbours.
func gridGraph(n int) *core.Graph[int] {
	g := core.New[int](func(k int) uint64 { return uint64(k) * 0x9E3779B97F4A7C15 })
	for i := 0; i < n*n; i++ {
		g.InsertNode(i)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := r*n + c
			if c+1 < n {
				_, _ = g.InsertEdge(id, id+1, float64(1+(id%7)))
				_, _ = g.InsertEdge(id+1, id, float64(1+(id%7)))
			}
			if r+1 < n {
				_, _ = g.InsertEdge(id, id+n, float64(1+(id%5)))
				_, _ = g.InsertEdge(id+n, id, float64(1+(id%5)))
			}
		}
	}

	return g
}

func benchmarkStrategy(b *testing.B, s dijkstra.Strategy) {
	const n = 60
	g := gridGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, 0, n*n-1, dijkstra.WithStrategy(s)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPath_Reinsert measures corner-to-corner queries on a 60×60 grid.
func BenchmarkShortestPath_Reinsert(b *testing.B) { benchmarkStrategy(b, dijkstra.Reinsert) }

// BenchmarkShortestPath_Lazy measures the same queries with stale-entry skipping.
func BenchmarkShortestPath_Lazy(b *testing.B) { benchmarkStrategy(b, dijkstra.Lazy) }
