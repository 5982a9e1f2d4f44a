// Package campuspath finds the quickest walk between campus buildings.
//
// The module is layered bottom-up:
//
//	hashtable/  chained hash table with load-factor growth; the identity index
//	core/       thread-safe directed weighted graph over generational handles
//	dijkstra/   single-pair shortest path with exact per-segment costs
//	bfs/        breadth-first reachability and connected groups
//	campus/     walkway file parsing, statistics and route queries
//	cli/        cobra command line and the interactive menu
//	cmd/campuspath the executable
//
// Quick example:
//
//	g := core.NewStringGraph()
//	g.InsertNode("Union")
//	g.InsertNode("Library")
//	g.InsertEdge("Union", "Library", 90)
//	res, err := dijkstra.ShortestPath(g, "Union", "Library")
//	// res.Path == [Union Library], res.Total == 90
//
// Command line:
//
//	go install github.com/katalvlaran/campuspath/cmd/campuspath@latest
//	campuspath -d campus.dot route "Memorial Union" "Science Hall"
package campuspath
