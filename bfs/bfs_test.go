package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/campuspath/bfs"
	"github.com/katalvlaran/campuspath/core"
)

// undirected builds a graph with every pair inserted in both directions.
func undirected(t *testing.T, nodes []string, pairs [][2]string) *core.Graph[string] {
	t.Helper()
	g := core.NewStringGraph()
	for _, n := range nodes {
		g.InsertNode(n)
	}
	for _, p := range pairs {
		if _, err := g.InsertEdge(p[0], p[1], 1); err != nil {
			t.Fatalf("InsertEdge(%s,%s): %v", p[0], p[1], err)
		}
		if _, err := g.InsertEdge(p[1], p[0], 1); err != nil {
			t.Fatalf("InsertEdge(%s,%s): %v", p[1], p[0], err)
		}
	}

	return g
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk[string](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewStringGraph()
	if _, err := bfs.Walk(g, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	g.InsertNode("A")
	if _, err := bfs.Walk(g, "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_Single covers the trivial one-node graph.
func TestWalk_Single(t *testing.T) {
	g := core.NewStringGraph()
	g.InsertNode("A")
	res, err := bfs.Walk(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Errorf("start must have no parent")
	}
}

// TestWalk_CycleDepths walks the cycle A-B-C-D-A.
func TestWalk_CycleDepths(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	res, err := bfs.Walk(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatalf("PathTo(C): %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
}

// TestWalk_Directed only follows outgoing edges.
func TestWalk_Directed(t *testing.T) {
	g := core.NewStringGraph()
	for _, n := range []string{"A", "B", "C"} {
		g.InsertNode(n)
	}
	_, _ = g.InsertEdge("A", "B", 4)
	_, _ = g.InsertEdge("C", "B", 4)

	res, err := bfs.Walk(g, "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("A"); err == nil {
		t.Errorf("PathTo(A): expected error for unreached node")
	}
}

// TestWalk_MaxDepth stops expanding past the limit.
func TestWalk_MaxDepth(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
	res, err := bfs.Walk(g, "A", bfs.WithMaxDepth[string](2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_OnVisitAbort propagates the visitor's error.
func TestWalk_OnVisitAbort(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	stop := errors.New("stop")
	var seen []string
	_, err := bfs.Walk(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("seen = %v; want %v", seen, want)
	}
}

// TestWalk_Cancelled returns the context error before visiting anything.
func TestWalk_Cancelled(t *testing.T) {
	g := undirected(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Walk(g, "A", bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestComponents groups nodes in slot order of their first member.
func TestComponents(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "C"}, {"B", "D"}})
	groups, err := bfs.Components(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"A", "C"}, {"B", "D"}, {"E"}}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("Components = %v; want %v", groups, want)
	}

	empty, err := bfs.Components(core.NewStringGraph())
	if err != nil || len(empty) != 0 {
		t.Errorf("empty graph: got %v, %v", empty, err)
	}
	if _, err := bfs.Components[string](nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestComponentsOf groups nodes from inside an existing read session.
func TestComponentsOf(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [][2]string{{"B", "C"}})
	var groups [][]string
	err := g.Read(func(v core.View[string]) error {
		var err error
		groups, err = bfs.ComponentsOf(v)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"A"}, {"B", "C"}}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("ComponentsOf = %v; want %v", groups, want)
	}
}
