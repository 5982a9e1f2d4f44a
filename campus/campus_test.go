// SPDX-License-Identifier: MIT
package campus_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campuspath/campus"
	"github.com/katalvlaran/campuspath/core"
	"github.com/katalvlaran/campuspath/dijkstra"
)

const fixture = "testdata/campus.dot"

func loaded(t *testing.T, opts ...campus.Option) *campus.Service {
	t.Helper()
	svc := campus.NewService(opts...)
	require.NoError(t, svc.LoadFile(fixture))

	return svc
}

func TestParse(t *testing.T) {
	src := `graph campus {
    "A" -- "B" [seconds=12.5];

  "B Hall"--"C" [seconds=3]
    "C" -- "D" [seconds=105.];
    "D" -- "E" [seconds=.5];
}`
	segs, err := campus.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []campus.Segment{
		{From: "A", To: "B", Seconds: 12.5},
		{From: "B Hall", To: "C", Seconds: 3},
		{From: "C", To: "D", Seconds: 105},
		{From: "D", To: "E", Seconds: 0.5},
	}, segs)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"unquoted": "graph {\n\"A\" -- B [seconds=3];\n}",
		"negative": "graph {\n\"A\" -- \"B\" [seconds=-3];\n}",
		"no time":  "graph {\n\"A\" -- \"B\";\n}",
		"bare dot": "graph {\n\"A\" -- \"B\" [seconds=.];\n}",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := campus.Parse(strings.NewReader(src))
			require.ErrorIs(t, err, campus.ErrMalformedLine)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestLoad_RejectsBadSegments(t *testing.T) {
	svc := campus.NewService()
	err := svc.Load([]campus.Segment{{From: "A", To: "B", Seconds: 1}, {From: "B", To: "C", Seconds: -1}})
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Zero(t, svc.Graph().NodeCount(), "nothing is inserted when validation fails")

	err = svc.Load([]campus.Segment{{From: "", To: "B", Seconds: 1}})
	require.ErrorIs(t, err, campus.ErrMalformedLine)
}

func TestLoadFile_Missing(t *testing.T) {
	svc := campus.NewService()
	err := svc.LoadFile(filepath.Join(t.TempDir(), "nope.dot"))
	require.ErrorIs(t, err, campus.ErrFileNotFound)
}

func TestLoadFile_InsertsBothDirections(t *testing.T) {
	svc := loaded(t)
	g := svc.Graph()
	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 14, g.EdgeCount())
	w, err := g.EdgeWeight("Library Mall", "Brat Stand")
	require.NoError(t, err)
	assert.Equal(t, 40.0, w)
}

func TestBuildings(t *testing.T) {
	assert.Empty(t, campus.NewService().Buildings())
	assert.Equal(t, []string{
		"Memorial Union", "Science Hall", "Brat Stand", "Helen C White Hall",
		"Library Mall", "Observatory", "Lakeshore Dorms",
	}, loaded(t).Buildings())
}

func TestLoadFile_ReloadMerges(t *testing.T) {
	svc := loaded(t)
	require.NoError(t, svc.LoadFile(fixture))
	assert.Equal(t, 7, svc.Graph().NodeCount())
	assert.Equal(t, 14, svc.Graph().EdgeCount())
}

func TestStats(t *testing.T) {
	st, err := loaded(t).Stats()
	require.NoError(t, err)
	assert.Equal(t, 7, st.Buildings)
	assert.Equal(t, 14, st.Paths)
	assert.InDelta(t, 852.2, st.TotalWalkingTime, 1e-9)
	assert.Equal(t, 2, st.Groups)
	assert.Equal(t,
		"Number of Buildings (Nodes): 7\nNumber of Paths (Edges): 14\nTotal Walking Time: 852.20 seconds",
		st.String())
}

func TestStats_OneWayEdgeCountsFully(t *testing.T) {
	g := core.NewStringGraph()
	g.InsertNode("A")
	g.InsertNode("B")
	_, _ = g.InsertEdge("A", "B", 10)
	_, _ = g.InsertEdge("B", "A", 10)
	_, _ = g.InsertEdge("A", "A", 4)
	g.InsertNode("C")
	_, _ = g.InsertEdge("C", "A", 6)

	st, err := campus.NewService(campus.WithGraph(g)).Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, st.Paths)
	assert.InDelta(t, 20.0, st.TotalWalkingTime, 1e-9)
	// C reaches A but nothing reaches C.
	assert.Equal(t, 2, st.Groups)
}

func TestShortestPath(t *testing.T) {
	for _, s := range []dijkstra.Strategy{dijkstra.Reinsert, dijkstra.Lazy} {
		t.Run(s.String(), func(t *testing.T) {
			svc := loaded(t, campus.WithStrategy(s))
			r, err := svc.ShortestPath(context.Background(), `"Memorial Union"`, " Library Mall ")
			require.NoError(t, err)
			assert.Equal(t, "Memorial Union", r.From)
			assert.Equal(t, "Library Mall", r.To)
			assert.Equal(t, []string{"Memorial Union", "Science Hall", "Helen C White Hall", "Library Mall"}, r.Buildings)
			assert.Equal(t, []float64{105.8, 50.2, 30}, r.WalkTimes)
			assert.Equal(t, 3, r.Segments())
			assert.InDelta(t, 186.0, r.Total, 1e-9)
		})
	}
}

func TestShortestPath_Errors(t *testing.T) {
	svc := loaded(t)
	ctx := context.Background()

	_, err := svc.ShortestPath(ctx, "Memorial Union", "Observatory")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = svc.ShortestPath(ctx, "Nowhere", "Observatory")
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestShortestPath_SameBuilding(t *testing.T) {
	r, err := loaded(t).ShortestPath(context.Background(), "Observatory", "Observatory")
	require.NoError(t, err)
	assert.Equal(t, []string{"Observatory"}, r.Buildings)
	assert.Empty(t, r.WalkTimes)
	assert.Zero(t, r.Total)
}

func TestShortestPath_Logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	svc := loaded(t, campus.WithLogger(logger))

	_, err := svc.ShortestPath(context.Background(), "Brat Stand", "Library Mall")
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "route found", entry.Message)
	assert.Equal(t, 1, entry.Data["segments"])

	_, err = svc.ShortestPath(context.Background(), "Brat Stand", "Nowhere")
	require.Error(t, err)
	assert.Equal(t, "route query failed", hook.LastEntry().Message)
}

func TestReachable(t *testing.T) {
	svc := loaded(t)
	got, err := svc.Reachable(context.Background(), "Memorial Union")
	require.NoError(t, err)
	assert.Equal(t, []string{"Memorial Union", "Science Hall", "Brat Stand", "Helen C White Hall", "Library Mall"}, got)

	got, err = svc.Reachable(context.Background(), `"Observatory"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Observatory", "Lakeshore Dorms"}, got)
}

func TestNilService(t *testing.T) {
	var svc *campus.Service
	_, err := svc.Stats()
	require.ErrorIs(t, err, campus.ErrNilService)
	require.ErrorIs(t, svc.LoadFile(fixture), campus.ErrNilService)
}
