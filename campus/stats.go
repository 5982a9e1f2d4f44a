// SPDX-License-Identifier: MIT

package campus

import (
	"fmt"

	"github.com/katalvlaran/campuspath/bfs"
	"github.com/katalvlaran/campuspath/core"
)

// Stats summarises the loaded campus.
type Stats struct {
	Buildings        int     // nodes
	Paths            int     // directed edges
	TotalWalkingTime float64 // seconds, each two-way walkway counted once
	Groups           int     // connected groups of buildings
}

// String renders the three-line report shown by the stats command.
func (st Stats) String() string {
	return fmt.Sprintf("Number of Buildings (Nodes): %d\nNumber of Paths (Edges): %d\nTotal Walking Time: %.2f seconds",
		st.Buildings, st.Paths, st.TotalWalkingTime)
}

type arc struct{ from, to core.NodeHandle }

// Stats computes the campus summary as one snapshot under the graph's read
// lock. An edge whose reverse also exists contributes half its weight, so a
// two-way walkway is counted once.
func (s *Service) Stats() (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilService
	}

	var st Stats
	err := s.graph.Read(func(v core.View[string]) error {
		var arcs []arc
		weights := make(map[arc]float64)
		for h := range v.Nodes() {
			for to, w := range v.Out(h) {
				a := arc{h, to}
				arcs = append(arcs, a)
				weights[a] = w
			}
		}
		for _, a := range arcs {
			w := weights[a]
			if _, ok := weights[arc{a.to, a.from}]; ok && a.from != a.to {
				st.TotalWalkingTime += w / 2
				continue
			}
			st.TotalWalkingTime += w
		}

		groups, err := bfs.ComponentsOf(v)
		if err != nil {
			return err
		}
		st.Buildings = v.NodeCount()
		st.Paths = len(arcs)
		st.Groups = len(groups)

		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("campus: stats: %w", err)
	}

	return st, nil
}
