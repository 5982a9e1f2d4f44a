// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/campuspath/core"

// label is the best known way to reach one node during a single query.
type label struct {
	node    core.NodeHandle
	cost    float64 // cumulative cost from the start
	step    float64 // weight of the edge from pred to node
	pred    *label  // nil for the start label
	entry   *entry  // live frontier entry under Reinsert, nil otherwise
	settled bool
}

// entry is one frontier slot. cost is the label cost at push time, which is
// how Lazy recognises outdated entries.
type entry struct {
	lbl   *label
	cost  float64
	index int // heap position, maintained by Swap/Push/Pop
}

// frontier is a min-heap of entries ordered by cost.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

// Push is called by heap.Push; x must be *entry.
func (f *frontier) Push(x any) {
	e := x.(*entry)
	e.index = len(*f)
	*f = append(*f, e)
}

// Pop is called by heap.Pop and returns the last element as *entry.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*f = old[:n-1]

	return e
}
