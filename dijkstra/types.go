// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campuspath/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that start or end is not a node of the graph.
	// errors.Is(err, core.ErrUnknownNode) also holds.
	ErrUnknownNode = fmt.Errorf("dijkstra: %w", core.ErrUnknownNode)

	// ErrNoPath indicates that no directed walk leads from start to end.
	ErrNoPath = errors.New("dijkstra: no path found")
)

// Result is the outcome of one successful query.
type Result[K comparable] struct {
	Path  []K       // node identities, start first, end last
	Costs []float64 // weight of each traversed edge
	Total float64   // cumulative cost of the path
}

// Strategy selects how the frontier handles a label whose cost dropped.
type Strategy int

const (
	// Reinsert removes the label's frontier entry and pushes a new one.
	Reinsert Strategy = iota

	// Lazy pushes a new entry and skips the outdated one at extraction.
	Lazy
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Reinsert:
		return "reinsert"
	case Lazy:
		return "lazy"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures a ShortestPath call.
type Options struct {
	Strategy Strategy
}

// Option represents a functional option for ShortestPath.
type Option func(*Options)

// WithStrategy sets the frontier strategy. Unknown values fall back to Reinsert.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s == Reinsert || s == Lazy {
			o.Strategy = s
		}
	}
}

// DefaultOptions returns the configuration used when no option is passed.
func DefaultOptions() Options {
	return Options{Strategy: Reinsert}
}
