// Package bfs provides breadth-first reachability over a core.Graph: visit
// order, hop depth and BFS-tree parents from one start node, plus grouping
// of a symmetric graph into connected groups.
//
// Edge weights are ignored; only edge existence matters. The walk runs inside
// core.Graph.Read, so callbacks must not mutate the graph they are walking.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start identity is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks for one walk.
type Options[K comparable] struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// OnVisit is called for each node in visit order. A non-nil error aborts
	// the walk and is returned wrapped.
	OnVisit func(id K, depth int) error

	// MaxDepth limits the walk to nodes at most MaxDepth hops away. 0 = unlimited.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context, a no-op visitor and no depth limit.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:     context.Background(),
		OnVisit: func(K, int) error { return nil },
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the per-node visitor. nil is ignored.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the hop depth. Negative values are an option violation.
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be ≥ 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of one walk.
type Result[K comparable] struct {
	Order  []K       // identities in visit order, start first
	Depth  map[K]int // hops from the start
	Parent map[K]K   // BFS-tree predecessor; the start has no entry
}

// PathTo returns the fewest-hop path from the start to dest.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
