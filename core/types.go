// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, handles, arena records, Graph type and constructors.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/campuspath/hashtable"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced an identity that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative, NaN or infinite edge weight.
	ErrNegativeWeight = errors.New("core: edge weight must be finite and non-negative")
)

// NodeHandle addresses a node record in the arena.
type NodeHandle struct {
	idx int32
	gen uint32
}

// EdgeHandle addresses an edge record in the arena.
type EdgeHandle struct {
	idx int32
	gen uint32
}

// Edge is a read-only snapshot of one directed edge, used for enumeration.
type Edge[K comparable] struct {
	From   K
	To     K
	Weight float64
}

// nodeRecord is one arena slot for a node.
type nodeRecord[K comparable] struct {
	id   K
	out  []EdgeHandle // edges leaving this node, insertion ordered
	in   []EdgeHandle // edges entering this node, insertion ordered
	gen  uint32
	live bool
}

// edgeRecord is one arena slot for a directed edge.
type edgeRecord struct {
	from   NodeHandle
	to     NodeHandle
	weight float64
	gen    uint32
	live   bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(*config)

type config struct {
	indexCapacity int
}

// WithIndexCapacity sets the initial bucket count of the identity index.
func WithIndexCapacity(n int) GraphOption {
	return func(c *config) { c.indexCapacity = n }
}

// Graph is the node/edge store.
//
// mu guards every field below it. index maps identity → live NodeHandle.
type Graph[K comparable] struct {
	mu sync.RWMutex

	index *hashtable.Table[K, NodeHandle]

	nodes     []nodeRecord[K]
	edges     []edgeRecord
	freeNodes []int32
	freeEdges []int32

	nodeCount int
	edgeCount int
}

// New creates an empty Graph whose identities are hashed with hasher.
// Complexity: O(index capacity).
func New[K comparable](hasher hashtable.Hasher[K], opts ...GraphOption) *Graph[K] {
	cfg := config{indexCapacity: hashtable.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		index: hashtable.New[K, NodeHandle](hasher, hashtable.WithCapacity(cfg.indexCapacity)),
	}
}

// NewStringGraph creates an empty Graph keyed by strings (building names).
func NewStringGraph(opts ...GraphOption) *Graph[string] {
	return New[string](hashtable.StringHasher, opts...)
}
