// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Table construction, lookup, insertion with growth, removal and enumeration.
// Policy:
//   - Growth is checked before every Put, never after.
//   - Every lookup scans exactly one bucket.

package hashtable

import (
	"fmt"
	"iter"
)

// Table is a chained hash table with automatic doubling at LoadFactor.
type Table[K comparable, V any] struct {
	hasher  Hasher[K]
	buckets []bucket[K, V]
	size    int
}

// New creates an empty Table that hashes keys with hasher.
// Panics if hasher is nil: a table without a hash function cannot place keys.
//
// Complexity: O(capacity).
func New[K comparable, V any](hasher Hasher[K], opts ...Option) *Table[K, V] {
	if hasher == nil {
		panic("hashtable: nil hasher")
	}
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[K, V]{
		hasher:  hasher,
		buckets: make([]bucket[K, V], o.capacity),
	}
}

// Put stores value under key.
//
// Implementation:
//   - Stage 1: Reject nil keys (ErrNilKey) and present keys (ErrDuplicateKey).
//   - Stage 2: If (size+1)/capacity ≥ LoadFactor, double and rehash.
//   - Stage 3: Append the pair to its bucket.
//
// Complexity: expected O(1), O(n) when a resize happens.
func (t *Table[K, V]) Put(key K, value V) error {
	if isNilKey(key) {
		return ErrNilKey
	}
	if t.ContainsKey(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	if float64(t.size+1)/float64(len(t.buckets)) >= LoadFactor {
		t.grow()
	}

	i := t.slot(key, len(t.buckets))
	t.buckets[i] = append(t.buckets[i], pair[K, V]{key: key, value: value})
	t.size++

	return nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (t *Table[K, V]) Get(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrNilKey
	}
	b := t.buckets[t.slot(key, len(t.buckets))]
	for j := range b {
		if b[j].key == key {
			return b[j].value, nil
		}
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Remove detaches key from the table and returns its value, or ErrKeyNotFound.
func (t *Table[K, V]) Remove(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrNilKey
	}
	i := t.slot(key, len(t.buckets))
	b := t.buckets[i]
	for j := range b {
		if b[j].key != key {
			continue
		}
		value := b[j].value
		// Keep the remaining chain in insertion order.
		copy(b[j:], b[j+1:])
		b[len(b)-1] = pair[K, V]{}
		t.buckets[i] = b[:len(b)-1]
		t.size--

		return value, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// ContainsKey reports whether key is stored. Nil keys are never stored.
func (t *Table[K, V]) ContainsKey(key K) bool {
	if isNilKey(key) {
		return false
	}
	b := t.buckets[t.slot(key, len(t.buckets))]
	for j := range b {
		if b[j].key == key {
			return true
		}
	}

	return false
}

// Size returns the number of stored pairs.
func (t *Table[K, V]) Size() int { return t.size }

// Capacity returns the current bucket count.
func (t *Table[K, V]) Capacity() int { return len(t.buckets) }

// Clear drops every pair and keeps the current capacity.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		clear(t.buckets[i])
		t.buckets[i] = t.buckets[i][:0]
	}
	t.size = 0
}

// All yields every (key, value) pair in bucket order, chain order within a
// bucket. The table must not be mutated while the sequence is being consumed.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, p := range b {
				if !yield(p.key, p.value) {
					return
				}
			}
		}
	}
}

// grow doubles the bucket array and rehashes every pair into it.
func (t *Table[K, V]) grow() {
	capacity := len(t.buckets) * 2
	next := make([]bucket[K, V], capacity)
	for _, b := range t.buckets {
		for _, p := range b {
			i := t.slot(p.key, capacity)
			next[i] = append(next[i], p)
		}
	}
	t.buckets = next
}

// slot maps key onto [0, capacity). The hash is unsigned, so the index is
// never negative.
func (t *Table[K, V]) slot(key K, capacity int) int {
	return int(t.hasher(key) % uint64(capacity))
}
