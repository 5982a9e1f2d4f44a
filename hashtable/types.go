// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Hasher contract, table options and constants.

package hashtable

import "errors"

// Sentinel errors returned by Table operations.
var (
	// ErrNilKey indicates a nil key was passed to Put/Get/Remove.
	ErrNilKey = errors.New("hashtable: key is nil")

	// ErrDuplicateKey indicates Put was called with a key that is already stored.
	ErrDuplicateKey = errors.New("hashtable: key already exists")

	// ErrKeyNotFound indicates Get/Remove was called with an absent key.
	ErrKeyNotFound = errors.New("hashtable: key not found")
)

const (
	// DefaultCapacity is the number of buckets a Table starts with.
	DefaultCapacity = 32

	// LoadFactor is the (size+1)/capacity ratio at which the table doubles.
	LoadFactor = 0.75
)

// Hasher maps a key to a 64-bit hash. Equal keys must produce equal hashes.
type Hasher[K comparable] func(key K) uint64

// Nilable is implemented by pointer-backed key types that want to be treated
// as nil when stored inside an interface.
type Nilable interface {
	IsNil() bool
}

// Option configures a Table before creation.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial bucket count. Values below 1 fall back to
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// pair is one chained (key, value) entry.
type pair[K comparable, V any] struct {
	key   K
	value V
}

// bucket is an insertion-ordered chain of pairs sharing one slot.
type bucket[K comparable, V any] []pair[K, V]

// isNilKey reports whether key must be rejected at the boundary.
func isNilKey[K comparable](key K) bool {
	var boxed any = key
	if boxed == nil {
		return true
	}
	if n, ok := boxed.(Nilable); ok {
		return n.IsNil()
	}

	return false
}
