// SPDX-License-Identifier: MIT

// Package hashtable provides a fixed-bucket, chained associative index that
// maps opaque keys to values. It is the lookup layer underneath core.Graph.
//
// Layout:
//
//	buckets[0] → (k1,v1) (k7,v7)
//	buckets[1] → ∅
//	buckets[2] → (k3,v3)
//	...
//	buckets[C-1]
//
// A key lives in bucket hash(key) mod C. Collisions are chained by appending
// to the bucket, so lookups and removals scan one bucket only.
//
// Growth policy:
//
//   - Default capacity is 32 buckets (WithCapacity overrides it).
//   - Before every insertion the table checks (size+1)/capacity ≥ 0.75; when
//     the threshold is reached the capacity doubles and every pair is rehashed
//     into freshly sized buckets before the new pair is placed.
//
// Hashing:
//
//	Keys are hashed by a caller-supplied Hasher[K]. Equal keys MUST hash to the
//	same value; a hasher that breaks this silently corrupts the table.
//	StringHasher (xxhash) is the stock choice for string keys.
//
// Errors (sentinel):
//
//	ErrNilKey        - nil interface key, or a key whose IsNil() reports true.
//	ErrDuplicateKey  - Put on a key that is already present.
//	ErrKeyNotFound   - Get/Remove on an absent key.
//
// Complexity:
//
//	Put/Get/Remove/ContainsKey: expected O(1), worst case O(n) on pathological
//	collisions. Growth: O(n) once per doubling (amortized O(1) per Put).
//
// Thread safety:
//
//	Table is not safe for concurrent use. core.Graph serializes access to the
//	table it owns.
package hashtable
