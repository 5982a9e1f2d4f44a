// SPDX-License-Identifier: MIT

package hashtable

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// StringHasher hashes string keys with xxhash64.
func StringHasher(key string) uint64 { return xxhash.Sum64String(key) }

// IntHasher hashes int keys by feeding their little-endian bytes to xxhash64.
func IntHasher(key int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))

	return xxhash.Sum64(buf[:])
}
