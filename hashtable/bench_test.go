package hashtable_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/campuspath/hashtable"
)

// BenchmarkTable_Put measures insertion including periodic doubling.
func BenchmarkTable_Put(b *testing.B) {
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = fmt.Sprintf("K%d", i)
	}
	tb := hashtable.New[string, int](hashtable.StringHasher)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tb.Put(keys[i], i)
	}
}

// BenchmarkTable_Get measures lookups on a table of 10k keys.
func BenchmarkTable_Get(b *testing.B) {
	const n = 10_000
	tb := hashtable.New[int, int](hashtable.IntHasher)
	for i := 0; i < n; i++ {
		_ = tb.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tb.Get(i % n)
	}
}
