package block

import (
	"testing"

	"github.com/cwbudde/algo-radiolab/internal/testutil"
)

func benchArray(nblocks, n int) *Array[float64] {
	a, _ := NewArray([]int{nblocks, n}, testutil.DeterministicNoise(1, 1, nblocks*n))
	return a
}

func BenchmarkMean(b *testing.B) {
	a := benchArray(16, 2048)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = Mean(a)
	}
}

func BenchmarkMedian(b *testing.B) {
	a := benchArray(16, 2048)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = Median(a)
	}
}
