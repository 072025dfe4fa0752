package geninv_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/geninv"
	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the matrix orders to benchmark. Kept small on purpose:
// the library targets fixed-dimension embedded workloads.
var benchSizes = []int{8, 16, 32, 64}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

// randDense fills an m×n Dense with a deterministic pseudo-random stream.
func randDense(b *testing.B, m, n int, seed int64) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDense(m, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if err := d.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatal(err)
			}
		}
	}

	return d
}

// gram builds the PSD matrix B·Bᵗ from the rank-deficient factor B.
func gram(b *testing.B, d *matrix.Dense) matrix.Matrix {
	b.Helper()
	dt, err := matrix.Transpose(d)
	if err != nil {
		b.Fatal(err)
	}
	a, err := matrix.Mul(d, dt)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkFullRankCholesky(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// Rank-n/2 PSD fixture to exercise the pivot-rejection path.
			A := gram(b, randDense(b, n, n/2, 1337))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l, _, err := geninv.FullRankCholesky(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = l
			}
		})
	}
}

func BenchmarkGeninv(b *testing.B) {
	b.ReportAllocs()
	for _, shape := range []struct{ m, n int }{
		{8, 8}, {32, 8}, {8, 32}, {64, 16},
	} {
		b.Run(fmt.Sprintf("%dx%d", shape.m, shape.n), func(b *testing.B) {
			G := randDense(b, shape.m, shape.n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := geninv.Geninv(G)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = x
			}
		})
	}
}
