package residual_test

import (
	"testing"

	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/resvar/linmodel"
	"github.com/katalvlaran/resvar/residual"
	"github.com/katalvlaran/resvar/rowmat"
)

// benchmarkCompute sweeps a rows x cells patterned matrix under the
// intercept-only model at the given worker count.
func benchmarkCompute(b *testing.B, rows, cells, workers int, transform residual.Transform) {
	b.Helper()

	data := make([]float64, rows*cells)
	for i := range data {
		data[i] = float64((i*37)%19) + 1
	}
	src, err := rowmat.NewDenseFloat64(rows, cells, data)
	if err != nil {
		b.Fatalf("NewDenseFloat64: %v", err)
	}

	ones := make([]float64, cells)
	for i := range ones {
		ones[i] = 1
	}
	fit, err := linmodel.FromDesign(blas64.General{Rows: cells, Cols: 1, Stride: 1, Data: ones})
	if err != nil {
		b.Fatalf("FromDesign: %v", err)
	}

	opts := residual.Options{Workers: workers}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = residual.Compute(src, fit, transform, opts); err != nil {
			b.Fatalf("Compute: %v", err)
		}
	}
}

func BenchmarkComputeNone_1kx256_Seq(b *testing.B) {
	benchmarkCompute(b, 1_000, 256, 1, residual.Identity())
}

func BenchmarkComputeNone_1kx256_Par4(b *testing.B) {
	benchmarkCompute(b, 1_000, 256, 4, residual.Identity())
}

func BenchmarkComputeLogNorm_1kx256_Seq(b *testing.B) {
	sf := make([]float64, 256)
	for i := range sf {
		sf[i] = 1 + float64(i%7)/10
	}
	transform, err := residual.LogNorm(sf, 1)
	if err != nil {
		b.Fatalf("LogNorm: %v", err)
	}
	benchmarkCompute(b, 1_000, 256, 1, transform)
}
