package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaitwarp/dtw"
)

// benchmarkAlign is a helper that aligns sequences of lengths n and m.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkAlign(b *testing.B, n, m int) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := 0; i < n; i++ {
		a[i] = math.Sin(float64(i) / 8)
	}
	for j := 0; j < m; j++ {
		bSeq[j] = math.Sin(float64(j) / 10)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Align(a, bSeq); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks 100×100 sequences.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100, 100) }

// BenchmarkAlign_Gait benchmarks the reference-vs-slow gait shape, 100×140.
func BenchmarkAlign_Gait(b *testing.B) { benchmarkAlign(b, 100, 140) }

// BenchmarkAlign_Stress benchmarks the 1000×1200 stress shape.
func BenchmarkAlign_Stress(b *testing.B) { benchmarkAlign(b, 1000, 1200) }

// BenchmarkBuild_Stress isolates the matrix fill at the stress shape.
func BenchmarkBuild_Stress(b *testing.B) {
	a := make([]float64, 1000)
	c := make([]float64, 1200)
	for i := range a {
		a[i] = float64(i % 17)
	}
	for j := range c {
		c[j] = float64(j % 13)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Build(a, c); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
