package dist

import (
	"math/rand"
	"testing"

	"github.com/viterin/vek/vek32"
)

// Benchmarks at a typical embedding dimensionality. The vek variants run
// as an external yardstick.

const benchDim = 1536

func benchVecs() (a, b []float32) {
	rng := rand.New(rand.NewSource(40))
	return randVec(rng, benchDim), randVec(rng, benchDim)
}

func BenchmarkDot(b *testing.B) {
	x, y := benchVecs()
	b.SetBytes(benchDim * 4 * 2)
	for i := 0; i < b.N; i++ {
		_ = Dot(x, y)
	}
}

func BenchmarkDotF32x4(b *testing.B) {
	x, y := benchVecs()
	b.SetBytes(benchDim * 4 * 2)
	for i := 0; i < b.N; i++ {
		_ = DotF32x4(x, y)
	}
}

func BenchmarkDotVek(b *testing.B) {
	x, y := benchVecs()
	b.SetBytes(benchDim * 4 * 2)
	for i := 0; i < b.N; i++ {
		_ = vek32.Dot(x, y)
	}
}

func BenchmarkCos(b *testing.B) {
	x, y := benchVecs()
	b.SetBytes(benchDim * 4 * 2)
	for i := 0; i < b.N; i++ {
		_ = Cos(x, y)
	}
}

func BenchmarkCosVek(b *testing.B) {
	x, y := benchVecs()
	b.SetBytes(benchDim * 4 * 2)
	for i := 0; i < b.N; i++ {
		_ = vek32.CosineSimilarity(x, y)
	}
}

func BenchmarkEuclidean(b *testing.B) {
	x, y := benchVecs()
	b.SetBytes(benchDim * 4 * 2)
	for i := 0; i < b.N; i++ {
		_ = Euclidean(x, y)
	}
}

func BenchmarkDotI8(b *testing.B) {
	rng := rand.New(rand.NewSource(41))
	x := randI8(rng, benchDim)
	y := randI8(rng, benchDim)
	b.SetBytes(benchDim * 2)
	for i := 0; i < b.N; i++ {
		_ = DotI8(x, y)
	}
}

func BenchmarkHamming(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	x := randBytes(rng, benchDim/8)
	y := randBytes(rng, benchDim/8)
	b.SetBytes(benchDim / 8 * 2)
	for i := 0; i < b.N; i++ {
		_ = Hamming(x, y)
	}
}

func BenchmarkHammingBlock128(b *testing.B) {
	rng := rand.New(rand.NewSource(43))
	x := randBytes(rng, benchDim/8)
	y := randBytes(rng, benchDim/8)
	b.SetBytes(benchDim / 8 * 2)
	for i := 0; i < b.N; i++ {
		_ = HammingBlock128(x, y)
	}
}

func BenchmarkHammingWords64(b *testing.B) {
	rng := rand.New(rand.NewSource(44))
	x := randBytes(rng, benchDim/8)
	y := randBytes(rng, benchDim/8)
	b.SetBytes(benchDim / 8 * 2)
	for i := 0; i < b.N; i++ {
		_ = HammingWords64(x, y)
	}
}
