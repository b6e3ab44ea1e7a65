package dist

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-simdist/simd"
)

// Lane-grouped accumulation reorders float addition, so kernels are
// compared against a float64 scalar reference within a relative
// tolerance instead of bit equality.
const relTol = 1e-5

func refDot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func refCos(a, b []float32) float64 {
	var ab, a2, b2 float64
	for i := range a {
		ab += float64(a[i]) * float64(b[i])
		a2 += float64(a[i]) * float64(a[i])
		b2 += float64(b[i]) * float64(b[i])
	}
	return ab / (math.Sqrt(a2) * math.Sqrt(b2))
}

func refEuclidean(a, b []float32) float64 {
	var d2 float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		d2 += d * d
	}
	return math.Sqrt(d2)
}

func checkRel(t *testing.T, name string, got float32, want float64) {
	t.Helper()
	diff := math.Abs(float64(got) - want)
	scale := math.Abs(want)
	if scale < 1 {
		scale = 1
	}
	if diff/scale > relTol {
		t.Errorf("%s = %v, want %v (rel err %v)", name, got, want, diff/scale)
	}
}

func randVec(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}

// randVecPos keeps values in (0.1, 1.1) so reference sums have no
// cancellation and the relative tolerance is meaningful.
func randVecPos(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32() + 0.1
	}
	return v
}

var testSizes = []int{1, 2, 3, 4, 7, 8, 15, 16, 17, 31, 32, 64, 100, 255, 1000}

func TestDot_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range testSizes {
		a := randVecPos(rng, n)
		b := randVecPos(rng, n)
		checkRel(t, "Dot", Dot(a, b), refDot(a, b))
		if n%4 == 0 {
			checkRel(t, "DotF32x4", DotF32x4(a, b), refDot(a, b))
		}
	}
}

// Mixed-sign input cancels heavily, so the comparison scale is the sum
// of product magnitudes rather than the (near-zero) result itself.
func TestDot_MixedSignCancellation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, n := range testSizes {
		a := randVec(rng, n)
		b := randVec(rng, n)
		var scale float64
		for i := range a {
			scale += math.Abs(float64(a[i]) * float64(b[i]))
		}
		if scale < 1 {
			scale = 1
		}
		diff := math.Abs(float64(Dot(a, b)) - refDot(a, b))
		if diff/scale > relTol {
			t.Errorf("Dot(n=%d) off by %v at magnitude scale %v", n, diff, scale)
		}
	}
}

func TestCos_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range testSizes {
		a := randVecPos(rng, n)
		b := randVecPos(rng, n)
		checkRel(t, "Cos", Cos(a, b), refCos(a, b))
		if n%4 == 0 {
			checkRel(t, "CosF32x4", CosF32x4(a, b), refCos(a, b))
		}
	}
}

func TestEuclidean_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range testSizes {
		a := randVec(rng, n)
		b := randVec(rng, n)
		checkRel(t, "Euclidean", Euclidean(a, b), refEuclidean(a, b))
		if n%4 == 0 {
			checkRel(t, "EuclideanF32x4", EuclideanF32x4(a, b), refEuclidean(a, b))
		}
	}
}

func TestConcreteOnes(t *testing.T) {
	a := []float32{1, 1, 1, 1}
	b := []float32{1, 1, 1, 1}

	if got := Dot(a, b); got != 4 {
		t.Errorf("Dot(ones) = %v, want 4", got)
	}
	if got := Cos(a, b); math.Abs(float64(got)-1) > relTol {
		t.Errorf("Cos(ones) = %v, want 1", got)
	}
	if got := Euclidean(a, b); got != 0 {
		t.Errorf("Euclidean(ones) = %v, want 0", got)
	}
	if got := DotF32x4(a, b); got != 4 {
		t.Errorf("DotF32x4(ones) = %v, want 4", got)
	}
}

func TestCos_SelfIsOne(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, n := range testSizes {
		v := randVec(rng, n)
		if got := Cos(v, v); math.Abs(float64(got)-1) > relTol {
			t.Errorf("Cos(v, v) = %v for n=%d, want 1", got, n)
		}
	}
}

func TestCos_ZeroVectorSurfacesNaN(t *testing.T) {
	zero := make([]float32, 8)
	v := []float32{1, 2, 3, 4, 5, 6, 7, 8}

	// 0/0: both the cross product and one norm are zero.
	if got := Cos(zero, zero); !math.IsNaN(float64(got)) {
		t.Errorf("Cos(0, 0) = %v, want NaN", got)
	}
	if got := Cos(zero, v); !math.IsNaN(float64(got)) {
		t.Errorf("Cos(0, v) = %v, want NaN", got)
	}
}

func TestEuclidean_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range testSizes {
		a := randVec(rng, n)
		b := randVec(rng, n)
		if d1, d2 := Euclidean(a, b), Euclidean(b, a); d1 != d2 {
			t.Errorf("Euclidean not symmetric for n=%d: %v vs %v", n, d1, d2)
		}
		if got := Euclidean(a, a); got != 0 {
			t.Errorf("Euclidean(a, a) = %v for n=%d, want 0", got, n)
		}
	}
}

// Fixed-width kernels must agree with the predicated ones on conforming
// lengths: same logical data, same result up to reduction order.
func TestFixedMatchesPredicated(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for _, n := range []int{4, 8, 16, 32, 128, 1024} {
		a := randVecPos(rng, n)
		b := randVecPos(rng, n)
		checkRel(t, "DotF32x4 vs Dot", DotF32x4(a, b), float64(Dot(a, b)))
		checkRel(t, "CosF32x4 vs Cos", CosF32x4(a, b), float64(Cos(a, b)))
		checkRel(t, "EuclideanF32x4 vs Euclidean", EuclideanF32x4(a, b), float64(Euclidean(a, b)))
	}
}

func TestF16Kernels(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range testSizes {
		a16 := simd.F16FromF32(randVecPos(rng, n))
		b16 := simd.F16FromF32(randVecPos(rng, n))
		// Reference over the exactly-widened values: the kernel's only
		// approximation beyond f32 arithmetic is the f16 storage itself.
		a := simd.F32FromF16(a16)
		b := simd.F32FromF16(b16)

		checkRel(t, "DotF16", DotF16(a16, b16), refDot(a, b))
		checkRel(t, "CosF16", CosF16(a16, b16), refCos(a, b))
		checkRel(t, "EuclideanF16", EuclideanF16(a16, b16), refEuclidean(a, b))
	}
}

func TestDistance_SelectsMetric(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{4, 3, 2, 1}

	if got, want := Distance(MetricDot)(a, b), Dot(a, b); got != want {
		t.Errorf("Distance(MetricDot) = %v, want %v", got, want)
	}
	if got, want := Distance(MetricCosine)(a, b), Cos(a, b); got != want {
		t.Errorf("Distance(MetricCosine) = %v, want %v", got, want)
	}
	if got, want := Distance(MetricEuclidean)(a, b), Euclidean(a, b); got != want {
		t.Errorf("Distance(MetricEuclidean) = %v, want %v", got, want)
	}
}

func TestDotBatch(t *testing.T) {
	queries := [][]float32{{1, 2}, {3, 4}}
	keys := [][]float32{{5, 6}, {7, 8}}
	got := DotBatch(queries, keys)
	want := []float32{17, 53}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DotBatch[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCosScores(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const dim, count = 32, 5
	embeddings := randVec(rng, dim*count)
	query := randVec(rng, dim)

	scores := make([]float32, count)
	CosScores(embeddings, query, scores)
	for i := 0; i < count; i++ {
		want := Cos(embeddings[i*dim:(i+1)*dim], query)
		if scores[i] != want {
			t.Errorf("CosScores[%d] = %v, want %v", i, scores[i], want)
		}
	}
}
