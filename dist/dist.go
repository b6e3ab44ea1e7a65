package dist

import "github.com/ajroetker/go-simdist/simd"

// Metric identifies a similarity/distance function over float32 vectors.
type Metric int

const (
	// MetricDot is the inner product Σ a[i]*b[i].
	MetricDot Metric = iota
	// MetricCosine is dot(a,b) / (|a| * |b|).
	MetricCosine
	// MetricEuclidean is sqrt(Σ (a[i]-b[i])^2).
	MetricEuclidean
)

// Kernel selection happens once, at init: the defaults below are the
// predicated portable kernels, and dispatch_simd.go rebinds them to the
// archsimd variants when the build and the CPU allow. Read-only after
// init, so concurrent callers need no synchronization.
var (
	dotImpl       = dotWide32
	cosImpl       = cosWide32
	euclideanImpl = euclideanWide32
)

// Dot computes the dot product of two float32 vectors using the best
// backend for the running CPU.
// PRECONDITION: len(a) == len(b).
func Dot(a, b []float32) float32 {
	return dotImpl(a, b)
}

// Cos computes the cosine similarity of two float32 vectors. A zero
// vector yields an IEEE Inf or NaN result, which is surfaced as is.
// PRECONDITION: len(a) == len(b).
func Cos(a, b []float32) float32 {
	return cosImpl(a, b)
}

// Euclidean computes the Euclidean distance between two float32 vectors.
// PRECONDITION: len(a) == len(b).
func Euclidean(a, b []float32) float32 {
	return euclideanImpl(a, b)
}

// DotF16 computes the dot product of two half-precision vectors.
// Lanes are widened to float32 and accumulated in float32.
// PRECONDITION: len(a) == len(b).
func DotF16(a, b []simd.Float16) float32 {
	return dotWideF16(a, b)
}

// CosF16 computes the cosine similarity of two half-precision vectors.
// PRECONDITION: len(a) == len(b).
func CosF16(a, b []simd.Float16) float32 {
	return cosWideF16(a, b)
}

// EuclideanF16 computes the Euclidean distance between two
// half-precision vectors.
// PRECONDITION: len(a) == len(b).
func EuclideanF16(a, b []simd.Float16) float32 {
	return euclideanWideF16(a, b)
}

// Distance returns the kernel bound to metric for the running CPU.
// The returned function is safe for concurrent use.
func Distance(metric Metric) func(a, b []float32) float32 {
	switch metric {
	case MetricCosine:
		return cosImpl
	case MetricEuclidean:
		return euclideanImpl
	default:
		return dotImpl
	}
}

// DotBatch computes the dot product of queries[i] and keys[i] for each i.
// PRECONDITION: len(queries) == len(keys) and each pair is same-length.
func DotBatch(queries, keys [][]float32) []float32 {
	results := make([]float32, len(queries))
	for i := range queries {
		results[i] = dotImpl(queries[i], keys[i])
	}
	return results
}

// CosScores scores a flat [count x dim] embedding block against one query,
// writing cosine similarities into scores.
// PRECONDITION: len(embeddings) == len(scores)*len(query).
func CosScores(embeddings, query, scores []float32) {
	dim := len(query)
	if dim == 0 {
		return
	}
	for i := range scores {
		scores[i] = cosImpl(embeddings[i*dim:(i+1)*dim], query)
	}
}
