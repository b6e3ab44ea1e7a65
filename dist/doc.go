// Package dist provides SIMD-accelerated similarity and distance kernels
// for fixed-length vectors: dot product, cosine similarity, Euclidean
// distance, and Hamming distance over bit-packed buffers.
//
// # Kernel contract
//
// Every kernel is a pure function over two caller-owned, read-only buffers
// returning a single scalar. Kernels perform no validation, no allocation,
// and no I/O: mismatched lengths or a violated lane-multiple precondition
// is undefined behavior, not a reported error. Floating-point edge cases
// (such as the cosine of a zero vector) surface as IEEE infinities or NaN.
// Validation belongs in the calling layer.
//
// # Backends
//
// Each metric exists in several per-backend variants:
//
//   - Predicated, runtime-width kernels (Dot, Cos, Euclidean, Hamming and
//     their half-precision forms) cover any d, masking the final partial
//     chunk so every element is read exactly once.
//   - Fixed 128-bit kernels (DotF32x4, CosF32x4, EuclideanF32x4,
//     HammingBlock128) have no tail handling; d must be an exact multiple
//     of the lane width.
//   - AVX2/AVX-512 kernels (Dot_AVX2_F32x8 and friends) are available on
//     amd64 when built with GOEXPERIMENT=simd and are selected
//     automatically by the package-level entry points.
//   - HammingWords64 reduces 64-bit words with the hardware population
//     count.
//
// All variants share the same two-phase shape: a vectorized accumulation
// loop over register-resident partial sums, then one horizontal reduction
// to a scalar. Lane-grouped accumulation reorders floating-point addition
// relative to a sequential sum, so results agree with a scalar reference
// only within a small relative tolerance.
//
// # Selection
//
// The best variant per metric is bound once at package init from the
// dispatch level probed by package simd, and never re-probed per call:
//
//	d := dist.Dot(a, b)             // best available backend
//	f := dist.Distance(dist.MetricCosine)
//	score := f(a, b)
package dist
