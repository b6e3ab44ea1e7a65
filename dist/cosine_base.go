package dist

import (
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-simdist/simd"
)

// Predicated cosine kernels. The cross product and both self products are
// accumulated in one pass over the buffers; three traversals of a large
// vector would be memory-bound, so the fusion is the whole point.
//
// A zero vector reduces a self product to zero and the division surfaces
// Inf or NaN per IEEE semantics. Not guarded here.

func cosWide32(a, b []float32) float32 {
	n := len(a)
	lanes := simd.NumLanes[float32]()
	ab := simd.Zero[float32]()
	a2 := simd.Zero[float32]()
	b2 := simd.Zero[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := simd.Load(a[i:])
		vb := simd.Load(b[i:])
		ab = simd.MulAdd(va, vb, ab)
		a2 = simd.MulAdd(va, va, a2)
		b2 = simd.MulAdd(vb, vb, b2)
	}
	if i < n {
		pg := simd.FirstN[float32](n - i)
		va := simd.MaskLoad(pg, a[i:])
		vb := simd.MaskLoad(pg, b[i:])
		ab = simd.MulAdd(va, vb, ab)
		a2 = simd.MulAdd(va, va, a2)
		b2 = simd.MulAdd(vb, vb, b2)
	}

	return simd.ReduceSum(ab) / (math32.Sqrt(simd.ReduceSum(a2)) * math32.Sqrt(simd.ReduceSum(b2)))
}

func cosWideF16(a, b []simd.Float16) float32 {
	n := len(a)
	lanes := simd.NumLanes[float32]()
	ab := simd.Zero[float32]()
	a2 := simd.Zero[float32]()
	b2 := simd.Zero[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := simd.LoadF16(a[i:])
		vb := simd.LoadF16(b[i:])
		ab = simd.MulAdd(va, vb, ab)
		a2 = simd.MulAdd(va, va, a2)
		b2 = simd.MulAdd(vb, vb, b2)
	}
	if i < n {
		pg := simd.FirstN[float32](n - i)
		va := simd.MaskLoadF16(pg, a[i:])
		vb := simd.MaskLoadF16(pg, b[i:])
		ab = simd.MulAdd(va, vb, ab)
		a2 = simd.MulAdd(va, va, a2)
		b2 = simd.MulAdd(vb, vb, b2)
	}

	return simd.ReduceSum(ab) / (math32.Sqrt(simd.ReduceSum(a2)) * math32.Sqrt(simd.ReduceSum(b2)))
}
