package dist

import "github.com/ajroetker/go-simdist/simd"

// Predicated dot-product kernels. The chunk width is the runtime lane
// count reported by the dispatch layer, and the final partial chunk is
// covered by a FirstN mask, so any d is processed exactly once with no
// out-of-bounds read.

func dotWide32(a, b []float32) float32 {
	n := len(a)
	lanes := simd.NumLanes[float32]()
	acc := simd.Zero[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := simd.Load(a[i:])
		vb := simd.Load(b[i:])
		acc = simd.MulAdd(va, vb, acc)
	}
	if i < n {
		pg := simd.FirstN[float32](n - i)
		va := simd.MaskLoad(pg, a[i:])
		vb := simd.MaskLoad(pg, b[i:])
		acc = simd.MulAdd(va, vb, acc)
	}

	return simd.ReduceSum(acc)
}

func dotWideF16(a, b []simd.Float16) float32 {
	n := len(a)
	lanes := simd.NumLanes[float32]()
	acc := simd.Zero[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := simd.LoadF16(a[i:])
		vb := simd.LoadF16(b[i:])
		acc = simd.MulAdd(va, vb, acc)
	}
	if i < n {
		pg := simd.FirstN[float32](n - i)
		va := simd.MaskLoadF16(pg, a[i:])
		vb := simd.MaskLoadF16(pg, b[i:])
		acc = simd.MulAdd(va, vb, acc)
	}

	return simd.ReduceSum(acc)
}
