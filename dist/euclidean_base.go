package dist

import (
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-simdist/simd"
)

// Predicated Euclidean kernels: one accumulator of squared differences,
// reduced once, square-rooted. Masked-off tail lanes contribute 0-0=0.

func euclideanWide32(a, b []float32) float32 {
	n := len(a)
	lanes := simd.NumLanes[float32]()
	d2 := simd.Zero[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := simd.Load(a[i:])
		vb := simd.Load(b[i:])
		diff := simd.Sub(va, vb)
		d2 = simd.MulAdd(diff, diff, d2)
	}
	if i < n {
		pg := simd.FirstN[float32](n - i)
		va := simd.MaskLoad(pg, a[i:])
		vb := simd.MaskLoad(pg, b[i:])
		diff := simd.Sub(va, vb)
		d2 = simd.MulAdd(diff, diff, d2)
	}

	return math32.Sqrt(simd.ReduceSum(d2))
}

func euclideanWideF16(a, b []simd.Float16) float32 {
	n := len(a)
	lanes := simd.NumLanes[float32]()
	d2 := simd.Zero[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := simd.LoadF16(a[i:])
		vb := simd.LoadF16(b[i:])
		diff := simd.Sub(va, vb)
		d2 = simd.MulAdd(diff, diff, d2)
	}
	if i < n {
		pg := simd.FirstN[float32](n - i)
		va := simd.MaskLoadF16(pg, a[i:])
		vb := simd.MaskLoadF16(pg, b[i:])
		diff := simd.Sub(va, vb)
		d2 = simd.MulAdd(diff, diff, d2)
	}

	return math32.Sqrt(simd.ReduceSum(d2))
}
