//go:build amd64 && goexperiment.simd

package dist

import (
	"simd/archsimd"

	"github.com/chewxy/math32"
)

// AVX2 kernels: eight float32 lanes per iteration with fused
// multiply-add, horizontal reduction through a stack buffer, scalar tail.

// Dot_AVX2_F32x8 computes the dot product using 256-bit vectors.
func Dot_AVX2_F32x8(a, b []float32) float32 {
	n := len(a)
	sum := archsimd.BroadcastFloat32x8(0.0)

	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	var tmp [8]float32
	sum.StoreSlice(tmp[:])
	result := tmp[0] + tmp[1] + tmp[2] + tmp[3] + tmp[4] + tmp[5] + tmp[6] + tmp[7]

	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

// Cos_AVX2_F32x8 computes cosine similarity using 256-bit vectors.
// Cross product and both self products are fused into a single pass.
func Cos_AVX2_F32x8(a, b []float32) float32 {
	n := len(a)
	ab := archsimd.BroadcastFloat32x8(0.0)
	a2 := archsimd.BroadcastFloat32x8(0.0)
	b2 := archsimd.BroadcastFloat32x8(0.0)

	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		ab = ab.Add(va.Mul(vb))
		a2 = a2.Add(va.Mul(va))
		b2 = b2.Add(vb.Mul(vb))
	}

	var tmp [8]float32
	ab.StoreSlice(tmp[:])
	sumAB := tmp[0] + tmp[1] + tmp[2] + tmp[3] + tmp[4] + tmp[5] + tmp[6] + tmp[7]
	a2.StoreSlice(tmp[:])
	sumA2 := tmp[0] + tmp[1] + tmp[2] + tmp[3] + tmp[4] + tmp[5] + tmp[6] + tmp[7]
	b2.StoreSlice(tmp[:])
	sumB2 := tmp[0] + tmp[1] + tmp[2] + tmp[3] + tmp[4] + tmp[5] + tmp[6] + tmp[7]

	for ; i < n; i++ {
		sumAB += a[i] * b[i]
		sumA2 += a[i] * a[i]
		sumB2 += b[i] * b[i]
	}
	return sumAB / (math32.Sqrt(sumA2) * math32.Sqrt(sumB2))
}

// Euclidean_AVX2_F32x8 computes Euclidean distance using 256-bit vectors.
func Euclidean_AVX2_F32x8(a, b []float32) float32 {
	n := len(a)
	d2 := archsimd.BroadcastFloat32x8(0.0)

	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		diff := va.Sub(vb)
		d2 = d2.Add(diff.Mul(diff))
	}

	var tmp [8]float32
	d2.StoreSlice(tmp[:])
	sum := tmp[0] + tmp[1] + tmp[2] + tmp[3] + tmp[4] + tmp[5] + tmp[6] + tmp[7]

	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math32.Sqrt(sum)
}
