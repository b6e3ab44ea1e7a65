//go:build amd64 && goexperiment.simd

package dist

import (
	"simd/archsimd"

	"github.com/chewxy/math32"
)

// AVX-512 kernels: sixteen float32 lanes per iteration.

func reduce16(v archsimd.Float32x16) float32 {
	var tmp [16]float32
	v.StoreSlice(tmp[:])
	var sum float32
	for _, x := range tmp {
		sum += x
	}
	return sum
}

// Dot_AVX512_F32x16 computes the dot product using 512-bit vectors.
func Dot_AVX512_F32x16(a, b []float32) float32 {
	n := len(a)
	sum := archsimd.BroadcastFloat32x16(0.0)

	i := 0
	for ; i+16 <= n; i += 16 {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	result := reduce16(sum)
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

// Cos_AVX512_F32x16 computes cosine similarity using 512-bit vectors.
func Cos_AVX512_F32x16(a, b []float32) float32 {
	n := len(a)
	ab := archsimd.BroadcastFloat32x16(0.0)
	a2 := archsimd.BroadcastFloat32x16(0.0)
	b2 := archsimd.BroadcastFloat32x16(0.0)

	i := 0
	for ; i+16 <= n; i += 16 {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		ab = ab.Add(va.Mul(vb))
		a2 = a2.Add(va.Mul(va))
		b2 = b2.Add(vb.Mul(vb))
	}

	sumAB := reduce16(ab)
	sumA2 := reduce16(a2)
	sumB2 := reduce16(b2)

	for ; i < n; i++ {
		sumAB += a[i] * b[i]
		sumA2 += a[i] * a[i]
		sumB2 += b[i] * b[i]
	}
	return sumAB / (math32.Sqrt(sumA2) * math32.Sqrt(sumB2))
}

// Euclidean_AVX512_F32x16 computes Euclidean distance using 512-bit
// vectors.
func Euclidean_AVX512_F32x16(a, b []float32) float32 {
	n := len(a)
	d2 := archsimd.BroadcastFloat32x16(0.0)

	i := 0
	for ; i+16 <= n; i += 16 {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		diff := va.Sub(vb)
		d2 = d2.Add(diff.Mul(diff))
	}

	sum := reduce16(d2)
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math32.Sqrt(sum)
}
