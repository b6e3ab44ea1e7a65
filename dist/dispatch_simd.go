//go:build amd64 && goexperiment.simd

package dist

import (
	"simd/archsimd"

	"github.com/ajroetker/go-simdist/simd"
)

// Rebind the float32 entry points to the archsimd kernels when the CPU
// supports them. Runs once; the package vars are read-only afterward.
func init() {
	if simd.NoSimdEnv() {
		return
	}
	switch {
	case archsimd.X86.AVX512():
		dotImpl = Dot_AVX512_F32x16
		cosImpl = Cos_AVX512_F32x16
		euclideanImpl = Euclidean_AVX512_F32x16
	case archsimd.X86.AVX2():
		dotImpl = Dot_AVX2_F32x8
		cosImpl = Cos_AVX2_F32x8
		euclideanImpl = Euclidean_AVX2_F32x8
	}
}
