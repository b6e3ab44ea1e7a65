// Copyright 2026 go-simdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import "math"

// Float16 is an IEEE 754 binary16 value stored by bit pattern.
// Arithmetic happens after widening to float32; Float16 itself is only
// a storage format, mirroring how half-precision buffers arrive from
// embedding models and quantized weights.
type Float16 uint16

// Float32 widens f to float32. Subnormals, infinities and NaN are
// preserved.
func (f Float16) Float32() float32 {
	sign := uint32(f>>15) & 1
	exp := uint32(f>>10) & 0x1F
	mant := uint32(f) & 0x3FF
	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Subnormal: value is mant * 2^-24.
		v := float32(mant) * (1.0 / (1 << 24))
		if sign != 0 {
			v = -v
		}
		return v
	case 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign<<31 | 0x7F800000)
		}
		return math.Float32frombits(sign<<31 | 0x7FC00000 | mant<<13)
	default:
		return math.Float32frombits(sign<<31 | (exp+112)<<23 | mant<<13)
	}
}

// FromFloat32 narrows x to binary16 with round-to-nearest-even.
// Values beyond the half range become infinities.
func FromFloat32(x float32) Float16 {
	b := math.Float32bits(x)
	sign := Float16(b>>16) & 0x8000
	exp := int32((b>>23)&0xFF) - 127 + 15
	mant := b & 0x7FFFFF

	if (b>>23)&0xFF == 0xFF {
		if mant != 0 {
			return sign | 0x7E00 // NaN
		}
		return sign | 0x7C00 // Inf
	}
	if exp >= 0x1F {
		return sign | 0x7C00
	}
	if exp <= 0 {
		if exp < -10 {
			return sign // underflows to zero
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint32(1) << (shift - 1)
		m := mant >> shift
		if mant&half != 0 && (mant&(half-1) != 0 || m&1 != 0) {
			m++
		}
		return sign | Float16(m)
	}

	m := mant >> 13
	if mant&0x1000 != 0 && (mant&0xFFF != 0 || m&1 != 0) {
		m++
	}
	// A mantissa carry rolls into the exponent field with the right
	// encoding, including the overflow to infinity.
	return sign | Float16(uint32(exp)<<10+m)
}

// F16FromF32 converts a float32 slice to half precision.
func F16FromF32(src []float32) []Float16 {
	out := make([]Float16, len(src))
	for i, x := range src {
		out[i] = FromFloat32(x)
	}
	return out
}

// F32FromF16 widens a half-precision slice to float32.
func F32FromF16(src []Float16) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = x.Float32()
	}
	return out
}

// LoadF16 fills a float32 vector by widening half-precision lanes.
func LoadF16(src []Float16) Vec[float32] {
	n := NumLanes[float32]()
	var v Vec[float32]
	v.n = n
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		v.data[i] = src[i].Float32()
	}
	return v
}

// MaskLoadF16 widens half-precision lanes where the mask is active;
// inactive lanes stay zero. src must cover every active lane.
func MaskLoadF16(mask Mask[float32], src []Float16) Vec[float32] {
	var v Vec[float32]
	v.n = mask.n
	for i := 0; i < mask.n; i++ {
		if mask.bits[i] {
			v.data[i] = src[i].Float32()
		}
	}
	return v
}
