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

import "unsafe"

// maxVecLanes bounds the lane count of any vector: a 512-bit register
// holds at most 16 float32 lanes; float64 halves that.
const maxVecLanes = 16

// Lanes constrains the element types representable as vector lanes.
type Lanes interface {
	~float32 | ~float64
}

// Vec is a register-sized vector of T with the lane count of the active
// dispatch width. It is a value type backed by a fixed array, so the
// portable kernels stay allocation-free; only the first n lanes are live.
type Vec[T Lanes] struct {
	data [maxVecLanes]T
	n    int
}

// Mask is a per-lane predicate matching Vec's lane count.
type Mask[T Lanes] struct {
	bits [maxVecLanes]bool
	n    int
}

// NumLanes returns how many lanes of T fit in the active vector width.
func NumLanes[T Lanes]() int {
	var z T
	return currentWidth / int(unsafe.Sizeof(z))
}

// Data returns the live lanes as a slice. The slice aliases the vector
// value; it is intended for tests and diagnostics, not hot paths.
func (v *Vec[T]) Data() []T {
	return v.data[:v.n]
}
