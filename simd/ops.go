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

// Portable implementations of the vector operations the distance kernels
// are written against. Each operation touches only the live lanes, so a
// kernel instantiated at one dispatch width produces the same reduction
// grouping at every other width with the same lane count.

// Load fills a vector from the head of src. If src holds fewer elements
// than the lane count, the remaining lanes stay zero.
func Load[T Lanes](src []T) Vec[T] {
	n := NumLanes[T]()
	var v Vec[T]
	v.n = n
	if len(src) < n {
		n = len(src)
	}
	copy(v.data[:n], src[:n])
	return v
}

// Store writes the live lanes of v to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := v.n
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set broadcasts value into every lane.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	v.n = NumLanes[T]()
	for i := 0; i < v.n; i++ {
		v.data[i] = value
	}
	return v
}

// Zero returns a vector with all lanes zero.
func Zero[T Lanes]() Vec[T] {
	var v Vec[T]
	v.n = NumLanes[T]()
	return v
}

// FirstN returns a mask with the first k lanes active. k beyond the lane
// count saturates to an all-true mask.
func FirstN[T Lanes](k int) Mask[T] {
	var m Mask[T]
	m.n = NumLanes[T]()
	if k > m.n {
		k = m.n
	}
	for i := 0; i < k; i++ {
		m.bits[i] = true
	}
	return m
}

// MaskLoad loads src into the lanes where the mask is active; inactive
// lanes stay zero. src must cover every active lane.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	var v Vec[T]
	v.n = mask.n
	for i := 0; i < mask.n; i++ {
		if mask.bits[i] {
			v.data[i] = src[i]
		}
	}
	return v
}

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	var v Vec[T]
	v.n = a.n
	for i := 0; i < v.n; i++ {
		v.data[i] = a.data[i] + b.data[i]
	}
	return v
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	var v Vec[T]
	v.n = a.n
	for i := 0; i < v.n; i++ {
		v.data[i] = a.data[i] - b.data[i]
	}
	return v
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	var v Vec[T]
	v.n = a.n
	for i := 0; i < v.n; i++ {
		v.data[i] = a.data[i] * b.data[i]
	}
	return v
}

// MulAdd computes acc + a*b per lane. SIMD targets lower this to a fused
// multiply-add; the portable form rounds the product separately, which is
// why kernel results carry a small tolerance rather than bit equality.
func MulAdd[T Lanes](a, b, acc Vec[T]) Vec[T] {
	var v Vec[T]
	v.n = acc.n
	for i := 0; i < v.n; i++ {
		v.data[i] = acc.data[i] + a.data[i]*b.data[i]
	}
	return v
}

// ReduceSum horizontally sums all live lanes into one scalar.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := 0; i < v.n; i++ {
		sum += v.data[i]
	}
	return sum
}
