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

// Package simd provides the runtime dispatch state and the portable
// vector-lane abstraction used by the distance kernels in package dist.
//
// CPU capabilities are probed exactly once, at package init, and the
// resulting dispatch level is read-only afterward. Kernels never re-probe
// per call. The probe can be disabled with the SIMDIST_NO_SIMD environment
// variable, which forces the scalar level.
//
// The Vec and Mask types implement a predicated, runtime-width vector
// model: NumLanes reports how many lanes of a given element type fit in
// the active vector width, and FirstN builds the tail mask that covers
// buffer lengths which are not an exact multiple of that width. Kernels
// written against this layer are correct at any width; on targets built
// with GOEXPERIMENT=simd the hot paths are replaced with archsimd code.
package simd
