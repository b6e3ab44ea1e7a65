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

//go:build amd64 && !goexperiment.simd

package simd

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Without GOEXPERIMENT=simd the archsimd kernels are unavailable, but the
// dispatch level still steers lane counts for the portable kernels and is
// surfaced through Info. Probing combines x/sys/cpu with klauspost/cpuid,
// which also reports the popcount extensions x/sys/cpu has no flags for.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ, cpuid.AVX512BW, cpuid.AVX512VL):
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
		features = []string{"avx512f", "avx512dq", "avx512bw", "avx512vl"}
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
		features = []string{"avx2", "fma"}
	default:
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
		features = []string{"sse2"}
	}

	if cpuid.CPU.Supports(cpuid.POPCNT) {
		features = append(features, "popcnt")
	}
	if cpuid.CPU.Supports(cpuid.AVX512VPOPCNTDQ) {
		features = append(features, "avx512vpopcntdq")
	}
}
