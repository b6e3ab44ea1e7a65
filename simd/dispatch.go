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

// Level identifies the instruction-set tier selected at init.
type Level int

const (
	// DispatchScalar disables vectorized code paths entirely.
	DispatchScalar Level = iota
	// DispatchSSE2 is the amd64 baseline: 128-bit vectors.
	DispatchSSE2
	// DispatchAVX2 selects 256-bit vectors with FMA.
	DispatchAVX2
	// DispatchAVX512 selects 512-bit vectors.
	DispatchAVX512
	// DispatchNEON is the arm64 baseline: 128-bit vectors.
	DispatchNEON
)

// Dispatch state. Written once by the per-target init in dispatch_*.go,
// read-only afterward.
var (
	currentLevel Level
	currentWidth int // vector width in bytes
	currentName  string
	features     []string
)

// RuntimeInfo describes the dispatch decision made at process start.
type RuntimeInfo struct {
	// Level is the selected instruction-set tier.
	Level Level
	// Width is the vector width in bytes (16, 32, or 64).
	Width int
	// Name is a short human-readable level name, e.g. "avx2".
	Name string
	// Features lists the probed CPU features that informed the decision.
	Features []string
	// Accelerated reports whether a vectorized tier above scalar is active.
	Accelerated bool
}

// Info returns the active dispatch state.
func Info() RuntimeInfo {
	return RuntimeInfo{
		Level:       currentLevel,
		Width:       currentWidth,
		Name:        currentName,
		Features:    append([]string(nil), features...),
		Accelerated: currentLevel != DispatchScalar,
	}
}

// CurrentLevel returns the instruction-set tier selected at init.
func CurrentLevel() Level { return currentLevel }

// VectorWidth returns the active vector width in bytes.
func VectorWidth() int { return currentWidth }

func (l Level) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	}
	return "unknown"
}
