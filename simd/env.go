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

import "os"

// NoSimdEnv reports whether SIMD has been disabled via the environment.
// Any non-empty value of SIMDIST_NO_SIMD other than "0" forces the
// scalar dispatch level.
func NoSimdEnv() bool {
	v := os.Getenv("SIMDIST_NO_SIMD")
	return v != "" && v != "0"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 16-byte vectors in scalar mode for consistency
	currentName = "scalar"
	features = nil
}
