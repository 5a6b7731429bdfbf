// Copyright 2025 go-gmath Authors
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

package gmath

import "os"

// fastInvertEnabled selects the concrete float32 inversion kernel. It is
// written exactly once, by the per-arch init in the dispatch files, before
// any library call can observe it.
var fastInvertEnabled bool

// NoSimdEnv reports whether the GMATH_NO_SIMD environment variable disables
// the specialized kernels. Used for testing the generic fallback.
func NoSimdEnv() bool {
	v := os.Getenv("GMATH_NO_SIMD")
	return v == "1" || v == "true"
}

// FastPathEnabled reports whether the specialized float32 kernels are
// active in this process.
func FastPathEnabled() bool {
	return fastInvertEnabled
}
