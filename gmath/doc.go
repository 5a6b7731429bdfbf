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

// Package gmath provides fixed-size linear-algebra primitives - vectors,
// 4x4 and 3x2 matrices, quaternions, planes - generic over the numeric
// element type.
//
// Every type is a plain value: operations are pure functions over copies,
// allocate nothing, and are safe to call from any number of goroutines
// concurrently. Transforms follow the row-vector convention (v' = v * M),
// so matrices compose left to right and translations live in row 4.
//
// Operations are constrained to the narrowest capability they need:
// component arithmetic accepts any Number, while inversion, normalization,
// and the rotation/projection factories require a Float element type.
// Degenerate numeric input (a singular matrix, a zero-length quaternion)
// is reported through ok booleans and NaN propagation rather than errors;
// malformed arguments to the projection factories panic.
//
// For float32 elements, matrix inversion routes through a specialized
// kernel selected at init from CPU capabilities. Set GMATH_NO_SIMD=1 to
// force the generic path.
package gmath
