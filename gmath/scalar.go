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

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint shared by all vector and matrix types:
// any fixed-size integer or floating-point kind. Operations that only need
// field arithmetic (+ - * /) are declared against Number; operations that
// need roots, trigonometry, or NaN semantics take the narrower Float.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts an operation to floating-point element types. Inversion,
// normalization, rotation factories, and everything else that can produce
// NaN or calls into math.Sqrt/Sin/Cos is bounded by Float.
type Float interface {
	~float32 | ~float64
}

// Signed admits every element type for which negation is meaningful:
// signed integers and floats.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Integer restricts an operation to integer element types (bitwise and
// exact-division semantics).
type Integer interface {
	constraints.Integer
}

// Scalar math helpers routed through float64, in the spirit of the usual
// per-type wrappers graphics code carries. For integer element types the
// result truncates toward zero.

func sqrt[T Number](v T) T {
	return T(math.Sqrt(float64(v)))
}

func sin[T Float](v T) T {
	return T(math.Sin(float64(v)))
}

func cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

func tan[T Float](v T) T {
	return T(math.Tan(float64(v)))
}

func acos[T Float](v T) T {
	return T(math.Acos(float64(v)))
}

func remainder[T Float](x, y T) T {
	return T(math.Remainder(float64(x), float64(y)))
}

// Abs returns the absolute value of v. For unsigned types v is returned
// unchanged.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the interval [lo, hi]. Assumes lo <= hi.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by amount t. t is not clamped;
// values outside [0, 1] extrapolate.
func Lerp[T Number](a, b, t T) T {
	return a + (b-a)*t
}

// IsNaN reports whether v is an IEEE 754 "not-a-number" value. Always false
// for integer element types.
func IsNaN[T Number](v T) bool {
	return v != v
}

// nan returns a quiet NaN of the element type. Only meaningful for Float.
func nan[T Float]() T {
	return T(math.NaN())
}

// isInf reports whether v is +Inf.
func isPosInf[T Float](v T) bool {
	return math.IsInf(float64(v), 1)
}
