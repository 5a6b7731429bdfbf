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

import "math"

// Per-element-type constants. The element type is always statically known at
// an instantiation site, so these resolve at compile time per instantiation;
// there is no runtime cache to initialize. Literals are staged through
// float64 variables so the conversion to T is a value conversion, valid for
// every member of the constraint.

func two[T Number]() T {
	var one T = 1
	return one + one
}

func half[T Float]() T {
	return T(1) / two[T]()
}

var (
	billboardEpsilonF64 = 1e-4
	// cos of the minimum angle between the rotate axis and the face
	// direction before the constrained billboard substitutes an axis.
	billboardMinAngleF64 = 0.99825467074800567042307630923151
	decomposeEpsilonF64  = 1e-4
	slerpEpsilonF64      = 1e-6
	// 1.0 + normalizeEpsilon != 1.0 in float32; used to skip
	// renormalizing an already-unit plane normal.
	normalizeEpsilonF64 = 1.192092896e-07
)

func billboardEpsilon[T Float]() T {
	return T(billboardEpsilonF64)
}

func billboardMinAngle[T Float]() T {
	return T(billboardMinAngleF64)
}

func decomposeEpsilon[T Float]() T {
	return T(decomposeEpsilonF64)
}

func slerpEpsilon[T Float]() T {
	return T(slerpEpsilonF64)
}

func normalizeEpsilon[T Float]() T {
	return T(normalizeEpsilonF64)
}

func piOf[T Float]() T {
	return T(math.Pi)
}

// minPositive returns the smallest representable positive value of T,
// the singularity threshold for matrix inversion.
func minPositive[T Float]() T {
	v := math.SmallestNonzeroFloat64
	if T(v) != 0 {
		return T(v)
	}
	// T is 32 bits wide (possibly a named type) and the float64 minimum
	// underflowed to zero in the conversion above.
	w := math.SmallestNonzeroFloat32
	return T(w)
}
