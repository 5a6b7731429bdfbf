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
	"testing"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vec3Near[T Float](t *testing.T, got, want Vec3[T], tol float64) {
	t.Helper()
	if !near(float64(got.X), float64(want.X), tol) ||
		!near(float64(got.Y), float64(want.Y), tol) ||
		!near(float64(got.Z), float64(want.Z), tol) {
		t.Errorf("vec = %v, want %v", got, want)
	}
}

func vec4Near[T Float](t *testing.T, got, want Vec4[T], tol float64) {
	t.Helper()
	if !near(float64(got.X), float64(want.X), tol) ||
		!near(float64(got.Y), float64(want.Y), tol) ||
		!near(float64(got.Z), float64(want.Z), tol) ||
		!near(float64(got.W), float64(want.W), tol) {
		t.Errorf("vec = %v, want %v", got, want)
	}
}

func quatNear[T Float](t *testing.T, got, want Quat[T], tol float64) {
	t.Helper()
	if !near(float64(got.X), float64(want.X), tol) ||
		!near(float64(got.Y), float64(want.Y), tol) ||
		!near(float64(got.Z), float64(want.Z), tol) ||
		!near(float64(got.W), float64(want.W), tol) {
		t.Errorf("quat = %v, want %v", got, want)
	}
}

// quatEquiv passes when got equals want or its negation; q and -q encode
// the same rotation.
func quatEquiv[T Float](t *testing.T, got, want Quat[T], tol float64) {
	t.Helper()
	same := near(float64(got.X), float64(want.X), tol) &&
		near(float64(got.Y), float64(want.Y), tol) &&
		near(float64(got.Z), float64(want.Z), tol) &&
		near(float64(got.W), float64(want.W), tol)
	flip := near(float64(got.X), float64(-want.X), tol) &&
		near(float64(got.Y), float64(-want.Y), tol) &&
		near(float64(got.Z), float64(-want.Z), tol) &&
		near(float64(got.W), float64(-want.W), tol)
	if !same && !flip {
		t.Errorf("quat = %v, want %v (or its negation)", got, want)
	}
}

func mat4Near[T Float](t *testing.T, got, want Mat4[T], tol float64) {
	t.Helper()
	ga, wa := mat4Elems(got), mat4Elems(want)
	for i := range ga {
		if !near(float64(ga[i]), float64(wa[i]), tol) {
			t.Errorf("matrix element %d = %v, want %v\ngot:  %v\nwant: %v",
				i, ga[i], wa[i], got, want)
			return
		}
	}
}

func mat4Elems[T Number](m Mat4[T]) [16]T {
	return [16]T{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
