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

func TestInvertIdentity(t *testing.T) {
	inv, ok := Invert(Mat4Identity[float64]())
	if !ok {
		t.Fatal("Invert(I) failed")
	}
	if !inv.IsIdentity() {
		t.Errorf("Invert(I) = %v", inv)
	}
}

func TestInvertRoundtrip(t *testing.T) {
	m := CreateScale(Vec3[float64]{X: 2, Y: 0.5, Z: 3}).
		Mul(CreateFromYawPitchRoll(0.3, -1.1, 0.6)).
		Mul(CreateTranslation(Vec3[float64]{X: 4, Y: -7, Z: 2}))

	inv, ok := Invert(m)
	if !ok {
		t.Fatal("Invert failed on invertible matrix")
	}
	mat4Near(t, m.Mul(inv), Mat4Identity[float64](), 1e-13)
	mat4Near(t, inv.Mul(m), Mat4Identity[float64](), 1e-13)
}

func TestInvertSingular(t *testing.T) {
	var zero Mat4[float64]
	inv, ok := Invert(zero)
	if ok {
		t.Error("Invert(0) reported success")
	}
	for i, v := range mat4Elems(inv) {
		if !math.IsNaN(v) {
			t.Errorf("element %d = %v, want NaN", i, v)
		}
	}

	// Rank-deficient but nonzero.
	singular := Mat4[float64]{
		1, 2, 3, 4,
		2, 4, 6, 8,
		1, 0, 0, 0,
		0, 0, 0, 1,
	}
	if _, ok := Invert(singular); ok {
		t.Error("Invert of rank-deficient matrix reported success")
	}
}

func TestInvertFloat32MatchesGeneric(t *testing.T) {
	m := Mat4[float32]{
		0.5, 1.25, -2, 3,
		1, -0.75, 2.5, 0.125,
		-1.5, 2, 0.25, 1,
		4, -0.5, 1, 2,
	}
	want, wantOK := invertGeneric(m)
	got, ok := Invert(m)
	if ok != wantOK {
		t.Fatalf("ok = %v, want %v", ok, wantOK)
	}
	// The float32 fast path performs the same operations in the same
	// order, so results are bit-identical.
	if mat4Elems(got) != mat4Elems(want) {
		t.Errorf("fast path result differs:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestInvertTranslationRotation(t *testing.T) {
	q := QuatFromAxisAngle(Vec3[float32]{X: 0, Y: 1, Z: 0}, 0.9)
	m := CreateFromQuaternion(q).
		Mul(CreateTranslation(Vec3[float32]{X: 1, Y: 2, Z: 3}))
	inv, ok := Invert(m)
	if !ok {
		t.Fatal("Invert failed")
	}
	prod := m.Mul(inv)
	for i, v := range mat4Elems(prod) {
		want := 0.0
		if i%5 == 0 {
			want = 1
		}
		if !near(float64(v), want, 1e-6) {
			t.Errorf("product element %d = %v, want %v", i, v, want)
		}
	}
}

func TestInvertNamedFloat32(t *testing.T) {
	type meters float32

	if minPositive[meters]() == 0 {
		t.Fatal("minPositive for named float32 type = 0")
	}

	var zero Mat4[meters]
	if _, ok := Invert(zero); ok {
		t.Error("Invert(0) with named element type reported success")
	}

	m := CreateTranslation(Vec3[meters]{X: 3, Y: -1, Z: 5})
	inv, ok := Invert(m)
	if !ok {
		t.Fatal("Invert failed on invertible matrix with named element type")
	}
	p := m.Mul(inv)
	for i, v := range mat4Elems(p) {
		want := mat4Elems(Mat4Identity[meters]())[i]
		if !near(float64(v), float64(want), 1e-6) {
			t.Errorf("product element %d = %v, want %v", i, v, want)
		}
	}
}

func TestFastPathEnv(t *testing.T) {
	t.Setenv("GMATH_NO_SIMD", "1")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv() = false with GMATH_NO_SIMD=1")
	}
	t.Setenv("GMATH_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() = true with empty GMATH_NO_SIMD")
	}
}
