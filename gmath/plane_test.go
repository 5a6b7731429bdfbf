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
	"testing"
)

func TestPlaneFromPoints(t *testing.T) {
	// Counter-clockwise points in the XY plane produce a +Z normal.
	p := PlaneFromPoints(
		Vec3[float64]{X: 0, Y: 0, Z: 0},
		Vec3[float64]{X: 1, Y: 0, Z: 0},
		Vec3[float64]{X: 0, Y: 1, Z: 0},
	)
	vec3Near(t, p.Normal, Vec3[float64]{Z: 1}, 1e-15)
	if !near(float64(p.D), 0, 1e-15) {
		t.Errorf("D = %v, want 0", p.D)
	}

	// Offset plane z = 2.
	q := PlaneFromPoints(
		Vec3[float64]{X: 0, Y: 0, Z: 2},
		Vec3[float64]{X: 1, Y: 0, Z: 2},
		Vec3[float64]{X: 0, Y: 1, Z: 2},
	)
	if !near(float64(q.D), -2, 1e-15) {
		t.Errorf("D = %v, want -2", q.D)
	}
}

func TestPlaneNormalize(t *testing.T) {
	p := Plane[float64]{Normal: Vec3[float64]{X: 0, Y: 0, Z: 10}, D: 20}
	n := p.Normalize()
	vec3Near(t, n.Normal, Vec3[float64]{Z: 1}, 1e-15)
	if !near(float64(n.D), 2, 1e-15) {
		t.Errorf("D = %v, want 2", n.D)
	}

	// An already unit-length normal is returned untouched.
	u := Plane[float64]{Normal: Vec3[float64]{X: 1}, D: 5}
	if got := u.Normalize(); got != u {
		t.Errorf("Normalize of unit plane = %v, want %v", got, u)
	}
}

func TestPlaneDots(t *testing.T) {
	p := Plane[float64]{Normal: Vec3[float64]{Y: 1}, D: -3}

	// Signed distance of a point from the plane y = 3.
	if got := p.DotCoordinate(Vec3[float64]{X: 7, Y: 5, Z: 1}); got != 2 {
		t.Errorf("DotCoordinate = %v, want 2", got)
	}
	if got := p.DotNormal(Vec3[float64]{X: 2, Y: 4, Z: 6}); got != 4 {
		t.Errorf("DotNormal = %v, want 4", got)
	}
}

func TestCreateReflection(t *testing.T) {
	// Reflect across the XZ plane (y = 0).
	m := CreateReflection(Plane[float64]{Normal: Vec3[float64]{Y: 1}, D: 0})
	got := Vec3[float64]{X: 1, Y: 2, Z: 3}.Transform(m)
	vec3Near(t, got, Vec3[float64]{X: 1, Y: -2, Z: 3}, 1e-15)

	// Reflecting twice is the identity.
	mat4Near(t, m.Mul(m), Mat4Identity[float64](), 1e-15)

	// Offset plane y = 1.
	off := CreateReflection(Plane[float64]{Normal: Vec3[float64]{Y: 1}, D: -1})
	vec3Near(t, Vec3[float64]{Y: 3}.Transform(off), Vec3[float64]{Y: -1}, 1e-15)
}

func TestCreateShadow(t *testing.T) {
	// Light straight down onto the ground plane y = 0.
	light := Vec3[float64]{Y: 1}
	m := CreateShadow(light, Plane[float64]{Normal: Vec3[float64]{Y: 1}, D: 0})

	v := Vec3[float64]{X: 2, Y: 5, Z: -3}.ToVec4(1).Transform(m)
	proj := v.ToVec3().Scale(1 / v.W)
	vec3Near(t, proj, Vec3[float64]{X: 2, Y: 0, Z: -3}, 1e-15)

	// Points already on the plane stay put.
	w := Vec3[float64]{X: 4, Y: 0, Z: 1}.ToVec4(1).Transform(m)
	vec3Near(t, w.ToVec3().Scale(1/w.W), Vec3[float64]{X: 4, Y: 0, Z: 1}, 1e-15)
}
