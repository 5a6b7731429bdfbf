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

func TestCreateTranslationScale(t *testing.T) {
	v := Vec3[float64]{X: 1, Y: 2, Z: 3}

	m := CreateTranslation(Vec3[float64]{X: 10, Y: 20, Z: 30})
	vec3Near(t, v.Transform(m), Vec3[float64]{X: 11, Y: 22, Z: 33}, 0)

	s := CreateScale(Vec3[float64]{X: 2, Y: 3, Z: 4})
	vec3Near(t, v.Transform(s), Vec3[float64]{X: 2, Y: 6, Z: 12}, 0)

	u := CreateScaleUniform[float64](5)
	vec3Near(t, v.Transform(u), v.Scale(5), 0)
}

func TestCreateScaleAround(t *testing.T) {
	center := Vec3[float64]{X: 1, Y: 1, Z: 1}
	m := CreateScaleAround(Vec3[float64]{X: 2, Y: 2, Z: 2}, center)

	// The center point is fixed.
	vec3Near(t, center.Transform(m), center, 0)
	vec3Near(t, Vec3[float64]{X: 2, Y: 1, Z: 1}.Transform(m),
		Vec3[float64]{X: 3, Y: 1, Z: 1}, 0)
}

func TestCreateRotationAxes(t *testing.T) {
	const quarter = math.Pi / 2

	vec3Near(t, Vec3[float64]{Y: 1}.Transform(CreateRotationX(quarter)),
		Vec3[float64]{Z: 1}, 1e-15)
	vec3Near(t, Vec3[float64]{Z: 1}.Transform(CreateRotationY(quarter)),
		Vec3[float64]{X: 1}, 1e-15)
	vec3Near(t, Vec3[float64]{X: 1}.Transform(CreateRotationZ(quarter)),
		Vec3[float64]{Y: 1}, 1e-15)
}

func TestCreateRotationAround(t *testing.T) {
	center := Vec3[float64]{X: 5, Y: 5, Z: 0}
	m := CreateRotationZAround(math.Pi/2, center)
	vec3Near(t, center.Transform(m), center, 1e-15)
	vec3Near(t, Vec3[float64]{X: 6, Y: 5, Z: 0}.Transform(m),
		Vec3[float64]{X: 5, Y: 6, Z: 0}, 1e-14)
}

func TestCreateFromAxisAngleMatchesAxisRotations(t *testing.T) {
	angle := 1.234
	mat4Near(t, CreateFromAxisAngle(Vec3[float64]{X: 1}, angle),
		CreateRotationX(angle), 1e-15)
	mat4Near(t, CreateFromAxisAngle(Vec3[float64]{Y: 1}, angle),
		CreateRotationY(angle), 1e-15)
	mat4Near(t, CreateFromAxisAngle(Vec3[float64]{Z: 1}, angle),
		CreateRotationZ(angle), 1e-15)
}

func TestCreateFromQuaternionMatchesRotateVec3(t *testing.T) {
	q := QuatFromYawPitchRoll(0.7, -0.2, 1.5)
	m := CreateFromQuaternion(q)
	v := Vec3[float64]{X: 1, Y: -2, Z: 0.5}
	vec3Near(t, v.Transform(m), RotateVec3(v, q), 1e-14)
}

func TestCreateFromYawPitchRollMatchesQuat(t *testing.T) {
	yaw, pitch, roll := 0.4, 0.9, -0.6
	mat4Near(t, CreateFromYawPitchRoll(yaw, pitch, roll),
		CreateFromQuaternion(QuatFromYawPitchRoll(yaw, pitch, roll)), 1e-15)
}

func TestCreateWorld(t *testing.T) {
	pos := Vec3[float64]{X: 1, Y: 2, Z: 3}
	m := CreateWorld(pos, Vec3[float64]{Z: -1}, Vec3[float64]{Y: 1})
	if got := m.Translation(); got != pos {
		t.Errorf("translation = %v, want %v", got, pos)
	}
	// Facing -Z with +Y up is the identity orientation.
	mat4Near(t, m, CreateTranslation(pos), 1e-15)
}

func TestCreateLookAt(t *testing.T) {
	eye := Vec3[float64]{X: 0, Y: 0, Z: 5}
	m := CreateLookAt(eye, Vec3[float64]{}, Vec3[float64]{Y: 1})

	// The camera position maps to the view-space origin.
	vec3Near(t, eye.Transform(m), Vec3[float64]{}, 1e-15)
	// A point in front of the camera lands on the negative Z axis.
	vec3Near(t, Vec3[float64]{}.Transform(m), Vec3[float64]{Z: -5}, 1e-15)
	// Up stays up.
	vec3Near(t, Vec3[float64]{Y: 1}.TransformNormal(m), Vec3[float64]{Y: 1}, 1e-15)
}
