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

// CreateBillboard builds a world matrix that positions an object at
// objectPosition rotated to face the camera. When the object coincides
// with the camera (facing direction shorter than the billboard epsilon)
// the negated camera forward vector is substituted, so the result is
// always finite.
func CreateBillboard[T Float](objectPosition, cameraPosition, cameraUp, cameraForward Vec3[T]) Mat4[T] {
	zaxis := objectPosition.Sub(cameraPosition)
	norm := zaxis.LengthSquared()
	if norm < billboardEpsilon[T]() {
		zaxis = cameraForward.Neg()
	} else {
		zaxis = zaxis.Scale(T(1) / sqrt(norm))
	}

	xaxis := cameraUp.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	var m Mat4[T]
	m.M11, m.M12, m.M13 = xaxis.X, xaxis.Y, xaxis.Z
	m.M21, m.M22, m.M23 = yaxis.X, yaxis.Y, yaxis.Z
	m.M31, m.M32, m.M33 = zaxis.X, zaxis.Y, zaxis.Z
	m.M41, m.M42, m.M43 = objectPosition.X, objectPosition.Y, objectPosition.Z
	m.M44 = 1
	return m
}

// CreateConstrainedBillboard builds a billboard that rotates only about
// rotateAxis. Degenerate configurations are guarded twice: if the facing
// direction is nearly parallel to the rotate axis, the object's forward
// axis is substituted; if that is nearly parallel too, a world axis picked
// by inspecting the rotate axis's z component is used instead.
func CreateConstrainedBillboard[T Float](objectPosition, cameraPosition, rotateAxis, cameraForward, objectForward Vec3[T]) Mat4[T] {
	faceDir := objectPosition.Sub(cameraPosition)
	norm := faceDir.LengthSquared()
	if norm < billboardEpsilon[T]() {
		faceDir = cameraForward.Neg()
	} else {
		faceDir = faceDir.Scale(T(1) / sqrt(norm))
	}

	yaxis := rotateAxis
	var xaxis, zaxis Vec3[T]

	dot := rotateAxis.Dot(faceDir)
	if Abs(dot) > billboardMinAngle[T]() {
		zaxis = objectForward

		dot = rotateAxis.Dot(zaxis)
		if Abs(dot) > billboardMinAngle[T]() {
			if Abs(rotateAxis.Z) > billboardMinAngle[T]() {
				zaxis = Vec3[T]{1, 0, 0}
			} else {
				zaxis = Vec3[T]{0, 0, -1}
			}
		}

		xaxis = rotateAxis.Cross(zaxis).Normalize()
		zaxis = xaxis.Cross(rotateAxis).Normalize()
	} else {
		xaxis = rotateAxis.Cross(faceDir).Normalize()
		zaxis = xaxis.Cross(yaxis).Normalize()
	}

	var m Mat4[T]
	m.M11, m.M12, m.M13 = xaxis.X, xaxis.Y, xaxis.Z
	m.M21, m.M22, m.M23 = yaxis.X, yaxis.Y, yaxis.Z
	m.M31, m.M32, m.M33 = zaxis.X, zaxis.Y, zaxis.Z
	m.M41, m.M42, m.M43 = objectPosition.X, objectPosition.Y, objectPosition.Z
	m.M44 = 1
	return m
}
