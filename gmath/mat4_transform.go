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

// CreateTranslation builds a translation matrix. The offset occupies row 4,
// per the row-vector convention.
func CreateTranslation[T Number](position Vec3[T]) Mat4[T] {
	m := Mat4Identity[T]()
	m.M41 = position.X
	m.M42 = position.Y
	m.M43 = position.Z
	return m
}

// CreateScale builds a per-axis scale matrix.
func CreateScale[T Number](scale Vec3[T]) Mat4[T] {
	var m Mat4[T]
	m.M11 = scale.X
	m.M22 = scale.Y
	m.M33 = scale.Z
	m.M44 = 1
	return m
}

// CreateScaleUniform builds a uniform scale matrix.
func CreateScaleUniform[T Number](scale T) Mat4[T] {
	return CreateScale(Vec3[T]{scale, scale, scale})
}

// CreateScaleAround builds a scale matrix that scales about centerPoint
// instead of the origin.
func CreateScaleAround[T Number](scale Vec3[T], centerPoint Vec3[T]) Mat4[T] {
	m := CreateScale(scale)
	m.M41 = centerPoint.X * (1 - scale.X)
	m.M42 = centerPoint.Y * (1 - scale.Y)
	m.M43 = centerPoint.Z * (1 - scale.Z)
	return m
}

// CreateRotationX builds a rotation of radians about the x-axis.
func CreateRotationX[T Float](radians T) Mat4[T] {
	c := cos(radians)
	s := sin(radians)

	m := Mat4Identity[T]()
	m.M22 = c
	m.M23 = s
	m.M32 = -s
	m.M33 = c
	return m
}

// CreateRotationXAround builds a rotation about the x-axis pivoting on
// centerPoint.
func CreateRotationXAround[T Float](radians T, centerPoint Vec3[T]) Mat4[T] {
	m := CreateRotationX(radians)
	c := m.M22
	s := m.M23
	m.M42 = centerPoint.Y*(1-c) + centerPoint.Z*s
	m.M43 = centerPoint.Z*(1-c) - centerPoint.Y*s
	return m
}

// CreateRotationY builds a rotation of radians about the y-axis.
func CreateRotationY[T Float](radians T) Mat4[T] {
	c := cos(radians)
	s := sin(radians)

	m := Mat4Identity[T]()
	m.M11 = c
	m.M13 = -s
	m.M31 = s
	m.M33 = c
	return m
}

// CreateRotationYAround builds a rotation about the y-axis pivoting on
// centerPoint.
func CreateRotationYAround[T Float](radians T, centerPoint Vec3[T]) Mat4[T] {
	m := CreateRotationY(radians)
	c := m.M11
	s := m.M31
	m.M41 = centerPoint.X*(1-c) - centerPoint.Z*s
	m.M43 = centerPoint.Z*(1-c) + centerPoint.X*s
	return m
}

// CreateRotationZ builds a rotation of radians about the z-axis.
func CreateRotationZ[T Float](radians T) Mat4[T] {
	c := cos(radians)
	s := sin(radians)

	m := Mat4Identity[T]()
	m.M11 = c
	m.M12 = s
	m.M21 = -s
	m.M22 = c
	return m
}

// CreateRotationZAround builds a rotation about the z-axis pivoting on
// centerPoint.
func CreateRotationZAround[T Float](radians T, centerPoint Vec3[T]) Mat4[T] {
	m := CreateRotationZ(radians)
	c := m.M11
	s := m.M12
	m.M41 = centerPoint.X*(1-c) + centerPoint.Y*s
	m.M42 = centerPoint.Y*(1-c) - centerPoint.X*s
	return m
}

// CreateFromAxisAngle builds a rotation of angle radians about the given
// axis. The axis must be normalized by the caller; this is not checked.
func CreateFromAxisAngle[T Float](axis Vec3[T], angle T) Mat4[T] {
	x, y, z := axis.X, axis.Y, axis.Z
	sa := sin(angle)
	ca := cos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	var m Mat4[T]
	m.M11 = xx + ca*(1-xx)
	m.M12 = xy - ca*xy + sa*z
	m.M13 = xz - ca*xz - sa*y
	m.M21 = xy - ca*xy - sa*z
	m.M22 = yy + ca*(1-yy)
	m.M23 = yz - ca*yz + sa*x
	m.M31 = xz - ca*xz + sa*y
	m.M32 = yz - ca*yz - sa*x
	m.M33 = zz + ca*(1-zz)
	m.M44 = 1
	return m
}

// CreateFromQuaternion builds the rotation matrix equivalent to q.
func CreateFromQuaternion[T Float](q Quat[T]) Mat4[T] {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z

	xy := q.X * q.Y
	wz := q.Z * q.W
	xz := q.Z * q.X
	wy := q.Y * q.W
	yz := q.Y * q.Z
	wx := q.X * q.W

	var m Mat4[T]
	m.M11 = 1 - two[T]()*(yy+zz)
	m.M12 = two[T]() * (xy + wz)
	m.M13 = two[T]() * (xz - wy)
	m.M21 = two[T]() * (xy - wz)
	m.M22 = 1 - two[T]()*(zz+xx)
	m.M23 = two[T]() * (yz + wx)
	m.M31 = two[T]() * (xz + wy)
	m.M32 = two[T]() * (yz - wx)
	m.M33 = 1 - two[T]()*(yy+xx)
	m.M44 = 1
	return m
}

// CreateFromYawPitchRoll builds a rotation matrix from Euler angles,
// composed roll first, then pitch, then yaw.
func CreateFromYawPitchRoll[T Float](yaw, pitch, roll T) Mat4[T] {
	return CreateFromQuaternion(QuatFromYawPitchRoll(yaw, pitch, roll))
}

// CreateWorld builds a world matrix positioning an object at position,
// facing along forward, with the given up direction. forward and up need
// not be orthogonal; an orthonormal basis is derived from them.
func CreateWorld[T Float](position, forward, up Vec3[T]) Mat4[T] {
	zaxis := forward.Neg().Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	var m Mat4[T]
	m.M11, m.M12, m.M13 = xaxis.X, xaxis.Y, xaxis.Z
	m.M21, m.M22, m.M23 = yaxis.X, yaxis.Y, yaxis.Z
	m.M31, m.M32, m.M33 = zaxis.X, zaxis.Y, zaxis.Z
	m.M41, m.M42, m.M43 = position.X, position.Y, position.Z
	m.M44 = 1
	return m
}

// CreateLookAt builds a right-handed view matrix for a camera at
// cameraPosition looking at cameraTarget. The basis axes fill the columns
// and row 4 holds the negated dot of each axis with the camera position,
// which is what maps world coordinates into the camera frame under the
// row-vector convention.
func CreateLookAt[T Float](cameraPosition, cameraTarget, cameraUp Vec3[T]) Mat4[T] {
	zaxis := cameraPosition.Sub(cameraTarget).Normalize()
	xaxis := cameraUp.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	var m Mat4[T]
	m.M11, m.M12, m.M13 = xaxis.X, yaxis.X, zaxis.X
	m.M21, m.M22, m.M23 = xaxis.Y, yaxis.Y, zaxis.Y
	m.M31, m.M32, m.M33 = xaxis.Z, yaxis.Z, zaxis.Z
	m.M41 = -xaxis.Dot(cameraPosition)
	m.M42 = -yaxis.Dot(cameraPosition)
	m.M43 = -zaxis.Dot(cameraPosition)
	m.M44 = 1
	return m
}
