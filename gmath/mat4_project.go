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

// negFarRange computes far/(near-far), collapsing to -1 when far is
// positive infinity. Without the branch an infinite far plane would yield
// inf/inf = NaN; with it, infinite-far projections are well defined.
func negFarRange[T Float](near, far T) T {
	if isPosInf(far) {
		return -1
	}
	return far / (near - far)
}

func checkPerspectivePlanes[T Float](near, far T) {
	if near <= 0 {
		panic("gmath: nearPlaneDistance must be positive")
	}
	if far <= 0 {
		panic("gmath: farPlaneDistance must be positive")
	}
	if near >= far {
		panic("gmath: nearPlaneDistance must be less than farPlaneDistance")
	}
}

// CreatePerspective builds a right-handed perspective projection from the
// width and height of the view volume at the near plane.
//
// farPlaneDistance may be positive infinity, producing a projection whose
// far-range coefficient is exactly -1.
//
// Panics if:
//   - nearPlaneDistance <= 0
//   - farPlaneDistance <= 0
//   - nearPlaneDistance >= farPlaneDistance
func CreatePerspective[T Float](width, height, nearPlaneDistance, farPlaneDistance T) Mat4[T] {
	checkPerspectivePlanes(nearPlaneDistance, farPlaneDistance)

	nfr := negFarRange(nearPlaneDistance, farPlaneDistance)

	var m Mat4[T]
	m.M11 = two[T]() * nearPlaneDistance / width
	m.M22 = two[T]() * nearPlaneDistance / height
	m.M33 = nfr
	m.M34 = -1
	m.M43 = nearPlaneDistance * nfr
	return m
}

// CreatePerspectiveFieldOfView builds a right-handed perspective projection
// from a vertical field of view and aspect ratio.
//
// Panics if:
//   - fieldOfView is not in (0, pi)
//   - nearPlaneDistance <= 0
//   - farPlaneDistance <= 0
//   - nearPlaneDistance >= farPlaneDistance
func CreatePerspectiveFieldOfView[T Float](fieldOfView, aspectRatio, nearPlaneDistance, farPlaneDistance T) Mat4[T] {
	pi := piOf[T]()
	if fieldOfView <= 0 || fieldOfView >= pi {
		panic("gmath: fieldOfView must be in (0, pi)")
	}
	checkPerspectivePlanes(nearPlaneDistance, farPlaneDistance)

	yScale := T(1) / tan(fieldOfView*half[T]())
	xScale := yScale / aspectRatio
	nfr := negFarRange(nearPlaneDistance, farPlaneDistance)

	var m Mat4[T]
	m.M11 = xScale
	m.M22 = yScale
	m.M33 = nfr
	m.M34 = -1
	m.M43 = nearPlaneDistance * nfr
	return m
}

// CreatePerspectiveOffCenter builds a right-handed perspective projection
// from an asymmetric view volume.
//
// Panics if:
//   - nearPlaneDistance <= 0
//   - farPlaneDistance <= 0
//   - nearPlaneDistance >= farPlaneDistance
func CreatePerspectiveOffCenter[T Float](left, right, bottom, top, nearPlaneDistance, farPlaneDistance T) Mat4[T] {
	checkPerspectivePlanes(nearPlaneDistance, farPlaneDistance)

	nfr := negFarRange(nearPlaneDistance, farPlaneDistance)

	var m Mat4[T]
	m.M11 = two[T]() * nearPlaneDistance / (right - left)
	m.M22 = two[T]() * nearPlaneDistance / (top - bottom)
	m.M31 = (left + right) / (right - left)
	m.M32 = (top + bottom) / (top - bottom)
	m.M33 = nfr
	m.M34 = -1
	m.M43 = nearPlaneDistance * nfr
	return m
}

// CreateOrthographic builds a right-handed orthographic projection centered
// on the origin. Unlike the perspective family, negative plane distances
// are legal here; only a degenerate depth range is rejected.
//
// Panics if zNearPlane == zFarPlane.
func CreateOrthographic[T Float](width, height, zNearPlane, zFarPlane T) Mat4[T] {
	if zNearPlane == zFarPlane {
		panic("gmath: zNearPlane must differ from zFarPlane")
	}

	var m Mat4[T]
	m.M11 = two[T]() / width
	m.M22 = two[T]() / height
	m.M33 = T(1) / (zNearPlane - zFarPlane)
	m.M43 = zNearPlane / (zNearPlane - zFarPlane)
	m.M44 = 1
	return m
}

// CreateOrthographicOffCenter builds a right-handed orthographic projection
// from an asymmetric view volume.
//
// Panics if zNearPlane == zFarPlane.
func CreateOrthographicOffCenter[T Float](left, right, bottom, top, zNearPlane, zFarPlane T) Mat4[T] {
	if zNearPlane == zFarPlane {
		panic("gmath: zNearPlane must differ from zFarPlane")
	}

	var m Mat4[T]
	m.M11 = two[T]() / (right - left)
	m.M22 = two[T]() / (top - bottom)
	m.M33 = T(1) / (zNearPlane - zFarPlane)
	m.M41 = (left + right) / (left - right)
	m.M42 = (top + bottom) / (bottom - top)
	m.M43 = zNearPlane / (zNearPlane - zFarPlane)
	m.M44 = 1
	return m
}
