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

// Mat3x2 is a 3x2 matrix representing a 2D affine transform, row-major.
// Row 3 (M31, M32) holds the translation, mirroring Mat4's row-vector
// convention.
type Mat3x2[T Number] struct {
	M11, M12 T
	M21, M22 T
	M31, M32 T
}

// Mat3x2Identity returns the 2D identity transform.
func Mat3x2Identity[T Number]() Mat3x2[T] {
	var m Mat3x2[T]
	m.M11 = 1
	m.M22 = 1
	return m
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Mat3x2[T]) IsIdentity() bool {
	return m == Mat3x2Identity[T]()
}

// Translation returns the translation component in row 3.
func (m Mat3x2[T]) Translation() Vec2[T] {
	return Vec2[T]{m.M31, m.M32}
}

// Add performs element-wise addition.
func (m Mat3x2[T]) Add(o Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 + o.M11, m.M12 + o.M12,
		m.M21 + o.M21, m.M22 + o.M22,
		m.M31 + o.M31, m.M32 + o.M32,
	}
}

// Sub performs element-wise subtraction.
func (m Mat3x2[T]) Sub(o Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 - o.M11, m.M12 - o.M12,
		m.M21 - o.M21, m.M22 - o.M22,
		m.M31 - o.M31, m.M32 - o.M32,
	}
}

// Neg negates every element.
func (m Mat3x2[T]) Neg() Mat3x2[T] {
	return Mat3x2[T]{
		-m.M11, -m.M12,
		-m.M21, -m.M22,
		-m.M31, -m.M32,
	}
}

// MulScalar multiplies every element by s.
func (m Mat3x2[T]) MulScalar(s T) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 * s, m.M12 * s,
		m.M21 * s, m.M22 * s,
		m.M31 * s, m.M32 * s,
	}
}

// Mul composes two affine transforms: applying the result is equivalent to
// applying m, then o.
func (m Mat3x2[T]) Mul(o Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11*o.M11 + m.M12*o.M21,
		m.M11*o.M12 + m.M12*o.M22,

		m.M21*o.M11 + m.M22*o.M21,
		m.M21*o.M12 + m.M22*o.M22,

		m.M31*o.M11 + m.M32*o.M21 + o.M31,
		m.M31*o.M12 + m.M32*o.M22 + o.M32,
	}
}

// Determinant returns the determinant of the linear 2x2 part. For an
// affine transform this is the signed area scale factor.
func (m Mat3x2[T]) Determinant() T {
	return m.M11*m.M22 - m.M21*m.M12
}

// Lerp interpolates every element of m toward o by amount t.
func (m Mat3x2[T]) Lerp(o Mat3x2[T], t T) Mat3x2[T] {
	return Mat3x2[T]{
		Lerp(m.M11, o.M11, t), Lerp(m.M12, o.M12, t),
		Lerp(m.M21, o.M21, t), Lerp(m.M22, o.M22, t),
		Lerp(m.M31, o.M31, t), Lerp(m.M32, o.M32, t),
	}
}

// Invert3x2 computes the inverse transform of m. If m is degenerate
// (determinant magnitude below the smallest representable positive value
// of T) every element of the result is NaN and ok is false.
func Invert3x2[T Float](m Mat3x2[T]) (inv Mat3x2[T], ok bool) {
	det := m.Determinant()

	if Abs(det) < minPositive[T]() {
		q := nan[T]()
		return Mat3x2[T]{q, q, q, q, q, q}, false
	}

	invDet := T(1) / det

	return Mat3x2[T]{
		m.M22 * invDet,
		-m.M12 * invDet,
		-m.M21 * invDet,
		m.M11 * invDet,
		(m.M21*m.M32 - m.M31*m.M22) * invDet,
		(m.M31*m.M12 - m.M11*m.M32) * invDet,
	}, true
}

// CreateTranslation2D builds a 2D translation transform.
func CreateTranslation2D[T Number](position Vec2[T]) Mat3x2[T] {
	m := Mat3x2Identity[T]()
	m.M31 = position.X
	m.M32 = position.Y
	return m
}

// CreateScale2D builds a 2D per-axis scale transform.
func CreateScale2D[T Number](scale Vec2[T]) Mat3x2[T] {
	var m Mat3x2[T]
	m.M11 = scale.X
	m.M22 = scale.Y
	return m
}

// CreateScale2DAround builds a 2D scale transform about centerPoint.
func CreateScale2DAround[T Number](scale Vec2[T], centerPoint Vec2[T]) Mat3x2[T] {
	m := CreateScale2D(scale)
	m.M31 = centerPoint.X * (1 - scale.X)
	m.M32 = centerPoint.Y * (1 - scale.Y)
	return m
}

// CreateRotation2D builds a 2D rotation of radians about the origin.
// Angles within a thousandth of a degree of a quarter turn snap to the exact
// 0/±1 entries, so chained right-angle rotations stay exact.
func CreateRotation2D[T Float](radians T) Mat3x2[T] {
	radians = remainder(radians, two[T]()*piOf[T]())
	rotationEpsilon := T(0.001) * piOf[T]() / 180

	var c, s T
	switch {
	case radians > -rotationEpsilon && radians < rotationEpsilon:
		c, s = 1, 0
	case radians > piOf[T]()*half[T]()-rotationEpsilon && radians < piOf[T]()*half[T]()+rotationEpsilon:
		c, s = 0, 1
	case radians < -piOf[T]()+rotationEpsilon || radians > piOf[T]()-rotationEpsilon:
		c, s = -1, 0
	case radians > -piOf[T]()*half[T]()-rotationEpsilon && radians < -piOf[T]()*half[T]()+rotationEpsilon:
		c, s = 0, -1
	default:
		c = cos(radians)
		s = sin(radians)
	}

	var m Mat3x2[T]
	m.M11 = c
	m.M12 = s
	m.M21 = -s
	m.M22 = c
	return m
}

// CreateRotation2DAround builds a 2D rotation about centerPoint.
func CreateRotation2DAround[T Float](radians T, centerPoint Vec2[T]) Mat3x2[T] {
	m := CreateRotation2D(radians)
	c := m.M11
	s := m.M12
	m.M31 = centerPoint.X*(1-c) + centerPoint.Y*s
	m.M32 = centerPoint.Y*(1-c) - centerPoint.X*s
	return m
}

// CreateSkew2D builds a 2D skew transform with the given tangent angles in
// radians.
func CreateSkew2D[T Float](radiansX, radiansY T) Mat3x2[T] {
	m := Mat3x2Identity[T]()
	m.M12 = tan(radiansY)
	m.M21 = tan(radiansX)
	return m
}

// CreateSkew2DAround builds a 2D skew transform about centerPoint.
func CreateSkew2DAround[T Float](radiansX, radiansY T, centerPoint Vec2[T]) Mat3x2[T] {
	m := CreateSkew2D(radiansX, radiansY)
	m.M31 = -centerPoint.Y * m.M21
	m.M32 = -centerPoint.X * m.M12
	return m
}
