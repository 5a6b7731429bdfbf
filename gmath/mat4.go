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

// Mat4 is a 4x4 matrix with 16 elements in row-major order: Mrc is the
// element in row r, column c. Transforms use the row-vector convention
// (v' = v * M), so the translation of an affine transform lives in row 4
// (M41, M42, M43) and a Mat4[float32] is layout-compatible with
// [16]float32.
type Mat4[T Number] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// Mat4Identity returns the multiplicative identity matrix.
func Mat4Identity[T Number]() Mat4[T] {
	var m Mat4[T]
	m.M11 = 1
	m.M22 = 1
	m.M33 = 1
	m.M44 = 1
	return m
}

// IsIdentity reports whether m is exactly the identity matrix. This is an
// exact field comparison, not an epsilon test.
func (m Mat4[T]) IsIdentity() bool {
	return m == Mat4Identity[T]()
}

// Row returns row i (0-based) as a Vec4.
//
// Panics if i is not in [0, 3].
func (m Mat4[T]) Row(i int) Vec4[T] {
	switch i {
	case 0:
		return Vec4[T]{m.M11, m.M12, m.M13, m.M14}
	case 1:
		return Vec4[T]{m.M21, m.M22, m.M23, m.M24}
	case 2:
		return Vec4[T]{m.M31, m.M32, m.M33, m.M34}
	case 3:
		return Vec4[T]{m.M41, m.M42, m.M43, m.M44}
	}
	panic("gmath: matrix row index out of range")
}

// Col returns column j (0-based) as a Vec4.
//
// Panics if j is not in [0, 3].
func (m Mat4[T]) Col(j int) Vec4[T] {
	switch j {
	case 0:
		return Vec4[T]{m.M11, m.M21, m.M31, m.M41}
	case 1:
		return Vec4[T]{m.M12, m.M22, m.M32, m.M42}
	case 2:
		return Vec4[T]{m.M13, m.M23, m.M33, m.M43}
	case 3:
		return Vec4[T]{m.M14, m.M24, m.M34, m.M44}
	}
	panic("gmath: matrix column index out of range")
}

// SetRow replaces row i (0-based) with v and returns the updated matrix.
//
// Panics if i is not in [0, 3].
func (m Mat4[T]) SetRow(i int, v Vec4[T]) Mat4[T] {
	switch i {
	case 0:
		m.M11, m.M12, m.M13, m.M14 = v.X, v.Y, v.Z, v.W
	case 1:
		m.M21, m.M22, m.M23, m.M24 = v.X, v.Y, v.Z, v.W
	case 2:
		m.M31, m.M32, m.M33, m.M34 = v.X, v.Y, v.Z, v.W
	case 3:
		m.M41, m.M42, m.M43, m.M44 = v.X, v.Y, v.Z, v.W
	default:
		panic("gmath: matrix row index out of range")
	}
	return m
}

// Translation returns the translation component stored in row 4.
func (m Mat4[T]) Translation() Vec3[T] {
	return Vec3[T]{m.M41, m.M42, m.M43}
}

// WithTranslation returns m with the translation component replaced.
func (m Mat4[T]) WithTranslation(t Vec3[T]) Mat4[T] {
	m.M41, m.M42, m.M43 = t.X, t.Y, t.Z
	return m
}

// Add performs element-wise addition.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11 + o.M11, m.M12 + o.M12, m.M13 + o.M13, m.M14 + o.M14,
		m.M21 + o.M21, m.M22 + o.M22, m.M23 + o.M23, m.M24 + o.M24,
		m.M31 + o.M31, m.M32 + o.M32, m.M33 + o.M33, m.M34 + o.M34,
		m.M41 + o.M41, m.M42 + o.M42, m.M43 + o.M43, m.M44 + o.M44,
	}
}

// Sub performs element-wise subtraction.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11 - o.M11, m.M12 - o.M12, m.M13 - o.M13, m.M14 - o.M14,
		m.M21 - o.M21, m.M22 - o.M22, m.M23 - o.M23, m.M24 - o.M24,
		m.M31 - o.M31, m.M32 - o.M32, m.M33 - o.M33, m.M34 - o.M34,
		m.M41 - o.M41, m.M42 - o.M42, m.M43 - o.M43, m.M44 - o.M44,
	}
}

// Neg negates every element.
func (m Mat4[T]) Neg() Mat4[T] {
	return Mat4[T]{
		-m.M11, -m.M12, -m.M13, -m.M14,
		-m.M21, -m.M22, -m.M23, -m.M24,
		-m.M31, -m.M32, -m.M33, -m.M34,
		-m.M41, -m.M42, -m.M43, -m.M44,
	}
}

// MulScalar multiplies every element by s.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

// Mul returns the matrix product m * o: the full row-by-column multiply,
// sixty-four multiply-adds, no shortcuts.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31 + m.M14*o.M41,
		m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32 + m.M14*o.M42,
		m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33 + m.M14*o.M43,
		m.M11*o.M14 + m.M12*o.M24 + m.M13*o.M34 + m.M14*o.M44,

		m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31 + m.M24*o.M41,
		m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32 + m.M24*o.M42,
		m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33 + m.M24*o.M43,
		m.M21*o.M14 + m.M22*o.M24 + m.M23*o.M34 + m.M24*o.M44,

		m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31 + m.M34*o.M41,
		m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32 + m.M34*o.M42,
		m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33 + m.M34*o.M43,
		m.M31*o.M14 + m.M32*o.M24 + m.M33*o.M34 + m.M34*o.M44,

		m.M41*o.M11 + m.M42*o.M21 + m.M43*o.M31 + m.M44*o.M41,
		m.M41*o.M12 + m.M42*o.M22 + m.M43*o.M32 + m.M44*o.M42,
		m.M41*o.M13 + m.M42*o.M23 + m.M43*o.M33 + m.M44*o.M43,
		m.M41*o.M14 + m.M42*o.M24 + m.M43*o.M34 + m.M44*o.M44,
	}
}

// Transpose flips m about its diagonal (rows become columns).
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// Determinant computes the determinant by cofactor expansion along the
// first row. The six 2x2 sub-determinants of rows 3-4 are computed once
// and shared across the four cofactors.
func (m Mat4[T]) Determinant() T {
	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		d*(e*joKn-f*ioKm+g*inJm)
}

// Lerp interpolates every element of m toward o by amount t.
func (m Mat4[T]) Lerp(o Mat4[T], t T) Mat4[T] {
	return Mat4[T]{
		Lerp(m.M11, o.M11, t), Lerp(m.M12, o.M12, t), Lerp(m.M13, o.M13, t), Lerp(m.M14, o.M14, t),
		Lerp(m.M21, o.M21, t), Lerp(m.M22, o.M22, t), Lerp(m.M23, o.M23, t), Lerp(m.M24, o.M24, t),
		Lerp(m.M31, o.M31, t), Lerp(m.M32, o.M32, t), Lerp(m.M33, o.M33, t), Lerp(m.M34, o.M34, t),
		Lerp(m.M41, o.M41, t), Lerp(m.M42, o.M42, t), Lerp(m.M43, o.M43, t), Lerp(m.M44, o.M44, t),
	}
}
