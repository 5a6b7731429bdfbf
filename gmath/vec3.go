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

// Vec3 is a 3-element vector. Field order matches memory layout, so a
// Vec3[float32] is layout-compatible with [3]float32.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Add performs component-wise addition.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub performs component-wise subtraction.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul performs component-wise multiplication.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div performs component-wise division.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Scale multiplies all components by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Neg negates all components.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Abs returns the component-wise absolute value.
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o, a vector orthogonal to both.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared Euclidean length.
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length. For integer element types the result
// truncates toward zero.
func (v Vec3[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3[T]) Distance(o Vec3[T]) T {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length. A zero vector produces NaN
// components for floating-point element types; callers relying on finite
// output must check the input first.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	return Vec3[T]{v.X / l, v.Y / l, v.Z / l}
}

// Min returns the component-wise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Clamp limits each component to the corresponding interval [lo, hi].
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Lerp linearly interpolates between v and o by amount t.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		Lerp(v.X, o.X, t),
		Lerp(v.Y, o.Y, t),
		Lerp(v.Z, o.Z, t),
	}
}

// Reflect reflects v off the surface with normal n. n is assumed to be
// normalized.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	d := two[T]() * v.Dot(n)
	return Vec3[T]{v.X - d*n.X, v.Y - d*n.Y, v.Z - d*n.Z}
}

// ToVec4 widens v with the given w component.
func (v Vec3[T]) ToVec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// Transform applies m to the point v (row-vector convention, implicit
// fourth component of one).
func (v Vec3[T]) Transform(m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal applies only the rotation/scale part of m to the
// direction v, ignoring translation.
func (v Vec3[T]) TransformNormal(m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// RotateVec3 rotates v by the quaternion q.
func RotateVec3[T Float](v Vec3[T], q Quat[T]) Vec3[T] {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	wx2 := q.W * x2
	wy2 := q.W * y2
	wz2 := q.W * z2
	xx2 := q.X * x2
	xy2 := q.X * y2
	xz2 := q.X * z2
	yy2 := q.Y * y2
	yz2 := q.Y * z2
	zz2 := q.Z * z2

	return Vec3[T]{
		v.X*(1-yy2-zz2) + v.Y*(xy2-wz2) + v.Z*(xz2+wy2),
		v.X*(xy2+wz2) + v.Y*(1-xx2-zz2) + v.Z*(yz2-wx2),
		v.X*(xz2-wy2) + v.Y*(yz2+wx2) + v.Z*(1-xx2-yy2),
	}
}

// AngleBetween returns the angle in radians between v and o. The cosine is
// clamped to [-1, 1] before the arc cosine, so accumulated floating-point
// error at the parallel/antiparallel boundary yields exactly 0 or pi rather
// than NaN.
func AngleBetween[T Float](v, o Vec3[T]) T {
	c := v.Dot(o) / (v.Length() * o.Length())
	var one T = 1
	c = Clamp(c, -one, one)
	return acos(c)
}
