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

// Vec4 is a 4-element vector. Field order matches memory layout, so a
// Vec4[float32] is layout-compatible with [4]float32 and with 128-bit
// vector registers.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

// Add performs component-wise addition.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub performs component-wise subtraction.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul performs component-wise multiplication.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div performs component-wise division.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// Scale multiplies all components by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Neg negates all components.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Abs returns the component-wise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns the squared Euclidean length.
func (v Vec4[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length. For integer element types the result
// truncates toward zero.
func (v Vec4[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Distance returns the Euclidean distance between v and o.
func (v Vec4[T]) Distance(o Vec4[T]) T {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length. A zero vector produces NaN
// components for floating-point element types.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Length()
	return Vec4[T]{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Min returns the component-wise minimum of v and o.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	return Vec4[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z), min(v.W, o.W)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	return Vec4[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z), max(v.W, o.W)}
}

// Clamp limits each component to the corresponding interval [lo, hi].
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return Vec4[T]{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
		Clamp(v.W, lo.W, hi.W),
	}
}

// Lerp linearly interpolates between v and o by amount t.
func (v Vec4[T]) Lerp(o Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		Lerp(v.X, o.X, t),
		Lerp(v.Y, o.Y, t),
		Lerp(v.Z, o.Z, t),
		Lerp(v.W, o.W, t),
	}
}

// ToVec3 drops the w component.
func (v Vec4[T]) ToVec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// Transform applies m to the row vector v (v' = v * M).
func (v Vec4[T]) Transform(m Mat4[T]) Vec4[T] {
	return Vec4[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}
