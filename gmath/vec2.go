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

// Vec2 is a 2-element vector. Field order matches memory layout, so a
// Vec2[float32] is layout-compatible with [2]float32.
type Vec2[T Number] struct {
	X, Y T
}

// Add performs component-wise addition.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + o.X, v.Y + o.Y}
}

// Sub performs component-wise subtraction.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - o.X, v.Y - o.Y}
}

// Mul performs component-wise multiplication.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * o.X, v.Y * o.Y}
}

// Div performs component-wise division.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X / o.X, v.Y / o.Y}
}

// Scale multiplies both components by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// Neg negates both components.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Abs returns the component-wise absolute value.
func (v Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{Abs(v.X), Abs(v.Y)}
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns the squared Euclidean length.
func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length. For integer element types the result
// truncates toward zero.
func (v Vec2[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2[T]) Distance(o Vec2[T]) T {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length. A zero vector produces NaN
// components for floating-point element types; callers relying on finite
// output must check the input first.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Length()
	return Vec2[T]{v.X / l, v.Y / l}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{min(v.X, o.X), min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{max(v.X, o.X), max(v.Y, o.Y)}
}

// Clamp limits each component to the corresponding interval [lo, hi].
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// Lerp linearly interpolates between v and o by amount t.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	return Vec2[T]{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Reflect reflects v off the surface with normal n. n is assumed to be
// normalized.
func (v Vec2[T]) Reflect(n Vec2[T]) Vec2[T] {
	d := v.Dot(n)
	return Vec2[T]{v.X - two[T]()*d*n.X, v.Y - two[T]()*d*n.Y}
}

// Transform applies the 3x2 affine transform m to the point v
// (row-vector convention, implicit third component of one).
func (v Vec2[T]) Transform(m Mat3x2[T]) Vec2[T] {
	return Vec2[T]{
		v.X*m.M11 + v.Y*m.M21 + m.M31,
		v.X*m.M12 + v.Y*m.M22 + m.M32,
	}
}

// TransformNormal applies only the linear part of m to the direction v.
func (v Vec2[T]) TransformNormal(m Mat3x2[T]) Vec2[T] {
	return Vec2[T]{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}
