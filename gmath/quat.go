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

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar part
// W. The identity rotation is (0, 0, 0, 1). The type does not enforce unit
// length; callers must Normalize explicitly after accumulating arithmetic.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// IsIdentity reports whether q is exactly the identity quaternion. This is
// an exact field comparison, not an epsilon test; normalize or round first
// when near-identity matters.
func (q Quat[T]) IsIdentity() bool {
	return q == Quat[T]{0, 0, 0, 1}
}

// Add performs component-wise addition.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// Sub performs component-wise subtraction.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// Neg negates all components. -q represents the same rotation as q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Scale multiplies all components by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Mul returns the Hamilton product q * o: the rotation o followed by q
// when rotating row vectors. With vector parts v1, v2 and scalar parts
// w1, w2 the product is (w1*v2 + w2*v1 + v1 x v2, w1*w2 - v1.v2).
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	cx := q.Y*o.Z - q.Z*o.Y
	cy := q.Z*o.X - q.X*o.Z
	cz := q.X*o.Y - q.Y*o.X

	dot := q.X*o.X + q.Y*o.Y + q.Z*o.Z

	return Quat[T]{
		q.X*o.W + o.X*q.W + cx,
		q.Y*o.W + o.Y*q.W + cy,
		q.Z*o.W + o.Z*q.W + cz,
		q.W*o.W - dot,
	}
}

// Div multiplies q by the inverse of o.
func (q Quat[T]) Div(o Quat[T]) Quat[T] {
	return q.Mul(o.Inverse())
}

// Dot returns the 4-component dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSquared returns the squared length of q.
func (q Quat[T]) LengthSquared() T {
	return q.Dot(q)
}

// Length returns the length of q.
func (q Quat[T]) Length() T {
	return sqrt(q.LengthSquared())
}

// Conjugate negates the vector part and keeps W. For a unit quaternion the
// conjugate is the inverse rotation.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the conjugate divided by the squared length. A zero
// quaternion produces non-finite components rather than an error; callers
// may test the result with IsNaN.
func (q Quat[T]) Inverse() Quat[T] {
	inv := T(1) / q.LengthSquared()
	return Quat[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Normalize returns q scaled to unit length. A zero quaternion produces NaN
// components.
func (q Quat[T]) Normalize() Quat[T] {
	inv := T(1) / q.Length()
	return Quat[T]{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QuatFromAxisAngle builds a rotation of angle radians about axis. The axis
// must be normalized by the caller; this is not checked.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	ha := angle * half[T]()
	s := sin(ha)
	c := cos(ha)
	return Quat[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatFromYawPitchRoll builds a rotation from Euler angles, composed roll
// first, then pitch, then yaw. The composition order fixes the rotation
// convention; do not reorder the terms.
func QuatFromYawPitchRoll[T Float](yaw, pitch, roll T) Quat[T] {
	h := half[T]()

	sr := sin(roll * h)
	cr := cos(roll * h)
	sp := sin(pitch * h)
	cp := cos(pitch * h)
	sy := sin(yaw * h)
	cy := cos(yaw * h)

	return Quat[T]{
		cy*sp*cr + sy*cp*sr,
		sy*cp*cr - cy*sp*sr,
		cy*cp*sr - sy*sp*cr,
		cy*cp*cr + sy*sp*sr,
	}
}

// QuatFromRotationMatrix extracts the rotation of m as a quaternion. The
// branch is selected by the matrix trace and the largest diagonal element so
// the square root argument is always safely positive.
func QuatFromRotationMatrix[T Float](m Mat4[T]) Quat[T] {
	trace := m.M11 + m.M22 + m.M33

	var q Quat[T]
	if trace > 0 {
		s := sqrt(trace + 1)
		q.W = s * half[T]()
		s = half[T]() / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	} else if m.M11 >= m.M22 && m.M11 >= m.M33 {
		s := sqrt(1 + m.M11 - m.M22 - m.M33)
		invS := half[T]() / s
		q.X = half[T]() * s
		q.Y = (m.M12 + m.M21) * invS
		q.Z = (m.M13 + m.M31) * invS
		q.W = (m.M23 - m.M32) * invS
	} else if m.M22 > m.M33 {
		s := sqrt(1 + m.M22 - m.M11 - m.M33)
		invS := half[T]() / s
		q.X = (m.M21 + m.M12) * invS
		q.Y = half[T]() * s
		q.Z = (m.M32 + m.M23) * invS
		q.W = (m.M31 - m.M13) * invS
	} else {
		s := sqrt(1 + m.M33 - m.M11 - m.M22)
		invS := half[T]() / s
		q.X = (m.M31 + m.M13) * invS
		q.Y = (m.M32 + m.M23) * invS
		q.Z = half[T]() * s
		q.W = (m.M12 - m.M21) * invS
	}
	return q
}

// QuatAngleBetween returns the rotation angle in radians between a and b,
// in [0, pi]. The dot product is clamped so rounding never pushes the arc
// cosine argument out of domain.
func QuatAngleBetween[T Float](a, b Quat[T]) T {
	d := Abs(a.Dot(b))
	var one T = 1
	d = Clamp(d, -one, one)
	return two[T]() * acos(d)
}

// Lerp blends q toward o by amount t component-wise and renormalizes. When
// the quaternions lie in opposite hemispheres (negative dot product) o's
// contribution is negated first so the blend takes the shorter path.
func (q Quat[T]) Lerp(o Quat[T], t T) Quat[T] {
	t1 := 1 - t

	var r Quat[T]
	if q.Dot(o) >= 0 {
		r = Quat[T]{
			t1*q.X + t*o.X,
			t1*q.Y + t*o.Y,
			t1*q.Z + t*o.Z,
			t1*q.W + t*o.W,
		}
	} else {
		r = Quat[T]{
			t1*q.X - t*o.X,
			t1*q.Y - t*o.Y,
			t1*q.Z - t*o.Z,
			t1*q.W - t*o.W,
		}
	}
	return r.Normalize()
}

// Slerp spherically interpolates from q to o by amount t. Nearly parallel
// inputs fall back to a linear blend of the weights, avoiding division by
// sin(omega) as it approaches zero; opposite-hemisphere inputs are flipped
// to take the shorter arc.
func (q Quat[T]) Slerp(o Quat[T], t T) Quat[T] {
	cosOmega := q.Dot(o)

	flip := false
	if cosOmega < 0 {
		flip = true
		cosOmega = -cosOmega
	}

	var s1, s2 T
	if cosOmega > 1-slerpEpsilon[T]() {
		// Too close: straight linear interpolation of the weights.
		s1 = 1 - t
		s2 = t
		if flip {
			s2 = -t
		}
	} else {
		omega := acos(cosOmega)
		invSinOmega := T(1) / sin(omega)

		s1 = sin((1-t)*omega) * invSinOmega
		s2 = sin(t*omega) * invSinOmega
		if flip {
			s2 = -s2
		}
	}

	return Quat[T]{
		s1*q.X + s2*o.X,
		s1*q.Y + s2*o.Y,
		s1*q.Z + s2*o.Z,
		s1*q.W + s2*o.W,
	}
}
