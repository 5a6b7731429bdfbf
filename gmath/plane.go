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

// Plane is the set of points p with Dot(Normal, p) + D == 0.
type Plane[T Float] struct {
	Normal Vec3[T]
	D      T
}

// PlaneFromPoints builds the plane through three non-collinear points,
// wound counter-clockwise.
func PlaneFromPoints[T Float](a, b, c Vec3[T]) Plane[T] {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane[T]{Normal: n, D: -n.Dot(a)}
}

// Normalize scales the plane so its normal has unit length, adjusting D to
// keep the same point set. An already-normalized plane is returned
// unchanged.
func (p Plane[T]) Normalize() Plane[T] {
	n2 := p.Normal.LengthSquared()
	if Abs(n2-1) < normalizeEpsilon[T]() {
		return p
	}
	inv := T(1) / sqrt(n2)
	return Plane[T]{
		Normal: p.Normal.Scale(inv),
		D:      p.D * inv,
	}
}

// DotCoordinate returns the signed distance from point to the plane
// (assuming a normalized plane).
func (p Plane[T]) DotCoordinate(point Vec3[T]) T {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns the dot product of the plane normal with direction.
func (p Plane[T]) DotNormal(direction Vec3[T]) T {
	return p.Normal.Dot(direction)
}

// CreateReflection builds a matrix reflecting points across plane. The
// plane is normalized first; callers may pass an unnormalized plane.
func CreateReflection[T Float](plane Plane[T]) Mat4[T] {
	p := plane.Normalize()

	a := p.Normal.X
	b := p.Normal.Y
	c := p.Normal.Z
	d := p.D

	fa := -two[T]() * a
	fb := -two[T]() * b
	fc := -two[T]() * c

	var m Mat4[T]
	m.M11 = fa*a + 1
	m.M12 = fb * a
	m.M13 = fc * a
	m.M21 = fa * b
	m.M22 = fb*b + 1
	m.M23 = fc * b
	m.M31 = fa * c
	m.M32 = fb * c
	m.M33 = fc*c + 1
	m.M41 = fa * d
	m.M42 = fb * d
	m.M43 = fc * d
	m.M44 = 1
	return m
}

// CreateShadow builds a matrix flattening geometry onto plane along
// lightDirection (a directional light). The plane is normalized first.
func CreateShadow[T Float](lightDirection Vec3[T], plane Plane[T]) Mat4[T] {
	p := plane.Normalize()

	dot := p.Normal.Dot(lightDirection)
	a := -p.Normal.X
	b := -p.Normal.Y
	c := -p.Normal.Z
	d := -p.D

	var m Mat4[T]
	m.M11 = a*lightDirection.X + dot
	m.M21 = b * lightDirection.X
	m.M31 = c * lightDirection.X
	m.M41 = d * lightDirection.X

	m.M12 = a * lightDirection.Y
	m.M22 = b*lightDirection.Y + dot
	m.M32 = c * lightDirection.Y
	m.M42 = d * lightDirection.Y

	m.M13 = a * lightDirection.Z
	m.M23 = b * lightDirection.Z
	m.M33 = c*lightDirection.Z + dot
	m.M43 = d * lightDirection.Z

	m.M44 = dot
	return m
}
