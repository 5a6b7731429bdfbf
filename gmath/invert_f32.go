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

import "math"

// invertF32 is the concrete float32 kernel behind Invert's fast path.
// It is the same adjugate formula as invertGeneric with the same operation
// order; the monomorphic form compiles to straight-line float32 code with
// no generic dictionary indirection.
func invertF32(m Mat4[float32]) (Mat4[float32], bool) {
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

	a11 := +(f*kpLo - g*jpLn + h*joKn)
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := +(e*jpLn - f*ipLm + h*inJm)
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14

	if abs32(det) < math.SmallestNonzeroFloat32 {
		q := float32(math.NaN())
		return Mat4[float32]{
			q, q, q, q,
			q, q, q, q,
			q, q, q, q,
			q, q, q, q,
		}, false
	}

	invDet := 1 / det

	var r Mat4[float32]
	r.M11 = a11 * invDet
	r.M21 = a12 * invDet
	r.M31 = a13 * invDet
	r.M41 = a14 * invDet

	r.M12 = -(b*kpLo - c*jpLn + d*joKn) * invDet
	r.M22 = +(a*kpLo - c*ipLm + d*ioKm) * invDet
	r.M32 = -(a*jpLn - b*ipLm + d*inJm) * invDet
	r.M42 = +(a*joKn - b*ioKm + c*inJm) * invDet

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*mm
	eoGm := e*o - g*mm
	enFm := e*n - f*mm

	r.M13 = +(b*gpHo - c*fpHn + d*foGn) * invDet
	r.M23 = -(a*gpHo - c*epHm + d*eoGm) * invDet
	r.M33 = +(a*fpHn - b*epHm + d*enFm) * invDet
	r.M43 = -(a*foGn - b*eoGm + c*enFm) * invDet

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	r.M14 = -(b*glHk - c*flHj + d*fkGj) * invDet
	r.M24 = +(a*glHk - c*elHi + d*ekGi) * invDet
	r.M34 = -(a*flHj - b*elHi + d*ejFi) * invDet
	r.M44 = +(a*fkGj - b*ekGi + c*ejFi) * invDet

	return r, true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
