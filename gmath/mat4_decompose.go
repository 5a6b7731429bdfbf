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

// Decompose splits a similarity transform into per-axis scale, rotation,
// and translation such that, up to rounding,
//
//	m == CreateScale(scale) * CreateFromQuaternion(rotation) * CreateTranslation(translation)
//
// The three basis rows are processed most-reliable (largest scale) first.
// A row whose scale is below the decompose epsilon carries no usable
// direction, so a substitute is chosen: the canonical axis for the largest
// row, a cross product against the canonical axis nearest-orthogonal to it
// for the middle row, and the cross product of the other two for the
// smallest. A negative basis determinant means the matrix embeds a
// reflection; the most-scaled axis and its scale are negated to restore
// right-handedness. If the corrected determinant still deviates from one
// by more than the epsilon (after squaring the deviation), m is not a
// scale-rotate-translate composition - it contains shear - and ok is
// false with rotation set to identity. Scale and translation are still
// returned as extracted.
func Decompose[T Float](m Mat4[T]) (scale Vec3[T], rotation Quat[T], translation Vec3[T], ok bool) {
	translation = Vec3[T]{m.M41, m.M42, m.M43}

	rows := [3]Vec3[T]{
		{m.M11, m.M12, m.M13},
		{m.M21, m.M22, m.M23},
		{m.M31, m.M32, m.M33},
	}
	scales := [3]T{rows[0].Length(), rows[1].Length(), rows[2].Length()}

	// Rank the axes: a gets the largest scale, c the smallest.
	var a, b, c int
	x, y, z := scales[0], scales[1], scales[2]
	if x < y {
		if y < z {
			a, b, c = 2, 1, 0
		} else {
			a = 1
			if x < z {
				b, c = 2, 0
			} else {
				b, c = 0, 2
			}
		}
	} else {
		if x < z {
			a, b, c = 2, 0, 1
		} else {
			a = 0
			if y < z {
				b, c = 2, 1
			} else {
				b, c = 1, 2
			}
		}
	}

	eps := decomposeEpsilon[T]()
	canonical := [3]Vec3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	if scales[a] < eps {
		rows[a] = canonical[a]
	}
	rows[a] = rows[a].Normalize()

	if scales[b] < eps {
		// Pick the canonical axis along the smallest component of
		// rows[a]; crossing with it gives the best-conditioned
		// orthogonal direction.
		var cc int
		fAbsX := Abs(rows[a].X)
		fAbsY := Abs(rows[a].Y)
		fAbsZ := Abs(rows[a].Z)
		if fAbsX < fAbsY {
			if fAbsY < fAbsZ {
				cc = 0
			} else if fAbsX < fAbsZ {
				cc = 0
			} else {
				cc = 2
			}
		} else {
			if fAbsX < fAbsZ {
				cc = 1
			} else if fAbsY < fAbsZ {
				cc = 1
			} else {
				cc = 2
			}
		}
		rows[b] = rows[a].Cross(canonical[cc])
	}
	rows[b] = rows[b].Normalize()

	if scales[c] < eps {
		rows[c] = rows[a].Cross(rows[b])
	}
	rows[c] = rows[c].Normalize()

	basis := Mat4Identity[T]()
	basis.M11, basis.M12, basis.M13 = rows[0].X, rows[0].Y, rows[0].Z
	basis.M21, basis.M22, basis.M23 = rows[1].X, rows[1].Y, rows[1].Z
	basis.M31, basis.M32, basis.M33 = rows[2].X, rows[2].Y, rows[2].Z
	det := basis.Determinant()

	// Negative determinant: the basis is left-handed, meaning one axis is
	// mirrored. Fold the reflection into the most-scaled axis.
	if det < 0 {
		scales[a] = -scales[a]
		rows[a] = rows[a].Neg()
		basis = basis.SetRow(a, rows[a].ToVec4(0))
		det = -det
	}

	det -= 1
	det *= det
	if det > eps {
		// Shear or other non-similarity content: no valid rotation.
		rotation = QuatIdentity[T]()
		ok = false
	} else {
		rotation = QuatFromRotationMatrix(basis)
		ok = true
	}

	scale = Vec3[T]{scales[0], scales[1], scales[2]}
	return scale, rotation, translation, ok
}
