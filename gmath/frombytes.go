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

import (
	"fmt"
	"unsafe"
)

// Constructors that copy from flat element slices and raw byte buffers.
// Byte-buffer reads are unaligned bulk copies in the type's native field
// order; slice reads are field-by-field. Short inputs are rejected with an
// error naming the requirement, never a panic.

// Vec2FromSlice builds a Vec2 from the first 2 elements of s.
func Vec2FromSlice[T Number](s []T) (Vec2[T], error) {
	if len(s) < 2 {
		return Vec2[T]{}, fmt.Errorf("gmath: Vec2FromSlice: need 2 elements, have %d", len(s))
	}
	return Vec2[T]{s[0], s[1]}, nil
}

// Vec3FromSlice builds a Vec3 from the first 3 elements of s.
func Vec3FromSlice[T Number](s []T) (Vec3[T], error) {
	if len(s) < 3 {
		return Vec3[T]{}, fmt.Errorf("gmath: Vec3FromSlice: need 3 elements, have %d", len(s))
	}
	return Vec3[T]{s[0], s[1], s[2]}, nil
}

// Vec4FromSlice builds a Vec4 from the first 4 elements of s.
func Vec4FromSlice[T Number](s []T) (Vec4[T], error) {
	if len(s) < 4 {
		return Vec4[T]{}, fmt.Errorf("gmath: Vec4FromSlice: need 4 elements, have %d", len(s))
	}
	return Vec4[T]{s[0], s[1], s[2], s[3]}, nil
}

// QuatFromSlice builds a Quat from the first 4 elements of s, in X, Y, Z,
// W order.
func QuatFromSlice[T Float](s []T) (Quat[T], error) {
	if len(s) < 4 {
		return Quat[T]{}, fmt.Errorf("gmath: QuatFromSlice: need 4 elements, have %d", len(s))
	}
	return Quat[T]{s[0], s[1], s[2], s[3]}, nil
}

// Mat4FromSlice builds a Mat4 from the first 16 elements of s in row-major
// order.
func Mat4FromSlice[T Number](s []T) (Mat4[T], error) {
	if len(s) < 16 {
		return Mat4[T]{}, fmt.Errorf("gmath: Mat4FromSlice: need 16 elements, have %d", len(s))
	}
	return Mat4[T]{
		s[0], s[1], s[2], s[3],
		s[4], s[5], s[6], s[7],
		s[8], s[9], s[10], s[11],
		s[12], s[13], s[14], s[15],
	}, nil
}

// readBytes bulk-copies len(dst) bytes of b into the value behind dst.
func readBytes(dst unsafe.Pointer, size int, b []byte) {
	copy(unsafe.Slice((*byte)(dst), size), b[:size])
}

// Vec2FromBytes builds a Vec2 by reading the native byte representation of
// its two elements from b.
func Vec2FromBytes[T Number](b []byte) (Vec2[T], error) {
	var v Vec2[T]
	n := int(unsafe.Sizeof(v))
	if len(b) < n {
		return v, fmt.Errorf("gmath: Vec2FromBytes: need %d bytes, have %d", n, len(b))
	}
	readBytes(unsafe.Pointer(&v), n, b)
	return v, nil
}

// Vec3FromBytes builds a Vec3 by reading the native byte representation of
// its three elements from b.
func Vec3FromBytes[T Number](b []byte) (Vec3[T], error) {
	var v Vec3[T]
	n := int(unsafe.Sizeof(v))
	if len(b) < n {
		return v, fmt.Errorf("gmath: Vec3FromBytes: need %d bytes, have %d", n, len(b))
	}
	readBytes(unsafe.Pointer(&v), n, b)
	return v, nil
}

// Vec4FromBytes builds a Vec4 by reading the native byte representation of
// its four elements from b.
func Vec4FromBytes[T Number](b []byte) (Vec4[T], error) {
	var v Vec4[T]
	n := int(unsafe.Sizeof(v))
	if len(b) < n {
		return v, fmt.Errorf("gmath: Vec4FromBytes: need %d bytes, have %d", n, len(b))
	}
	readBytes(unsafe.Pointer(&v), n, b)
	return v, nil
}

// QuatFromBytes builds a Quat by reading the native byte representation of
// its four elements from b.
func QuatFromBytes[T Float](b []byte) (Quat[T], error) {
	var q Quat[T]
	n := int(unsafe.Sizeof(q))
	if len(b) < n {
		return q, fmt.Errorf("gmath: QuatFromBytes: need %d bytes, have %d", n, len(b))
	}
	readBytes(unsafe.Pointer(&q), n, b)
	return q, nil
}

// Mat4FromBytes builds a Mat4 by reading the native byte representation of
// its sixteen elements from b, row-major.
func Mat4FromBytes[T Number](b []byte) (Mat4[T], error) {
	var m Mat4[T]
	n := int(unsafe.Sizeof(m))
	if len(b) < n {
		return m, fmt.Errorf("gmath: Mat4FromBytes: need %d bytes, have %d", n, len(b))
	}
	readBytes(unsafe.Pointer(&m), n, b)
	return m, nil
}
