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
	"unsafe"

	"golang.org/x/image/math/f32"
)

// Reinterpretation between the float32 instantiations and the flat
// golang.org/x/image/math/f32 types. The generic structs declare their
// fields in component order with no padding, so the conversions are plain
// pointer casts; the constant expressions below fail to compile if either
// side ever changes size.

const (
	_ = unsafe.Sizeof(Vec2[float32]{}) - unsafe.Sizeof(f32.Vec2{})
	_ = unsafe.Sizeof(f32.Vec2{}) - unsafe.Sizeof(Vec2[float32]{})
	_ = unsafe.Sizeof(Vec3[float32]{}) - unsafe.Sizeof(f32.Vec3{})
	_ = unsafe.Sizeof(f32.Vec3{}) - unsafe.Sizeof(Vec3[float32]{})
	_ = unsafe.Sizeof(Vec4[float32]{}) - unsafe.Sizeof(f32.Vec4{})
	_ = unsafe.Sizeof(f32.Vec4{}) - unsafe.Sizeof(Vec4[float32]{})
	_ = unsafe.Sizeof(Mat4[float32]{}) - unsafe.Sizeof(f32.Mat4{})
	_ = unsafe.Sizeof(f32.Mat4{}) - unsafe.Sizeof(Mat4[float32]{})
)

// ToF32Vec2 reinterprets v as an f32.Vec2. Bit-exact.
func ToF32Vec2(v Vec2[float32]) f32.Vec2 {
	return *(*f32.Vec2)(unsafe.Pointer(&v))
}

// FromF32Vec2 reinterprets v as a Vec2[float32]. Bit-exact.
func FromF32Vec2(v f32.Vec2) Vec2[float32] {
	return *(*Vec2[float32])(unsafe.Pointer(&v))
}

// ToF32Vec3 reinterprets v as an f32.Vec3. Bit-exact.
func ToF32Vec3(v Vec3[float32]) f32.Vec3 {
	return *(*f32.Vec3)(unsafe.Pointer(&v))
}

// FromF32Vec3 reinterprets v as a Vec3[float32]. Bit-exact.
func FromF32Vec3(v f32.Vec3) Vec3[float32] {
	return *(*Vec3[float32])(unsafe.Pointer(&v))
}

// ToF32Vec4 reinterprets v as an f32.Vec4. Bit-exact.
func ToF32Vec4(v Vec4[float32]) f32.Vec4 {
	return *(*f32.Vec4)(unsafe.Pointer(&v))
}

// FromF32Vec4 reinterprets v as a Vec4[float32]. Bit-exact.
func FromF32Vec4(v f32.Vec4) Vec4[float32] {
	return *(*Vec4[float32])(unsafe.Pointer(&v))
}

// ToF32Mat4 reinterprets m as an f32.Mat4; both are row-major, so element
// order is preserved. Bit-exact.
func ToF32Mat4(m Mat4[float32]) f32.Mat4 {
	return *(*f32.Mat4)(unsafe.Pointer(&m))
}

// FromF32Mat4 reinterprets m as a Mat4[float32]. Bit-exact.
func FromF32Mat4(m f32.Mat4) Mat4[float32] {
	return *(*Mat4[float32])(unsafe.Pointer(&m))
}
