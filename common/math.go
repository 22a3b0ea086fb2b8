// Package common contains shared math and byte-conversion helpers used
// throughout the library. They are plain functions, not interface-wrapped
// types, expressing commonly needed GPU-facing conversions.
package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective creates a perspective projection matrix in the WebGPU clip-space
// convention: X/Y in [-1, 1], Z in [0, 1]. Storage is column-major, matching mgl32.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1.0
	m[14] = (near * far) / (near - far)
	return m
}

// Ortho creates an orthographic projection matrix in the WebGPU clip-space
// convention: X/Y in [-1, 1], Z in [0, 1]. Storage is column-major, matching mgl32.
//
// Parameters:
//   - left, right: horizontal clip bounds in view space
//   - bottom, top: vertical clip bounds in view space
//   - near, far: depth clip bounds in view space
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Ortho(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near

	var m mgl32.Mat4
	m[0] = 2.0 / rl
	m[5] = 2.0 / tb
	m[10] = -1.0 / fn // WebGPU Z: [0, 1]
	m[12] = -(right + left) / rl
	m[13] = -(top + bottom) / tb
	m[14] = -near / fn
	m[15] = 1.0
	return m
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
