// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "unsafe"

// Worst-case text lengths per type.
//
// An N-bit unsigned value needs ⌈N·log10(2)⌉ digits. A signed value
// needs one more byte for the sign, except int64, whose largest
// magnitude 9223372036854775808 has 19 digits.
//
// The float bounds follow from the notation rule described in the
// package documentation: float64 peaks at a sign, "0.", five zeros and
// 17 significant digits (-0.0000012345678901234567); float32 peaks at a
// sign and a 21-digit integer (-100000000000000000000).
const (
	MaxSizeUint8  = 3
	MaxSizeUint16 = 5
	MaxSizeUint32 = 10
	MaxSizeUint64 = 20

	MaxSizeInt8  = 4
	MaxSizeInt16 = 6
	MaxSizeInt32 = 11
	MaxSizeInt64 = 20

	MaxSizeFloat32 = 22
	MaxSizeFloat64 = 25

	MaxSizeUint = MaxSizeUint32 + (MaxSizeUint64-MaxSizeUint32)*(intSize/64)
	MaxSizeInt  = MaxSizeInt32 + (MaxSizeInt64-MaxSizeInt32)*(intSize/64)

	// MaxSizeAny bounds every type this package accepts.
	MaxSizeAny = MaxSizeFloat64
)

const intSize = 32 << (^uint(0) >> 63)

// MaxSize returns the largest number of bytes WriteUnsafe can emit for
// any value of type T.
func MaxSize[T Number]() int {
	var v T
	return maxSizeOf(kindOf[T](), unsafe.Sizeof(v))
}

func maxSizeOf(k kind, size uintptr) int {
	switch k {
	case kindFloat:
		if size == 4 {
			return MaxSizeFloat32
		}
		return MaxSizeFloat64
	case kindSigned:
		switch size {
		case 1:
			return MaxSizeInt8
		case 2:
			return MaxSizeInt16
		case 4:
			return MaxSizeInt32
		}
		return MaxSizeInt64
	}
	switch size {
	case 1:
		return MaxSizeUint8
	case 2:
		return MaxSizeUint16
	case 4:
		return MaxSizeUint32
	}
	return MaxSizeUint64
}
