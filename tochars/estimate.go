// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "math/bits"

// pow10 has a zero in slot 0 so that decimalLen64(0) comes out as 1.
var pow10 = [20]uint64{
	0,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// decimalLen64 returns the number of decimal digits of u.
func decimalLen64(u uint64) int {
	// 1233/4096 ≈ log10(2), so t is ⌊log10(2^bitlen)⌋ and the true
	// length is either t or t+1.
	t := bits.Len64(u|1) * 1233 >> 12
	if u < pow10[t] {
		return t
	}
	return t + 1
}

// Estimate returns the number of bytes needed to write v.
//
// The count is exact for integers: the digits of |v| plus one for the
// sign. For floats it is MaxSize[T](), since the shortest form is not
// known without converting.
func Estimate[T Number](v T) int {
	switch kindOf[T]() {
	case kindFloat:
		return MaxSize[T]()
	case kindSigned:
		return EstimateInt64(int64(v))
	}
	return EstimateUint64(uint64(v))
}

// EstimateUint64 returns the exact length of the decimal form of u.
func EstimateUint64(u uint64) int {
	return decimalLen64(u)
}

// EstimateInt64 returns the exact length of the decimal form of i.
func EstimateInt64(i int64) int {
	if i < 0 {
		return 1 + decimalLen64(-uint64(i))
	}
	return decimalLen64(uint64(i))
}

// EstimateFast returns an upper bound on the bytes needed to write v
// from the position of its most significant bit alone. It may exceed
// the exact length by one.
func EstimateFast[T Number](v T) int {
	switch kindOf[T]() {
	case kindFloat:
		return MaxSize[T]()
	case kindSigned:
		i := int64(v)
		if i < 0 {
			return 1 + fastLen64(-uint64(i))
		}
		return fastLen64(uint64(i))
	}
	return fastLen64(uint64(v))
}

func fastLen64(u uint64) int {
	return bits.Len64(u|1)*1233>>12 + 1
}
