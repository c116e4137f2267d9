// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cases holds the benchmark value tables: digit-count
// boundaries for integers and a mix of ordinary, extreme and special
// values for floats.
package cases

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultSize is the number of values a benchmark case formats.
const DefaultSize = 128

// Unsigned lists every digit-count boundary up to the uint64 maximum,
// ascending.
var Unsigned = []uint64{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 15, 21, 34, 42, 99,
	100, 101, 123, 127, 128, 255, 256, 999,
	1000, 1234, 9999,
	10000, 12345, 32767, 32768, 51234, 65535, 65536, 99999,
	100000, 999999,
	1000000, 9999999,
	10000000, 99999999,
	100000000, 999999999,
	1000000000, 2147483647, 2147483648, 4294967295, 4294967296, 9999999999,
	10000000000, 99999999999,
	100000000000, 999999999999,
	1000000000000, 9999999999999,
	10000000000000, 99999999999999,
	100000000000000, 999999999999999,
	1000000000000000, 9999999999999999,
	10000000000000000, 99999999999999999,
	100000000000000000, 999999999999999999,
	1000000000000000000, 9223372036854775807, 9223372036854775808, 9999999999999999999,
	10000000000000000000, 18446744073709551615,
}

// Signed lists the negative counterparts, descending.
var Signed = []int64{
	0, -1, -2, -3, -4, -5, -6, -7, -8, -9,
	-10, -11, -15, -21, -34, -42, -99,
	-100, -101, -123, -127, -128, -129, -255, -256, -999,
	-1000, -1234, -9999,
	-10000, -12345, -32767, -32768, -51234, -65535, -65536, -65537, -99999,
	-100000, -999999,
	-1000000, -9999999,
	-10000000, -99999999,
	-100000000, -999999999,
	-1000000000, -2147483647, -2147483648, -2147483649,
	-4294967295, -4294967296, -4294967297, -9999999999,
	-10000000000, -99999999999,
	-100000000000, -999999999999,
	-1000000000000, -9999999999999,
	-10000000000000, -99999999999999,
	-100000000000000, -999999999999999,
	-1000000000000000, -9999999999999999,
	-10000000000000000, -99999999999999999,
	-100000000000000000, -999999999999999999,
	-1000000000000000000, -9223372036854775807,
}

// Floats mixes integers, fractions, extremes and special values. Values
// outside float32 range become infinities when narrowed.
var Floats = []float64{
	0, 1, -1, math.Copysign(0, -1),
	math.E, -math.Pi,
	12, 123, 1234, 12345, 123456, 1234567, 12345678, 123456789, 1234567890, 12345678901,
	0x1p-52,
	math.Inf(1), math.Inf(-1), math.NaN(),
	-12, -123, -1234, -12345, -123456, -1234567, -12345678, -123456789, -1234567890, -12345678901,
	math.MaxFloat64, -math.MaxFloat64,
	1258.456456834534534e12, 1258.456456834534534e-12,
	-1258.456456834534534e12, -1258.456456834534534e-12,
	float64(math.Float32frombits(1)),
	math.Float64frombits(1),
}

type number interface {
	constraints.Integer | constraints.Float
}

// Fill returns n values of type T. The table entries representable in
// T are taken in order, stopping at the first that is not, and the
// result is padded by cycling through them again.
//
// Integer types take the unsigned table and, when signed, the negative
// table after it. Float types take the float table.
func Fill[T number](n int) []T {
	out := make([]T, 0, n)
	var one, zero T = 1, 0
	switch {
	case one/2 != 0:
		for _, f := range Floats {
			if len(out) == n {
				break
			}
			out = append(out, T(f))
		}
	default:
		for _, u := range Unsigned {
			v := T(u)
			if len(out) == n || v < 0 || uint64(v) != u {
				break
			}
			out = append(out, v)
		}
		if zero-1 < zero {
			for _, s := range Signed {
				v := T(s)
				if len(out) == n || int64(v) != s {
					break
				}
				out = append(out, v)
			}
		}
	}

	for i := 0; len(out) < n; i++ {
		out = append(out, out[i])
	}
	return out
}
