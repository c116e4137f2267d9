// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "math"

// Decimal point positions, counted from the left of the significant
// digits, that are written in plain notation.
const (
	plainMaxPoint = 21 // 1e20 is 100000000000000000000, 1e21 is 1e+21
	plainMinPoint = -6 // 1e-6 is 0.000001, 1e-7 is 1e-7
)

// WriteFloat64Unsafe writes the shortest round-trip form of f at dst,
// which must have room for MaxSizeFloat64 bytes, and returns the end of
// the write.
func WriteFloat64Unsafe(dst *byte, f float64) *byte {
	bits := math.Float64bits(f)
	neg := bits>>(expBits64+mantBits64) != 0
	exp := int(bits>>mantBits64) & (1<<expBits64 - 1)
	mant := bits & (1<<mantBits64 - 1)

	if exp == 1<<expBits64-1 {
		return writeSpecial(dst, neg, mant != 0)
	}
	if neg {
		*dst = '-'
		dst = at(dst, 1)
	}

	denorm := exp == 0
	if denorm {
		if mant == 0 {
			*dst = '0'
			return at(dst, 1)
		}
		exp++
	} else {
		mant |= 1 << mantBits64
	}
	sig, exp10 := shortest64(mant, exp+bias64-mantBits64, denorm)
	return writeDecimal(dst, sig, exp10)
}

// WriteFloat32Unsafe writes the shortest round-trip form of f at dst,
// which must have room for MaxSizeFloat32 bytes, and returns the end of
// the write.
func WriteFloat32Unsafe(dst *byte, f float32) *byte {
	bits := math.Float32bits(f)
	neg := bits>>(expBits32+mantBits32) != 0
	exp := int(bits>>mantBits32) & (1<<expBits32 - 1)
	mant := bits & (1<<mantBits32 - 1)

	if exp == 1<<expBits32-1 {
		return writeSpecial(dst, neg, mant != 0)
	}
	if neg {
		*dst = '-'
		dst = at(dst, 1)
	}

	denorm := exp == 0
	if denorm {
		if mant == 0 {
			*dst = '0'
			return at(dst, 1)
		}
		exp++
	} else {
		mant |= 1 << mantBits32
	}
	sig, exp10 := shortest32(mant, exp+bias32-mantBits32, denorm)
	return writeDecimal(dst, uint64(sig), exp10)
}

// writeSpecial writes NaN or a signed infinity. NaN carries no sign.
func writeSpecial(p *byte, neg, nan bool) *byte {
	switch {
	case nan:
		return writeString(p, "nan")
	case neg:
		return writeString(p, "-inf")
	}
	return writeString(p, "inf")
}

// writeDecimal lays out sig·10^exp10. sig has no trailing zeros.
func writeDecimal(p *byte, sig uint64, exp10 int) *byte {
	nd := decimalLen64(sig)
	point := nd + exp10

	switch {
	case nd <= point && point <= plainMaxPoint:
		// ddd000
		p = writeUint64(p, sig)
		return writeZeros(p, point-nd)

	case 0 < point && point <= plainMaxPoint:
		// ddd.ddd: write the digits one byte late, then slide the integer
		// part back over the gap.
		writeUint64(at(p, 1), sig)
		copyBytes(p, at(p, 1), point)
		*at(p, point) = '.'
		return at(p, nd+1)

	case plainMinPoint < point && point <= 0:
		// 0.000ddd
		p = writeString(p, "0.")
		p = writeZeros(p, -point)
		return writeUint64(p, sig)
	}

	// d.ddde±x
	writeUint64(at(p, 1), sig)
	*p = *at(p, 1)
	q := at(p, 1)
	if nd > 1 {
		*q = '.'
		q = at(p, nd+1)
	}
	*q = 'e'
	q = at(q, 1)

	exp := point - 1
	if exp < 0 {
		*q = '-'
		exp = -exp
	} else {
		*q = '+'
	}
	return writeExponent(at(q, 1), uint32(exp))
}

// writeExponent writes e, at most 3 digits, without leading zeros.
func writeExponent(p *byte, e uint32) *byte {
	switch {
	case e >= 100:
		*p = byte(e/100) + '0'
		put2(at(p, 1), e%100)
		return at(p, 3)
	case e >= 10:
		put2(p, e)
		return at(p, 2)
	}
	*p = byte(e) + '0'
	return at(p, 1)
}
