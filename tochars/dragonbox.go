// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "math/bits"

// Binary to decimal conversion using the Dragonbox algorithm by Junekey Jeon.
// Rounding is to nearest, ties to even, in both directions.
//
// Paper: https://github.com/jk-jeon/dragonbox/blob/d5dc40ae6a3f1a4559cda816738df2d6255b4e24/other_files/Dragonbox.pdf
//
// Notation follows the paper. The input w = fc·2^e has the rounding
// interval I = [wL, wR] (open when fc is odd). With k chosen from e,
// x, y and z are 10^k·wL, 10^k·w and 10^k·wR, and superscripts (i) and
// (f) denote integer and fractional parts. The shortest output is the
// unique member of I ∩ 10^(-k+1)ℤ when that set is non-empty, and the
// member of I ∩ 10^(-k)ℤ nearest to w otherwise (corollary 3.3).

const (
	mantBits64 = 52
	expBits64  = 11
	bias64     = -1023

	mantBits32 = 23
	expBits32  = 8
	bias32     = -127
)

// shortest64 returns sig and exp such that sig·10^exp is the shortest
// decimal that rounds to the binary64 value mant·2^e. mant includes the
// implicit bit of normal numbers and must not be zero.
func shortest64(mant uint64, e int, denorm bool) (sig uint64, exp int) {
	if mant == 1<<mantBits64 && !denorm {
		// The interval below a power of two is half as wide. This also
		// takes the smallest normal number, whose interval is regular;
		// the result is the same either way.
		return shorterInterval64(e)
	}

	const (
		kappa        = 2    // κ for binary64 (section 5.1.3)
		largeDivisor = 1000 // 10^(κ+1)
		smallDivisor = 100  // 10^κ
	)

	// -k = ⌊log10(2^e)⌋ - κ (section 6.1)
	minusK := floorLog10Pow2(e) - kappa
	beta := e + floorLog2Pow10(-minusK)
	phi := cache64[-minusK-cacheMinK64]

	zi, zIsInt := mulUpper64((2*mant+1)<<beta, phi)
	delta := uint32(phi.hi >> (63 - beta))

	// Algorithm 5.2: is s = ⌊z/10^(κ+1)⌋ inside I?
	s := zi / largeDivisor
	r := uint32(zi - largeDivisor*s)
	switch {
	case r < delta:
		// The right endpoint is excluded for odd mantissas.
		if r != 0 || !zIsInt || mant%2 == 0 {
			return removeTrailingZeros64(s, minusK+kappa+1)
		}
		// Step back so that D below stays positive (page 17).
		s--
		r = largeDivisor
	case r == delta:
		// z^(f) ≤ δ^(f) iff x^(i) is odd or x is an integer (page 15).
		xParity, xIsInt := mulParity64(2*mant-1, phi, beta)
		if xParity || (xIsInt && mant%2 == 0) {
			return removeTrailingZeros64(s, minusK+kappa+1)
		}
	}

	// Algorithm 5.4: round y/10^κ to nearest.
	d := r + smallDivisor/2 - delta/2
	t := d / smallDivisor
	rho := d - t*smallDivisor
	sig = 10*s + uint64(t)

	if rho == 0 {
		// The residue ⌊(ρ+z^(f)-ε^(f))/10^κ⌋ is -1 exactly when the parity
		// of y^(i) disagrees with that of D-10^κ/2.
		yParity, yIsInt := mulParity64(2*mant, phi, beta)
		if yParity != ((d-smallDivisor/2)%2 != 0) {
			sig--
		} else if yIsInt && sig%2 != 0 {
			// Exact tie between two candidates: pick the even one.
			sig--
		}
	}
	return sig, minusK + kappa
}

// shorterInterval64 handles fc = 2^52, where w⁻ is only half an ulp
// below w (algorithm 5.6).
func shorterInterval64(e int) (uint64, int) {
	// -k0 = ⌊log10(2^e) - log10(4/3)⌋ (section 6.3)
	minusK := floorLog10Pow2MinusLog10_4Over3(e)
	beta := e + floorLog2Pow10(-minusK)
	phi := cache64[-minusK-cacheMinK64]

	shift := 64 - mantBits64 - 1 - beta
	xi := (phi.hi - phi.hi>>(mantBits64+2)) >> shift
	zi := (phi.hi + phi.hi>>(mantBits64+1)) >> shift
	// x is always in I for an even mantissa; only e ∈ [2, 3] makes x an
	// integer that must be kept (page 23).
	if e < 2 || e > 3 {
		xi++
	}

	if q := zi / 10; xi <= q*10 {
		return removeTrailingZeros64(q, minusK+1)
	}

	// y^(ru) = ⌊y + 1/2⌋, computed directly (section 5.2.2).
	yru := (phi.hi>>(shift-1) + 1) / 2
	if e == -77 && yru%2 != 0 {
		// The only exponent where y is halfway between two integers.
		yru--
	} else if yru < xi {
		yru++
	}
	return yru, minusK
}

// shortest32 is shortest64 for binary32, with κ = 1 and a 64-bit cache.
func shortest32(mant uint32, e int, denorm bool) (uint32, int) {
	if mant == 1<<mantBits32 && !denorm {
		return shorterInterval32(e)
	}

	const (
		kappa        = 1
		largeDivisor = 100
		smallDivisor = 10
	)

	minusK := floorLog10Pow2(e) - kappa
	beta := e + floorLog2Pow10(-minusK)
	phi := cache32[-minusK-cacheMinK32]

	zi, zIsInt := mulUpper32((2*mant+1)<<beta, phi)
	delta := uint32(phi >> (63 - beta))

	s := zi / largeDivisor
	r := zi - largeDivisor*s
	switch {
	case r < delta:
		if r != 0 || !zIsInt || mant%2 == 0 {
			return removeTrailingZeros32(s, minusK+kappa+1)
		}
		s--
		r = largeDivisor
	case r == delta:
		xParity, xIsInt := mulParity32(2*mant-1, phi, beta)
		if xParity || (xIsInt && mant%2 == 0) {
			return removeTrailingZeros32(s, minusK+kappa+1)
		}
	}

	d := r + smallDivisor/2 - delta/2
	t := d / smallDivisor
	rho := d - t*smallDivisor
	sig := 10*s + t

	if rho == 0 {
		yParity, yIsInt := mulParity32(2*mant, phi, beta)
		if yParity != ((d-smallDivisor/2)%2 != 0) {
			sig--
		} else if yIsInt && sig%2 != 0 {
			sig--
		}
	}
	return sig, minusK + kappa
}

func shorterInterval32(e int) (uint32, int) {
	minusK := floorLog10Pow2MinusLog10_4Over3(e)
	beta := e + floorLog2Pow10(-minusK)
	phi := cache32[-minusK-cacheMinK32]

	shift := 64 - mantBits32 - 1 - beta
	xi := uint32((phi - phi>>(mantBits32+2)) >> shift)
	zi := uint32((phi + phi>>(mantBits32+1)) >> shift)
	if e < 2 || e > 3 {
		xi++
	}

	if q := zi / 10; xi <= q*10 {
		return removeTrailingZeros32(q, minusK+1)
	}

	yru := uint32(phi>>(shift-1)+1) / 2
	if e == -35 && yru%2 != 0 {
		yru--
	} else if yru < xi {
		yru++
	}
	return yru, minusK
}

// uint128 is a 128-bit cache entry split into high and low halves.
type uint128 struct {
	hi, lo uint64
}

// mulUpper64 returns the integer part of u·φ/2^128, taken as the upper
// 64 bits of the 192-bit product, and whether the fraction is zero.
func mulUpper64(u uint64, phi uint128) (uint64, bool) {
	hi, lo := bits.Mul64(u, phi.hi)
	upper, _ := bits.Mul64(u, phi.lo)
	lo, c := bits.Add64(lo, upper, 0)
	return hi + c, lo == 0
}

// mulUpper32 returns the integer part of u·φ/2^64 and whether the
// fraction, truncated to 32 bits, is zero.
func mulUpper32(u uint32, phi uint64) (uint32, bool) {
	hi, lo := bits.Mul64(uint64(u), phi)
	r := hi<<32 | lo>>32
	return uint32(r >> 32), uint32(r) == 0
}

// mulParity64 returns the parity of the integer part of u·φ·2^β/2^128
// and whether its fractional part is zero, from the lower 128 bits of
// the product.
func mulParity64(u uint64, phi uint128, beta int) (parity, isInt bool) {
	mid, lo := bits.Mul64(u, phi.lo)
	hi := u*phi.hi + mid
	parity = (hi>>(64-beta))&1 != 0
	isInt = (hi<<beta | lo>>(64-beta)) == 0
	return parity, isInt
}

func mulParity32(u uint32, phi uint64, beta int) (parity, isInt bool) {
	r := uint64(u) * phi
	parity = (r>>(64-beta))&1 != 0
	isInt = uint32(r>>(32-beta)) == 0
	return parity, isInt
}

// floorLog10Pow2 returns ⌊e·log10(2)⌋ for e in [-2620, 2620].
func floorLog10Pow2(e int) int {
	return e * 315653 >> 20
}

// floorLog2Pow10 returns ⌊e·log2(10)⌋ for e in [-1233, 1233].
func floorLog2Pow10(e int) int {
	return e * 1741647 >> 19
}

// floorLog10Pow2MinusLog10_4Over3 returns ⌊e·log10(2) - log10(4/3)⌋
// for e in [-2985, 2936].
func floorLog10Pow2MinusLog10_4Over3(e int) int {
	return (e*631305 - 261663) >> 21
}

// removeTrailingZeros64 divides out the decimal trailing zeros of mant,
// at most 15 for binary64, adding them to exp. Each step tests
// divisibility by 10^n with a modular inverse and a rotate (Granlund-
// Montgomery), trying 10^8, 10^4, 10^2 and 10 in turn.
func removeTrailingZeros64(mant uint64, exp int) (uint64, int) {
	if r := bits.RotateLeft64(mant*28999941890838049, -8); r < 184467440738 {
		mant = r
		exp += 8
	}
	if r := bits.RotateLeft64(mant*182622766329724561, -4); r < 1844674407370956 {
		mant = r
		exp += 4
	}
	if r := bits.RotateLeft64(mant*10330176681277348905, -2); r < 184467440737095517 {
		mant = r
		exp += 2
	}
	if r := bits.RotateLeft64(mant*14757395258967641293, -1); r < 1844674407370955162 {
		mant = r
		exp++
	}
	return mant, exp
}

// removeTrailingZeros32 is removeTrailingZeros64 for binary32, which has
// at most 7 trailing zeros.
func removeTrailingZeros32(mant uint32, exp int) (uint32, int) {
	if r := bits.RotateLeft32(mant*184254097, -4); r < 429497 {
		mant = r
		exp += 4
	}
	if r := bits.RotateLeft32(mant*42949673, -2); r < 42949673 {
		mant = r
		exp += 2
	}
	if r := bits.RotateLeft32(mant*1288490189, -1); r < 429496730 {
		mant = r
		exp++
	}
	return mant, exp
}
