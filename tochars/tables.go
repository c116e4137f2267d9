// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "math/big"

const (
	cacheMinK64 = -292 // k ∈ [-292, 326] for binary64 (section 6.2)
	cacheMaxK64 = 326
	cacheMinK32 = -31 // k ∈ [-31, 46] for binary32
	cacheMaxK32 = 46
)

// cache64 and cache32 hold φ̃k = ⌈10^k·2^s⌉ for each k, where s is the
// unique integer that makes φ̃k exactly 128 (respectively 64) bits long.
// With these, ⌊n·2^(e-1)·10^k⌋ is a multiplication and a shift.
var (
	cache64 [cacheMaxK64 - cacheMinK64 + 1]uint128
	cache32 [cacheMaxK32 - cacheMinK32 + 1]uint64
)

func init() {
	mask := new(big.Int).SetUint64(^uint64(0))
	var lo big.Int
	for i := range cache64 {
		v := scaledPow10(cacheMinK64+i, 128)
		cache64[i] = uint128{
			hi: new(big.Int).Rsh(v, 64).Uint64(),
			lo: lo.And(v, mask).Uint64(),
		}
	}
	for i := range cache32 {
		cache32[i] = scaledPow10(cacheMinK32+i, 64).Uint64()
	}
}

// scaledPow10 returns ⌈10^k·2^s⌉ with s chosen so that the result has
// exactly width bits.
func scaledPow10(k, width int) *big.Int {
	one := big.NewInt(1)
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(max(k, -k))), nil)
	n := p.BitLen()

	if k >= 0 {
		if n <= width {
			return p.Lsh(p, uint(width-n))
		}
		q := new(big.Int).Rsh(p, uint(n-width))
		if new(big.Int).Lsh(q, uint(n-width)).Cmp(p) != 0 {
			q.Add(q, one)
		}
		return q
	}

	// 2^(width+n-1)/10^-k lies in (2^(width-1), 2^width) since 10^-k is
	// not a power of two.
	num := new(big.Int).Lsh(one, uint(width+n-1))
	q, r := new(big.Int).QuoRem(num, p, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, one)
	}
	return q
}
