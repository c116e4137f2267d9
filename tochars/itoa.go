// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "unsafe"

// WriteUnsafe writes the decimal form of v at dst and returns the
// address one past the last byte written.
//
// dst must point to at least MaxSize[T]() writable bytes, or
// Estimate(v) bytes when the caller sized the buffer that way.
// Nothing is checked; writing past the end of the buffer corrupts memory.
func WriteUnsafe[T Number](dst *byte, v T) *byte {
	switch kindOf[T]() {
	case kindFloat:
		if unsafe.Sizeof(v) == 4 {
			return WriteFloat32Unsafe(dst, float32(v))
		}
		return WriteFloat64Unsafe(dst, float64(v))
	case kindSigned:
		return WriteInt64Unsafe(dst, int64(v))
	}
	return WriteUint64Unsafe(dst, uint64(v))
}

// WriteUint64Unsafe writes the decimal form of u at dst, which must have
// room for MaxSizeUint64 bytes, and returns the end of the write.
func WriteUint64Unsafe(dst *byte, u uint64) *byte {
	return writeUint64(dst, u)
}

// WriteInt64Unsafe writes the decimal form of i at dst, which must have
// room for MaxSizeInt64 bytes, and returns the end of the write.
func WriteInt64Unsafe(dst *byte, i int64) *byte {
	u := uint64(i)
	if i < 0 {
		*dst = '-'
		dst = at(dst, 1)
		// Negate in uint64 so that the minimum int64 keeps its magnitude.
		u = -u
	}
	return writeUint64(dst, u)
}

// Digit generation adapted from Junekey Jeon's Dragonbox to_chars,
// itself derived from James Anhalt's itoa. A block of up to nine digits
// is turned into a 32.32 fixed-point fraction by one multiplication;
// every further multiplication by 100 shifts the next two digits into
// the integer part.
// See https://jk-jeon.github.io/posts/2022/02/jeaiii-algorithm/.

// writeUint64 writes u most significant digit first.
func writeUint64(p *byte, u uint64) *byte {
	if u < 1_000_000_000 {
		return write9Digits(p, uint32(u))
	}
	if u < 100_000_000_000_000_000 {
		hi := u / 100_000_000
		p = write9Digits(p, uint32(hi))
		return write8Digits(p, uint32(u-hi*100_000_000))
	}
	// At most 20 digits: a 4-digit head and two full 8-digit blocks.
	hi := u / 10_000_000_000_000_000
	rest := u - hi*10_000_000_000_000_000
	mid := rest / 100_000_000
	p = write9Digits(p, uint32(hi))
	p = write8Digits(p, uint32(mid))
	return write8Digits(p, uint32(rest-mid*100_000_000))
}

// write9Digits writes block, which must be below 10^9, without leading
// zeros.
func write9Digits(p *byte, block uint32) *byte {
	switch {
	case block < 100:
		if block >= 10 {
			put2(p, block)
			return at(p, 2)
		}
		*p = byte(block) + '0'
		return at(p, 1)
	case block < 10_000:
		// 42949673 = ⌈2^32 / 100⌉
		return writeFraction(p, uint64(block)*42949673, 1)
	case block < 1_000_000:
		// 429497 = ⌈2^32 / 10^4⌉
		return writeFraction(p, uint64(block)*429497, 2)
	case block < 100_000_000:
		// 281474978 = ⌈2^48 / 10^6⌉ + 1
		return writeFraction(p, uint64(block)*281474978>>16, 3)
	}
	// 1441151882 = ⌈2^57 / 10^8⌉ + 1
	return writeFraction(p, uint64(block)*1441151882>>25, 4)
}

// writeFraction writes the one or two digit integer part of the 32.32
// fixed-point value prod followed by pairs more digit pairs.
func writeFraction(p *byte, prod uint64, pairs int) *byte {
	if head := uint32(prod >> 32); head >= 10 {
		put2(p, head)
		p = at(p, 2)
	} else {
		*p = byte(head) + '0'
		p = at(p, 1)
	}
	for ; pairs > 0; pairs-- {
		prod = uint64(uint32(prod)) * 100
		put2(p, uint32(prod>>32))
		p = at(p, 2)
	}
	return p
}

// write8Digits writes block, which must be below 10^8, as exactly eight
// digits including leading zeros.
func write8Digits(p *byte, block uint32) *byte {
	// The +1 keeps blocks with leading zeros from rounding down.
	prod := uint64(block)*281474978>>16 + 1
	put2(p, uint32(prod>>32))
	for i := 2; i < 8; i += 2 {
		prod = uint64(uint32(prod)) * 100
		put2(at(p, i), uint32(prod>>32))
	}
	return at(p, 8)
}

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// put2 stores the two digits of n, which must be below 100, at p.
func put2(p *byte, n uint32) {
	pair := unsafe.Add(unsafe.Pointer(unsafe.StringData(smallsString)), n*2)
	*(*[2]byte)(unsafe.Pointer(p)) = *(*[2]byte)(pair)
}

// at returns p advanced by n bytes.
func at(p *byte, n int) *byte {
	return (*byte)(unsafe.Add(unsafe.Pointer(p), n))
}

// distance returns the number of bytes from start to end.
func distance(start, end *byte) int {
	return int(uintptr(unsafe.Pointer(end)) - uintptr(unsafe.Pointer(start)))
}

// writeString copies s to p.
func writeString(p *byte, s string) *byte {
	copy(unsafe.Slice(p, len(s)), s)
	return at(p, len(s))
}

// copyBytes moves n bytes from src to dst. The ranges may overlap.
func copyBytes(dst, src *byte, n int) {
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}

// writeZeros writes n '0' bytes at p.
func writeZeros(p *byte, n int) *byte {
	for ; n > 0; n-- {
		*p = '0'
		p = at(p, 1)
	}
	return p
}
