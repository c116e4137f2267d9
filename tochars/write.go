// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import (
	"errors"
	"slices"
)

// ErrShortBuffer is matched by every *CapacityError.
var ErrShortBuffer = errors.New("tochars: destination buffer too small")

// A CapacityError reports that a value did not fit its destination.
type CapacityError struct {
	Need int // bytes the value requires
	Have int // bytes the destination offered
}

func (e *CapacityError) Error() string {
	return "tochars: need " + Format(e.Need) + " bytes, destination has " + Format(e.Have)
}

func (e *CapacityError) Unwrap() error { return ErrShortBuffer }

// Write is the checked form of WriteUnsafe. It writes the decimal form
// of v to the start of dst and returns the number of bytes written. If
// dst is too short, nothing is written and the error is a
// *CapacityError.
func Write[T Number](dst []byte, v T) (int, error) {
	if len(dst) >= MaxSize[T]() {
		return distance(&dst[0], WriteUnsafe(&dst[0], v)), nil
	}
	if kindOf[T]() != kindFloat {
		n := Estimate(v)
		if n > len(dst) {
			return 0, &CapacityError{Need: n, Have: len(dst)}
		}
		return distance(&dst[0], WriteUnsafe(&dst[0], v)), nil
	}
	var scratch [MaxSizeAny]byte
	n := distance(&scratch[0], WriteUnsafe(&scratch[0], v))
	if n > len(dst) {
		return 0, &CapacityError{Need: n, Have: len(dst)}
	}
	return copy(dst, scratch[:n]), nil
}

// Append appends the decimal form of v to dst and returns the extended
// slice.
func Append[T Number](dst []byte, v T) []byte {
	n := Estimate(v)
	// One spare byte keeps the returned end pointer inside the allocation.
	dst = slices.Grow(dst, n+1)
	start := len(dst)
	free := dst[start : start+n]
	return dst[:start+distance(&free[0], WriteUnsafe(&free[0], v))]
}

// Format returns the decimal form of v.
func Format[T Number](v T) string {
	var buf [MaxSizeAny]byte
	return string(buf[:distance(&buf[0], WriteUnsafe(&buf[0], v))])
}

// Len returns the exact length of the decimal form of v. For floats it
// performs the conversion into scratch space.
func Len[T Number](v T) int {
	if kindOf[T]() != kindFloat {
		return Estimate(v)
	}
	var buf [MaxSizeAny]byte
	return distance(&buf[0], WriteUnsafe(&buf[0], v))
}
