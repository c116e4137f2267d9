// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tochars renders integers and IEEE-754 floating-point values
// as decimal text directly into caller-owned memory.
//
// The package is built around three operations:
//
//   - [Estimate] returns the number of bytes a value needs. For integers
//     the count is exact; for floats it is the type's maximum size.
//   - [WriteUnsafe] writes the text form at a pointer and returns the
//     pointer one past the last byte written. It never checks capacity:
//     the caller must guarantee at least [MaxSize] (or [Estimate]) bytes.
//   - [MaxSize] and the MaxSize* constants give the worst-case length of
//     a type.
//
// [Write], [Append], [Format] and [Len] are checked wrappers for code
// outside tight loops.
//
// Integers are written in their minimal decimal form with a leading '-'
// for negative values. Floats are written with the fewest significant
// digits that parse back to the same value (Dragonbox), laid out the way
// ECMAScript Number::toString does: plain notation when the decimal
// point falls within 21 digits left of the end and 6 zeros right of it,
// exponential notation otherwise.
//
//	1e+21  100000000000000000000  0.000001  1e-7  5e-324  -0  inf  nan
package tochars
