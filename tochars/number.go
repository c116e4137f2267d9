// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars

import "golang.org/x/exp/constraints"

// Number is the set of types this package can render.
type Number interface {
	constraints.Integer | constraints.Float
}

type kind uint8

const (
	kindUnsigned kind = iota
	kindSigned
	kindFloat
)

// kindOf classifies T without reflection so that named types
// (type Celsius float32) dispatch the same way as their underlying type.
func kindOf[T Number]() kind {
	var one T = 1
	if one/2 != 0 {
		return kindFloat
	}
	var zero T
	if zero-1 < zero {
		return kindSigned
	}
	return kindUnsigned
}
