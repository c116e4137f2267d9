// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars_test

import (
	"fmt"
	"unsafe"

	"corelib/tochars"
)

func ExampleWriteUnsafe() {
	values := []int32{7, -120, 65536}

	total := len(values) - 1
	for _, v := range values {
		total += tochars.Estimate(v)
	}
	buf := make([]byte, total)

	p := &buf[0]
	for i, v := range values {
		if i > 0 {
			*p = ' '
			p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1))
		}
		p = tochars.WriteUnsafe(p, v)
	}
	fmt.Printf("%q\n", buf)
	// Output:
	// "7 -120 65536"
}

func ExampleFormat() {
	fmt.Println(tochars.Format(0.1))
	fmt.Println(tochars.Format(1e21))
	fmt.Println(tochars.Format(float32(1) / 3))
	fmt.Println(tochars.Format(-0.0000001))
	fmt.Println(tochars.Format(int8(-128)))
	// Output:
	// 0.1
	// 1e+21
	// 0.33333334
	// -1e-7
	// -128
}

func ExampleMaxSize() {
	fmt.Println(tochars.MaxSize[uint32](), tochars.MaxSize[int64](), tochars.MaxSize[float64]())
	// Output:
	// 10 20 25
}
