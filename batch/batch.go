// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch renders slices of numbers into one byte slice. The
// strategies differ only in how the destination is sized; every
// writing strategy produces the same bytes, the values concatenated
// without separators.
package batch

import (
	"fmt"
	"runtime"
	"slices"
	"sync"
	"unsafe"

	"corelib/tochars"
)

// A Strategy selects how the destination is sized before writing.
type Strategy uint8

const (
	// Copy formats each value into scratch space and appends the used
	// bytes, growing the destination as it goes.
	Copy Strategy = iota

	// OverAllocate reserves MaxSize bytes per value, writes in place and
	// keeps only what was written.
	OverAllocate

	// TwoPass formats every value once to learn the exact total, makes
	// one allocation, then formats again into it.
	TwoPass

	// Estimated sizes the destination with the sum of Estimate and
	// writes in place. For integers the sum is exact.
	Estimated

	// EstimateOnly computes the Estimated sum and writes nothing.
	EstimateOnly
)

var strategyNames = [...]string{
	Copy:         "copy",
	OverAllocate: "over-allocate",
	TwoPass:      "two-pass",
	Estimated:    "estimated",
	EstimateOnly: "estimate-only",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// Writes reports whether s produces output.
func (s Strategy) Writes() bool { return s != EstimateOnly }

// ParseStrategy returns the strategy named name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	all := make([]Strategy, len(strategyNames))
	for i := range all {
		all[i] = Strategy(i)
	}
	return all
}

// Append renders values onto dst using s and returns the extended slice.
// EstimateOnly returns dst unchanged.
func Append[T tochars.Number](s Strategy, dst []byte, values []T) []byte {
	if len(values) == 0 {
		return dst
	}
	switch s {
	case Copy:
		return appendCopy(dst, values)
	case OverAllocate:
		return appendSized(dst, values, tochars.MaxSize[T]()*len(values))
	case TwoPass:
		return appendSized(dst, values, formattedTotal(values))
	case Estimated:
		return appendSized(dst, values, EstimateTotal(values))
	case EstimateOnly:
		return dst
	}
	panic("batch: invalid strategy " + s.String())
}

// EstimateTotal returns the sum of tochars.Estimate over values.
func EstimateTotal[T tochars.Number](values []T) int {
	total := 0
	for _, v := range values {
		total += tochars.Estimate(v)
	}
	return total
}

func appendCopy[T tochars.Number](dst []byte, values []T) []byte {
	var scratch [tochars.MaxSizeAny]byte
	for _, v := range values {
		n := span(&scratch[0], tochars.WriteUnsafe(&scratch[0], v))
		dst = append(dst, scratch[:n]...)
	}
	return dst
}

// appendSized reserves size bytes, which must cover every value, and
// writes all values in place.
func appendSized[T tochars.Number](dst []byte, values []T, size int) []byte {
	// The spare byte keeps the final end pointer inside the allocation.
	dst = slices.Grow(dst, size+1)
	start := len(dst)
	free := dst[start : start+size+1]

	p := &free[0]
	for _, v := range values {
		p = tochars.WriteUnsafe(p, v)
	}
	return dst[:start+span(&free[0], p)]
}

func formattedTotal[T tochars.Number](values []T) int {
	var scratch [tochars.MaxSizeAny]byte
	total := 0
	for _, v := range values {
		total += span(&scratch[0], tochars.WriteUnsafe(&scratch[0], v))
	}
	return total
}

// AppendParallel renders values onto dst like Append with Estimated,
// splitting the work across up to workers goroutines. Each goroutine
// writes its own buffer; the buffers are joined in order. workers <= 0
// means GOMAXPROCS.
func AppendParallel[T tochars.Number](dst []byte, values []T, workers int) []byte {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(values))
	if workers <= 1 {
		return Append(Estimated, dst, values)
	}

	parts := make([][]byte, workers)
	chunk := (len(values) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := range parts {
		lo := min(w*chunk, len(values))
		hi := min(lo+chunk, len(values))
		wg.Go(func() {
			parts[w] = Append(Estimated, nil, values[lo:hi])
		})
	}
	wg.Wait()

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	dst = slices.Grow(dst, total)
	for _, p := range parts {
		dst = append(dst, p...)
	}
	return dst
}

func span(start, end *byte) int {
	return int(uintptr(unsafe.Pointer(end)) - uintptr(unsafe.Pointer(start)))
}
