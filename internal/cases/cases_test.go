// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cases

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillUint8(t *testing.T) {
	t.Parallel()

	got := Fill[uint8](DefaultSize)
	require.Len(t, got, DefaultSize)
	// 0..9, 10, 11, 15, 21, 34, 42, 99, 100, 101, 123, 127, 128, 255 then 256 stops.
	want := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 15, 21, 34, 42, 99, 100, 101, 123, 127, 128, 255}
	assert.Equal(t, want, got[:len(want)])
	assert.Equal(t, want[:5], got[len(want):len(want)+5], "padding cycles from the start")
}

func TestFillInt8(t *testing.T) {
	t.Parallel()

	got := Fill[int8](DefaultSize)
	require.Len(t, got, DefaultSize)
	// The unsigned part stops at 128 and the signed part at -129.
	unsigned := 21
	assert.Equal(t, int8(127), got[unsigned-1])
	assert.Equal(t, int8(0), got[unsigned])
	assert.Equal(t, int8(-1), got[unsigned+1])
	assert.Contains(t, got, int8(math.MinInt8))
}

func TestFillRanges(t *testing.T) {
	t.Parallel()

	u64 := Fill[uint64](DefaultSize)
	assert.Equal(t, uint64(math.MaxUint64), u64[len(Unsigned)-1])
	assert.Equal(t, Unsigned[:DefaultSize-len(Unsigned)], u64[len(Unsigned):])

	i64 := Fill[int64](DefaultSize)
	assert.Equal(t, int64(math.MaxInt64), i64[67])
	assert.Equal(t, int64(0), i64[68])
	assert.Equal(t, Signed[:DefaultSize-68], i64[68:], "signed table truncated at the case size")

	u16 := Fill[uint16](DefaultSize)
	assert.Equal(t, uint16(65535), u16[33])
	assert.Equal(t, uint16(0), u16[34])
}

func TestFillFloats(t *testing.T) {
	t.Parallel()

	f32 := Fill[float32](DefaultSize)
	require.Len(t, f32, DefaultSize)
	assert.Equal(t, float32(math.SmallestNonzeroFloat32), f32[len(Floats)-2])
	assert.Equal(t, float32(0), f32[len(Floats)-1], "5e-324 narrows to zero")

	f64 := Fill[float64](DefaultSize)
	assert.True(t, math.Signbit(f64[3]))
	assert.True(t, math.IsNaN(f64[19]))
}

func TestFillShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int32{0, 1, 2}, Fill[int32](3))
	assert.Empty(t, Fill[float64](0))
}
