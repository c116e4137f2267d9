// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tochars_test

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	. "corelib/tochars"
)

// layout rewrites the shortest 'e' form produced by strconv into plain
// notation when the decimal point lies in (-6, 21], and into d.ddde±x
// otherwise.
func layout(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, err := strconv.Atoi(exp)
	if err != nil {
		panic(err)
	}
	if digits == "0" {
		return sign + "0"
	}

	nd, point := len(digits), e+1
	switch {
	case nd <= point && point <= 21:
		return sign + digits + strings.Repeat("0", point-nd)
	case 0 < point && point <= 21:
		return sign + digits[:point] + "." + digits[point:]
	case -6 < point && point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	}
	out := sign + digits[:1]
	if nd > 1 {
		out += "." + digits[1:]
	}
	if e < 0 {
		return out + "e-" + strconv.Itoa(-e)
	}
	return out + "e+" + strconv.Itoa(e)
}

func TestWriteFloatSpecial(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{writeUnsafe(t, math.NaN()), "nan"},
		{writeUnsafe(t, -math.NaN()), "nan"},
		{writeUnsafe(t, math.Inf(1)), "inf"},
		{writeUnsafe(t, math.Inf(-1)), "-inf"},
		{writeUnsafe(t, 0.0), "0"},
		{writeUnsafe(t, math.Copysign(0, -1)), "-0"},
		{writeUnsafe(t, float32(math.NaN())), "nan"},
		{writeUnsafe(t, float32(math.Inf(1))), "inf"},
		{writeUnsafe(t, float32(math.Inf(-1))), "-inf"},
		{writeUnsafe(t, float32(0)), "0"},
		{writeUnsafe(t, float32(math.Copysign(0, -1))), "-0"},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %q, want %q", i, tt.got, tt.want)
		}
	}
}

func TestWriteFloat64Literals(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{-1, "-1"},
		{0.1, "0.1"},
		{0.3, "0.3"},
		{1.5, "1.5"},
		{0.30000000000000004, "0.30000000000000004"},
		{123.456, "123.456"},
		{100, "100"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{123456789012345680000, "123456789012345680000"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{1.25e-7, "1.25e-7"},
		{-0.0000012345678901234567, "-0.0000012345678901234567"},
		{5e-324, "5e-324"},
		{-5e-324, "-5e-324"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{2.2250738585072014e-308, "2.2250738585072014e-308"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{-math.MaxFloat64, "-1.7976931348623157e+308"},
		{1 << 53, "9007199254740992"},
		{float64(math.MaxInt64), "9223372036854776000"},
	}
	for _, tt := range tests {
		if got := writeUnsafe(t, tt.in); got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFloat32Literals(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{1, "1"},
		{0.1, "0.1"},
		{1.1, "1.1"},
		{16777216, "16777216"},
		{1e20, "100000000000000000000"},
		{-1e20, "-100000000000000000000"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{math.MaxFloat32, "3.4028235e+38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
		{1.1754944e-38, "1.1754944e-38"},
		{-1.2345679e-7, "-1.2345679e-7"},
	}
	for _, tt := range tests {
		if got := writeUnsafe(t, tt.in); got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFloatLongest(t *testing.T) {
	if n := len(writeUnsafe(t, -0.0000012345678901234567)); n != MaxSizeFloat64 {
		t.Errorf("float64 longest form has %d bytes, want %d", n, MaxSizeFloat64)
	}
	if n := len(writeUnsafe(t, float32(-1e20))); n != MaxSizeFloat32 {
		t.Errorf("float32 longest form has %d bytes, want %d", n, MaxSizeFloat32)
	}
}

func checkFloat64(t *testing.T, f float64) {
	t.Helper()
	got := writeUnsafe(t, f)
	if want := layout(f, 64); got != want {
		t.Fatalf("%b: got %q, want %q", math.Float64bits(f), got, want)
	}
	back, err := strconv.ParseFloat(got, 64)
	if err != nil {
		t.Fatal(err)
	}
	if math.Float64bits(back) != math.Float64bits(f) {
		t.Fatalf("%q parsed back to %b, want %b", got, math.Float64bits(back), math.Float64bits(f))
	}
}

func checkFloat32(t *testing.T, f float32) {
	t.Helper()
	got := writeUnsafe(t, f)
	if want := layout(float64(f), 32); got != want {
		t.Fatalf("%b: got %q, want %q", math.Float32bits(f), got, want)
	}
	back, err := strconv.ParseFloat(got, 32)
	if err != nil {
		t.Fatal(err)
	}
	if math.Float32bits(float32(back)) != math.Float32bits(f) {
		t.Fatalf("%q parsed back to %b, want %b", got, math.Float32bits(float32(back)), math.Float32bits(f))
	}
}

func TestWriteFloat64Random(t *testing.T) {
	const iter = 100000

	for i := 0; i < iter; i++ {
		f := math.Float64frombits(rand.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		checkFloat64(t, f)
	}
}

func TestWriteFloat32Random(t *testing.T) {
	const iter = 100000

	for i := 0; i < iter; i++ {
		f := math.Float32frombits(rand.Uint32())
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			continue
		}
		checkFloat32(t, f)
	}
}

// Powers of two and ten sit on the asymmetric-interval and exact-integer
// edges of the shortest search.
func TestWriteFloatBoundaries(t *testing.T) {
	for e := -1074; e <= 1023; e++ {
		f := math.Ldexp(1, e)
		checkFloat64(t, f)
		checkFloat64(t, math.Nextafter(f, 0))
		checkFloat64(t, math.Nextafter(f, math.Inf(1)))
	}
	for e := -149; e <= 127; e++ {
		f := float32(math.Ldexp(1, e))
		checkFloat32(t, f)
		checkFloat32(t, math.Nextafter32(f, 0))
		checkFloat32(t, math.Nextafter32(f, float32(math.Inf(1))))
	}
	for k := -323; k <= 308; k++ {
		f, _ := strconv.ParseFloat("1e"+strconv.Itoa(k), 64)
		checkFloat64(t, f)
	}
	for k := -45; k <= 38; k++ {
		f, _ := strconv.ParseFloat("1e"+strconv.Itoa(k), 32)
		checkFloat32(t, float32(f))
	}
}

func BenchmarkWriteFloat64(b *testing.B) {
	var buf [MaxSizeFloat64]byte
	values := make([]float64, 1024)
	for i := range values {
		values[i] = math.Float64frombits(rand.Uint64() &^ (0x7ff << 52) | uint64(rand.Intn(0x7ff))<<52)
	}

	b.Run("tochars", func(b *testing.B) {
		for b.Loop() {
			for _, v := range values {
				WriteFloat64Unsafe(&buf[0], v)
			}
		}
	})
	b.Run("strconv", func(b *testing.B) {
		for b.Loop() {
			for _, v := range values {
				strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
			}
		}
	})
}

func BenchmarkWriteFloat32(b *testing.B) {
	var buf [MaxSizeFloat32]byte
	values := make([]float32, 1024)
	for i := range values {
		values[i] = math.Float32frombits(rand.Uint32() &^ (0xff << 23) | uint32(rand.Intn(0xff))<<23)
	}

	b.Run("tochars", func(b *testing.B) {
		for b.Loop() {
			for _, v := range values {
				WriteFloat32Unsafe(&buf[0], v)
			}
		}
	})
	b.Run("strconv", func(b *testing.B) {
		for b.Loop() {
			for _, v := range values {
				strconv.AppendFloat(buf[:0], float64(v), 'g', -1, 32)
			}
		}
	})
}
