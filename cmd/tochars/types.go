// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"testing"

	"corelib/batch"
	"corelib/internal/cases"
	"corelib/internal/report"
	"corelib/tochars"
)

// estimateRow is one line of the estimate subcommand.
type estimateRow struct {
	text     string
	estimate int
	fast     int
	length   int
	maxSize  int
}

// numType binds the per-type generic operations to a type name so that
// subcommands can select a type at run time.
type numType struct {
	name    string
	maxSize int

	// format parses s as the type and returns its canonical form.
	format func(s string) (string, error)

	estimate func(s string) (estimateRow, error)

	// bench measures s over size table values. parallel > 0 measures
	// AppendParallel instead.
	bench func(s batch.Strategy, size, parallel int, alg report.Algorithm) report.Result
}

var numTypes = []numType{
	newNumType[uint8]("uint8", 'u', 8),
	newNumType[uint16]("uint16", 'u', 16),
	newNumType[uint32]("uint32", 'u', 32),
	newNumType[uint64]("uint64", 'u', 64),
	newNumType[int8]("int8", 'i', 8),
	newNumType[int16]("int16", 'i', 16),
	newNumType[int32]("int32", 'i', 32),
	newNumType[int64]("int64", 'i', 64),
	newNumType[float32]("float32", 'f', 32),
	newNumType[float64]("float64", 'f', 64),
}

func lookupType(name string) (numType, error) {
	for _, nt := range numTypes {
		if nt.name == name {
			return nt, nil
		}
	}
	return numType{}, fmt.Errorf("unknown type %q", name)
}

func newNumType[T tochars.Number](name string, kind byte, bits int) numType {
	parse := func(s string) (T, error) {
		switch kind {
		case 'u':
			u, err := strconv.ParseUint(s, 10, bits)
			return T(u), err
		case 'i':
			i, err := strconv.ParseInt(s, 10, bits)
			return T(i), err
		}
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	}

	return numType{
		name:    name,
		maxSize: tochars.MaxSize[T](),
		format: func(s string) (string, error) {
			v, err := parse(s)
			if err != nil {
				return "", err
			}
			return tochars.Format(v), nil
		},
		estimate: func(s string) (estimateRow, error) {
			v, err := parse(s)
			if err != nil {
				return estimateRow{}, err
			}
			text := tochars.Format(v)
			return estimateRow{
				text:     text,
				estimate: tochars.Estimate(v),
				fast:     tochars.EstimateFast(v),
				length:   len(text),
				maxSize:  tochars.MaxSize[T](),
			}, nil
		},
		bench: func(s batch.Strategy, size, parallel int, alg report.Algorithm) report.Result {
			values := cases.Fill[T](size)
			res := report.Result{Type: name, Strategy: s.String(), Values: size}

			var op func()
			switch {
			case parallel > 0:
				res.Strategy = fmt.Sprintf("parallel-%d", parallel)
				out := batch.AppendParallel(nil, values, parallel)
				res.Bytes, res.Digest = len(out), report.Digest(alg, out)
				op = func() { batch.AppendParallel(nil, values, parallel) }
			case !s.Writes():
				res.Bytes = batch.EstimateTotal(values)
				op = func() { batch.EstimateTotal(values) }
			default:
				out := batch.Append(s, nil, values)
				res.Bytes, res.Digest = len(out), report.Digest(alg, out)
				op = func() { batch.Append(s, nil, values) }
			}

			br := testing.Benchmark(func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					op()
				}
			})
			res.N = br.N
			res.AllocsPerOp = br.AllocsPerOp()
			res.BytesPerOp = br.AllocedBytesPerOp()
			if br.N > 0 {
				res.NsPerOp = float64(br.T.Nanoseconds()) / float64(br.N)
				res.NsPerValue = res.NsPerOp / float64(size)
			}
			return res
		},
	}
}
