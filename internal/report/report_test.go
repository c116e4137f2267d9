// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Report {
	return &Report{
		Tool:      "tochars",
		Version:   "v0.1.0",
		Host:      Host{OS: "linux", Arch: "amd64", GoVersion: "go1.25.0", CPUs: 8, Features: []string{"avx2"}},
		Size:      128,
		Algorithm: "blake2b",
		Results: []Result{
			{Type: "int64", Strategy: "copy", Values: 128, Bytes: 1321, N: 1000, NsPerOp: 812.5, NsPerValue: 6.35, AllocsPerOp: 9, BytesPerOp: 4096, Digest: Digest(BLAKE2b, []byte("x"))},
			{Type: "int64", Strategy: "estimate-only", Values: 128, N: 5000, NsPerOp: 101.2, NsPerValue: 0.79},
		},
	}
}

func TestEncodeText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample(), Text))
	out := buf.String()
	assert.Contains(t, out, "tochars v0.1.0  linux/amd64  go1.25.0  cpus=8  size=128")
	assert.Contains(t, out, "cpu features: [avx2]")
	assert.Contains(t, out, "estimate-only")
	assert.Contains(t, out, Digest(BLAKE2b, []byte("x"))[:16])
	assert.NotContains(t, out, Digest(BLAKE2b, []byte("x"))[:17])
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample(), JSON))
	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "blake2b", fields["digest_algorithm"])
	results := fields["results"].([]any)
	require.Len(t, results, 2)
	assert.NotContains(t, results[1], "digest", "empty digest omitted")
}

// Core deterministic encoding makes equal reports byte-identical.
func TestEncodeCBORDeterministic(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, sample(), CBOR))
	require.NoError(t, Encode(&b, sample(), CBOR))
	assert.Equal(t, a.Bytes(), b.Bytes())

	var got Report
	require.NoError(t, cbor.Unmarshal(a.Bytes(), &got))
	assert.Equal(t, *sample(), got)
}

func TestEncodeUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Encode(&bytes.Buffer{}, sample(), Format(42))
	require.ErrorContains(t, err, "Format(42)")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"text", "json", "yaml", "cbor"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	t.Parallel()

	data := []byte("-128127")
	b2 := Digest(BLAKE2b, data)
	b3 := Digest(BLAKE3, data)
	assert.Len(t, b2, 64)
	assert.Len(t, b3, 64)
	assert.NotEqual(t, b2, b3)
	assert.Equal(t, b2, Digest(BLAKE2b, []byte("-128127")))
	// Well-known BLAKE3 hash of the empty input.
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", Digest(BLAKE3, nil))

	for _, a := range []Algorithm{BLAKE2b, BLAKE3} {
		got, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAlgorithm("md5")
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name        string
		format      Format
		compression Compression
	}{
		{"report.json", JSON, None},
		{"report.yaml.zst", YAML, Zstd},
		{"report.cbor.lz4", CBOR, LZ4},
		{"report.json.zstd", JSON, Zstd},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		assert.Equal(t, tt.compression, CompressionFor(path))
		require.NoError(t, WriteFile(path, sample(), tt.format))
		got, err := ReadFile(path, tt.format)
		require.NoError(t, err, tt.name)
		assert.Equal(t, sample(), got, tt.name)
	}

	path := filepath.Join(dir, "report.txt")
	require.NoError(t, WriteFile(path, sample(), Text))
	_, err := ReadFile(path, Text)
	require.ErrorContains(t, err, "cannot be decoded")
}

func TestCurrentHost(t *testing.T) {
	t.Parallel()

	h := CurrentHost()
	assert.Equal(t, runtime.GOOS, h.OS)
	assert.Equal(t, runtime.GOARCH, h.Arch)
	assert.True(t, strings.HasPrefix(h.GoVersion, "go") || strings.HasPrefix(h.GoVersion, "devel"))
	assert.Positive(t, h.CPUs)
	assert.Empty(t, cpuFeatures("riscv64"))
}

func TestWriteMetrics(t *testing.T) {
	t.Parallel()

	families, err := registry(sample()).Gather()
	require.NoError(t, err)
	counts := map[string]int{}
	for _, mf := range families {
		counts[mf.GetName()] = len(mf.GetMetric())
	}
	assert.Equal(t, 2, counts["tochars_bench_ns_per_op"])
	assert.Equal(t, 2, counts["tochars_bench_output_bytes"])
	assert.Equal(t, 1, counts["tochars_bench_info"])

	path := filepath.Join(t.TempDir(), "tochars.prom")
	require.NoError(t, WriteMetrics(path, sample()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tochars_bench_ns_per_op{strategy="copy",type="int64"} 812.5`)
	assert.Contains(t, string(data), `size="128"`)
}
