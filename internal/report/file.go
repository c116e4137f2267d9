// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

// Compression is applied to report files according to their extension.
type Compression uint8

const (
	None Compression = iota
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return fmt.Sprintf("Compression(%d)", c)
}

// CompressionFor picks the compression implied by path's extension:
// .zst or .zstd for zstd, .lz4 for LZ4, none otherwise.
func CompressionFor(path string) Compression {
	switch filepath.Ext(path) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	}
	return None
}

// WriteFile encodes r in format f to path, compressed as CompressionFor
// dictates.
func WriteFile(path string, r *Report, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := compressor(file, CompressionFor(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := Encode(w, r, f); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return w.Close()
}

// ReadFile decodes a report written by WriteFile. Text reports cannot be
// read back.
func ReadFile(path string, f Format) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rd io.Reader = file
	switch CompressionFor(path) {
	case Zstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer dec.Close()
		rd = dec
	case LZ4:
		rd = lz4.NewReader(file)
	}

	var r Report
	switch f {
	case JSON:
		err = json.NewDecoder(rd).Decode(&r)
	case YAML:
		err = yaml.NewDecoder(rd).Decode(&r)
	case CBOR:
		err = cbor.NewDecoder(rd).Decode(&r)
	default:
		err = errors.New("format " + f.String() + " cannot be decoded")
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &r, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w)
	case LZ4:
		return lz4.NewWriter(w), nil
	}
	return nopCloser{w}, nil
}
