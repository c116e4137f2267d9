// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Algorithm is the hash used to fingerprint benchmark output.
type Algorithm uint8

const (
	BLAKE2b Algorithm = iota
	BLAKE3
)

func (a Algorithm) String() string {
	switch a {
	case BLAKE2b:
		return "blake2b"
	case BLAKE3:
		return "blake3"
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// ParseAlgorithm returns the algorithm named name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "blake2b":
		return BLAKE2b, nil
	case "blake3":
		return BLAKE3, nil
	}
	return 0, fmt.Errorf("unknown digest algorithm %q (want blake2b or blake3)", name)
}

// Digest returns the hex-encoded 256-bit hash of data.
func Digest(a Algorithm, data []byte) string {
	var sum [32]byte
	switch a {
	case BLAKE3:
		sum = blake3.Sum256(data)
	default:
		sum = blake2b.Sum256(data)
	}
	return hex.EncodeToString(sum[:])
}
