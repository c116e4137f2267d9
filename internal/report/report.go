// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report describes a benchmark run and encodes it for people
// and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Result is one strategy measured on one type.
type Result struct {
	Type     string `json:"type" yaml:"type" cbor:"type"`
	Strategy string `json:"strategy" yaml:"strategy" cbor:"strategy"`

	// Values is the number of values formatted per operation and Bytes
	// the length of the output they produced.
	Values int `json:"values" yaml:"values" cbor:"values"`
	Bytes  int `json:"bytes" yaml:"bytes" cbor:"bytes"`

	N           int     `json:"n" yaml:"n" cbor:"n"`
	NsPerOp     float64 `json:"ns_per_op" yaml:"ns_per_op" cbor:"ns_per_op"`
	NsPerValue  float64 `json:"ns_per_value" yaml:"ns_per_value" cbor:"ns_per_value"`
	AllocsPerOp int64   `json:"allocs_per_op" yaml:"allocs_per_op" cbor:"allocs_per_op"`
	BytesPerOp  int64   `json:"bytes_per_op" yaml:"bytes_per_op" cbor:"bytes_per_op"`

	// Digest identifies the output. Strategies that agree on a type
	// have equal digests; estimate-only runs have none.
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty" cbor:"digest,omitempty"`
}

// Report is a complete benchmark run.
type Report struct {
	Tool      string   `json:"tool" yaml:"tool" cbor:"tool"`
	Version   string   `json:"version" yaml:"version" cbor:"version"`
	Host      Host     `json:"host" yaml:"host" cbor:"host"`
	Size      int      `json:"size" yaml:"size" cbor:"size"`
	Workers   int      `json:"workers,omitempty" yaml:"workers,omitempty" cbor:"workers,omitempty"`
	Algorithm string   `json:"digest_algorithm" yaml:"digest_algorithm" cbor:"digest_algorithm"`
	Results   []Result `json:"results" yaml:"results" cbor:"results"`
}

// Format is an output encoding.
type Format uint8

const (
	Text Format = iota
	JSON
	YAML
	CBOR
)

var formatNames = [...]string{
	Text: "text",
	JSON: "json",
	YAML: "yaml",
	CBOR: "cbor",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", f)
}

// ParseFormat returns the format named name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (want text, json, yaml or cbor)", name)
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}
}

// Encode writes r to w in format f.
func Encode(w io.Writer, r *Report, f Format) error {
	switch f {
	case Text:
		return encodeText(w, r)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case CBOR:
		return encMode.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("report: cannot encode format %v", f)
}

func encodeText(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "%s %s  %s/%s  %s  cpus=%d  size=%d\n",
		r.Tool, r.Version, r.Host.OS, r.Host.Arch, r.Host.GoVersion, r.Host.CPUs, r.Size)
	if len(r.Host.Features) > 0 {
		fmt.Fprintf(w, "cpu features: %v\n", r.Host.Features)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "type\tstrategy\tns/op\tns/value\tB/op\tallocs/op\tbytes\tdigest\t")
	for _, res := range r.Results {
		digest := res.Digest
		if len(digest) > 16 {
			digest = digest[:16]
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.2f\t%d\t%d\t%d\t%s\t\n",
			res.Type, res.Strategy, res.NsPerOp, res.NsPerValue, res.BytesPerOp, res.AllocsPerOp, res.Bytes, digest)
	}
	return tw.Flush()
}
