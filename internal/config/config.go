// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads benchmark configuration for the tochars command.
//
// Configuration comes from a single file named by the --config flag or
// the TOCHARS_CONFIG environment variable. Files ending in .json or
// .jsonc are JSON with comments and trailing commas allowed; anything
// else is YAML. Unknown keys are rejected in both.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"corelib/batch"
	"corelib/internal/cases"
	"corelib/internal/report"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "TOCHARS_CONFIG"

// ErrNoConfig is returned by Load when EnvVar is unset.
var ErrNoConfig = errors.New(EnvVar + " environment variable not set")

// TypeNames lists the element types a benchmark can run over.
var TypeNames = []string{
	"uint8", "uint16", "uint32", "uint64",
	"int8", "int16", "int32", "int64",
	"float32", "float64",
}

// Config describes a benchmark run.
type Config struct {
	// Size is the number of values formatted per operation.
	Size int `yaml:"size" json:"size"`

	// Types and Strategies select the benchmark matrix. Empty means all.
	Types      []string `yaml:"types" json:"types"`
	Strategies []string `yaml:"strategies" json:"strategies"`

	// Workers, when above zero, adds a parallel run per type.
	Workers int `yaml:"workers" json:"workers"`

	// BenchTime is the minimum duration of each measurement, or a fixed
	// iteration count written as "100x".
	BenchTime string `yaml:"bench_time" json:"bench_time"`

	// Format is the report encoding: text, json, yaml or cbor.
	Format string `yaml:"format" json:"format"`

	// Digest is the output fingerprint hash: blake2b or blake3.
	Digest string `yaml:"digest" json:"digest"`

	// Output is the report path. Empty writes to stdout. A .zst or .lz4
	// suffix compresses the file.
	Output string `yaml:"output" json:"output"`

	// Metrics, when set, is a Prometheus textfile the results are also
	// written to.
	Metrics string `yaml:"metrics" json:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Size:       cases.DefaultSize,
		Types:      slices.Clone(TypeNames),
		Strategies: strategyNames(batch.Strategies()),
		BenchTime:  "1s",
		Format:     "text",
		Digest:     "blake2b",
	}
}

// Load loads the file named by TOCHARS_CONFIG.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, ErrNoConfig
	}
	return LoadFile(path)
}

// LoadFile loads path over the defaults. The result is not validated.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	}
	// An empty file leaves the defaults in place.
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %d", c.Size))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	for _, name := range c.Types {
		if !slices.Contains(TypeNames, name) {
			errs = append(errs, fmt.Errorf("types: unknown type %q", name))
		}
	}
	for _, name := range c.Strategies {
		if _, err := batch.ParseStrategy(name); err != nil {
			errs = append(errs, fmt.Errorf("strategies: %w", err))
		}
	}
	if err := validBenchTime(c.BenchTime); err != nil {
		errs = append(errs, fmt.Errorf("bench_time: %w", err))
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	if _, err := report.ParseAlgorithm(c.Digest); err != nil {
		errs = append(errs, fmt.Errorf("digest: %w", err))
	}

	return errors.Join(errs...)
}

// StrategyList returns Strategies parsed, or every strategy when empty.
// Call Validate first.
func (c *Config) StrategyList() []batch.Strategy {
	if len(c.Strategies) == 0 {
		return batch.Strategies()
	}
	out := make([]batch.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		if s, err := batch.ParseStrategy(name); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// TypeList returns Types, or every type when empty.
func (c *Config) TypeList() []string {
	if len(c.Types) == 0 {
		return TypeNames
	}
	return c.Types
}

func validBenchTime(s string) error {
	if count, ok := strings.CutSuffix(s, "x"); ok {
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid iteration count %q", s)
		}
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", s)
	}
	return nil
}

func strategyNames(all []batch.Strategy) []string {
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return names
}
