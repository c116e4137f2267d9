// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"corelib/internal/config"
	"corelib/internal/report"
)

func runBench(args []string, env *environment) error {
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	configPath := fs.String("config", "", "YAML or JSONC config file (default $"+config.EnvVar+")")
	size := fs.Int("size", 0, "values per operation")
	types := fs.StringSlice("type", nil, "types to run (repeatable; default all)")
	strategies := fs.StringSlice("strategy", nil, "strategies to run (repeatable; default all)")
	workers := fs.Int("workers", -1, "also run AppendParallel with this many workers; 0 means GOMAXPROCS")
	benchTime := fs.String("benchtime", "", "minimum time per measurement, or a count such as 100x")
	format := fs.String("format", "", "report format: text, json, yaml or cbor")
	digest := fs.String("digest", "", "output digest: blake2b or blake3")
	out := fs.StringP("out", "o", "", "write the report to this file; .zst and .lz4 compress it")
	metrics := fs.String("metrics", "", "also write the results as a Prometheus textfile")
	verbose := fs.BoolP("verbose", "v", false, "log every measurement")
	if help, err := parseFlags(fs, args, env); help || err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	logger := env.logger
	if logger == nil {
		logger = newLogger(env.stderr, *verbose)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if fs.Changed("size") {
		cfg.Size = *size
	}
	if fs.Changed("type") {
		cfg.Types = *types
	}
	if fs.Changed("strategy") {
		cfg.Strategies = *strategies
	}
	if fs.Changed("workers") {
		cfg.Workers = max(*workers, 0)
	}
	if fs.Changed("benchtime") {
		cfg.BenchTime = *benchTime
	}
	if fs.Changed("format") {
		cfg.Format = *format
	}
	if fs.Changed("digest") {
		cfg.Digest = *digest
	}
	if fs.Changed("out") {
		cfg.Output = *out
	}
	if fs.Changed("metrics") {
		cfg.Metrics = *metrics
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	// Validated above.
	f, _ := report.ParseFormat(cfg.Format)
	alg, _ := report.ParseAlgorithm(cfg.Digest)

	testing.Init()
	if err := flag.Set("test.benchtime", cfg.BenchTime); err != nil {
		return fmt.Errorf("bench_time: %w", err)
	}

	r := &report.Report{
		Tool:      "tochars",
		Version:   Version,
		Host:      report.CurrentHost(),
		Size:      cfg.Size,
		Workers:   cfg.Workers,
		Algorithm: alg.String(),
	}
	start := time.Now()
	for _, name := range cfg.TypeList() {
		nt, err := lookupType(name)
		if err != nil {
			return err
		}
		for _, s := range cfg.StrategyList() {
			res := nt.bench(s, cfg.Size, 0, alg)
			logger.Debug("measured", "type", res.Type, "strategy", res.Strategy, "n", res.N, "ns_per_op", res.NsPerOp)
			r.Results = append(r.Results, res)
		}
		if cfg.Workers > 0 {
			res := nt.bench(0, cfg.Size, cfg.Workers, alg)
			logger.Debug("measured", "type", res.Type, "strategy", res.Strategy, "n", res.N, "ns_per_op", res.NsPerOp)
			r.Results = append(r.Results, res)
		}
	}
	logger.Info("benchmark complete", "results", len(r.Results), "elapsed", time.Since(start).Round(time.Millisecond))

	if cfg.Metrics != "" {
		if err := report.WriteMetrics(cfg.Metrics, r); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logger.Info("metrics written", "path", cfg.Metrics)
	}
	if cfg.Output != "" {
		if err := report.WriteFile(cfg.Output, r, f); err != nil {
			return err
		}
		logger.Info("report written", "path", cfg.Output, "format", f, "compression", report.CompressionFor(cfg.Output))
		return nil
	}
	return report.Encode(env.stdout, r, f)
}

// loadConfig reads path, or $TOCHARS_CONFIG when path is empty, or
// falls back to the defaults when neither is set.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvVar)
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}
