// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tochars formats numbers the way the tochars package does and
// benchmarks the batch strategies built on it.
//
// Usage:
//
//	tochars format [--type T] [value ...]
//	tochars estimate [--type T] [value ...]
//	tochars maxsize
//	tochars bench [--config FILE] [flags]
//	tochars --version
//
// format and estimate read one value per line from stdin when no value
// is given. Put negative values after "--" so they are not taken for
// flags.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Version is set at build time with
// -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type command struct {
	name    string
	summary string
	run     func(args []string, env *environment) error
}

// environment carries the standard streams and logger into subcommands.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

var commands []command

func init() {
	commands = []command{
		{"format", "print the canonical text form of each value", runFormat},
		{"estimate", "compare estimated, fast and actual lengths", runEstimate},
		{"maxsize", "print the maximum text length of every type", runMaxSize},
		{"bench", "benchmark the batch strategies and print a report", runBench},
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stderr)
		return nil
	}
	if args[0] == "--version" {
		fmt.Fprintf(stdout, "tochars %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}

	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:], env)
		}
	}
	printUsage(stderr)
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "tochars formats numbers into their shortest decimal text.\n\nUsage:\n  tochars <command> [flags]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintf(w, "\nRun 'tochars <command> --help' for the flags of a command.\n")
}

// parseFlags parses args into fs. help is true when --help was given and
// usage has been printed.
func parseFlags(fs *pflag.FlagSet, args []string, env *environment) (help bool, err error) {
	fs.SetOutput(env.stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// newLogger writes text to a terminal and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// inputValues returns args, or the non-empty lines of r when args is
// empty.
func inputValues(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var values []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			values = append(values, line)
		}
	}
	return values, sc.Err()
}

func runFormat(args []string, env *environment) error {
	fs := pflag.NewFlagSet("format", pflag.ContinueOnError)
	typeName := fs.StringP("type", "t", "float64", "value type (uint8..uint64, int8..int64, float32, float64)")
	if help, err := parseFlags(fs, args, env); help || err != nil {
		return err
	}
	nt, err := lookupType(*typeName)
	if err != nil {
		return err
	}
	values, err := inputValues(fs.Args(), env.stdin)
	if err != nil {
		return err
	}

	for _, s := range values {
		out, err := nt.format(s)
		if err != nil {
			return fmt.Errorf("%s %q: %w", nt.name, s, err)
		}
		fmt.Fprintln(env.stdout, out)
	}
	return nil
}

func runEstimate(args []string, env *environment) error {
	fs := pflag.NewFlagSet("estimate", pflag.ContinueOnError)
	typeName := fs.StringP("type", "t", "int64", "value type (uint8..uint64, int8..int64, float32, float64)")
	if help, err := parseFlags(fs, args, env); help || err != nil {
		return err
	}
	nt, err := lookupType(*typeName)
	if err != nil {
		return err
	}
	values, err := inputValues(fs.Args(), env.stdin)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "value\ttext\testimate\tfast\tlength\tmax")
	for _, s := range values {
		row, err := nt.estimate(s)
		if err != nil {
			return fmt.Errorf("%s %q: %w", nt.name, s, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", s, row.text, row.estimate, row.fast, row.length, row.maxSize)
	}
	return tw.Flush()
}

func runMaxSize(args []string, env *environment) error {
	fs := pflag.NewFlagSet("maxsize", pflag.ContinueOnError)
	if help, err := parseFlags(fs, args, env); help || err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("maxsize takes no arguments")
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "type\tmax")
	for _, nt := range numTypes {
		fmt.Fprintf(tw, "%s\t%d\n", nt.name, nt.maxSize)
	}
	return tw.Flush()
}
