// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a report was produced on.
type Host struct {
	OS        string   `json:"os" yaml:"os" cbor:"os"`
	Arch      string   `json:"arch" yaml:"arch" cbor:"arch"`
	GoVersion string   `json:"go_version" yaml:"go_version" cbor:"go_version"`
	CPUs      int      `json:"cpus" yaml:"cpus" cbor:"cpus"`
	Features  []string `json:"features,omitempty" yaml:"features,omitempty" cbor:"features,omitempty"`
}

// CurrentHost describes the running machine, including the CPU
// features that affect multiplication and bit-scan throughput.
func CurrentHost() Host {
	return Host{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
		CPUs:      runtime.NumCPU(),
		Features:  cpuFeatures(runtime.GOARCH),
	}
}

func cpuFeatures(arch string) []string {
	var flags []struct {
		name string
		ok   bool
	}
	switch arch {
	case "amd64", "386":
		flags = []struct {
			name string
			ok   bool
		}{
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"bmi2", cpu.X86.HasBMI2},
			{"adx", cpu.X86.HasADX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		flags = []struct {
			name string
			ok   bool
		}{
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"crc32", cpu.ARM64.HasCRC32},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	var out []string
	for _, f := range flags {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
