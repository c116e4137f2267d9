// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"corelib/tochars"
)

// WriteMetrics writes r in the Prometheus text format to path, for a
// node exporter textfile collector to pick up.
func WriteMetrics(path string, r *Report) error {
	return prometheus.WriteToTextfile(path, registry(r))
}

func registry(r *Report) *prometheus.Registry {
	labels := []string{"type", "strategy"}
	nsPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tochars_bench_ns_per_op",
		Help: "Nanoseconds to format one batch of values",
	}, labels)
	nsPerValue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tochars_bench_ns_per_value",
		Help: "Nanoseconds per formatted value",
	}, labels)
	allocs := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tochars_bench_allocs_per_op",
		Help: "Heap allocations per batch",
	}, labels)
	outBytes := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tochars_bench_output_bytes",
		Help: "Bytes of text produced (or reserved, for estimate-only) per batch",
	}, labels)
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tochars_bench_info",
		Help: "Always 1; labels describe the run",
	}, []string{"version", "go_version", "arch", "size"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(nsPerOp, nsPerValue, allocs, outBytes, info)

	for _, res := range r.Results {
		nsPerOp.WithLabelValues(res.Type, res.Strategy).Set(res.NsPerOp)
		nsPerValue.WithLabelValues(res.Type, res.Strategy).Set(res.NsPerValue)
		allocs.WithLabelValues(res.Type, res.Strategy).Set(float64(res.AllocsPerOp))
		outBytes.WithLabelValues(res.Type, res.Strategy).Set(float64(res.Bytes))
	}
	info.WithLabelValues(r.Version, r.Host.GoVersion, r.Host.Arch, tochars.Format(r.Size)).Set(1)
	return reg
}
