// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"path/filepath"

	"github.com/aclements/go-gg/table"

	"github.com/shmembench/benchfig/benchcsv"
	"github.com/shmembench/benchfig/benchmetric"
	"github.com/shmembench/benchfig/benchplot"
	"github.com/shmembench/benchfig/benchunit"
)

// Get generates the one-sided get comparison figures: a latency chart
// and a bandwidth chart per scenario, each in a linear and a log
// y-axis variant.
func Get(c *Config) error {
	return genOp(c, "get", "bw_shmem_get.csv")
}

// Put generates the one-sided put comparison figures, with the same
// variants as Get.
func Put(c *Config) error {
	return genOp(c, "put", "bw_shmem_put.csv")
}

var opScales = []benchplot.AxisScale{benchplot.Linear, benchplot.Log}

// genOp is the single code path behind Get and Put; the two
// categories differ only in name and input file.
func genOp(c *Config, category, file string) error {
	outDir := filepath.Join(c.FigDir, category)
	for _, sc := range Scenarios {
		t := c.load(sc, file)
		if t == nil {
			continue
		}

		sizes, ok := benchcsv.Floats(t, benchmetric.SizeCol)
		if !ok {
			return fmt.Errorf("%s/%s: missing column %q", sc.Dir, file, benchmetric.SizeCol)
		}

		lat, err := implSeries(t, sizes, func(imp benchmetric.Impl) string { return imp.RawCol })
		if err != nil {
			return fmt.Errorf("%s/%s: %v", sc.Dir, file, err)
		}
		for _, scale := range opScales {
			p, err := benchplot.Lines(c.Style, benchplot.LineConfig{
				YLabel: "Latency (µs)",
				YScale: scale,
				YClass: benchunit.Decimal,
			}, lat)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s_%s_latency_%s.pdf", category, sc.Name, scale)
			if err := benchplot.WritePDF(p, c.Style, outDir, name); err != nil {
				return err
			}
		}

		bt, err := benchmetric.DeriveBandwidth(t)
		if err != nil {
			c.logger().Printf("%s/%s: %v; skipping bandwidth charts", sc.Dir, file, err)
			continue
		}
		bw, err := implSeries(bt, sizes, func(imp benchmetric.Impl) string { return benchmetric.BandwidthCol(bt, imp) })
		if err != nil {
			return fmt.Errorf("%s/%s: %v", sc.Dir, file, err)
		}
		for _, scale := range opScales {
			p, err := benchplot.Lines(c.Style, benchplot.LineConfig{
				YLabel: "Bandwidth (MiB/s)",
				YScale: scale,
				YClass: benchunit.Binary,
			}, bw)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s_%s_bandwidth_%s.pdf", category, sc.Name, scale)
			if err := benchplot.WritePDF(p, c.Style, outDir, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// implSeries builds one chart series per implementation from the
// column named by colOf, in implementation order.
func implSeries(t *table.Table, sizes []float64, colOf func(benchmetric.Impl) string) ([]benchplot.Series, error) {
	series := make([]benchplot.Series, 0, len(benchmetric.Impls))
	for _, imp := range benchmetric.Impls {
		col := colOf(imp)
		ys, ok := benchcsv.Floats(t, col)
		if !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
		series = append(series, benchplot.Series{Name: imp.Name, X: sizes, Y: ys})
	}
	return series, nil
}
