// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"path/filepath"

	"github.com/shmembench/benchfig/benchmetric"
	"github.com/shmembench/benchfig/benchplot"
)

var syncPolicies = []benchplot.RangePolicy{
	benchplot.RangeStandard,
	benchplot.RangeExtended,
	benchplot.RangeLog,
}

// Sync generates the synchronization overhead figures: per scenario,
// a grouped bar chart with one group per routine and one bar per
// implementation, the reference fixed at 100%. The standard and
// extended variants differ in y range; the log variant uses a
// logarithmic percent axis and shortened routine names.
func Sync(c *Config) error {
	outDir := filepath.Join(c.FigDir, "sync")
	for _, sc := range Scenarios {
		t := c.load(sc, "latency.csv")
		if t == nil {
			continue
		}
		rows, err := benchmetric.SyncRows(t)
		if err != nil {
			return fmt.Errorf("%s/latency.csv: %v", sc.Dir, err)
		}

		routines := make([]string, len(rows))
		short := make([]string, len(rows))
		refs := make([]float64, len(rows))
		altA := make([]float64, len(rows))
		altB := make([]float64, len(rows))
		for i, r := range rows {
			routines[i] = r.Routine
			short[i] = benchmetric.DisplayName(r.Routine)
			refs[i] = r.Ref
			altA[i] = r.AltA
			altB[i] = r.AltB
		}
		series := []benchplot.BarSeries{
			{Name: "C (baseline)", Values: refs},
			{Name: "RS (% of C)", Values: altA},
			{Name: "Py (% of C)", Values: altB},
		}

		for _, policy := range syncPolicies {
			names := routines
			if policy == benchplot.RangeLog {
				names = short
			}
			p, err := benchplot.Bars(c.Style, "Percentage (%)", policy, names, series)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("sync_%s_%s.pdf", sc.Name, policy)
			if err := benchplot.WritePDF(p, c.Style, outDir, name); err != nil {
				return err
			}
		}
	}
	return nil
}
