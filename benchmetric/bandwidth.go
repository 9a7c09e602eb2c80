// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmetric derives comparison metrics from benchmark
// tables: per-implementation bandwidth from message size and raw
// latency, and synchronization cost as a percentage of the reference
// implementation.
package benchmetric

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/shmembench/benchfig/benchcsv"
)

// BytesPerUsToMiBps converts bytes/microsecond to mebibytes/second.
// It equals 10^6 / 2^20.
const BytesPerUsToMiBps = 0.95367431640625

// SizeCol is the message size column, in bytes.
const SizeCol = "Msg Size (b)"

// An Impl names one of the three compared implementations and its
// columns. RawCol holds measured latency in microseconds. BWCol and
// AltBWCol are the two bandwidth namings found in upstream data;
// either counts as precomputed bandwidth.
type Impl struct {
	Name     string
	RawCol   string
	BWCol    string
	AltBWCol string
}

// Impls lists the compared implementations: the reference first, then
// the two alternates. Chart series follow this order.
var Impls = []Impl{
	{Name: "C", RawCol: "C (raw, us)", BWCol: "C MiBPS", AltBWCol: "C mibps"},
	{Name: "RS", RawCol: "RS (raw, us)", BWCol: "RS MiBPS", AltBWCol: "RS mibps"},
	{Name: "Py", RawCol: "Py (raw, us)", BWCol: "Py MiBPS", AltBWCol: "Py mibps"},
}

// BandwidthCol returns the bandwidth column of imp present in t, under
// either naming, or "" if t has no bandwidth column for imp.
func BandwidthCol(t *table.Table, imp Impl) string {
	if benchcsv.Has(t, imp.BWCol) {
		return imp.BWCol
	}
	if benchcsv.Has(t, imp.AltBWCol) {
		return imp.AltBWCol
	}
	return ""
}

// HasBandwidth reports whether t already carries precomputed
// bandwidth columns. Upstream files either have them for every
// implementation or for none, so checking the reference suffices.
func HasBandwidth(t *table.Table) bool {
	return BandwidthCol(t, Impls[0]) != ""
}

// DeriveBandwidth returns t extended with one bandwidth column per
// implementation, computed as size/latency scaled to MiB/s. If t
// already has bandwidth columns under either naming, it is returned
// unchanged, so deriving twice never rescales. Row order and existing
// columns are preserved.
//
// A non-positive latency has no defined bandwidth; rather than let an
// infinity leak into chart autoscaling, DeriveBandwidth rejects the
// table with an error naming the row.
func DeriveBandwidth(t *table.Table) (*table.Table, error) {
	if HasBandwidth(t) {
		return t, nil
	}

	sizes, ok := benchcsv.Floats(t, SizeCol)
	if !ok {
		return nil, fmt.Errorf("missing column %q", SizeCol)
	}

	b := table.NewBuilder(t)
	for _, imp := range Impls {
		lats, ok := benchcsv.Floats(t, imp.RawCol)
		if !ok {
			return nil, fmt.Errorf("missing column %q", imp.RawCol)
		}
		bws := make([]float64, len(lats))
		for i, lat := range lats {
			if lat <= 0 {
				return nil, fmt.Errorf("row %d: non-positive latency %v in %q", i+1, lat, imp.RawCol)
			}
			bws[i] = sizes[i] / lat * BytesPerUsToMiBps
		}
		b.Add(imp.BWCol, bws)
	}
	return b.Done(), nil
}
