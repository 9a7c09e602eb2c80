// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"

	"github.com/shmembench/benchfig/benchunit"
)

// SizeTicks places a tick at every power of two within the axis
// range, labeled as a compact byte size (1 ... 512, 1K ... 1M).
// Intended for a log-scaled message size axis.
type SizeTicks struct{}

func (SizeTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 {
		min = 1
	}
	var ticks []plot.Tick
	for v := 1.0; v <= max*(1+1e-9); v *= 2 {
		if v < min*(1-1e-9) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: benchunit.Bytes(v)})
	}
	return ticks
}

// UnitTicks places major ticks at powers of ten, labeled with the
// given unit class, and unlabeled minor ticks at 2x and 5x. Intended
// for log-scaled measurement axes.
type UnitTicks struct {
	Class benchunit.Class
}

func (u UnitTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= min {
		return nil
	}
	var ticks []plot.Tick
	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))
	for e := lo; e <= hi; e++ {
		v := math.Pow(10, e)
		if v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: benchunit.Scale(v, u.Class)})
		}
		for _, m := range []float64{2, 5} {
			if m*v >= min && m*v <= max {
				ticks = append(ticks, plot.Tick{Value: m * v})
			}
		}
	}
	return ticks
}

// PercentTicks places a tick every Step percent, labeled to two
// decimal places the way the bar annotations are.
type PercentTicks struct {
	Step float64 // default 25
}

func (t PercentTicks) Ticks(min, max float64) []plot.Tick {
	step := t.Step
	if step <= 0 {
		step = 25
	}
	var ticks []plot.Tick
	for v := math.Ceil(min/step) * step; v <= max+step/1e6; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%.2f%%", v)})
	}
	return ticks
}

// LogPercentTicks doubles from the axis floor: 50%, 100%, 200%, ...
type LogPercentTicks struct{}

func (LogPercentTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 {
		min = 50
	}
	var ticks []plot.Tick
	for v := min; v <= max*(1+1e-9); v *= 2 {
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%g%%", v)})
	}
	return ticks
}
