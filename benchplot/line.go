// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/shmembench/benchfig/benchunit"
)

// An AxisScale selects linear or logarithmic scaling for the
// measurement axis of a line chart.
type AxisScale int

const (
	Linear AxisScale = iota
	Log
)

func (s AxisScale) String() string {
	if s == Log {
		return "log"
	}
	return "linear"
}

// A Series is one implementation's measurements over message sizes.
type Series struct {
	Name string
	X    []float64 // message size, bytes
	Y    []float64
}

// A LineConfig selects the per-chart options of Lines.
type LineConfig struct {
	Title  string
	YLabel string
	YScale AxisScale
	// YClass is the unit class for log axis tick labels: Binary for
	// byte-derived measures, Decimal otherwise.
	YClass benchunit.Class
}

// Lines draws one line with point markers per series over a base-2
// logarithmic message size axis. Series are colored and marked by
// index from sty.
func Lines(sty *Style, cfg LineConfig, series []Series) (*plot.Plot, error) {
	p := plot.New()
	sty.apply(p)
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Message Size (bytes)"
	p.Y.Label.Text = cfg.YLabel

	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = SizeTicks{}
	p.X.Tick.Label.Rotation = -math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XLeft
	p.X.Tick.Label.YAlign = draw.YTop

	if cfg.YScale == Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = UnitTicks{Class: cfg.YClass}
	}

	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %q: %d sizes but %d values", s.Name, len(s.X), len(s.Y))
		}
		// LogScale is undefined at zero; reject rather than panic
		// deep inside the draw.
		for j, x := range s.X {
			if x <= 0 {
				return nil, fmt.Errorf("series %q: non-positive size %v", s.Name, x)
			}
			if cfg.YScale == Log && s.Y[j] <= 0 {
				return nil, fmt.Errorf("series %q: non-positive value %v on a log axis", s.Name, s.Y[j])
			}
		}
		xys := make(plotter.XYs, len(s.X))
		for j := range xys {
			xys[j].X = s.X[j]
			xys[j].Y = s.Y[j]
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = sty.color(i)
		l.LineStyle.Width = sty.LineWidth
		pts.GlyphStyle = draw.GlyphStyle{
			Color:  sty.color(i),
			Radius: sty.GlyphRadius,
			Shape:  sty.glyph(i),
		}
		p.Add(l, pts)
		p.Legend.Add(s.Name, l, pts)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}
