// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A RangePolicy selects the y-axis treatment of a grouped bar chart.
type RangePolicy int

const (
	// RangeStandard fixes the axis at 0-150%.
	RangeStandard RangePolicy = iota
	// RangeExtended adapts the axis to max(150, 1.2 x the largest
	// observed percentage).
	RangeExtended
	// RangeLog uses a logarithmic percent axis with its floor
	// clamped at 50%.
	RangeLog
)

func (p RangePolicy) String() string {
	switch p {
	case RangeExtended:
		return "extended"
	case RangeLog:
		return "log"
	}
	return "standard"
}

// A BarSeries is one implementation's percentage per routine group.
type BarSeries struct {
	Name   string
	Values []float64
}

// Bars draws a grouped bar chart: one group per routine, one bar per
// series within each group, each bar annotated with its exact
// percentage to two decimal places. Series are colored by index from
// sty and offset left to right within the group.
func Bars(sty *Style, ylabel string, policy RangePolicy, routines []string, series []BarSeries) (*plot.Plot, error) {
	for _, s := range series {
		if len(s.Values) != len(routines) {
			return nil, fmt.Errorf("series %q: %d values for %d routines", s.Name, len(s.Values), len(routines))
		}
	}

	p := plot.New()
	sty.apply(p)
	p.Y.Label.Text = ylabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	n := len(series)
	for i, s := range series {
		offset := vg.Length(float64(i)-float64(n-1)/2) * (sty.BarWidth + sty.BarGap)
		b := &bars{
			values: s.Values,
			width:  sty.BarWidth,
			offset: offset,
			color:  sty.color(i),
		}
		p.Add(b)
		p.Legend.Add(s.Name, b)

		lsty := p.X.Tick.Label
		lsty.Font.Size = sty.TickSize - 2
		lsty.Color = sty.color(i)
		lsty.XAlign = draw.XCenter
		lsty.YAlign = draw.YBottom
		p.Add(&barLabels{values: s.Values, offset: offset, sty: lsty})
	}
	p.NominalX(routines...)

	switch policy {
	case RangeStandard:
		p.Y.Min, p.Y.Max = 0, 150
		p.Y.Tick.Marker = PercentTicks{}
	case RangeExtended:
		p.Y.Min = 0
		p.Y.Max = math.Max(150, 1.2*observedMax(series))
		p.Y.Tick.Marker = PercentTicks{}
	case RangeLog:
		p.Y.Scale = plot.LogScale{}
		p.Y.Min = 50
		p.Y.Max = math.Max(200, 1.2*observedMax(series))
		p.Y.Tick.Marker = LogPercentTicks{}
	}

	p.Legend.Top = true
	return p, nil
}

// observedMax returns the largest percentage across all series.
func observedMax(series []BarSeries) float64 {
	var all []float64
	for _, s := range series {
		all = append(all, s.Values...)
	}
	_, max := stats.Sample{Xs: all}.Bounds()
	return max
}

// bars draws one series' values as vertical bars rising from the
// bottom of the y range, one bar per nominal x position, shifted
// horizontally by a fixed offset so series within a group sit side
// by side. Unlike plotter.BarChart it anchors at the axis floor, so
// it stays well defined on a logarithmic axis.
type bars struct {
	values []float64
	width  vg.Length
	offset vg.Length
	color  color.Color
}

func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	base := trY(plt.Y.Min)
	for i, v := range b.values {
		x := trX(float64(i)) + b.offset
		y := trY(v)
		pts := []vg.Point{
			{X: x - b.width/2, Y: base},
			{X: x - b.width/2, Y: y},
			{X: x + b.width/2, Y: y},
			{X: x + b.width/2, Y: base},
		}
		c.FillPolygon(b.color, c.ClipPolygonY(pts))
	}
}

func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.values))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, v := range b.values {
		ymin = math.Min(ymin, v)
		ymax = math.Max(ymax, v)
	}
	return
}

// Thumbnail fills the legend swatch with the bar color.
func (b *bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color, pts)
}

// barLabels annotates each bar with its exact percentage, centered
// just above the bar top.
type barLabels struct {
	values []float64
	offset vg.Length
	sty    text.Style
}

func (l *barLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, v := range l.values {
		x := trX(float64(i)) + l.offset
		y := trY(v) + vg.Points(2)
		if !c.ContainsY(y) {
			continue
		}
		c.FillText(l.sty, vg.Point{X: x, Y: y}, fmt.Sprintf("%.2f%%", v))
	}
}
