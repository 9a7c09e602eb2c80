// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders benchmark comparison charts and writes
// them as PDF files.
//
// All rendering is driven by an explicit Style value constructed once
// at startup and passed into each call; there is no package-level
// mutable state.
package benchplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style carries the shared presentation configuration: the series
// palette and glyphs, font sizes, line weights, and the canvas size.
// It is read-only after construction.
type Style struct {
	// Palette holds one color per implementation, reference first.
	Palette []color.Color
	// Glyphs holds one marker shape per implementation, matched by
	// index with Palette.
	Glyphs []draw.GlyphDrawer

	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length

	LineWidth   vg.Length
	GlyphRadius vg.Length
	BarWidth    vg.Length
	BarGap      vg.Length

	// Canvas dimensions of every written figure.
	Width  vg.Length
	Height vg.Length
}

// NewStyle returns the default presentation style: a three color
// colorblind-safe palette with ring, cross, and square markers.
func NewStyle() *Style {
	return &Style{
		Palette: []color.Color{
			color.NRGBA{R: 0x01, G: 0x73, B: 0xB2, A: 0xFF},
			color.NRGBA{R: 0xDE, G: 0x8F, B: 0x05, A: 0xFF},
			color.NRGBA{R: 0x02, G: 0x9E, B: 0x73, A: 0xFF},
		},
		Glyphs: []draw.GlyphDrawer{
			draw.RingGlyph{},
			draw.CrossGlyph{},
			draw.SquareGlyph{},
		},
		TitleSize:   18,
		LabelSize:   16,
		TickSize:    14,
		LegendSize:  14,
		LineWidth:   vg.Points(2),
		GlyphRadius: vg.Points(4),
		BarWidth:    vg.Points(14),
		BarGap:      vg.Points(2),
		Width:       10 * vg.Inch,
		Height:      4 * vg.Inch,
	}
}

// color returns the series color for index i.
func (s *Style) color(i int) color.Color {
	return s.Palette[i%len(s.Palette)]
}

// glyph returns the series marker for index i.
func (s *Style) glyph(i int) draw.GlyphDrawer {
	return s.Glyphs[i%len(s.Glyphs)]
}

// apply sets the font sizes of p from s.
func (s *Style) apply(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = s.TitleSize
	p.X.Label.TextStyle.Font.Size = s.LabelSize
	p.Y.Label.TextStyle.Font.Size = s.LabelSize
	p.X.Tick.Label.Font.Size = s.TickSize
	p.Y.Tick.Label.Font.Size = s.TickSize
	p.Legend.TextStyle.Font.Size = s.LegendSize
}
