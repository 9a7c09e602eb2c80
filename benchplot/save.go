// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// WritePDF renders p onto a canvas of the style's fixed dimensions
// and writes it to dir/name, creating dir if needed and overwriting
// any existing file.
func WritePDF(p *plot.Plot, sty *Style, dir, name string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	c := vgpdf.New(sty.Width, sty.Height)
	p.Draw(draw.New(c))

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
