// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport generates the comparison figure set from
// benchmark CSV data.
//
// Three generators (Get, Put, Sync) share the same shape: load a
// scenario's CSV table, derive any missing metrics, render the chart
// variants, and write each as a PDF under a per-category directory.
// The generators are independent; Run isolates their failures so a
// missing input file never blocks the other categories.
package benchreport

import (
	"log"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"

	"github.com/shmembench/benchfig/benchcsv"
	"github.com/shmembench/benchfig/benchplot"
)

// A Scenario is one measurement placement: intranode measurements are
// published under the "local" name, internode under "net".
type Scenario struct {
	Dir  string // data subdirectory
	Name string // output file name component
}

// Scenarios lists every measurement placement, in output order.
var Scenarios = []Scenario{
	{Dir: "intranode", Name: "local"},
	{Dir: "internode", Name: "net"},
}

// A Config carries the directories, presentation style, and logger
// shared by all generators. Construct it once and pass it through;
// the generators never mutate it.
type Config struct {
	DataDir string // benchmark CSV root (default layout: DataDir/{intranode,internode})
	FigDir  string // output root; Run fully regenerates it
	Style   *benchplot.Style
	Log     *log.Logger // nil means the standard logger
}

func (c *Config) logger() *log.Logger {
	if c.Log != nil {
		return c.Log
	}
	return log.Default()
}

// load reads one scenario's CSV file. A missing or malformed file is
// reported and yields a nil table; callers skip the affected charts
// and keep going.
func (c *Config) load(sc Scenario, file string) *table.Table {
	path := filepath.Join(c.DataDir, sc.Dir, file)
	t, err := benchcsv.ReadFile(path)
	if err != nil {
		c.logger().Printf("reading %s: %v", path, err)
		return nil
	}
	return t
}

// Run regenerates the full figure set. The output directory is
// removed and recreated, then the get, put, and sync generators run
// unconditionally and independently; a generator failure is reported
// and does not stop the others. Run returns an error only when the
// output directory cannot be reset.
func Run(c *Config) error {
	if err := os.RemoveAll(c.FigDir); err != nil {
		return err
	}
	if err := os.MkdirAll(c.FigDir, 0777); err != nil {
		return err
	}
	if c.Style == nil {
		c.Style = benchplot.NewStyle()
	}

	gens := []struct {
		name string
		f    func(*Config) error
	}{
		{"get", Get},
		{"put", Put},
		{"sync", Sync},
	}
	for _, g := range gens {
		if err := g.f(c); err != nil {
			c.logger().Printf("%s figures: %v", g.name, err)
		}
	}
	return nil
}
