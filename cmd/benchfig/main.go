// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchfig renders the comparison figures for the one-sided
// memory-access benchmarks.
//
// Usage:
//
//	benchfig [-data dir] [-o dir]
//
// It reads benchmark CSV files from dir/{intranode,internode} and
// writes PDF figures under the output directory's get, put, and sync
// subdirectories. The output directory is fully regenerated on every
// run. A missing or malformed input file is reported, the affected
// charts are skipped, and the run continues.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shmembench/benchfig/benchplot"
	"github.com/shmembench/benchfig/benchreport"
)

var (
	dataDir = flag.String("data", "data", "read benchmark CSV files from `dir`")
	figDir  = flag.String("o", "figures", "write figures under `dir`")
)

func main() {
	log.SetPrefix("benchfig: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: benchfig [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := &benchreport.Config{
		DataDir: *dataDir,
		FigDir:  *figDir,
		Style:   benchplot.NewStyle(),
	}
	if err := benchreport.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
