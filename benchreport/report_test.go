// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const opCSV = `Msg Size (b),"C (raw, us)","RS (raw, us)","Py (raw, us)"
1,0.5,0.6,0.9
1024,2.0,2.5,3.0
1048576,300,340,420
`

const syncCSV = `Routine,"C (raw, us)",RS (normalized),Py (normalized)
shmem_barrier_all,12.5,1.35,0.80
shmem_quiet,3.2,1.10,0.95
shmem_fence,2.9,0.90,1.20
`

// writeData populates dir with scenario CSV files. files maps
// "scenario/name.csv" to contents.
func writeData(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
	}
}

func testConfig(t *testing.T, files map[string]string) *Config {
	t.Helper()
	dir := t.TempDir()
	writeData(t, filepath.Join(dir, "data"), files)
	return &Config{
		DataDir: filepath.Join(dir, "data"),
		FigDir:  filepath.Join(dir, "figures"),
		Log:     log.New(io.Discard, "", 0),
	}
}

func mustExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("missing output %s: %v", path, err)
	}
}

func mustNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("unexpected output %s", path)
	}
}

func TestRun(t *testing.T) {
	c := testConfig(t, map[string]string{
		"intranode/bw_shmem_get.csv": opCSV,
		"internode/bw_shmem_get.csv": opCSV,
		"intranode/bw_shmem_put.csv": opCSV,
		"internode/bw_shmem_put.csv": opCSV,
		"intranode/latency.csv":      syncCSV,
		"internode/latency.csv":      syncCSV,
	})
	if err := Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, category := range []string{"get", "put"} {
		for _, scenario := range []string{"local", "net"} {
			for _, metric := range []string{"latency", "bandwidth"} {
				for _, scale := range []string{"linear", "log"} {
					name := category + "_" + scenario + "_" + metric + "_" + scale + ".pdf"
					mustExist(t, filepath.Join(c.FigDir, category, name))
				}
			}
		}
	}
	for _, scenario := range []string{"local", "net"} {
		for _, variant := range []string{"standard", "extended", "log"} {
			name := "sync_" + scenario + "_" + variant + ".pdf"
			mustExist(t, filepath.Join(c.FigDir, "sync", name))
		}
	}
}

func TestRunMissingFiles(t *testing.T) {
	// Only the intranode get data exists. The other charts must be
	// skipped without failing the run.
	c := testConfig(t, map[string]string{
		"intranode/bw_shmem_get.csv": opCSV,
	})
	if err := Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mustExist(t, filepath.Join(c.FigDir, "get", "get_local_latency_linear.pdf"))
	mustExist(t, filepath.Join(c.FigDir, "get", "get_local_latency_log.pdf"))
	mustNotExist(t, filepath.Join(c.FigDir, "get", "get_net_latency_linear.pdf"))
	mustNotExist(t, filepath.Join(c.FigDir, "put"))
	mustNotExist(t, filepath.Join(c.FigDir, "sync"))
}

func TestRunReplacesOutput(t *testing.T) {
	c := testConfig(t, map[string]string{
		"intranode/bw_shmem_get.csv": opCSV,
	})
	stale := filepath.Join(c.FigDir, "get", "stale.pdf")
	writeData(t, c.FigDir, map[string]string{"get/stale.pdf": "old"})
	if err := Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	mustNotExist(t, stale)
}

func TestGetMissingColumn(t *testing.T) {
	c := testConfig(t, map[string]string{
		"intranode/bw_shmem_get.csv": "Msg Size (b),\"C (raw, us)\"\n1,0.5\n",
	})
	err := Get(c)
	if err == nil {
		t.Fatalf("Get succeeded without the RS latency column")
	}
	if !strings.Contains(err.Error(), "RS (raw, us)") {
		t.Errorf("error %q does not name the missing column", err)
	}

	// Run isolates the failure instead of propagating it.
	if err := Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestZeroLatencyAbortsDependentCharts(t *testing.T) {
	// A zero latency has no log-scale position and no derivable
	// bandwidth. The linear latency chart is still written; the rest
	// of the category's charts for that scenario are not.
	bad := `Msg Size (b),"C (raw, us)","RS (raw, us)","Py (raw, us)"
1,0.0,0.6,0.9
1024,2.0,2.5,3.0
`
	c := testConfig(t, map[string]string{
		"intranode/bw_shmem_get.csv": bad,
	})
	if err := Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	mustExist(t, filepath.Join(c.FigDir, "get", "get_local_latency_linear.pdf"))
	mustNotExist(t, filepath.Join(c.FigDir, "get", "get_local_latency_log.pdf"))
	mustNotExist(t, filepath.Join(c.FigDir, "get", "get_local_bandwidth_linear.pdf"))
}
