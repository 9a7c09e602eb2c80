// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	const data = `Msg Size (b),"C (raw, us)",Routine
1,0.5,shmem_quiet
1024,2.0,shmem_fence
`
	tab, err := Read(strings.NewReader(data), "test.csv")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	wantCols := []string{"Msg Size (b)", "C (raw, us)", "Routine"}
	if got := tab.Columns(); !reflect.DeepEqual(got, wantCols) {
		t.Errorf("columns: got %q, want %q", got, wantCols)
	}
	if tab.Len() != 2 {
		t.Errorf("rows: got %d, want 2", tab.Len())
	}

	sizes, ok := Floats(tab, "Msg Size (b)")
	if !ok {
		t.Fatalf("Msg Size (b) is not a float column")
	}
	if want := []float64{1, 1024}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("sizes: got %v, want %v", sizes, want)
	}

	routines, ok := Strings(tab, "Routine")
	if !ok {
		t.Fatalf("Routine is not a string column")
	}
	if want := []string{"shmem_quiet", "shmem_fence"}; !reflect.DeepEqual(routines, want) {
		t.Errorf("routines: got %v, want %v", routines, want)
	}

	if Has(tab, "C MiBPS") {
		t.Errorf("Has(C MiBPS) = true for table without it")
	}
	if _, ok := Floats(tab, "Routine"); ok {
		t.Errorf("Floats(Routine) succeeded on a string column")
	}
	if _, ok := Floats(tab, "no such column"); ok {
		t.Errorf("Floats on missing column succeeded")
	}
}

func TestReadErrors(t *testing.T) {
	bad := func(data, wantSub string) {
		t.Helper()
		_, err := Read(strings.NewReader(data), "bad.csv")
		if err == nil {
			t.Errorf("Read(%q) succeeded, want error", data)
			return
		}
		if !strings.Contains(err.Error(), wantSub) {
			t.Errorf("Read(%q) error %q, want substring %q", data, err, wantSub)
		}
	}

	bad("", "empty file")
	bad("a,,c\n1,2,3\n", "empty name")
	// Ragged rows are a parse error.
	bad("a,b\n1,2,3\n", "bad.csv")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("ReadFile on missing file succeeded")
	}
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a does-not-exist error", err)
	}
}
