// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmetric

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/shmembench/benchfig/benchcsv"
)

// Sync table columns. The reference cost is the implied 100% for each
// routine; the alternates are stored as fractions of it.
const (
	RoutineCol  = "Routine"
	altANormCol = "RS (normalized)"
	altBNormCol = "Py (normalized)"
)

// routinePrefix is the API prefix shared by every synchronization
// routine name in the input data.
const routinePrefix = "shmem_"

// A SyncRow is one synchronization routine with per-implementation
// cost as a percentage of the reference implementation. Ref is always
// exactly 100.
type SyncRow struct {
	Routine string
	Ref     float64
	AltA    float64 // RS, percent of reference
	AltB    float64 // Py, percent of reference
}

// SyncRows extracts the synchronization comparison from t, converting
// the normalized ratio columns to percentages. Row order follows the
// table.
func SyncRows(t *table.Table) ([]SyncRow, error) {
	routines, ok := benchcsv.Strings(t, RoutineCol)
	if !ok {
		return nil, fmt.Errorf("missing column %q", RoutineCol)
	}
	altA, ok := benchcsv.Floats(t, altANormCol)
	if !ok {
		return nil, fmt.Errorf("missing column %q", altANormCol)
	}
	altB, ok := benchcsv.Floats(t, altBNormCol)
	if !ok {
		return nil, fmt.Errorf("missing column %q", altBNormCol)
	}

	rows := make([]SyncRow, len(routines))
	for i, r := range routines {
		rows[i] = SyncRow{
			Routine: r,
			Ref:     100,
			AltA:    altA[i] * 100,
			AltB:    altB[i] * 100,
		}
	}
	return rows, nil
}

// DisplayName shortens a routine name for chart labels: the shared
// shmem_ prefix is dropped, and barrier_all collapses to "barrier"
// since it is the only barrier flavor measured.
func DisplayName(routine string) string {
	name := strings.TrimPrefix(routine, routinePrefix)
	if name == "barrier_all" {
		return "barrier"
	}
	return name
}
