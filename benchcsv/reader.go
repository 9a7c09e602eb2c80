// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads benchmark result CSV files into immutable
// column-oriented tables.
//
// A file consists of a header row naming the columns, followed by one
// data row per measurement. Columns whose every value parses as a
// float become []float64 columns; all other columns are kept as
// []string. Column order and row order are preserved.
package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A SyntaxError describes a malformed input file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// ReadFile reads the CSV file at path into a table.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads CSV data from r into a table. fileName is used in error
// messages; it is purely diagnostic.
func Read(r io.Reader, fileName string) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "empty file"}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fileName, err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
		if header[i] == "" {
			return nil, &SyntaxError{fileName, 1, fmt.Sprintf("empty name for column %d", i+1)}
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fileName, err)
	}

	b := new(table.Builder)
	for ci, name := range header {
		cells := make([]string, len(rows))
		for ri, row := range rows {
			cells[ri] = strings.TrimSpace(row[ci])
		}
		if vals, ok := parseFloats(cells); ok {
			b.Add(name, vals)
		} else {
			b.Add(name, cells)
		}
	}
	return b.Done(), nil
}

// parseFloats converts cells to float64s. It reports false if any
// cell does not parse, in which case the column is not numeric.
func parseFloats(cells []string) ([]float64, bool) {
	if len(cells) == 0 {
		return nil, false
	}
	vals := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// Has reports whether t has a column named name.
func Has(t *table.Table, name string) bool {
	return t.Column(name) != nil
}

// Floats returns the named column as []float64. It reports false if
// the column is missing or not numeric.
func Floats(t *table.Table, name string) ([]float64, bool) {
	vals, ok := t.Column(name).([]float64)
	return vals, ok
}

// Strings returns the named column as []string. It reports false if
// the column is missing or numeric.
func Strings(t *table.Table, name string) ([]string, bool) {
	vals, ok := t.Column(name).([]string)
	return vals, ok
}
