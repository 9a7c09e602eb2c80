// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats measurement values for axis labels.
package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000, using SI prefixes such as "k" and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024, using IEC prefixes such as "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// A Scaler represents a scaling factor for a number and its
// scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, a Decimal Scaler formats 123456789 as
// "123.5M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

type factor struct {
	factor float64
	prefix string
}

var siFactors = []factor{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
}

var iecFactors = []factor{
	{1 << 40, "Ti"},
	{1 << 30, "Gi"},
	{1 << 20, "Mi"},
	{1 << 10, "Ki"},
	{1, ""},
}

// Scale formats val with three significant digits, appending an SI or
// binary prefix.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// The scale is chosen so the non-zero value closest to zero shows
// three significant digits.
func CommonScale(vals []float64, cls Class) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	factors := siFactors
	if cls == Binary {
		factors = iecFactors
	}

	for _, f := range factors {
		scaled := min / f.factor
		switch {
		case scaled >= 100:
			return Scaler{1, f.factor, f.prefix}
		case scaled >= 10:
			return Scaler{2, f.factor, f.prefix}
		case scaled >= 1:
			return Scaler{3, f.factor, f.prefix}
		}
	}

	// Below the smallest factor. Widen the precision until the
	// value becomes visible.
	f := factors[len(factors)-1]
	prec := 3
	for v := min / f.factor; v < 1 && prec < 12; v *= 10 {
		prec++
	}
	return Scaler{prec, f.factor, f.prefix}
}
