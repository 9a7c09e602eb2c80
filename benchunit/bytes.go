// Copyright 2025 The Shmembench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "strconv"

// Bytes formats a power-of-two message size as a compact axis label:
// "1" through "512", then "1K" through "512K", then "1M", and so on.
// Sizes that are not whole multiples of the chosen unit keep one
// decimal digit.
func Bytes(n float64) string {
	suffix := ""
	switch {
	case n >= 1<<30:
		n /= 1 << 30
		suffix = "G"
	case n >= 1<<20:
		n /= 1 << 20
		suffix = "M"
	case n >= 1<<10:
		n /= 1 << 10
		suffix = "K"
	}
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10) + suffix
	}
	return strconv.FormatFloat(n, 'f', 1, 64) + suffix
}
