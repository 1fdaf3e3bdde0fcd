// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

// Calendar units in seconds.
const (
	DurNormYear  int64 = 30_000_000
	DurNormMonth int64 = 3_000_000
	DurNormWeek  int64 = 1_000_000
	DurNormDay   int64 = 100_000
	DurHour      int64 = 3600
	DurMinute    int64 = 60

	// DurEarthYear is the Julian year (365.25 days of 86400 s).
	DurEarthYear int64 = 31_557_600
)

// EpochOffset is the Unix time of the normtime zero point,
// 2068-01-01T00:00:00Z.
const EpochOffset int64 = 3_092_601_600

const (
	nanosPerMilli  = 1_000_000
	nanosPerSecond = 1_000_000_000
	millisPerSec   = 1000
)

// Months per year and days per month of a canonical date.
const (
	monthsPerYear = DurNormYear / DurNormMonth
	daysPerMonth  = DurNormMonth / DurNormDay
)

// floorDiv returns x/y rounded toward negative infinity.
func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; it has the sign of y.
func floorMod(x, y int64) int64 {
	m := x % y
	if m != 0 && ((m < 0) != (y < 0)) {
		m += y
	}
	return m
}

// mulOK returns x*y and whether the product fits in an int64.
func mulOK(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	p := x * y
	if p/y != x || (x == -1 && y == minInt64) || (y == -1 && x == minInt64) {
		return 0, false
	}
	return p, true
}

// addOK returns x+y and whether the sum fits in an int64.
func addOK(x, y int64) (int64, bool) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, false
	}
	return s, true
}

// subOK returns x-y and whether the difference fits in an int64.
func subOK(x, y int64) (int64, bool) {
	d := x - y
	if (y > 0 && d > x) || (y < 0 && d < x) {
		return 0, false
	}
	return d, true
}

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)
