// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"fmt"
	"strconv"
	"strings"
)

// A Time is a point in the normtime calendar with second precision.
//
// The zero value is the normtime zero point 0000-00-00N00:00:00, which is
// 2068-01-01T00:00:00 in the common era calendar.
type Time struct {
	secs int64 // since the normtime zero point
}

// FromSeconds returns the Time secs seconds after the zero point.
func FromSeconds(secs int64) Time { return Time{secs} }

// Seconds returns the seconds since the normtime zero point.
func (t Time) Seconds() int64 { return t.secs }

// FromYMD returns midnight of the given normtime date. Months run from 0
// to 9 and days from 0 to 29; FromYMD reports false for other values and
// for years whose seconds overflow an int64.
func FromYMD(year int64, month, day int) (Time, bool) {
	if month < 0 || int64(month) >= monthsPerYear || day < 0 || int64(day) >= daysPerMonth {
		return Time{}, false
	}
	secs, ok := mulOK(year, DurNormYear)
	if !ok {
		return Time{}, false
	}
	secs, ok = addOK(secs, int64(month)*DurNormMonth+int64(day)*DurNormDay)
	if !ok {
		return Time{}, false
	}
	return Time{secs}, true
}

// MustFromYMD is like FromYMD but panics if the date is invalid.
func MustFromYMD(year int64, month, day int) Time {
	t, ok := FromYMD(year, month, day)
	if !ok {
		panic(fmt.Sprintf("normtime: invalid date %d-%d-%d", year, month, day))
	}
	return t
}

// AndHMS returns t advanced by hour hours, min minutes and sec seconds.
// Normtime is no wall clock: the arguments are not range checked, so a
// minute of 90 or an hour of 27 are simply added.
func (t Time) AndHMS(hour, min, sec int) Time {
	return t.Add(Hours(int64(hour)).Add(Minutes(int64(min))).Add(Seconds(int64(sec))))
}

// CheckedWithYear returns t moved into year, keeping its position within
// the year. It reports false if the result is out of range.
func (t Time) CheckedWithYear(year int64) (Time, bool) {
	start, ok := mulOK(year, DurNormYear)
	if !ok {
		return Time{}, false
	}
	secs, ok := addOK(start, floorMod(t.secs, DurNormYear))
	return Time{secs}, ok
}

// WithYear is like CheckedWithYear but panics on overflow.
func (t Time) WithYear(year int64) Time {
	r, ok := t.CheckedWithYear(year)
	if !ok {
		panic(fmt.Sprintf("normtime: year %d out of range", year))
	}
	return r
}

// Year returns the normyear of t.
func (t Time) Year() int64 { return floorDiv(t.secs, DurNormYear) }

// Month returns the normmonth of t, 0 through 9.
func (t Time) Month() int { return int(floorMod(t.secs, DurNormYear) / DurNormMonth) }

// Day returns the normday of the month of t, 0 through 29.
func (t Time) Day() int { return int(floorMod(t.secs, DurNormMonth) / DurNormDay) }

// Hour returns the hour within the normday of t, 0 through 27.
func (t Time) Hour() int { return int(floorMod(t.secs, DurNormDay) / DurHour) }

// Minute returns the minute within the hour of t.
func (t Time) Minute() int { return int(floorMod(t.secs, DurNormDay) % DurHour / DurMinute) }

// Second returns the second within the minute of t.
func (t Time) Second() int { return int(floorMod(t.secs, DurNormDay) % DurMinute) }

// YearString returns the year of t padded to at least four digits,
// e.g. "0123" or "-0042".
func (t Time) YearString() string {
	return formatYear(t.Year())
}

func formatYear(year int64) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

// DateString returns the date part of t, e.g. "0123-04-05".
func (t Time) DateString() string {
	return fmt.Sprintf("%s-%02d-%02d", t.YearString(), t.Month(), t.Day())
}

// ClockString returns the clock part of t, e.g. "06:07:08".
func (t Time) ClockString() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// String formats t like ISO 8601 with an "N" separating date and clock,
// e.g. "0123-04-05N06:07:08".
func (t Time) String() string {
	return t.DateString() + "N" + t.ClockString()
}

// GoString implements fmt.GoStringer.
func (t Time) GoString() string {
	return fmt.Sprintf("normtime.MustParse(%q)", t.String())
}

// CheckedAdd returns t advanced by the whole seconds of d, reporting false
// on overflow.
func (t Time) CheckedAdd(d Delta) (Time, bool) {
	secs, ok := addOK(t.secs, d.Seconds())
	return Time{secs}, ok
}

// Add returns t advanced by the whole seconds of d. Time has second
// precision; the fractional part of d is dropped. Add panics on overflow.
func (t Time) Add(d Delta) Time {
	r, ok := t.CheckedAdd(d)
	if !ok {
		panic("normtime: overflow in Time.Add")
	}
	return r
}

// CheckedSub returns the duration t-u, reporting false if it exceeds the
// range of a Delta.
func (t Time) CheckedSub(u Time) (Delta, bool) {
	secs, ok := subOK(t.secs, u.secs)
	if !ok {
		return Delta{}, false
	}
	return NewDelta(secs, 0)
}

// Sub returns the duration t-u. It panics if the difference exceeds the
// range of a Delta.
func (t Time) Sub(u Time) Delta {
	d, ok := t.CheckedSub(u)
	if !ok {
		panic("normtime: overflow in Time.Sub")
	}
	return d
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to
// or after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.secs < u.secs:
		return -1
	case t.secs > u.secs:
		return +1
	}
	return 0
}

// Before reports whether t is before u.
func (t Time) Before(u Time) bool { return t.secs < u.secs }

// After reports whether t is after u.
func (t Time) After(u Time) bool { return t.secs > u.secs }

// Equal reports whether t and u are the same instant.
func (t Time) Equal(u Time) bool { return t.secs == u.secs }

// Parse parses a normtime of the form "Y-M-D" or "Y-M-DNh:m:s". The year
// may carry a sign; fields may have any number of digits, so "+12345-6-7"
// and "0900-03-12N08:09:10" are both valid. Month and day are not range
// checked.
func Parse(s string) (Time, error) {
	parts := strings.Split(s, "N")
	if len(parts) > 2 {
		return Time{}, &ParseError{Input: s}
	}

	date := parts[0]
	sign := ""
	if strings.HasPrefix(date, "-") || strings.HasPrefix(date, "+") {
		sign, date = date[:1], date[1:]
	}
	fields := strings.Split(date, "-")
	if len(fields) != 3 {
		return Time{}, &ParseError{Input: s}
	}
	fields[0] = sign + fields[0]

	sizes := []int64{DurNormYear, DurNormMonth, DurNormDay}
	if len(parts) == 2 {
		clock := strings.Split(parts[1], ":")
		if len(clock) != 3 {
			return Time{}, &ParseError{Input: s}
		}
		fields = append(fields, clock...)
		sizes = append(sizes, DurHour, DurMinute, 1)
	}

	var secs int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Time{}, &ParseError{Input: s, Err: err}
		}
		n, ok := mulOK(n, sizes[i])
		if ok {
			secs, ok = addOK(secs, n)
		}
		if !ok {
			return Time{}, &ParseError{Input: s, Err: fmt.Errorf("field %q out of range", f)}
		}
	}
	return Time{secs}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}
