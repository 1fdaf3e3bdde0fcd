// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// A Bridge converts between normtime and the common era calendar. Offset is
// the Unix time of the normtime zero point.
//
// Conversions into common era types fail outside the years -262143 through
// 262142. Normtime itself has no such limit.
type Bridge struct {
	Offset int64
}

// DefaultBridge places the normtime zero point at 2068-01-01T00:00:00Z.
var DefaultBridge = Bridge{Offset: EpochOffset}

var (
	minCivilUnix = time.Date(-262143, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxCivilUnix = time.Date(262142, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

func inCivilRange(unix int64) bool {
	return unix >= minCivilUnix && unix <= maxCivilUnix
}

// FromTimestamp returns the Time of the Unix time unix. It reports false if
// unix lies outside the common era range of the bridge.
func (b Bridge) FromTimestamp(unix int64) (Time, bool) {
	if !inCivilRange(unix) {
		return Time{}, false
	}
	secs, ok := subOK(unix, b.Offset)
	return Time{secs}, ok
}

// Timestamp returns the Unix time of t, reporting false on overflow.
func (b Bridge) Timestamp(t Time) (int64, bool) {
	return addOK(t.secs, b.Offset)
}

// CheckedFromStdTime returns the Time of x, truncated to the second. It
// reports false if the result is out of range.
func (b Bridge) CheckedFromStdTime(x time.Time) (Time, bool) {
	secs, ok := subOK(x.Unix(), b.Offset)
	return Time{secs}, ok
}

// FromStdTime is like CheckedFromStdTime but panics on overflow.
func (b Bridge) FromStdTime(x time.Time) Time {
	t, ok := b.CheckedFromStdTime(x)
	if !ok {
		panic(fmt.Sprintf("normtime: %v out of range", x))
	}
	return t
}

// StdTime returns t as a time.Time in UTC.
func (b Bridge) StdTime(t Time) (time.Time, bool) {
	unix, ok := b.Timestamp(t)
	if !ok || !inCivilRange(unix) {
		return time.Time{}, false
	}
	return time.Unix(unix, 0).UTC(), true
}

// FromDateTime returns the Time of dt, read as UTC. Nanoseconds are dropped.
func (b Bridge) FromDateTime(dt civil.DateTime) Time {
	return b.FromStdTime(dt.In(time.UTC))
}

// DateTime returns t as a civil date and time in UTC.
func (b Bridge) DateTime(t Time) (civil.DateTime, bool) {
	x, ok := b.StdTime(t)
	if !ok {
		return civil.DateTime{}, false
	}
	return civil.DateTimeOf(x), true
}

// FromDate returns the Time of midnight UTC at the start of d.
func (b Bridge) FromDate(d civil.Date) Time {
	return b.FromStdTime(d.In(time.UTC))
}

// Date returns the civil date of t in UTC; the time of day is dropped.
func (b Bridge) Date(t Time) (civil.Date, bool) {
	x, ok := b.StdTime(t)
	if !ok {
		return civil.Date{}, false
	}
	return civil.DateOf(x), true
}

// FromTimestamp returns the Time of the Unix time unix using DefaultBridge.
func FromTimestamp(unix int64) (Time, bool) { return DefaultBridge.FromTimestamp(unix) }

// FromStdTime returns the Time of x using DefaultBridge.
func FromStdTime(x time.Time) Time { return DefaultBridge.FromStdTime(x) }

// FromDateTime returns the Time of dt using DefaultBridge.
func FromDateTime(dt civil.DateTime) Time { return DefaultBridge.FromDateTime(dt) }

// FromDate returns the Time of midnight of d using DefaultBridge.
func FromDate(d civil.Date) Time { return DefaultBridge.FromDate(d) }

// Timestamp returns the Unix time of t. It panics if that overflows an
// int64, which happens only within EpochOffset seconds of the int64 limit.
func (t Time) Timestamp() int64 {
	unix, ok := DefaultBridge.Timestamp(t)
	if !ok {
		panic("normtime: overflow in Time.Timestamp")
	}
	return unix
}

// StdTime returns t as a time.Time in UTC.
func (t Time) StdTime() (time.Time, bool) { return DefaultBridge.StdTime(t) }

// DateTime returns t as a civil date and time in UTC.
func (t Time) DateTime() (civil.DateTime, bool) { return DefaultBridge.DateTime(t) }

// Date returns the civil date of t.
func (t Time) Date() (civil.Date, bool) { return DefaultBridge.Date(t) }
