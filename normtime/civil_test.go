// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"math"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestZeroPoint(t *testing.T) {
	zero := MustFromYMD(0, 0, 0)
	if got := zero.Timestamp(); got != EpochOffset {
		t.Errorf("Timestamp() = %d, want %d", got, EpochOffset)
	}
	if tm, ok := FromTimestamp(EpochOffset); !ok || tm != zero {
		t.Errorf("FromTimestamp(EpochOffset) = %v, %t", tm, ok)
	}
	if tm, ok := FromTimestamp(0); !ok || tm.Seconds() != -EpochOffset {
		t.Errorf("FromTimestamp(0) = %v, %t", tm, ok)
	}

	want := civil.DateTime{Date: civil.Date{Year: 2068, Month: time.January, Day: 1}}
	if dt, ok := zero.DateTime(); !ok || dt != want {
		t.Errorf("DateTime() = %v, %t; want %v", dt, ok, want)
	}
	if got := FromDateTime(want); got != zero {
		t.Errorf("FromDateTime(%v) = %v", want, got)
	}
	if got := FromDate(want.Date); got != zero {
		t.Errorf("FromDate(%v) = %v", want.Date, got)
	}
	if x, ok := zero.StdTime(); !ok || !x.Equal(time.Date(2068, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StdTime() = %v, %t", x, ok)
	}
	if got := FromStdTime(time.Date(2068, 1, 1, 0, 0, 1, 999, time.UTC)); got.Seconds() != 1 {
		t.Errorf("FromStdTime = %v", got)
	}
}

func TestFromStdTimeOverflow(t *testing.T) {
	early := time.Unix(math.MinInt64+10, 0)
	if tm, ok := DefaultBridge.CheckedFromStdTime(early); ok {
		t.Errorf("CheckedFromStdTime(%d) = %d, want overflow", early.Unix(), tm.Seconds())
	}
	late := Bridge{Offset: -1}
	if _, ok := late.CheckedFromStdTime(time.Unix(math.MaxInt64, 0)); ok {
		t.Error("CheckedFromStdTime past MaxInt64 succeeded")
	}
	if tm, ok := late.CheckedFromStdTime(time.Unix(0, 0)); !ok || tm.Seconds() != 1 {
		t.Errorf("CheckedFromStdTime(0) = %v, %t", tm, ok)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("FromStdTime did not panic on overflow")
			}
		}()
		FromStdTime(early)
	}()
}

func TestNormdayAdvancesCivilDate(t *testing.T) {
	zero := MustFromYMD(0, 0, 0)
	next := zero.Add(Days(1))

	dt, ok := next.DateTime()
	if !ok {
		t.Fatal("DateTime() failed")
	}
	want := civil.DateTime{
		Date: civil.Date{Year: 2068, Month: time.January, Day: 2},
		Time: civil.Time{Hour: 3, Minute: 46, Second: 40},
	}
	if dt != want {
		t.Errorf("DateTime() = %v, want %v", dt, want)
	}

	d0, _ := zero.Date()
	d1, _ := next.Date()
	if d0.AddDays(1) != d1 {
		t.Errorf("civil date went from %v to %v", d0, d1)
	}
}

func TestBeforeZeroPoint(t *testing.T) {
	tm := FromDate(civil.Date{Year: 2067, Month: time.December, Day: 31})
	if got := tm.Seconds(); got != -86_400 {
		t.Errorf("Seconds() = %d", got)
	}
	if got := tm.String(); got != "-0001-09-29N03:46:40" {
		t.Errorf("String() = %q", got)
	}
	// Date drops the time of day.
	d, ok := tm.Add(Hours(23)).Date()
	if !ok || d != (civil.Date{Year: 2067, Month: time.December, Day: 31}) {
		t.Errorf("Date() = %v, %t", d, ok)
	}
}

func TestCivilRange(t *testing.T) {
	if _, ok := FromTimestamp(maxCivilUnix); !ok {
		t.Error("FromTimestamp(max) failed")
	}
	if _, ok := FromTimestamp(maxCivilUnix + 1); ok {
		t.Error("FromTimestamp(max+1) succeeded")
	}
	if _, ok := FromTimestamp(minCivilUnix); !ok {
		t.Error("FromTimestamp(min) failed")
	}
	if _, ok := FromTimestamp(minCivilUnix - 1); ok {
		t.Error("FromTimestamp(min-1) succeeded")
	}

	last := FromSeconds(maxCivilUnix - EpochOffset)
	dt, ok := last.DateTime()
	want := civil.DateTime{
		Date: civil.Date{Year: 262142, Month: time.December, Day: 31},
		Time: civil.Time{Hour: 23, Minute: 59, Second: 59},
	}
	if !ok || dt != want {
		t.Errorf("DateTime() = %v, %t; want %v", dt, ok, want)
	}
	if _, ok := last.Add(Seconds(1)).DateTime(); ok {
		t.Error("DateTime() past the range succeeded")
	}
	if _, ok := FromSeconds(math.MaxInt64).StdTime(); ok {
		t.Error("StdTime() of MaxInt64 succeeded")
	}
	if _, ok := FromSeconds(math.MinInt64).Date(); ok {
		t.Error("Date() of MinInt64 succeeded")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Timestamp did not panic on overflow")
			}
		}()
		FromSeconds(math.MaxInt64).Timestamp()
	}()
}

func TestCustomBridge(t *testing.T) {
	unix := Bridge{}
	tm, ok := unix.FromTimestamp(86_400)
	if !ok || tm.Seconds() != 86_400 {
		t.Errorf("FromTimestamp = %v, %t", tm, ok)
	}
	d, ok := unix.Date(tm)
	if !ok || d != (civil.Date{Year: 1970, Month: time.January, Day: 2}) {
		t.Errorf("Date = %v, %t", d, ok)
	}
	if got := unix.FromDate(civil.Date{Year: 1970, Month: time.January, Day: 1}); got.Seconds() != 0 {
		t.Errorf("FromDate = %v", got)
	}
	if _, ok := (Bridge{Offset: math.MaxInt64}).Timestamp(FromSeconds(1)); ok {
		t.Error("Timestamp overflow not reported")
	}
}
