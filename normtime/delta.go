// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// A Delta is a signed duration with nanosecond precision.
//
// Normdays, normweeks etc. have a different length than their common era
// counterparts; the second is the SI second. The range of a Delta is
// restricted to ±math.MaxInt64 milliseconds.
//
// A negative Delta with a fractional part stores the floor of its value in
// secs and the positive remainder in nanos, so that 0 <= nanos < 1e9 always
// holds and (secs, nanos) order like the value itself.
type Delta struct {
	secs  int64
	nanos int32
}

// Zero is the Delta of zero seconds.
var Zero = Delta{}

var (
	// MaxDelta is the largest Delta, math.MaxInt64 milliseconds.
	MaxDelta = Delta{
		secs:  maxInt64 / millisPerSec,
		nanos: int32(maxInt64%millisPerSec) * nanosPerMilli,
	}

	// MinDelta is the smallest Delta, -math.MaxInt64 milliseconds.
	MinDelta = Delta{
		secs:  -maxInt64/millisPerSec - 1,
		nanos: nanosPerSecond + int32(-maxInt64%millisPerSec)*nanosPerMilli,
	}
)

// NewDelta returns the Delta secs + nanos. It reports false if nanos is not
// below one second or the result is outside [MinDelta, MaxDelta].
func NewDelta(secs int64, nanos uint32) (Delta, bool) {
	if nanos >= nanosPerSecond ||
		secs < MinDelta.secs ||
		secs > MaxDelta.secs ||
		(secs == MaxDelta.secs && nanos > uint32(MaxDelta.nanos)) ||
		(secs == MinDelta.secs && nanos < uint32(MinDelta.nanos)) {
		return Delta{}, false
	}
	return Delta{secs: secs, nanos: int32(nanos)}, true
}

// scaled returns n units of size seconds and panics if that is out of range.
func scaled(n, size int64, what string) Delta {
	secs, ok := mulOK(n, size)
	if ok {
		var d Delta
		if d, ok = NewDelta(secs, 0); ok {
			return d
		}
	}
	panic(fmt.Sprintf("normtime: %d %s is out of bounds", n, what))
}

// Seconds returns a Delta of n seconds. It panics if n is out of range.
func Seconds(n int64) Delta { return scaled(n, 1, "seconds") }

// Minutes returns a Delta of n minutes. It panics if n is out of range.
func Minutes(n int64) Delta { return scaled(n, DurMinute, "minutes") }

// Hours returns a Delta of n hours. It panics if n is out of range.
func Hours(n int64) Delta { return scaled(n, DurHour, "hours") }

// Days returns a Delta of n normdays. It panics if n is out of range.
func Days(n int64) Delta { return scaled(n, DurNormDay, "normdays") }

// Weeks returns a Delta of n normweeks. It panics if n is out of range.
func Weeks(n int64) Delta { return scaled(n, DurNormWeek, "normweeks") }

// Months returns a Delta of n normmonths. It panics if n is out of range.
func Months(n int64) Delta { return scaled(n, DurNormMonth, "normmonths") }

// Years returns a Delta of n normyears. It panics if n is out of range.
func Years(n int64) Delta { return scaled(n, DurNormYear, "normyears") }

// EarthYears returns a Delta of n Julian years. It panics if n is out of range.
func EarthYears(n int64) Delta { return scaled(n, DurEarthYear, "earth years") }

// FromDuration converts a time.Duration. Every time.Duration is in range.
func FromDuration(d time.Duration) Delta {
	secs := int64(d / time.Second)
	nanos := int64(d % time.Second)
	if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return Delta{secs: secs, nanos: int32(nanos)}
}

// Duration converts d to a time.Duration, reporting false if d exceeds its
// range of about 292 earth years.
func (d Delta) Duration() (time.Duration, bool) {
	ns, ok := mulOK(d.Seconds(), nanosPerSecond)
	if !ok {
		return 0, false
	}
	ns, ok = addOK(ns, int64(d.SubsecNanos()))
	if !ok {
		return 0, false
	}
	return time.Duration(ns), true
}

// Seconds returns the whole seconds of d, truncated toward zero.
func (d Delta) Seconds() int64 {
	if d.secs < 0 && d.nanos > 0 {
		return d.secs + 1
	}
	return d.secs
}

// SubsecNanos returns the fractional part of d in nanoseconds. It has the
// same sign as d.
func (d Delta) SubsecNanos() int32 {
	if d.secs < 0 && d.nanos > 0 {
		return d.nanos - nanosPerSecond
	}
	return d.nanos
}

// Minutes returns the whole minutes of d.
func (d Delta) Minutes() int64 { return d.Seconds() / DurMinute }

// Hours returns the whole hours of d.
func (d Delta) Hours() int64 { return d.Seconds() / DurHour }

// Days returns the whole normdays of d.
func (d Delta) Days() int64 { return d.Seconds() / DurNormDay }

// Weeks returns the whole normweeks of d.
func (d Delta) Weeks() int64 { return d.Seconds() / DurNormWeek }

// Months returns the whole normmonths of d.
func (d Delta) Months() int64 { return d.Seconds() / DurNormMonth }

// Years returns the whole normyears of d.
func (d Delta) Years() int64 { return d.Seconds() / DurNormYear }

// IsZero reports whether d is zero.
func (d Delta) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// Sign returns -1, 0 or +1.
func (d Delta) Sign() int {
	switch {
	case d.secs < 0:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// Abs returns the absolute value of d.
func (d Delta) Abs() Delta {
	if d.secs < 0 && d.nanos != 0 {
		return Delta{secs: -(d.secs + 1), nanos: nanosPerSecond - d.nanos}
	}
	if d.secs < 0 {
		return Delta{secs: -d.secs}
	}
	return d
}

// Neg returns -d.
func (d Delta) Neg() Delta { return Zero.Sub(d) }

// Compare returns -1, 0 or +1 depending on whether d is shorter, equal to
// or longer than e.
func (d Delta) Compare(e Delta) int {
	switch {
	case d.secs < e.secs:
		return -1
	case d.secs > e.secs:
		return +1
	case d.nanos < e.nanos:
		return -1
	case d.nanos > e.nanos:
		return +1
	}
	return 0
}

// Less reports whether d is shorter than e.
func (d Delta) Less(e Delta) bool { return d.Compare(e) < 0 }

// Equal reports whether d and e are the same duration.
func (d Delta) Equal(e Delta) bool { return d == e }

// CheckedAdd returns d+e, reporting false on overflow.
func (d Delta) CheckedAdd(e Delta) (Delta, bool) {
	// Both operands are within ±MaxInt64 milliseconds, so the second
	// counts cannot overflow an int64 here.
	secs := d.secs + e.secs
	nanos := d.nanos + e.nanos
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		secs++
	}
	return NewDelta(secs, uint32(nanos))
}

// CheckedSub returns d-e, reporting false on overflow.
func (d Delta) CheckedSub(e Delta) (Delta, bool) {
	secs := d.secs - e.secs
	nanos := d.nanos - e.nanos
	if nanos < 0 {
		nanos += nanosPerSecond
		secs--
	}
	return NewDelta(secs, uint32(nanos))
}

// CheckedMul returns d*n, reporting false on overflow.
func (d Delta) CheckedMul(n int32) (Delta, bool) {
	nanos := int64(d.nanos) * int64(n)
	carry := floorDiv(nanos, nanosPerSecond)
	nanos = floorMod(nanos, nanosPerSecond)

	// The seconds product needs more than 64 bits before the range check.
	secs := new(big.Int).Mul(big.NewInt(d.secs), big.NewInt(int64(n)))
	secs.Add(secs, big.NewInt(carry))
	if !secs.IsInt64() {
		return Delta{}, false
	}
	return NewDelta(secs.Int64(), uint32(nanos))
}

// CheckedDiv returns d/n truncated to the nanosecond, reporting false if n
// is zero.
func (d Delta) CheckedDiv(n int32) (Delta, bool) {
	if n == 0 {
		return Delta{}, false
	}
	div := int64(n)
	secs := d.secs / div
	rem := d.secs % div
	nanos := int64(d.nanos)/div + rem*nanosPerSecond/div

	switch {
	case nanos < 0:
		secs--
		nanos += nanosPerSecond
	case nanos >= nanosPerSecond:
		secs++
		nanos -= nanosPerSecond
	}
	return NewDelta(secs, uint32(nanos))
}

// Add returns d+e. It panics on overflow; use CheckedAdd for operands that
// are not known to be in range.
func (d Delta) Add(e Delta) Delta {
	r, ok := d.CheckedAdd(e)
	if !ok {
		panic("normtime: overflow in Delta.Add")
	}
	return r
}

// Sub returns d-e. It panics on overflow.
func (d Delta) Sub(e Delta) Delta {
	r, ok := d.CheckedSub(e)
	if !ok {
		panic("normtime: overflow in Delta.Sub")
	}
	return r
}

// Mul returns d*n. It panics on overflow.
func (d Delta) Mul(n int32) Delta {
	r, ok := d.CheckedMul(n)
	if !ok {
		panic("normtime: overflow in Delta.Mul")
	}
	return r
}

// Div returns d/n. It panics if n is zero.
func (d Delta) Div(n int32) Delta {
	r, ok := d.CheckedDiv(n)
	if !ok {
		panic("normtime: division by zero in Delta.Div")
	}
	return r
}

// Sum returns the sum of ds. It panics on overflow.
func Sum(ds ...Delta) Delta {
	acc := Zero
	for _, d := range ds {
		acc = acc.Add(d)
	}
	return acc
}

// CheckedSum returns the sum of ds, reporting false on overflow.
func CheckedSum(ds ...Delta) (Delta, bool) {
	acc := Zero
	for _, d := range ds {
		var ok bool
		if acc, ok = acc.CheckedAdd(d); !ok {
			return Delta{}, false
		}
	}
	return acc, true
}

// An Amount is a count of one unit, an element of Delta.AsUnits.
type Amount struct {
	Count int64
	Unit  Unit
}

// AsUnits decomposes the whole seconds of d into the selected units. The
// order of units is irrelevant: the result always runs from Year to Second,
// restricted to the selection. Each selected unit takes as many of its
// lengths as fit into what the coarser selected units left over; Second, if
// selected, takes the rest. Seconds below the finest selected unit are
// dropped. Month and Week are not nested: selecting both divides the
// remainder after months by the week length.
func (d Delta) AsUnits(units ...Unit) []Amount {
	rest := d.Seconds()
	var amounts []Amount
	for _, u := range Units() {
		if !slices.Contains(units, u) {
			continue
		}
		if u == Second {
			amounts = append(amounts, Amount{rest, u})
			continue
		}
		n := rest / u.Seconds()
		amounts = append(amounts, Amount{n, u})
		rest -= n * u.Seconds()
	}
	return amounts
}

// String returns the whole seconds of d, e.g. "100000 seconds".
func (d Delta) String() string {
	n := d.Seconds()
	if n == 1 {
		return "1 second"
	}
	return fmt.Sprintf("%d seconds", n)
}

// SymbolString returns the whole seconds of d with the unit symbol,
// e.g. "10 s".
func (d Delta) SymbolString() string {
	return fmt.Sprintf("%d s", d.Seconds())
}

// UnitString renders d in the selected units, e.g.
// "900 normdays 1 hour 23 minutes". Units with a count below one are
// omitted.
func (d Delta) UnitString(units ...Unit) string {
	return d.joinUnits(" ", func(a Amount) string {
		return fmt.Sprintf("%d %s", a.Count, a.Name())
	}, units)
}

// SymbolUnitString renders d in the selected units using unit symbols,
// e.g. "900 d 1 h 23 min".
func (d Delta) SymbolUnitString(units ...Unit) string {
	return d.joinUnits(" ", func(a Amount) string {
		return fmt.Sprintf("%d %s", a.Count, a.Unit.Symbol())
	}, units)
}

func (d Delta) joinUnits(sep string, format func(Amount) string, units []Unit) string {
	var parts []string
	for _, a := range d.AsUnits(units...) {
		if a.Count > 0 {
			parts = append(parts, format(a))
		}
	}
	return strings.Join(parts, sep)
}

// Name returns the unit name matching the count: singular for one,
// plural otherwise.
func (a Amount) Name() string {
	if a.Count == 1 {
		return a.Unit.Singular()
	}
	return a.Unit.String()
}

// A Stage is a rough category of an age, see Delta.Stage.
type Stage int

const (
	Unborn Stage = iota
	Toddler
	Child
	Teenager
	EarlyDecade
	MidDecade
	LateDecade
)

// Key returns the message key of s; generic selects the wording that does
// not presume a human being. The decade stages have a single wording.
func (s Stage) Key(generic bool) string {
	switch s {
	case Unborn:
		return "unborn"
	case Toddler:
		if generic {
			return "very-young"
		}
		return "toddler"
	case Child:
		if generic {
			return "young"
		}
		return "child"
	case Teenager:
		if generic {
			return "matured"
		}
		return "teenager"
	case EarlyDecade:
		return "early-decade"
	case MidDecade:
		return "mid-decade"
	case LateDecade:
		return "late-decade"
	}
	return fmt.Sprintf("stage-%d", int(s))
}

// Stage classifies the whole normyears of d. For 20 years and more, decade
// is the year count rounded down to a multiple of ten.
func (d Delta) Stage() (stage Stage, decade int64) {
	years := d.Years()
	switch {
	case years < 0:
		return Unborn, 0
	case years <= 2:
		return Toddler, 0
	case years <= 12:
		return Child, 0
	case years <= 19:
		return Teenager, 0
	}
	decade = years / 10 * 10
	switch years % 10 {
	case 0, 1, 2:
		return EarlyDecade, decade
	case 3, 4, 5, 6:
		return MidDecade, decade
	}
	return LateDecade, decade
}

var roughLabels = map[string]string{
	"unborn":       "unborn",
	"toddler":      "toddler",
	"very-young":   "very young",
	"child":        "child",
	"young":        "young",
	"teenager":     "teenager",
	"matured":      "matured",
	"early-decade": "early %ds",
	"mid-decade":   "mid %ds",
	"late-decade":  "late %ds",
}

// Roughly describes the age d in rough categories, e.g. "toddler",
// "teenager", "early 20s", "mid 20s", "late 20s". With generic set the
// categories below 20 years are worded without presuming a human being:
// "very young", "young", "matured".
func (d Delta) Roughly(generic bool) string {
	stage, decade := d.Stage()
	label := roughLabels[stage.Key(generic)]
	if stage >= EarlyDecade {
		return fmt.Sprintf(label, decade)
	}
	return label
}
