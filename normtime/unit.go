// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"fmt"
	"strings"
)

// A Unit is a calendar granularity. Units are ordered from the coarsest
// (Year) to the finest (Second).
type Unit int

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
)

// Units returns all units, coarsest first.
func Units() []Unit {
	return []Unit{Year, Month, Week, Day, Hour, Minute, Second}
}

var unitNames = [...]string{
	Year:   "normyears",
	Month:  "normmonths",
	Week:   "normweeks",
	Day:    "normdays",
	Hour:   "hours",
	Minute: "minutes",
	Second: "seconds",
}

var unitSymbols = [...]string{
	Year:   "y",
	Month:  "m",
	Week:   "w",
	Day:    "d",
	Hour:   "h",
	Minute: "min",
	Second: "s",
}

var unitSeconds = [...]int64{
	Year:   DurNormYear,
	Month:  DurNormMonth,
	Week:   DurNormWeek,
	Day:    DurNormDay,
	Hour:   DurHour,
	Minute: DurMinute,
	Second: 1,
}

var unitLatex = [...]string{
	Year:   `\normyear`,
	Month:  `\normmonth`,
	Week:   `\normweek`,
	Day:    `\normday`,
	Hour:   `\hour`,
	Minute: `\minute`,
	Second: `\second`,
}

// ParseUnit returns the unit named by s, ignoring case. Year, month, week
// and day accept an optional "norm" prefix; every unit accepts its singular
// and plural form.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "normyears", "normyear", "years", "year":
		return Year, nil
	case "normmonths", "normmonth", "months", "month":
		return Month, nil
	case "normweeks", "normweek", "weeks", "week":
		return Week, nil
	case "normdays", "normday", "days", "day":
		return Day, nil
	case "hours", "hour":
		return Hour, nil
	case "minutes", "minute":
		return Minute, nil
	case "seconds", "second":
		return Second, nil
	}
	return 0, &UnitError{Input: s}
}

func (u Unit) valid() bool { return u >= Year && u <= Second }

// String returns the canonical plural name, e.g. "normyears" or "seconds".
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Singular returns the name used with a count of one, e.g. "normyear".
func (u Unit) Singular() string {
	name := u.String()
	return name[:len(name)-1]
}

// Symbol returns the short symbol of u: y, m, w, d, h, min or s.
func (u Unit) Symbol() string {
	if !u.valid() {
		return "?"
	}
	return unitSymbols[u]
}

// Seconds returns the length of u in seconds.
func (u Unit) Seconds() int64 {
	if !u.valid() {
		panic(fmt.Sprintf("normtime: invalid unit %d", int(u)))
	}
	return unitSeconds[u]
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.valid() {
		return nil, fmt.Errorf("normtime: invalid unit %d", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	x, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = x
	return nil
}

// ParseUnits parses a comma-separated list of unit names.
func ParseUnits(list string) ([]Unit, error) {
	var units []Unit
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		u, err := parseUnitOrSymbol(s)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// parseUnitOrSymbol additionally accepts the unit symbols.
func parseUnitOrSymbol(s string) (Unit, error) {
	for u, sym := range unitSymbols {
		if s == sym {
			return Unit(u), nil
		}
	}
	return ParseUnit(s)
}
