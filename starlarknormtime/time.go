// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarknormtime

import (
	"fmt"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.normtime.net/normtime"
)

// Time is a Starlark representation of a normtime.
type Time normtime.Time

var (
	_ starlark.HasAttrs   = Time{}
	_ starlark.HasBinary  = Time{}
	_ starlark.Comparable = Time{}
)

// String implements the Stringer interface.
func (t Time) String() string { return normtime.Time(t).String() }

// Type returns "normtime.time".
func (t Time) Type() string { return "normtime.time" }

// Freeze is a no-op; a Time is immutable.
func (t Time) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (t Time) Hash() (uint32, error) {
	secs := normtime.Time(t).Seconds()
	return uint32(secs) ^ uint32(secs>>32), nil
}

// Truth reports true; every instant, the zero point included, is a time.
func (t Time) Truth() starlark.Bool { return starlark.True }

// Attr gets a value for a string attribute.
func (t Time) Attr(name string) (starlark.Value, error) {
	x := normtime.Time(t)
	switch name {
	case "year":
		return starlark.MakeInt64(x.Year()), nil
	case "month":
		return starlark.MakeInt(x.Month()), nil
	case "day":
		return starlark.MakeInt(x.Day()), nil
	case "hour":
		return starlark.MakeInt(x.Hour()), nil
	case "minute":
		return starlark.MakeInt(x.Minute()), nil
	case "second":
		return starlark.MakeInt(x.Second()), nil
	case "seconds":
		return starlark.MakeInt64(x.Seconds()), nil
	}
	return builtinAttr(t, name, timeMethods)
}

// AttrNames lists available dot expression strings for time.
func (t Time) AttrNames() []string {
	return append(builtinAttrNames(timeMethods),
		"year",
		"month",
		"day",
		"hour",
		"minute",
		"second",
		"seconds",
	)
}

// CompareSameType implements comparison of two Time values.
func (t Time) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	cmp := normtime.Time(t).Compare(normtime.Time(yV.(Time)))
	return threeway(op, cmp), nil
}

// Binary implements binary operators:
//
//	time + delta = time
//	delta + time = time
//	time - delta = time
//	time - time = delta
func (t Time) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := normtime.Time(t)

	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Delta); ok {
			r, ok := x.CheckedAdd(normtime.Delta(y))
			if !ok {
				return nil, fmt.Errorf("%s + %s out of range", t, y)
			}
			return Time(r), nil
		}
	case syntax.MINUS:
		switch y := yV.(type) {
		case Delta:
			if side == starlark.Right {
				return nil, nil // delta - time
			}
			r, ok := x.CheckedAdd(normtime.Delta(y).Neg())
			if !ok {
				return nil, fmt.Errorf("%s - %s out of range", t, y)
			}
			return Time(r), nil
		case Time:
			a, b := x, normtime.Time(y)
			if side == starlark.Right {
				a, b = b, a
			}
			d, ok := a.CheckedSub(b)
			if !ok {
				return nil, fmt.Errorf("difference of %s and %s out of range", a, b)
			}
			return Delta(d), nil
		}
	}
	return nil, nil
}

var timeMethods = map[string]builtinMethod{
	"with_year": timeWithYear,
	"and_hms":   timeAndHMS,
	"date":      timeDate,
	"clock":     timeClock,
	"timestamp": timeTimestamp,
	"to_std":    timeToStd,
	"latex":     timeLatex,
}

func timeWithYear(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var year starlark.Int
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &year); err != nil {
		return nil, err
	}
	y, err := toInt64(fnname, year)
	if err != nil {
		return nil, err
	}
	r, ok := normtime.Time(recV.(Time)).CheckedWithYear(y)
	if !ok {
		return nil, fmt.Errorf("%s: year %d out of range", fnname, y)
	}
	return Time(r), nil
}

func timeAndHMS(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var hour, minute, second int
	if err := starlark.UnpackArgs(fnname, args, kwargs, "hour?", &hour, "minute?", &minute, "second?", &second); err != nil {
		return nil, err
	}
	var r normtime.Time
	d, ok := hms(hour, minute, second)
	if ok {
		r, ok = normtime.Time(recV.(Time)).CheckedAdd(d)
	}
	if !ok {
		return nil, fmt.Errorf("%s: out of range", fnname)
	}
	return Time(r), nil
}

func timeDate(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.String(normtime.Time(recV.(Time)).DateString()), nil
}

func timeClock(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.String(normtime.Time(recV.(Time)).ClockString()), nil
}

func timeTimestamp(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	unix, ok := BridgeOf(thread).Timestamp(normtime.Time(recV.(Time)))
	if !ok {
		return nil, fmt.Errorf("%s: out of range", fnname)
	}
	return starlark.MakeInt64(unix), nil
}

func timeToStd(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	format := time.RFC3339
	if err := starlark.UnpackArgs(fnname, args, kwargs, "format?", &format); err != nil {
		return nil, err
	}
	x, ok := BridgeOf(thread).StdTime(normtime.Time(recV.(Time)))
	if !ok {
		return nil, fmt.Errorf("%s: %s has no common era time", fnname, recV)
	}
	return starlark.String(x.Format(format)), nil
}

func timeLatex(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.String(normtime.Time(recV.(Time)).LatexDate(normtime.TexOptions{})), nil
}
