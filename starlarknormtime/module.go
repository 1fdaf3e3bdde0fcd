// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarknormtime

import (
	"fmt"
	"sync"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"go.normtime.net/i18n"
	"go.normtime.net/normtime"
)

// ModuleName is the name under which Module is usually predeclared.
const ModuleName = "normtime"

// Module normtime is a Starlark module of normtime functions.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"time":           starlark.NewBuiltin("time", newTime),
		"parse_time":     starlark.NewBuiltin("parse_time", parseTime),
		"from_timestamp": starlark.NewBuiltin("from_timestamp", fromTimestamp),
		"from_std":       starlark.NewBuiltin("from_std", fromStd),
		"delta":          starlark.NewBuiltin("delta", newDelta),
		"seconds":        unitBuiltin("seconds", normtime.Seconds),
		"minutes":        unitBuiltin("minutes", normtime.Minutes),
		"hours":          unitBuiltin("hours", normtime.Hours),
		"days":           unitBuiltin("days", normtime.Days),
		"weeks":          unitBuiltin("weeks", normtime.Weeks),
		"months":         unitBuiltin("months", normtime.Months),
		"years":          unitBuiltin("years", normtime.Years),
		"earth_years":    unitBuiltin("earth_years", normtime.EarthYears),
		"parse_unit":     starlark.NewBuiltin("parse_unit", parseUnit),
		"units":          starlark.NewBuiltin("units", units),

		"zero":  Delta(normtime.Zero),
		"epoch": Time{},

		"normyear":  Delta(normtime.Years(1)),
		"normmonth": Delta(normtime.Months(1)),
		"normweek":  Delta(normtime.Weeks(1)),
		"normday":   Delta(normtime.Days(1)),
		"hour":      Delta(normtime.Hours(1)),
		"minute":    Delta(normtime.Minutes(1)),
		"second":    Delta(normtime.Seconds(1)),
	},
}

// LoadModule loads the normtime module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

const (
	bridgeKey = "normtime.bridge"
	localeKey = "normtime.locale"
)

// SetBridge sets the bridge to the common era calendar used by thread.
// Threads without one use normtime.DefaultBridge.
func SetBridge(thread *starlark.Thread, b normtime.Bridge) {
	thread.SetLocal(bridgeKey, b)
}

// BridgeOf returns the bridge used by thread.
func BridgeOf(thread *starlark.Thread) normtime.Bridge {
	if b, ok := thread.Local(bridgeKey).(normtime.Bridge); ok {
		return b
	}
	return normtime.DefaultBridge
}

// SetLocale sets the translations used by thread. Threads without one use
// the translations embedded in package i18n.
func SetLocale(thread *starlark.Thread, l *i18n.Locale) {
	thread.SetLocal(localeKey, l)
}

var defaultLocale = sync.OnceValues(i18n.New)

func locale(thread *starlark.Thread) (*i18n.Locale, error) {
	if l, ok := thread.Local(localeKey).(*i18n.Locale); ok {
		return l, nil
	}
	return defaultLocale()
}

// toInt64 converts a Starlark int argument, naming it in errors.
func toInt64(name string, x starlark.Int) (int64, error) {
	i, ok := x.Int64()
	if !ok {
		return 0, fmt.Errorf("%s: int value out of range (want signed 64-bit value)", name)
	}
	return i, nil
}

func newTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var month, day, hour, minute, second int
	year := starlark.MakeInt(0)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"year?", &year, "month?", &month, "day?", &day,
		"hour?", &hour, "minute?", &minute, "second?", &second); err != nil {
		return nil, err
	}
	y, err := toInt64("year", year)
	if err != nil {
		return nil, err
	}
	t, ok := normtime.FromYMD(y, month, day)
	if !ok {
		return nil, fmt.Errorf("%s: invalid date %d-%d-%d", b.Name(), y, month, day)
	}
	clock, ok := hms(hour, minute, second)
	if ok {
		t, ok = t.CheckedAdd(clock)
	}
	if !ok {
		return nil, fmt.Errorf("%s: time out of range", b.Name())
	}
	return Time(t), nil
}

func parseTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	t, err := normtime.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	return Time(t), nil
}

func fromTimestamp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	unix, err := toInt64(b.Name(), x)
	if err != nil {
		return nil, err
	}
	t, ok := BridgeOf(thread).FromTimestamp(unix)
	if !ok {
		return nil, fmt.Errorf("%s: timestamp %d out of range", b.Name(), unix)
	}
	return Time(t), nil
}

func fromStd(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		s      string
		format = time.RFC3339
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s, "format?", &format); err != nil {
		return nil, err
	}
	x, err := time.Parse(format, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	t, ok := BridgeOf(thread).FromTimestamp(x.Unix())
	if !ok {
		return nil, fmt.Errorf("%s: %s out of range", b.Name(), s)
	}
	return Time(t), nil
}

func newDelta(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	secs, nanos := starlark.MakeInt(0), starlark.MakeInt(0)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "seconds?", &secs, "nanoseconds?", &nanos); err != nil {
		return nil, err
	}
	s, err := toInt64("seconds", secs)
	if err != nil {
		return nil, err
	}
	ns, err := toInt64("nanoseconds", nanos)
	if err != nil {
		return nil, err
	}
	whole, ok := normtime.NewDelta(s, 0)
	if ok {
		whole, ok = whole.CheckedAdd(normtime.FromDuration(time.Duration(ns)))
	}
	if !ok {
		return nil, fmt.Errorf("%s: out of range", b.Name())
	}
	return Delta(whole), nil
}

// unitDelta returns n of unit u, reporting false if it is out of range.
func unitDelta(n int64, u normtime.Unit) (normtime.Delta, bool) {
	limit := normtime.MaxDelta.Seconds() / u.Seconds()
	if n > limit || n < -limit {
		return normtime.Delta{}, false
	}
	return normtime.NewDelta(n*u.Seconds(), 0)
}

// hms returns the duration of a clock reading, which is not range checked.
func hms(hour, minute, second int) (normtime.Delta, bool) {
	h, ok1 := unitDelta(int64(hour), normtime.Hour)
	m, ok2 := unitDelta(int64(minute), normtime.Minute)
	s, ok3 := unitDelta(int64(second), normtime.Second)
	if !ok1 || !ok2 || !ok3 {
		return normtime.Delta{}, false
	}
	return normtime.CheckedSum(h, m, s)
}

// unitBuiltin returns a builtin that multiplies a unit, reporting overflow
// as an error.
func unitBuiltin(name string, unit func(int64) normtime.Delta) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x starlark.Int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
			return nil, err
		}
		n, err := toInt64(b.Name(), x)
		if err != nil {
			return nil, err
		}
		size := unit(1)
		if n > normtime.MaxDelta.Seconds()/size.Seconds() || n < normtime.MinDelta.Seconds()/size.Seconds() {
			return nil, fmt.Errorf("%s: %d out of range", b.Name(), n)
		}
		return Delta(unit(n)), nil
	})
}

func parseUnit(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	u, err := normtime.ParseUnit(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	return starlark.String(u.String()), nil
}

func units(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	var names []starlark.Value
	for _, u := range normtime.Units() {
		names = append(names, starlark.String(u.String()))
	}
	return starlark.NewList(names), nil
}
