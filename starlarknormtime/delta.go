// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarknormtime

import (
	"fmt"
	"math"
	"math/big"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.normtime.net/i18n"
	"go.normtime.net/normtime"
)

// Delta is a Starlark representation of a normtime duration.
type Delta normtime.Delta

var (
	_ starlark.HasAttrs   = Delta{}
	_ starlark.HasBinary  = Delta{}
	_ starlark.HasUnary   = Delta{}
	_ starlark.Comparable = Delta{}
)

// String implements the Stringer interface.
func (d Delta) String() string { return normtime.Delta(d).String() }

// Type returns "normtime.delta".
func (d Delta) Type() string { return "normtime.delta" }

// Freeze is a no-op; a Delta is immutable.
func (d Delta) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (d Delta) Hash() (uint32, error) {
	x := normtime.Delta(d)
	secs := x.Seconds()
	return uint32(secs) ^ uint32(secs>>32) ^ uint32(x.SubsecNanos()), nil
}

// Truth reports whether the delta is nonzero.
func (d Delta) Truth() starlark.Bool { return starlark.Bool(!normtime.Delta(d).IsZero()) }

// Attr gets a value for a string attribute. The unit attributes are whole
// counts truncated toward zero.
func (d Delta) Attr(name string) (starlark.Value, error) {
	x := normtime.Delta(d)
	switch name {
	case "seconds":
		return starlark.MakeInt64(x.Seconds()), nil
	case "nanoseconds":
		return starlark.MakeInt(int(x.SubsecNanos())), nil
	case "minutes":
		return starlark.MakeInt64(x.Minutes()), nil
	case "hours":
		return starlark.MakeInt64(x.Hours()), nil
	case "days":
		return starlark.MakeInt64(x.Days()), nil
	case "weeks":
		return starlark.MakeInt64(x.Weeks()), nil
	case "months":
		return starlark.MakeInt64(x.Months()), nil
	case "years":
		return starlark.MakeInt64(x.Years()), nil
	}
	return builtinAttr(d, name, deltaMethods)
}

// AttrNames lists available dot expression strings for delta.
func (d Delta) AttrNames() []string {
	return append(builtinAttrNames(deltaMethods),
		"seconds",
		"nanoseconds",
		"minutes",
		"hours",
		"days",
		"weeks",
		"months",
		"years",
	)
}

// CompareSameType implements comparison of two Delta values.
func (d Delta) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	cmp := normtime.Delta(d).Compare(normtime.Delta(yV.(Delta)))
	return threeway(op, cmp), nil
}

// Unary implements the unary operators - and +.
func (d Delta) Unary(op syntax.Token) (starlark.Value, error) {
	switch op {
	case syntax.MINUS:
		r, ok := normtime.Zero.CheckedSub(normtime.Delta(d))
		if !ok {
			return nil, fmt.Errorf("-%s out of range", d)
		}
		return Delta(r), nil
	case syntax.PLUS:
		return d, nil
	}
	return nil, nil
}

// Binary implements binary operators:
//
//	delta + delta = delta
//	delta - delta = delta
//	delta * int = delta
//	int * delta = delta
//	delta / int = delta
//	delta // int = delta
//	delta / delta = float
//	delta // delta = int
//
// delta + time is implemented by Time.
func (d Delta) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := normtime.Delta(d)

	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Delta); ok {
			r, ok := x.CheckedAdd(normtime.Delta(y))
			if !ok {
				return nil, fmt.Errorf("%s + %s out of range", d, y)
			}
			return Delta(r), nil
		}

	case syntax.MINUS:
		if y, ok := yV.(Delta); ok {
			a, b := x, normtime.Delta(y)
			if side == starlark.Right {
				a, b = b, a
			}
			r, ok := a.CheckedSub(b)
			if !ok {
				return nil, fmt.Errorf("%s - %s out of range", a, b)
			}
			return Delta(r), nil
		}

	case syntax.STAR:
		if y, ok := yV.(starlark.Int); ok {
			n, err := toInt32(y)
			if err != nil {
				return nil, err
			}
			r, ok := x.CheckedMul(n)
			if !ok {
				return nil, fmt.Errorf("%s * %d out of range", d, n)
			}
			return Delta(r), nil
		}

	case syntax.SLASH, syntax.SLASHSLASH:
		if side == starlark.Right {
			return nil, nil // int / delta
		}
		switch y := yV.(type) {
		case starlark.Int:
			n, err := toInt32(y)
			if err != nil {
				return nil, err
			}
			r, ok := x.CheckedDiv(n)
			if !ok {
				return nil, fmt.Errorf("%s division by zero", d.Type())
			}
			return Delta(r), nil
		case Delta:
			den := totalNanos(normtime.Delta(y))
			if den.Sign() == 0 {
				return nil, fmt.Errorf("%s division by zero", d.Type())
			}
			num := totalNanos(x)
			if op == syntax.SLASH {
				q, _ := new(big.Rat).SetFrac(num, den).Float64()
				return starlark.Float(q), nil
			}
			// DivMod is Euclidean; floor it like int //.
			q, m := new(big.Int).DivMod(num, den, new(big.Int))
			if m.Sign() != 0 && den.Sign() < 0 {
				q.Sub(q, big.NewInt(1))
			}
			return starlark.MakeBigInt(q), nil
		}
	}
	return nil, nil
}

func toInt32(x starlark.Int) (int32, error) {
	n, ok := x.Int64()
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("int value out of range (want signed 32-bit value)")
	}
	return int32(n), nil
}

func totalNanos(d normtime.Delta) *big.Int {
	n := new(big.Int).Mul(big.NewInt(d.Seconds()), big.NewInt(1e9))
	return n.Add(n, big.NewInt(int64(d.SubsecNanos())))
}

var deltaMethods = map[string]builtinMethod{
	"abs":      deltaAbs,
	"as_units": deltaAsUnits,
	"format":   deltaFormat,
	"roughly":  deltaRoughly,
}

func deltaAbs(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return Delta(normtime.Delta(recV.(Delta)).Abs()), nil
}

// unpackUnits converts positional unit names or symbols such as "normdays"
// or "h" into units. Each argument may itself be a comma separated list.
func unpackUnits(fnname string, args starlark.Tuple) ([]normtime.Unit, error) {
	var units []normtime.Unit
	for i, arg := range args {
		s, ok := starlark.AsString(arg)
		if !ok {
			return nil, fmt.Errorf("%s: for parameter %d: got %s, want string", fnname, i+1, arg.Type())
		}
		us, err := normtime.ParseUnits(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", fnname, err)
		}
		units = append(units, us...)
	}
	return units, nil
}

func deltaAsUnits(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fnname, nil, kwargs); err != nil {
		return nil, err
	}
	units, err := unpackUnits(fnname, args)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		units = normtime.Units()
	}
	var amounts []starlark.Value
	for _, a := range normtime.Delta(recV.(Delta)).AsUnits(units...) {
		amounts = append(amounts, starlark.Tuple{starlark.MakeInt64(a.Count), starlark.String(a.Unit.String())})
	}
	return starlark.NewList(amounts), nil
}

func deltaFormat(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		sym, tex bool
		lang     string
	)
	if err := starlark.UnpackArgs(fnname, nil, kwargs, "sym?", &sym, "tex?", &tex, "locale?", &lang); err != nil {
		return nil, err
	}
	units, err := unpackUnits(fnname, args)
	if err != nil {
		return nil, err
	}
	d := normtime.Delta(recV.(Delta))
	var opts normtime.TexOptions

	// Symbols are the same in every language.
	if lang != "" && !sym {
		tag, err := i18n.ParseTag(lang)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", fnname, err)
		}
		l, err := locale(thread)
		if err != nil {
			return nil, err
		}
		switch {
		case len(units) == 0 && tex:
			return starlark.String(l.LatexDelta(d, tag)), nil
		case len(units) == 0:
			return starlark.String(l.Delta(d, tag)), nil
		case tex:
			return starlark.String(l.LatexDeltaUnits(d, tag, units...)), nil
		default:
			return starlark.String(l.DeltaUnits(d, tag, units...)), nil
		}
	}

	var s string
	switch {
	case len(units) == 0 && tex && sym:
		s = d.LatexSym(opts)
	case len(units) == 0 && tex:
		s = d.Latex(opts)
	case len(units) == 0 && sym:
		s = d.SymbolString()
	case len(units) == 0:
		s = d.String()
	case tex && sym:
		s = d.LatexSymUnit(units...)
	case tex:
		s = d.LatexUnit(units...)
	case sym:
		s = d.SymbolUnitString(units...)
	default:
		s = d.UnitString(units...)
	}
	return starlark.String(s), nil
}

func deltaRoughly(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		generic bool
		lang    string
	)
	if err := starlark.UnpackArgs(fnname, args, kwargs, "generic?", &generic, "locale?", &lang); err != nil {
		return nil, err
	}
	d := normtime.Delta(recV.(Delta))
	if lang == "" {
		return starlark.String(d.Roughly(generic)), nil
	}
	tag, err := i18n.ParseTag(lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fnname, err)
	}
	l, err := locale(thread)
	if err != nil {
		return nil, err
	}
	return starlark.String(l.Roughly(d, tag, generic)), nil
}
