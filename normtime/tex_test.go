// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import "testing"

func TestLatex(t *testing.T) {
	var opts TexOptions
	d := Seconds(90_005_000)
	one := Hours(1).Add(Minutes(23))
	for _, test := range []struct {
		got, want string
	}{
		{Year.LatexSym(opts), `\normyear`},
		{Day.LatexSym(opts), `\normday`},
		{Second.LatexSym(opts), `\second`},
		{Week.Latex(opts), "normweeks"},
		{Seconds(1).Latex(opts), "1~second"},
		{Seconds(100).Latex(opts), "100~seconds"},
		{Days(1).Latex(opts), "100000~seconds"},
		{Seconds(1).LatexSym(opts), `\qty{1}{\second}`},
		{Seconds(10).LatexSym(opts), `\qty{10}{\second}`},
		{d.LatexUnit(Day), "900~normdays"},
		{d.LatexUnit(Day, Hour), "900~normdays 1~hour"},
		{d.LatexUnit(Day, Hour, Minute), "900~normdays 1~hour 23~minutes"},
		{one.LatexUnit(Day, Hour), "1~hour"},
		{d.LatexSymUnit(Day), `\qty{900}{\normday}`},
		{d.LatexSymUnit(Day, Hour), `\qty{900}{\normday}\,\qty{1}{\hour}`},
		{d.LatexSymUnit(Day, Hour, Minute), `\qty{900}{\normday}\,\qty{1}{\hour}\,\qty{23}{\minute}`},
		{one.LatexSymUnit(Day, Hour, Minute), `\qty{1}{\hour}\,\qty{23}{\minute}`},
		{MustFromYMD(123, 4, 5).LatexDate(opts), `0123-04-05\,\uz{}`},
		{MustFromYMD(-3, 0, 1).Latex(opts), `−0003-00-01\,\uz{}`},
	} {
		if test.got != test.want {
			t.Errorf("got %q, want %q", test.got, test.want)
		}
	}
}

func TestLatexCapabilities(t *testing.T) {
	values := []Latexer{Hour, Seconds(3), MustFromYMD(0, 0, 0)}
	var syms int
	for _, v := range values {
		if _, ok := v.(SymbolLatexer); ok {
			syms++
		}
	}
	if syms != 2 {
		t.Errorf("%d values render symbols, want 2", syms)
	}
}
