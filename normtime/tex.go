// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"fmt"
	"strings"
)

// TexOptions tunes LaTeX output. It has no fields yet; the zero value is
// the default.
type TexOptions struct{}

// A Latexer renders itself as LaTeX text.
type Latexer interface {
	Latex(TexOptions) string
}

// A SymbolLatexer renders itself with the unit macros of the siunitx
// package (\second, \normday, ...). The normtime units must be declared
// in the document, e.g. \DeclareSIUnit\normday{nd}.
type SymbolLatexer interface {
	Latexer
	LatexSym(TexOptions) string
}

var (
	_ SymbolLatexer = Unit(0)
	_ SymbolLatexer = Delta{}
	_ Latexer       = Time{}
)

// Latex returns the plural name of u.
func (u Unit) Latex(TexOptions) string { return u.String() }

// LatexSym returns the siunitx macro of u, e.g. \normyear.
func (u Unit) LatexSym(TexOptions) string {
	if !u.valid() {
		return u.String()
	}
	return unitLatex[u]
}

// Latex returns the whole seconds of d with a non-breaking space,
// e.g. "100~seconds".
func (d Delta) Latex(TexOptions) string {
	n := d.Seconds()
	if n == 1 {
		return "1~second"
	}
	return fmt.Sprintf("%d~seconds", n)
}

// LatexSym returns d as an siunitx quantity, e.g. \qty{100}{\second}.
func (d Delta) LatexSym(TexOptions) string {
	return fmt.Sprintf(`\qty{%d}{\second}`, d.Seconds())
}

// LatexUnit is like UnitString with non-breaking spaces between count and
// unit, e.g. "900~normdays 1~hour".
func (d Delta) LatexUnit(units ...Unit) string {
	return d.joinUnits(" ", func(a Amount) string {
		return fmt.Sprintf("%d~%s", a.Count, a.Name())
	}, units)
}

// LatexSymUnit is like SymbolUnitString with siunitx quantities separated
// by thin spaces, e.g. \qty{900}{\normday}\,\qty{1}{\hour}.
func (d Delta) LatexSymUnit(units ...Unit) string {
	var opts TexOptions
	return d.joinUnits(`\,`, func(a Amount) string {
		return fmt.Sprintf(`\qty{%d}{%s}`, a.Count, a.Unit.LatexSym(opts))
	}, units)
}

// Latex returns the date of t; see LatexDate.
func (t Time) Latex(opts TexOptions) string { return t.LatexDate(opts) }

// LatexDate returns the date of t followed by the \uz macro that marks
// normtime dates, e.g. "0123-04-05\,\uz{}". A negative year starts with a
// typographic minus sign.
func (t Time) LatexDate(TexOptions) string {
	date := t.DateString()
	if strings.HasPrefix(date, "-") {
		date = "−" + date[1:]
	}
	return date + `\,\uz{}`
}
