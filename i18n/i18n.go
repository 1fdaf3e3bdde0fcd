// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i18n renders normtime values in the languages of its embedded
// translations, currently English and German.
//
// Translations are YAML files mapping message keys to text, one file per
// language named by its BCP 47 tag, e.g. "de.yml". The keys are the unit
// names (singular and plural) and the keys of normtime.Stage.
package i18n // import "go.normtime.net/i18n"

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"

	"go.normtime.net/normtime"
)

//go:embed translations/*.yml
var translations embed.FS

// Fallback is the language used for tags no translation matches.
var Fallback = language.English

// A Locale holds a translation catalog. It is immutable and safe for
// concurrent use.
type Locale struct {
	cat catalog.Catalog
}

// New returns a Locale with the embedded translations.
func New() (*Locale, error) {
	sub, err := fs.Sub(translations, "translations")
	if err != nil {
		return nil, err
	}
	return NewFromFS(sub, Fallback)
}

// MustNew is like New but panics on error.
func MustNew() *Locale {
	l, err := New()
	if err != nil {
		panic(err)
	}
	return l
}

// NewFromFS reads every .yml file at the root of dir into a Locale.
func NewFromFS(dir fs.FS, fallback language.Tag) (*Locale, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, err
	}
	dicts := map[string]catalog.Dictionary{}
	for _, file := range files {
		if file.IsDir() || path.Ext(file.Name()) != ".yml" {
			continue
		}
		data, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, err
		}
		dict, err := parseDict(data)
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %v", file.Name(), err)
		}
		dicts[strings.TrimSuffix(file.Name(), ".yml")] = dict
	}
	cat, err := catalog.NewFromMap(dicts, catalog.Fallback(fallback))
	if err != nil {
		return nil, err
	}
	return &Locale{cat: cat}, nil
}

type yamlDictionary struct {
	entries map[string]string
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.entries[key]; ok {
		// "\x02" marks a raw message, a plain format string.
		return "\x02" + value, true
	}
	return "", false
}

func parseDict(data []byte) (*yamlDictionary, error) {
	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &yamlDictionary{entries: entries}, nil
}

// ParseTag parses a BCP 47 language tag such as "de-DE".
func ParseTag(s string) (language.Tag, error) {
	return language.Parse(s)
}

// Languages returns the languages with a translation.
func (l *Locale) Languages() []language.Tag {
	return l.cat.Languages()
}

// Printer returns a message printer for tag backed by the catalog of l.
func (l *Locale) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(l.cat))
}

// Unit returns the name of u in tag, singular if count is one.
func (l *Locale) Unit(u normtime.Unit, tag language.Tag, count int64) string {
	key := u.String()
	if count == 1 {
		key = u.Singular()
	}
	return l.Printer(tag).Sprintf(key)
}

// Delta returns the whole seconds of d in tag, e.g. "100000 Sekunden".
// Counts are not grouped into thousands.
func (l *Locale) Delta(d normtime.Delta, tag language.Tag) string {
	n := d.Seconds()
	return strconv.FormatInt(n, 10) + " " + l.Unit(normtime.Second, tag, n)
}

// DeltaUnits is the translation of d.UnitString(units...), e.g.
// "900 Normtage 1 Stunde 23 Minuten".
func (l *Locale) DeltaUnits(d normtime.Delta, tag language.Tag, units ...normtime.Unit) string {
	return l.joinUnits(d, tag, " ", units)
}

// LatexDelta is the translation of d.Latex, e.g. "10~Sekunden".
func (l *Locale) LatexDelta(d normtime.Delta, tag language.Tag) string {
	n := d.Seconds()
	return strconv.FormatInt(n, 10) + "~" + l.Unit(normtime.Second, tag, n)
}

// LatexDeltaUnits is the translation of d.LatexUnit(units...), e.g.
// "900~Normtage 1~Stunde".
func (l *Locale) LatexDeltaUnits(d normtime.Delta, tag language.Tag, units ...normtime.Unit) string {
	return l.joinUnits(d, tag, "~", units)
}

func (l *Locale) joinUnits(d normtime.Delta, tag language.Tag, space string, units []normtime.Unit) string {
	var parts []string
	for _, a := range d.AsUnits(units...) {
		if a.Count > 0 {
			parts = append(parts, strconv.FormatInt(a.Count, 10)+space+l.Unit(a.Unit, tag, a.Count))
		}
	}
	return strings.Join(parts, " ")
}

// Roughly is the translation of d.Roughly(generic), e.g. "Kleinkind" or
// "Mitte 20".
func (l *Locale) Roughly(d normtime.Delta, tag language.Tag, generic bool) string {
	stage, decade := d.Stage()
	p := l.Printer(tag)
	if stage >= normtime.EarlyDecade {
		return p.Sprintf(stage.Key(generic), strconv.FormatInt(decade, 10))
	}
	return p.Sprintf(stage.Key(generic))
}
