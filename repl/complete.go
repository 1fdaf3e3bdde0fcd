// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"sort"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
)

// completer completes global names and, after a dot, the attributes of a
// global, e.g. "normtime.ye" to "normtime.years".
type completer struct {
	globals starlark.StringDict
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && isIdent(line[start-1]) {
		start--
	}
	word := string(line[start:pos])

	var names []string
	prefix := word
	if dot := strings.LastIndexByte(word, '.'); dot >= 0 {
		recv, ok := c.globals[word[:dot]].(starlark.HasAttrs)
		if !ok {
			return nil, 0
		}
		names = recv.AttrNames()
		prefix = word[dot+1:]
	} else {
		names = c.globals.Keys()
		names = append(names, starlark.Universe.Keys()...)
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 && names[i-1] == name {
			continue
		}
		if strings.HasPrefix(name, prefix) && name != prefix {
			newLine = append(newLine, []rune(name[len(prefix):]))
		}
	}
	return newLine, len([]rune(prefix))
}

func isIdent(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
