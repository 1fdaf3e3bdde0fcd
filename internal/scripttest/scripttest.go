// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scripttest runs Starlark test scripts and checks that errors are
// reported in the expected places.
//
// A script consists of several chunks separated by "---" lines. Each chunk
// is executed on its own. Lines containing "###" are expectations of
// failure: the following text is a Go string literal denoting a regular
// expression that must match the error reported for that line.
//
// Example:
//
//	d = normtime.seconds(1) / 0 ### "division by zero"
//	---
//	load("assert.star", "assert")
//	assert.eq(str(normtime.days(1)), "100000 seconds")
//
// The assert module of go.starlark.net/starlarktest is available as
// "assert.star".
package scripttest // import "go.normtime.net/internal/scripttest"

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarktest"
)

// A Chunk is a portion of a script together with the errors it is
// expected to report.
type Chunk struct {
	Source   string
	filename string
	report   Reporter
	wantErrs map[int]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a chunked script and returns its chunks. Line numbers of each
// chunk's Source match those of the file.
func Read(filename string, report Reporter) (chunks []Chunk) {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return
	}
	return Parse(filename, strings.ReplaceAll(string(data), "\r\n", "\n"), report)
}

// Parse splits src, the content of filename, into chunks.
func Parse(filename, src string, report Reporter) (chunks []Chunk) {
	linenum := 1
	for _, chunk := range strings.Split(src, "\n---\n") {
		// Pad with newlines so the line numbers match the file.
		padded := strings.Repeat("\n", linenum-1) + chunk

		wantErrs := make(map[int]*regexp.Regexp)
		lines := strings.Split(chunk, "\n")
		for j := 0; j < len(lines); j, linenum = j+1, linenum+1 {
			line := lines[j]
			hashes := strings.Index(line, "###")
			if hashes < 0 {
				continue
			}
			rest := strings.TrimSpace(line[hashes+len("###"):])
			pattern, err := strconv.Unquote(rest)
			if err != nil {
				report.Errorf("\n%s:%d: not a quoted regexp: %s", filename, linenum, rest)
				continue
			}
			rx, err := regexp.Compile(pattern)
			if err != nil {
				report.Errorf("\n%s:%d: %v", filename, linenum, err)
				continue
			}
			wantErrs[linenum] = rx
		}
		linenum++ // the separator

		chunks = append(chunks, Chunk{padded, filename, report, wantErrs})
	}
	return chunks
}

// GotError reports an error at a particular line. Errors nobody expected
// go to the chunk's reporter.
func (chunk *Chunk) GotError(linenum int, msg string) {
	if rx, ok := chunk.wantErrs[linenum]; ok {
		delete(chunk.wantErrs, linenum)
		if !rx.MatchString(msg) {
			chunk.report.Errorf("\n%s:%d: error %q does not match pattern %q", chunk.filename, linenum, msg, rx)
		}
	} else {
		chunk.report.Errorf("\n%s:%d: unexpected error: %v", chunk.filename, linenum, msg)
	}
}

// Done reports expected errors that did not occur.
func (chunk *Chunk) Done() {
	for linenum, rx := range chunk.wantErrs {
		chunk.report.Errorf("\n%s:%d: expected error matching %q", chunk.filename, linenum, rx)
	}
}

// Run executes every chunk of the script filename in a fresh thread with
// the given predeclared names. If setup is not nil it is called with each
// thread before execution.
func Run(report Reporter, filename string, predeclared starlark.StringDict, setup func(*starlark.Thread)) {
	for _, chunk := range Read(filename, report) {
		chunk.Exec(predeclared, setup)
	}
}

// Exec executes the chunk and checks its errors.
func (chunk *Chunk) Exec(predeclared starlark.StringDict, setup func(*starlark.Thread)) {
	thread := &starlark.Thread{Name: chunk.filename, Load: load}
	if r, ok := chunk.report.(starlarktest.Reporter); ok {
		starlarktest.SetReporter(thread, r)
	}
	if setup != nil {
		setup(thread)
	}
	_, err := starlark.ExecFile(thread, chunk.filename, chunk.Source, predeclared)
	switch err := err.(type) {
	case *starlark.EvalError:
		found := false
		for i := len(err.CallStack) - 1; i >= 0; i-- {
			pos := err.CallStack[i].Pos
			if pos.Filename() == chunk.filename {
				chunk.GotError(int(pos.Line), err.Msg)
				found = true
				break
			}
		}
		if !found {
			chunk.report.Errorf("%s", err.Backtrace())
		}
	case nil:
		// success
	default:
		chunk.report.Errorf("%v", err)
	}
	chunk.Done()
}

func load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	if module == "assert.star" {
		return starlarktest.LoadAssertModule()
	}
	return nil, fmt.Errorf("load: no module %q", module)
}
