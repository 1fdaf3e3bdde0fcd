// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides an interactive session for normtime scripts.
//
// A line that parses as an expression is evaluated and its value shown;
// other input is read up to a blank line and executed as statements.
// Normtime values are shown with a trailing comment: a delta with its
// breakdown into normtime units, a time with its common era equivalent.
//
//	>>> normtime.days(3) + normtime.hours(2)
//	307200 seconds  # 3 normdays 2 hours
//	>>> normtime.epoch
//	0000-00-00N00:00:00  # 2068-01-01T00:00:00Z
//
// Lines are edited with readline; the history is kept in a file if one is
// configured, and Tab completes global names and their attributes.
// Control-C cancels the item being evaluated.
package repl // import "go.normtime.net/repl"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/chzyer/readline"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.normtime.net/normtime"
	"go.normtime.net/starlarknormtime"
)

const (
	prompt     = ">>> "
	morePrompt = "... "
)

// Options holds optional settings of a REPL.
type Options struct {
	// HistoryFile, if set, keeps the lines entered across sessions.
	HistoryFile string

	// Stdout and Stderr receive values and errors. They default to the
	// process's standard streams.
	Stdout, Stderr io.Writer
}

// A session is one running REPL.
type session struct {
	rl      *readline.Instance
	thread  *starlark.Thread
	globals starlark.StringDict
	stdout  io.Writer
	stderr  io.Writer
	sigint  chan os.Signal
}

// REPL runs an interactive session on thread until the input ends.
//
// Each item is evaluated with the thread local "context" set to a
// context.Context that a SIGINT cancels, so long-running builtins can
// stop early.
func REPL(thread *starlark.Thread, globals starlark.StringDict, opts Options) {
	s := &session{
		thread:  thread,
		globals: globals,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		sigint:  make(chan os.Signal, 1),
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		HistoryFile:  opts.HistoryFile,
		AutoComplete: &completer{globals},
		Stdout:       s.stdout,
		Stderr:       s.stderr,
	})
	if err != nil {
		fmt.Fprintln(s.stderr, FormatError(err))
		return
	}
	defer rl.Close()
	s.rl = rl

	signal.Notify(s.sigint, os.Interrupt)
	defer signal.Stop(s.sigint)

	for {
		err := s.item()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(s.stdout, err)
			continue
		}
		if err != nil {
			break
		}
	}
	fmt.Fprintln(s.stdout)
}

// item reads and runs one item. It returns an error only if reading
// failed; errors of the script are shown on stderr.
func (s *session) item() error {
	// While readline waits, Control-C makes it return ErrInterrupt
	// instead of raising SIGINT.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.sigint:
			cancel()
		case <-ctx.Done():
		}
	}()
	s.thread.SetLocal("context", ctx)

	var readErr error
	s.rl.SetPrompt(prompt)
	next := func() ([]byte, error) {
		line, err := s.rl.Readline()
		s.rl.SetPrompt(morePrompt)
		if err != nil {
			readErr = err
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	f, err := syntax.ParseCompoundStmt("<stdin>", next)
	if err != nil {
		if readErr != nil {
			return readErr
		}
		fmt.Fprintln(s.stderr, FormatError(err))
		return nil
	}
	if err := run(s.stdout, s.thread, f, s.globals); err != nil {
		fmt.Fprintln(s.stderr, FormatError(err))
	}
	return nil
}

// run executes f. If f is a single expression, its value is shown on w
// unless it is None.
func run(w io.Writer, thread *starlark.Thread, f *syntax.File, globals starlark.StringDict) error {
	if len(f.Stmts) != 1 {
		return starlark.ExecREPLChunk(f, thread, globals)
	}
	stmt, ok := f.Stmts[0].(*syntax.ExprStmt)
	if !ok {
		return starlark.ExecREPLChunk(f, thread, globals)
	}
	v, err := starlark.EvalExpr(thread, stmt.X, globals)
	if err != nil {
		return err
	}
	if v != starlark.None {
		fmt.Fprintln(w, Show(thread, v))
	}
	return nil
}

// Show renders v the way the REPL displays it. Deltas are followed by
// their breakdown into normtime units and times by their common era time
// under the bridge of thread, when those differ from the value itself.
func Show(thread *starlark.Thread, v starlark.Value) string {
	s := v.String()
	var note string
	switch v := v.(type) {
	case starlarknormtime.Delta:
		d := normtime.Delta(v)
		abs := d.Abs()
		if units := abs.UnitString(normtime.Units()...); units != abs.String() {
			note = units
			if units != "" && d.Seconds() < 0 {
				note = "minus " + units
			}
		}
	case starlarknormtime.Time:
		if x, ok := starlarknormtime.BridgeOf(thread).StdTime(normtime.Time(v)); ok {
			note = x.Format(time.RFC3339)
		}
	}
	if note == "" {
		return s
	}
	return s + "  # " + note
}

// FormatError returns the backtrace of a Starlark evaluation error and the
// message of any other error.
func FormatError(err error) string {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Backtrace()
	}
	return err.Error()
}
