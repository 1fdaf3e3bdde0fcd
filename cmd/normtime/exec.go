// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"go.normtime.net/repl"
	"go.normtime.net/starlarknormtime"
)

func (a *app) execCmd() *cobra.Command {
	var watchFile bool
	cmd := &cobra.Command{
		Use:   "exec <file.star>",
		Short: "Run a normtime script",
		Long: `Exec runs a Starlark script with the normtime module predeclared.
With --watch the script runs again whenever the file changes, until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if !watchFile {
				src, err := afero.ReadFile(a.fs, filename)
				if err != nil {
					return err
				}
				return a.runScript(cmd, filename, src)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, a.log, filename, func() {
				src, err := afero.ReadFile(a.fs, filename)
				if err == nil {
					err = a.runScript(cmd, filename, src)
				}
				if err != nil {
					a.log.WithField("file", filename).Error(repl.FormatError(err))
				}
			})
		},
	}
	cmd.Flags().BoolVar(&watchFile, "watch", false, "run again when the file changes")
	return cmd
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd)
		},
	}
}

// newThread returns a thread that prints to the command's output and
// uses the configured bridge and translations.
func (a *app) newThread(cmd *cobra.Command, name string) *starlark.Thread {
	out := cmd.OutOrStdout()
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
		Load: repl.MakeLoad(map[string]starlark.StringDict{
			"normtime.star": {starlarknormtime.ModuleName: starlarknormtime.Module},
		}),
	}
	starlarknormtime.SetBridge(thread, a.cfg.Bridge())
	starlarknormtime.SetLocale(thread, a.locale)
	return thread
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{starlarknormtime.ModuleName: starlarknormtime.Module}
}

func (a *app) runScript(cmd *cobra.Command, filename string, src []byte) error {
	thread := a.newThread(cmd, "exec "+filename)
	start := time.Now()
	_, err := starlark.ExecFile(thread, filename, src, predeclared())
	a.log.WithFields(logrus.Fields{
		"file":    filename,
		"elapsed": time.Since(start),
	}).Debug("executed script")
	return err
}

func (a *app) runREPL(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Welcome to normtime (go.normtime.net)")
	thread := a.newThread(cmd, "REPL")
	repl.REPL(thread, predeclared(), repl.Options{
		HistoryFile: a.cfg.HistoryFile,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	})
	return nil
}

// watch calls run once and then again after every change to the file at
// path, until ctx is done. Bursts of events within the debounce interval
// cause a single run.
func watch(ctx context.Context, log logrus.FieldLogger, path string, run func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace a file instead of writing it, so watch the
	// directory rather than the file.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	run()

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				log.WithField("file", path).Debug("file changed, running again")
				run()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watching file")
		}
	}
}
