// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"go.normtime.net/internal/config"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestApp(stdin string) *app {
	return &app{
		v:   viper.New(),
		fs:  afero.NewMemMapFs(),
		log: discardLogger(),
		now: func() time.Time {
			return time.Date(2068, time.January, 2, 3, 46, 40, 0, time.UTC)
		},
		stdin:      strings.NewReader(stdin),
		isTerminal: func() bool { return false },
	}
}

func execute(a *app, args ...string) (string, error) {
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"now"}, "0000-00-01N00:00:00\n"},
		{[]string{"convert", "2068-01-01T00:00:00Z"}, "0000-00-00N00:00:00\n"},
		{[]string{"convert", "2068-01-01T01:00:00+01:00"}, "0000-00-00N00:00:00\n"},
		{[]string{"convert", "2068-01-02T03:46:40"}, "0000-00-01N00:00:00\n"},
		{[]string{"convert", "2100-01-01"}, "0033-06-18N12:00:00\n"},
		{[]string{"civil", "0-0-1"}, "2068-01-02T03:46:40Z\n"},
		{[]string{"civil", "--date", "0-0-1"}, "2068-01-02\n"},
		{[]string{"delta", "90005000"}, "90005000 seconds\n"},
		{[]string{"delta", "90005000", "--units", "d,h,min"}, "900 normdays 1 hour 23 minutes\n"},
		{[]string{"delta", "90005000", "--units", "d,h,min", "--locale", "de"}, "900 Normtage 1 Stunde 23 Minuten\n"},
		{[]string{"delta", "90005000", "--units", "d,h,min", "--sym", "--locale", "de"}, "900 d 1 h 23 min\n"},
		{[]string{"delta", "90005000", "--units", "normdays,hours", "--tex"}, "900~normdays 1~hour\n"},
		{[]string{"delta", "10", "--tex", "--sym"}, "\\qty{10}{\\second}\n"},
		{[]string{"delta", "10", "--locale", "de"}, "10 Sekunden\n"},
		{[]string{"delta", "720000000", "--roughly"}, "mid 20s\n"},
		{[]string{"delta", "60000000", "--roughly", "--generic"}, "very young\n"},
		{[]string{"delta", "720000000", "--roughly", "--locale", "de"}, "Mitte 20\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(newTestApp(""), tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"convert", "yesterday"},
		{"civil", "foo"},
		{"civil", "1000000000-0-0"},
		{"delta", "x"},
		{"delta", "1", "--units", "fortnights"},
		{"delta", "9223372036854775807"},
		{"now", "--locale", "!!"},
		{"now", "--config", "/nonexistent.toml"},
		{"parse"},
	} {
		if out, err := execute(newTestApp(""), args...); err == nil {
			t.Errorf("%q succeeded: %q", args, out)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := execute(newTestApp(""), "parse", "12-3-4N5:6:7")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"normtime: 0012-03-04N05:06:07",
		"year:     12",
		"month:    3",
		"day:      4",
		"hour:     5",
		"minute:   6",
		"second:   7",
		"seconds:  369418367",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("output lacks %q:\n%s", line, got)
		}
	}
}

func TestConfigFile(t *testing.T) {
	a := newTestApp("")
	src := "epoch_offset = 0\nlocale = \"de\"\n"
	if err := afero.WriteFile(a.fs, "/normtime.toml", []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := execute(a, "--config", "/normtime.toml", "convert", "1970-01-02T03:46:40Z")
	if err != nil {
		t.Fatal(err)
	}
	if got != "0000-00-01N00:00:00\n" {
		t.Errorf("convert = %q", got)
	}
	if a.cfg.Locale != "de" {
		t.Errorf("locale = %q, want de", a.cfg.Locale)
	}
}

func TestConfigInit(t *testing.T) {
	a := newTestApp("")
	if _, err := execute(a, "config", "init", "/etc/normtime/config.toml"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.Exists(a.fs, "/etc/normtime/config.toml"); !ok {
		t.Fatal("config file not written")
	}
	_, err := execute(a, "config", "init", "/etc/normtime/config.toml")
	if !errors.Is(err, config.ErrExists) {
		t.Errorf("second config init = %v, want ErrExists", err)
	}
	if _, err := execute(a, "config", "init", "--force", "/etc/normtime/config.toml"); err != nil {
		t.Errorf("config init --force: %v", err)
	}
}

func TestExec(t *testing.T) {
	a := newTestApp("")
	files := map[string]string{
		"/ok.star":   "print(normtime.epoch + normtime.normday)\n",
		"/load.star": "load(\"normtime.star\", nt = \"normtime\")\nprint(nt.days(2).format(\"d\"))\n",
		"/bad.star":  "x = 1 // 0\n",
	}
	for name, src := range files {
		if err := afero.WriteFile(a.fs, name, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := execute(a, "exec", "/ok.star")
	if err != nil || got != "0000-00-01N00:00:00\n" {
		t.Errorf("exec ok.star = %q, %v", got, err)
	}
	got, err = execute(a, "exec", "/load.star")
	if err != nil || got != "2 normdays\n" {
		t.Errorf("exec load.star = %q, %v", got, err)
	}
	if _, err := execute(a, "exec", "/bad.star"); err == nil || !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("exec bad.star = %v", err)
	}
	if _, err := execute(a, "exec", "/missing.star"); err == nil {
		t.Error("exec of a missing file succeeded")
	}
}

func TestStdin(t *testing.T) {
	a := newTestApp("print(normtime.days(1).format('normdays', locale = 'de'))\n")
	got, err := execute(a)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1 Normtag\n" {
		t.Errorf("got %q", got)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.star")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, discardLogger(), path, func() { runs <- struct{}{} })
	}()

	wait := func(what string) {
		t.Helper()
		select {
		case <-runs:
		case <-time.After(10 * time.Second):
			t.Fatalf("no run %s", what)
		}
	}
	wait("at start")
	if err := os.WriteFile(path, []byte("x = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wait("after change")

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch = %v", err)
	}
}
