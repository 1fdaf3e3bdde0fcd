// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"go.normtime.net/i18n"
	"go.normtime.net/internal/config"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	fs         afero.Fs
	log        *logrus.Logger
	now        func() time.Time
	stdin      io.Reader
	isTerminal func() bool

	// Set by load before any command runs.
	cfg    config.Config
	tag    language.Tag
	locale *i18n.Locale
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "normtime",
		Short: "Normtime calendar tool",
		Long: `Normtime converts between normtime and the common era calendar,
formats normtime durations and runs normtime scripts.

Without arguments it starts an interactive session on a terminal and
executes a script from standard input otherwise.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.load,
		RunE:              a.runRootDefault,
	}

	root.PersistentFlags().String("config", "", "config file (default .normtime.toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.PersistentFlags().String("locale", "", "language of durations, e.g. de (default en)")

	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = a.v.BindPFlag("locale", root.PersistentFlags().Lookup("locale"))

	root.AddCommand(
		a.nowCmd(),
		a.convertCmd(),
		a.civilCmd(),
		a.parseCmd(),
		a.deltaCmd(),
		a.execCmd(),
		a.replCmd(),
		a.configCmd(),
	)
	return root
}

// load reads the configuration and the translations.
func (a *app) load(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, a.fs, path); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	if a.tag, err = cfg.Tag(); err != nil {
		return err
	}
	if a.locale, err = i18n.New(); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"config":       a.v.ConfigFileUsed(),
		"epoch_offset": cfg.EpochOffset,
		"locale":       a.tag,
	}).Debug("loaded configuration")
	return nil
}

// runRootDefault starts the REPL on a terminal and executes standard input
// otherwise.
func (a *app) runRootDefault(cmd *cobra.Command, args []string) error {
	if a.isTerminal() {
		return a.runREPL(cmd)
	}
	src, err := io.ReadAll(a.stdin)
	if err != nil {
		return err
	}
	return a.runScript(cmd, "<stdin>", src)
}
