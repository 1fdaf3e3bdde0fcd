// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The normtime command converts between normtime and the common era
// calendar and runs normtime scripts.
// With no arguments it starts a read-eval-print loop (REPL) on a terminal
// and executes standard input otherwise.
package main // import "go.normtime.net/cmd/normtime"

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	a := &app{
		v:     viper.New(),
		fs:    afero.NewOsFs(),
		log:   log,
		now:   time.Now,
		stdin: os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	if err := a.rootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
