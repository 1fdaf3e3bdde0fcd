// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go.normtime.net/normtime"
)

type deltaFlags struct {
	units            string
	sym, tex         bool
	roughly, generic bool
}

func (a *app) deltaCmd() *cobra.Command {
	var f deltaFlags
	cmd := &cobra.Command{
		Use:   "delta <seconds>",
		Short: "Format a duration given in seconds",
		Long: `Delta formats a duration given in seconds, by default as seconds.
With --units the duration is split into the listed units, e.g.
--units d,h,min. Names are translated into the configured locale
unless --sym selects the unit symbols.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			d, ok := normtime.NewDelta(secs, 0)
			if !ok {
				return fmt.Errorf("%d seconds out of range", secs)
			}
			s, err := a.formatDelta(d, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.units, "units", "", "comma separated units, e.g. normdays,h,min")
	cmd.Flags().BoolVar(&f.sym, "sym", false, "use unit symbols")
	cmd.Flags().BoolVar(&f.tex, "tex", false, "format for LaTeX")
	cmd.Flags().BoolVar(&f.roughly, "roughly", false, "describe the duration as a rough age")
	cmd.Flags().BoolVar(&f.generic, "generic", false, "with --roughly, do not presume a human being")
	return cmd
}

func (a *app) formatDelta(d normtime.Delta, f deltaFlags) (string, error) {
	if f.roughly {
		return a.locale.Roughly(d, a.tag, f.generic), nil
	}
	units, err := normtime.ParseUnits(f.units)
	if err != nil {
		return "", err
	}
	var opts normtime.TexOptions
	switch {
	case f.sym && f.tex && len(units) == 0:
		return d.LatexSym(opts), nil
	case f.sym && f.tex:
		return d.LatexSymUnit(units...), nil
	case f.sym && len(units) == 0:
		return d.SymbolString(), nil
	case f.sym:
		return d.SymbolUnitString(units...), nil
	case f.tex && len(units) == 0:
		return a.locale.LatexDelta(d, a.tag), nil
	case f.tex:
		return a.locale.LatexDeltaUnits(d, a.tag, units...), nil
	case len(units) == 0:
		return a.locale.Delta(d, a.tag), nil
	}
	return a.locale.DeltaUnits(d, a.tag, units...), nil
}
