// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"go.normtime.net/normtime"
)

func (a *app) nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current normtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			t, ok := a.cfg.Bridge().CheckedFromStdTime(now)
			if !ok {
				return fmt.Errorf("%s is out of range for epoch offset %d", now.Format(time.RFC3339), a.cfg.EpochOffset)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <time>",
		Short: "Convert a common era time to normtime",
		Long: `Convert converts a common era time to normtime. The time is given in
RFC 3339 format, e.g. 2068-01-01T12:00:00Z, as a local date and time
without zone, e.g. 2068-01-01T12:00:00, or as a date, e.g. 2068-01-01.
Times without zone are taken as UTC.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.parseCivil(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func (a *app) parseCivil(s string) (normtime.Time, error) {
	var x time.Time
	if rfc, err := time.Parse(time.RFC3339, s); err == nil {
		x = rfc
	} else if dt, err := civil.ParseDateTime(s); err == nil {
		x = dt.In(time.UTC)
	} else if d, err := civil.ParseDate(s); err == nil {
		x = d.In(time.UTC)
	} else {
		return normtime.Time{}, fmt.Errorf("cannot parse %q as a common era time", s)
	}
	t, ok := a.cfg.Bridge().CheckedFromStdTime(x)
	if !ok {
		return normtime.Time{}, fmt.Errorf("%s is out of range for epoch offset %d", s, a.cfg.EpochOffset)
	}
	return t, nil
}

func (a *app) civilCmd() *cobra.Command {
	var dateOnly bool
	cmd := &cobra.Command{
		Use:   "civil <normtime>",
		Short: "Convert a normtime to the common era calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := normtime.Parse(args[0])
			if err != nil {
				return err
			}
			b := a.cfg.Bridge()
			if dateOnly {
				d, ok := b.Date(t)
				if !ok {
					return fmt.Errorf("%s has no common era date", t)
				}
				fmt.Fprintln(cmd.OutOrStdout(), d)
				return nil
			}
			x, ok := b.StdTime(t)
			if !ok {
				return fmt.Errorf("%s has no common era time", t)
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dateOnly, "date", false, "print the date only")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <normtime>",
		Short: "Print the fields of a normtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := normtime.Parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "normtime: %s\n", t)
			fmt.Fprintf(w, "year:     %d\n", t.Year())
			fmt.Fprintf(w, "month:    %d\n", t.Month())
			fmt.Fprintf(w, "day:      %d\n", t.Day())
			fmt.Fprintf(w, "hour:     %d\n", t.Hour())
			fmt.Fprintf(w, "minute:   %d\n", t.Minute())
			fmt.Fprintf(w, "second:   %d\n", t.Second())
			fmt.Fprintf(w, "seconds:  %d\n", t.Seconds())
			return nil
		},
	}
}
