// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtimepb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"go.normtime.net/normtime"
)

func TestDuration(t *testing.T) {
	negHalf, _ := normtime.NewDelta(-2, 500_000_000) // -1.5s
	for _, test := range []struct {
		d    normtime.Delta
		want *durationpb.Duration
	}{
		{normtime.Zero, &durationpb.Duration{}},
		{normtime.Days(1), &durationpb.Duration{Seconds: 100_000}},
		{negHalf, &durationpb.Duration{Seconds: -1, Nanos: -500_000_000}},
	} {
		got := DurationOf(test.d)
		if diff := cmp.Diff(test.want, got, protocmp.Transform()); diff != "" {
			t.Errorf("DurationOf(%v) (-want +got):\n%s", test.d, diff)
		}
		if err := got.CheckValid(); err != nil {
			t.Errorf("DurationOf(%v) is invalid: %v", test.d, err)
		}
		back, err := ToDelta(got)
		if err != nil || back != test.d {
			t.Errorf("ToDelta(%v) = %#v, %v; want %#v", got, back, err, test.d)
		}
	}

	if err := DurationOf(normtime.MaxDelta).CheckValid(); err == nil {
		t.Error("DurationOf(MaxDelta) is valid")
	}
	if _, err := ToDelta(&durationpb.Duration{Seconds: 1, Nanos: -1}); err == nil {
		t.Error("ToDelta of mixed signs succeeded")
	}
	if got, err := ToDelta(durationpb.New(90 * time.Minute)); err != nil || got != normtime.Minutes(90) {
		t.Errorf("ToDelta(90m) = %v, %v", got, err)
	}
}

func TestTimestamp(t *testing.T) {
	zero := normtime.MustFromYMD(0, 0, 0)
	ts, err := TimestampOf(normtime.DefaultBridge, zero)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2068, 1, 1, 0, 0, 0, 0, time.UTC); !ts.AsTime().Equal(want) {
		t.Errorf("TimestampOf(zero) = %v, want %v", ts.AsTime(), want)
	}

	back, err := ToTime(normtime.DefaultBridge, timestamppb.New(time.Date(2068, 1, 2, 3, 46, 40, 999, time.UTC)))
	if err != nil {
		t.Fatal(err)
	}
	if want := zero.Add(normtime.Days(1)); back != want {
		t.Errorf("ToTime = %v, want %v", back, want)
	}

	if _, err := TimestampOf(normtime.DefaultBridge, normtime.MustFromYMD(10000, 0, 0)); err == nil {
		t.Error("TimestampOf(year 10000) succeeded")
	}
	if _, err := ToTime(normtime.DefaultBridge, &timestamppb.Timestamp{Nanos: -1}); err == nil {
		t.Error("ToTime of invalid timestamp succeeded")
	}

	unix := normtime.Bridge{}
	if got, err := ToTime(unix, &timestamppb.Timestamp{Seconds: 42}); err != nil || got.Seconds() != 42 {
		t.Errorf("ToTime with Unix bridge = %v, %v", got, err)
	}
}
