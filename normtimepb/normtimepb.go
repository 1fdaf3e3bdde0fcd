// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normtimepb converts between normtime values and the protocol
// buffer well-known types google.protobuf.Duration and
// google.protobuf.Timestamp.
//
// A Duration covers about ±10,000 earth years and a Timestamp the years
// 0001 through 9999, both far less than normtime; conversions into the
// protocol types report values they cannot hold.
package normtimepb // import "go.normtime.net/normtimepb"

import (
	"fmt"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"go.normtime.net/normtime"
)

// DurationOf returns d as a Duration. The result is invalid, as reported
// by its CheckValid method, if d exceeds the range of a Duration.
func DurationOf(d normtime.Delta) *durationpb.Duration {
	return &durationpb.Duration{
		Seconds: d.Seconds(),
		Nanos:   d.SubsecNanos(),
	}
}

// ToDelta converts a valid Duration.
func ToDelta(pb *durationpb.Duration) (normtime.Delta, error) {
	if err := pb.CheckValid(); err != nil {
		return normtime.Delta{}, err
	}
	secs, nanos := pb.GetSeconds(), pb.GetNanos()
	if nanos < 0 {
		secs--
		nanos += 1e9
	}
	d, ok := normtime.NewDelta(secs, uint32(nanos))
	if !ok {
		return normtime.Delta{}, fmt.Errorf("normtimepb: duration %v out of range", pb.AsDuration())
	}
	return d, nil
}

// TimestampOf returns t as a Timestamp using b, failing if t lies outside
// the years 0001 through 9999.
func TimestampOf(b normtime.Bridge, t normtime.Time) (*timestamppb.Timestamp, error) {
	unix, ok := b.Timestamp(t)
	if !ok {
		return nil, fmt.Errorf("normtimepb: %v has no Unix time", t)
	}
	ts := &timestamppb.Timestamp{Seconds: unix}
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("normtimepb: %v: %w", t, err)
	}
	return ts, nil
}

// ToTime converts a valid Timestamp using b. Nanoseconds are dropped.
func ToTime(b normtime.Bridge, ts *timestamppb.Timestamp) (normtime.Time, error) {
	if err := ts.CheckValid(); err != nil {
		return normtime.Time{}, err
	}
	t, ok := b.FromTimestamp(ts.GetSeconds())
	if !ok {
		return normtime.Time{}, fmt.Errorf("normtimepb: timestamp %d out of range", ts.GetSeconds())
	}
	return t, nil
}
