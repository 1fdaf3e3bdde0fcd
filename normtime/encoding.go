// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// A Delta is encoded as its whole seconds, a plain integer. Time is encoded
// through its text form, so JSON and YAML carry it as a string.

// MarshalJSON implements json.Marshaler.
func (d Delta) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.Seconds(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts an integer number
// of seconds; null leaves d unchanged.
func (d *Delta) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	x, err := deltaFromString(string(data))
	if err != nil {
		return err
	}
	*d = x
	return nil
}

func deltaFromString(s string) (Delta, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Delta{}, fmt.Errorf("normtime: invalid delta %q: want an integer number of seconds", s)
	}
	return deltaFromInt(n)
}

func deltaFromInt(n int64) (Delta, error) {
	d, ok := NewDelta(n, 0)
	if !ok {
		return Delta{}, fmt.Errorf("normtime: delta of %d seconds is out of range", n)
	}
	return d, nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Delta) MarshalYAML() (interface{}, error) {
	return d.Seconds(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only integer scalars are
// accepted; floats are rejected rather than truncated.
func (d *Delta) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return fmt.Errorf("normtime: invalid delta: %v", err)
	}
	var n int64
	switch v := v.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt64 {
			return fmt.Errorf("normtime: delta of %d seconds is out of range", v)
		}
		n = int64(v)
	default:
		return fmt.Errorf("normtime: invalid delta %v: want an integer number of seconds", v)
	}
	x, err := deltaFromInt(n)
	if err != nil {
		return err
	}
	*d = x
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = x
	return nil
}
