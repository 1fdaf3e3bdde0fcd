// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v2"
)

type record struct {
	Start    Time  `json:"start" yaml:"start"`
	Duration Delta `json:"duration" yaml:"duration"`
}

func TestJSON(t *testing.T) {
	r := record{Start: MustFromYMD(0, 0, 1), Duration: Days(1)}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"start":"0000-00-01N00:00:00","duration":100000}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var back record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != r {
		t.Errorf("Unmarshal = %+v, want %+v", back, r)
	}

	// Fractions of a second are not encoded.
	frac, _ := NewDelta(-2, 500_000_000)
	if data, _ := json.Marshal(frac); string(data) != "-1" {
		t.Errorf("Marshal(-1.5s) = %s", data)
	}
}

func TestDeltaUnmarshalJSON(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-42", -42},
		{"9223372036854775", 9223372036854775},
		{"-9223372036854775", -9223372036854775},
	} {
		var d Delta
		if err := json.Unmarshal([]byte(test.in), &d); err != nil {
			t.Errorf("Unmarshal(%s): %v", test.in, err)
			continue
		}
		if d != Seconds(test.want) {
			t.Errorf("Unmarshal(%s) = %v", test.in, d)
		}
	}

	for _, in := range []string{
		"1.5",
		"1e3",
		`"1"`,
		"true",
		"9223372036854776",
		"9223372036854775807",
		"18446744073709551615",
	} {
		var d Delta
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("Unmarshal(%s) = %v, want error", in, d)
		}
	}

	d := Seconds(7)
	if err := json.Unmarshal([]byte("null"), &d); err != nil || d != Seconds(7) {
		t.Errorf("Unmarshal(null) = %v, %v", d, err)
	}
}

func TestTimeUnmarshalJSONError(t *testing.T) {
	var r record
	if err := json.Unmarshal([]byte(`{"start":"foo"}`), &r); err == nil {
		t.Error("Unmarshal of a bad time succeeded")
	}
}

func TestDeltaYAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]Delta{"d": Minutes(2)})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "d: 120\n" {
		t.Errorf("Marshal = %q", got)
	}

	var m map[string]Delta
	if err := yaml.Unmarshal([]byte("a: 5\nb: -100000\n"), &m); err != nil {
		t.Fatal(err)
	}
	if m["a"] != Seconds(5) || m["b"] != Days(-1) {
		t.Errorf("Unmarshal = %v", m)
	}

	for _, in := range []string{"a: x\n", "a: 1.5\n", "a: 2.0\n", "a: 1e3\n", "a: 9223372036854775807\n", "a: 18446744073709551615\n", "a: [1]\n"} {
		if err := yaml.Unmarshal([]byte(in), &m); err == nil {
			t.Errorf("Unmarshal(%q) succeeded", in)
		}
	}
}
