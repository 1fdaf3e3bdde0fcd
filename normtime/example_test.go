// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime_test

import (
	"fmt"
	"log"

	"cloud.google.com/go/civil"

	"go.normtime.net/normtime"
)

func ExampleFromYMD() {
	t, ok := normtime.FromYMD(123, 4, 5)
	if !ok {
		log.Fatal("invalid date")
	}
	fmt.Println(t.AndHMS(6, 7, 8))

	// Output:
	// 0123-04-05N06:07:08
}

func ExampleParse() {
	t, err := normtime.Parse("+12345-6-7N8:9:10")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(t)
	fmt.Println(t.Year(), t.Month(), t.Day())

	_, err = normtime.Parse("foo")
	fmt.Println(err)

	// Output:
	// 12345-06-07N08:09:10
	// 12345 6 7
	// could not parse into normtime: "foo"
}

func ExampleDelta_AsUnits() {
	d := normtime.Seconds(90_005_000)
	for _, a := range d.AsUnits(normtime.Day, normtime.Hour, normtime.Minute) {
		fmt.Println(a.Count, a.Unit)
	}
	fmt.Println(d.UnitString(normtime.Day, normtime.Hour, normtime.Minute))
	fmt.Println(d.SymbolUnitString(normtime.Day, normtime.Hour))

	// Output:
	// 900 normdays
	// 1 hours
	// 23 minutes
	// 900 normdays 1 hour 23 minutes
	// 900 d 1 h
}

func ExampleDelta_CheckedAdd() {
	d, _ := normtime.NewDelta(9223372036854775, 0)
	_, ok := d.CheckedAdd(normtime.Seconds(1))
	fmt.Println(ok)

	// Output:
	// false
}

func ExampleDelta_Roughly() {
	age := normtime.Years(24).Add(normtime.Months(3))
	fmt.Println(age.Roughly(false))
	fmt.Println(normtime.Years(1).Roughly(false), "/", normtime.Years(1).Roughly(true))

	// Output:
	// mid 20s
	// toddler / very young
}

func ExampleTime_DateTime() {
	zero := normtime.MustFromYMD(0, 0, 0)
	dt, _ := zero.DateTime()
	fmt.Println(dt)

	next, _ := zero.Add(normtime.Days(1)).DateTime()
	fmt.Println(next)

	fmt.Println(normtime.FromDate(civil.Date{Year: 2100, Month: 1, Day: 1}))

	// Output:
	// 2068-01-01T00:00:00
	// 2068-01-02T03:46:40
	// 0033-06-18N12:00:00
}
