// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package starlarknormtime defines the Starlark module normtime, which makes
normtime values available to Starlark programs.

	outline: normtime
	  normtime defines normtime primitives for starlark
	  path: normtime
	  functions:
	    time(year=0, month=0, day=0, hour=0, minute=0, second=0) time
	      a normtime; month 0-9 and day 0-29 are checked, the clock is not
	    parse_time(string) time
	      parse "[+-]Y-M-D" or "[+-]Y-M-DNh:m:s"
	    from_timestamp(int) time
	      the normtime of a Unix timestamp
	    from_std(string, format="2006-01-02T15:04:05Z07:00") time
	      the normtime of a common era time in Go layout notation
	    delta(seconds=0, nanoseconds=0) delta
	      a duration
	    seconds(int) minutes(int) hours(int) days(int) weeks(int)
	    months(int) years(int) earth_years(int) delta
	      a multiple of the unit
	    parse_unit(string) string
	      the canonical name of a unit
	    units() list
	      all unit names, coarsest first
	    zero delta
	    epoch time
	      the zero point, 0000-00-00N00:00:00
	    normyear normmonth normweek normday hour minute second delta
	      one of the unit

	  types:
	    delta
	      fields:
	        seconds int
	        nanoseconds int
	        minutes hours days weeks months years int
	      methods:
	        as_units(*units) list of (int, string)
	        format(*units, sym=False, tex=False, locale="") string
	        roughly(generic=False, locale="") string
	        abs() delta
	      operators:
	        delta + delta = delta
	        delta - delta = delta
	        delta * int = delta
	        int * delta = delta
	        delta / int = delta
	        delta // int = delta
	        delta / delta = float
	        delta // delta = int
	        -delta = delta
	        +delta = delta
	        delta == delta = boolean
	        delta < delta = boolean
	    time
	      fields:
	        year month day hour minute second int
	        seconds int
	      methods:
	        with_year(int) time
	        and_hms(hour, minute, second) time
	        date() string
	        clock() string
	        timestamp() int
	        to_std(format="2006-01-02T15:04:05Z07:00") string
	        latex() string
	      operators:
	        time + delta = time
	        delta + time = time
	        time - delta = time
	        time - time = delta
	        time == time = boolean
	        time < time = boolean

Arithmetic that leaves the range of a value fails with an error.

Conversions to and from the common era calendar use the bridge of the
thread, see SetBridge; localized text uses the locale of the thread, see
SetLocale.
*/
package starlarknormtime // import "go.normtime.net/starlarknormtime"
