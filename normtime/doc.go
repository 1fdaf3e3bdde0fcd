// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package normtime implements the normtime calendar: an absolute point in time
(Time) and a signed duration (Delta) measured in units that are flat
multiples of the SI second.

	1 normday   := 100 ks (ca. 1.16 earth days)
	1 normweek  :=   1 Ms (10 normdays)
	1 normmonth :=   3 Ms (30 normdays)
	1 normyear  :=  30 Ms (10 normmonths, ca. 347 earth days)

Weeks do not nest into months. The zero point 0000-00-00N00:00:00 is
2068-01-01T00:00:00 in the common era calendar; months and days are
counted from 0.

	outline: normtime
	  types:
	    Unit
	      Year Month Week Day Hour Minute Second
	    Delta
	      constructors: NewDelta Seconds Minutes Hours Days Weeks Months Years EarthYears
	      operators:
	        CheckedAdd CheckedSub CheckedMul CheckedDiv (report overflow)
	        Add Sub Mul Div (panic on overflow)
	      views: AsUnits String UnitString SymbolString SymbolUnitString Roughly
	    Time
	      constructors: FromYMD FromTimestamp FromDateTime FromDate FromStdTime Parse
	      fields: Year Month Day Hour Minute Second
	      operators: Add Sub WithYear CheckedWithYear AndHMS
	      text: "[-]YYYY-MM-DDNhh:mm:ss"

Arithmetic that cannot be proven in range should use the Checked methods.
The plain methods treat overflow as a programming error and panic.
*/
package normtime // import "go.normtime.net/normtime"
