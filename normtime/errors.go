// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtime

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is matched by every *UnitError.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("cannot parse normtime")
)

// A UnitError reports a string that names no Unit.
type UnitError struct {
	Input string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("cannot parse into unit: %q", e.Input)
}

func (e *UnitError) Is(target error) bool { return target == ErrUnknownUnit }

// A ParseError reports a string that is not a valid normtime.
// Err holds the underlying cause, typically a *strconv.NumError,
// and is nil for structural errors.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse into normtime: %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("could not parse into normtime: %q", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
