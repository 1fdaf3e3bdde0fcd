// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"fmt"

	"go.starlark.net/starlark"

	"go.normtime.net/starlarknormtime"
)

// MakeLoad returns a load function for scripts run by the REPL or the
// command line. Modules named in builtins are returned as they are. Any
// other module is executed as a file once; later loads share its globals.
// Loaded files see the bridge of the loading thread.
//
// Each function returned by MakeLoad has its own cache and is not safe for
// concurrent use.
func MakeLoad(builtins map[string]starlark.StringDict) func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	l := &loader{builtins: builtins, cache: make(map[string]*loaded)}
	return l.load
}

type loaded struct {
	globals starlark.StringDict
	err     error
}

type loader struct {
	builtins map[string]starlark.StringDict
	cache    map[string]*loaded // a nil entry marks a load in progress
}

func (l *loader) load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	if dict, ok := l.builtins[module]; ok {
		return dict, nil
	}
	e, seen := l.cache[module]
	if seen && e == nil {
		return nil, fmt.Errorf("cycle in load graph at %s", module)
	}
	if e == nil {
		l.cache[module] = nil
		child := &starlark.Thread{Name: "load " + module, Load: thread.Load, Print: thread.Print}
		starlarknormtime.SetBridge(child, starlarknormtime.BridgeOf(thread))
		globals, err := starlark.ExecFile(child, module, nil, nil)
		e = &loaded{globals, err}
		l.cache[module] = e
	}
	return e.globals, e.err
}
