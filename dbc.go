/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dbc

import (
	"runtime"
	"sync/atomic"

	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/report"
)

// handler holds the process-wide failure handler. Swappable so that tests
// and the demo walkthrough can intercept termination; nil means "build the
// default on first use".
var handler atomic.Pointer[report.Handler]

// Handler returns the current failure handler, constructing the default
// (stderr sink, os.Exit termination) on first use.
func Handler() *report.Handler {
	if h := handler.Load(); h != nil {
		return h
	}
	h := report.New()
	// Another goroutine may install concurrently; first store wins.
	if handler.CompareAndSwap(nil, h) {
		return h
	}
	return handler.Load()
}

// SetHandler installs h as the process-wide failure handler. Passing nil
// restores the default. Intended for program startup, tests, and the demo
// walkthrough; checks already in flight keep the handler they loaded.
func SetHandler(h *report.Handler) {
	handler.Store(h)
}

// check is the single primitive behind every named check. depth 2 skips
// check itself and the exported wrapper, so the diagnostic points at the
// user's call site. Every exported check must sit exactly one frame above
// this function.
func check(ok bool, cond, msg string, cat category.Category) {
	if ok {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	Handler().Fail(cond, msg, cat, file, line)
}

// Check asserts ok under an explicit category. This is the extension
// point: new category families are added as thin wrappers over Check (or
// as direct calls with a caller-defined category) without any change to
// the failure handler's contract.
//
// cond is the literal source text of the condition; msg explains the
// violated assumption. Check does not return when ok is false.
func Check(ok bool, cond, msg string, cat category.Category) {
	check(ok, cond, msg, cat)
}

// Require asserts a general precondition: an assumption about inputs and
// state on entry. Does not return on failure.
func Require(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Precondition)
}

// Ensure asserts a general postcondition: a guarantee about results and
// state on exit. Does not return on failure.
func Ensure(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Postcondition)
}

// Invariant asserts an object or subsystem invariant. Does not return on
// failure.
func Invariant(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Invariant)
}
