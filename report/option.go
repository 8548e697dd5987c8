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

package report

import (
	"io"
	"time"

	"dirpx.dev/dbc/errno"
)

// Option configures a Handler at construction time. Handlers are immutable
// once built; all options are applied inside New.
type Option func(*Handler)

// WithSink replaces the diagnostic sink. The default sink writes the
// rendered line to standard error. A nil sink is ignored.
func WithSink(s Sink) Option {
	return func(h *Handler) {
		if s != nil {
			h.sink = s
		}
	}
}

// WithWriter is a convenience for WithSink over a raw io.Writer; the sink
// writes the rendered line and discards the structured record. A nil
// writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(h *Handler) {
		if w != nil {
			h.sink = writerSink{w: w}
		}
	}
}

// WithObserver appends a best-effort observer, invoked after the sink and
// before termination. Observers run in registration order.
func WithObserver(ob Observer) Option {
	return func(h *Handler) {
		if ob != nil {
			h.observers = append(h.observers, ob)
		}
	}
}

// WithExit replaces the termination function. The default is os.Exit with
// AbortExitCode.
//
// Replacing it does not create a recovery path: Fail still ends the
// calling goroutine with runtime.Goexit when the exit function returns.
// Intended for tests and for the demo walkthrough only.
func WithExit(exit func(int)) Option {
	return func(h *Handler) {
		if exit != nil {
			h.exit = exit
		}
	}
}

// WithClock replaces the wall-clock source used for the timestamp field.
// Intended for tests that need a deterministic diagnostic line.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithErrnoSource replaces the last-error reader. The default reads the
// calling goroutine's state from the syserr package.
func WithErrnoSource(lastErr func() errno.Code) Option {
	return func(h *Handler) {
		if lastErr != nil {
			h.lastErr = lastErr
		}
	}
}

// WithStack enables stack capture on the diagnostic record. Off by
// default: capturing a stack allocates, and the core failure path is kept
// allocation-free. Production crash pipelines that want stack entries in
// their collector payloads opt in.
func WithStack(enabled bool) Option {
	return func(h *Handler) {
		h.withStack = enabled
	}
}
