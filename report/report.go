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
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"dirpx.dev/dbc/syserr"
)

// AbortExitCode is the process exit status used on violation: 128+SIGABRT,
// the status a C abort() produces under a POSIX shell. Crash-reporting
// tooling can key on it.
const AbortExitCode = 134

// timeLayout is the wall-clock format of the diagnostic timestamp field.
// Local time, second resolution.
const timeLayout = "2006-01-02 15:04:05"

// lineBufSize is the stack buffer size for rendering one diagnostic line.
// Lines longer than this spill into a heap-grown slice; normal diagnostics
// fit comfortably.
const lineBufSize = 512

// Diagnostic is the record assembled at the moment of a violation.
//
// It is stack-local and transient: created at the instant of violation,
// serialized to the diagnostic stream, handed to observers, and never
// persisted — the process terminates in the same operation.
type Diagnostic struct {
	// Time is the local wall-clock time of the violation, second resolution.
	Time time.Time

	// File is the originating source file, reduced to its final path
	// component (no directory prefix, either slash convention stripped).
	File string

	// Line is the source line of the failed check's call site.
	Line int

	// Condition is the literal text of the failed condition.
	Condition string

	// Code is the calling goroutine's last observed system error code.
	Code errno.Code

	// Phrase is the canonical phrase for Code, resolved via the taxonomy.
	Phrase string

	// Message is the caller-supplied explanation of the violated contract.
	Message string

	// Category tags the semantic domain of the failed check. It is not part
	// of the diagnostic line; adapters and observers use it.
	Category category.Category

	// Stack holds a captured stack trace when the handler was built with
	// WithStack. Nil otherwise.
	Stack []byte
}

// Sink receives the finished diagnostic. Emit is called exactly once per
// violation, before termination. line is the rendered, newline-terminated
// diagnostic line; d carries the structured fields for sinks that want
// them. Emit must not invoke contract checks.
type Sink interface {
	Emit(d Diagnostic, line []byte)
}

// Observer is a best-effort hook invoked after the sink and before
// termination (span events, crash-report forwarding). A panicking observer
// is swallowed; termination is never skipped.
type Observer func(d Diagnostic)

// writerSink adapts a raw io.Writer to the Sink interface.
type writerSink struct {
	w io.Writer
}

func (s writerSink) Emit(_ Diagnostic, line []byte) {
	_, _ = s.w.Write(line)
}

// Handler is the configured failure handler.
//
// A Handler is immutable after New and safe for concurrent use: if several
// goroutines violate contracts at once, each independently completes its
// own diagnostic-then-terminate sequence. Since termination ends the whole
// process, only one diagnostic is guaranteed to be observed; that race is
// accepted.
type Handler struct {
	sink      Sink
	observers []Observer
	exit      func(int)
	now       func() time.Time
	lastErr   func() errno.Code
	withStack bool
}

// New constructs a Handler. With no options the handler writes to
// standard error, reads the calling goroutine's last error from syserr,
// and terminates the process with AbortExitCode.
func New(opts ...Option) *Handler {
	h := &Handler{
		sink:    writerSink{w: os.Stderr},
		exit:    os.Exit,
		now:     time.Now,
		lastErr: syserr.Last,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Fail assembles the diagnostic for a failed check, emits it, and
// terminates. It never returns.
//
// The sequence is strict: render, sink, observers, exit. The diagnostic
// write is fully sequenced before termination is initiated. Sink and
// observer panics are swallowed so that no failure of the reporting path
// can suppress termination. If the exit function returns (tests, demo),
// the calling goroutine is still ended with runtime.Goexit.
func (h *Handler) Fail(cond, msg string, cat category.Category, file string, line int) {
	code := h.lastErr()

	d := Diagnostic{
		Time:      h.now(),
		File:      Basename(file),
		Line:      line,
		Condition: cond,
		Code:      code,
		Phrase:    errno.Phrase(code),
		Message:   msg,
		Category:  cat,
	}
	if h.withStack {
		d.Stack = debug.Stack()
	}

	var buf [lineBufSize]byte
	rendered := AppendLine(buf[:0], d)

	emit(h.sink, d, rendered)
	for _, ob := range h.observers {
		observe(ob, d)
	}

	h.exit(AbortExitCode)
	runtime.Goexit()
}

// emit calls the sink, swallowing any panic. A broken diagnostic stream
// must not prevent termination.
func emit(s Sink, d Diagnostic, line []byte) {
	defer func() { _ = recover() }()
	s.Emit(d, line)
}

// observe calls one observer, swallowing any panic.
func observe(ob Observer, d Diagnostic) {
	defer func() { _ = recover() }()
	ob(d)
}

// AppendLine renders the diagnostic line into dst and returns the extended
// slice. The format is fixed:
//
//	[YYYY-MM-DD HH:MM:SS] <basename>:<line>|<condition>|<code>(<phrase>)|<message>
//
// terminated by a newline. Fields are not sanitized; callers are
// responsible for keeping unescaped pipes out of their messages. When dst
// has sufficient capacity, no allocation occurs.
func AppendLine(dst []byte, d Diagnostic) []byte {
	dst = append(dst, '[')
	dst = d.Time.AppendFormat(dst, timeLayout)
	dst = append(dst, "] "...)
	dst = append(dst, d.File...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(d.Line), 10)
	dst = append(dst, '|')
	dst = append(dst, d.Condition...)
	dst = append(dst, '|')
	dst = strconv.AppendInt(dst, int64(d.Code), 10)
	dst = append(dst, '(')
	dst = append(dst, d.Phrase...)
	dst = append(dst, ")|"...)
	dst = append(dst, d.Message...)
	dst = append(dst, '\n')
	return dst
}

// Line renders the diagnostic line into a fresh string. Convenience for
// sinks and tests; the handler itself uses AppendLine with a stack buffer.
func Line(d Diagnostic) string {
	return string(AppendLine(nil, d))
}

// Basename reduces a source path to its final component, stripping
// everything up to and including the last directory separator of either
// convention (forward or backward slash).
func Basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '\\'); i >= 0 {
		path = path[i+1:]
	}
	return path
}
