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

// Package zapx provides a report.Sink backed by a zap logger, for hosts
// whose log pipeline already runs through zap.
//
// The sink logs the structured diagnostic fields at Fatal-adjacent
// severity without taking over termination — sequencing stays with the
// failure handler. Hosts that need the raw greppable line as well should
// keep the default stderr sink and register the zap sink through a tee.
package zapx

import (
	"go.uber.org/zap"

	"dirpx.dev/dbc/report"
)

// Sink adapts a *zap.Logger to the report.Sink interface.
type Sink struct {
	logger *zap.Logger
}

// NewSink wraps logger into a report.Sink. The logger is used as given;
// callers who want sampling disabled or a dedicated core for crash lines
// configure that before wrapping. A nil logger yields a no-op sink.
func NewSink(logger *zap.Logger) Sink {
	return Sink{logger: logger}
}

// Emit logs the diagnostic at Error level with one field per diagnostic
// component, plus the pre-rendered line for pipelines that index on it.
// Emit must not fail: zap write errors are ignored, and the handler
// terminates regardless.
func (s Sink) Emit(d report.Diagnostic, line []byte) {
	if s.logger == nil {
		return
	}

	fields := []zap.Field{
		zap.String("file", d.File),
		zap.Int("line", d.Line),
		zap.String("condition", d.Condition),
		zap.Int("errno", int(d.Code)),
		zap.String("phrase", d.Phrase),
		zap.String("category", string(d.Category)),
		zap.ByteString("diagnostic", line),
	}
	if len(d.Stack) > 0 {
		fields = append(fields, zap.ByteString("stack", d.Stack))
	}

	s.logger.Error("contract violation: "+d.Message, fields...)

	// The process is about to terminate abnormally; make sure buffered
	// entries reach their destination first.
	_ = s.logger.Sync()
}

// Tee returns a sink that forwards each diagnostic to every given sink in
// order. Panics in one sink do not stop the others; the failure handler
// already guards the overall Emit call, and partial delivery beats none.
func Tee(sinks ...report.Sink) report.Sink {
	return teeSink{sinks: sinks}
}

type teeSink struct {
	sinks []report.Sink
}

func (t teeSink) Emit(d report.Diagnostic, line []byte) {
	for _, s := range t.sinks {
		func() {
			defer func() { _ = recover() }()
			s.Emit(d, line)
		}()
	}
}
