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

// Package otelx records contract violations on OpenTelemetry spans.
//
// A violation terminates the process, so the span will never end
// cleanly; the point of the event is to get the diagnostic attributes
// onto whatever the span processor manages to export before the process
// dies. Hosts using a batching processor should prefer an exporter with
// a short flush interval on the crash path.
package otelx

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dbc/report"
)

// EventName is the span event name used for contract violations.
const EventName = "contract.violation"

// Observer returns a report.Observer that records each diagnostic as an
// event, an error, and an error status on span. Spans that are not
// recording are skipped. The observer is best-effort by the failure
// handler's contract: it can never suppress termination.
func Observer(span trace.Span) report.Observer {
	return func(d report.Diagnostic) {
		record(span, d)
	}
}

// record puts the diagnostic onto one span.
func record(span trace.Span, d report.Diagnostic) {
	if span == nil || !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("violation.file", d.File),
		attribute.Int("violation.line", d.Line),
		attribute.String("violation.condition", d.Condition),
		attribute.Int("violation.errno", int(d.Code)),
		attribute.String("violation.phrase", d.Phrase),
		attribute.String("violation.message", d.Message),
	}
	if d.Category != "" {
		attrs = append(attrs, attribute.String("violation.category", string(d.Category)))
	}
	if len(d.Stack) > 0 {
		attrs = append(attrs, attribute.String("violation.stack", string(d.Stack)))
	}

	span.AddEvent(EventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("contract violation: %s", d.Message))
	span.SetStatus(codes.Error, "contract violation: "+string(d.Category))
}
