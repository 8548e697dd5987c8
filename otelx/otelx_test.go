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

package otelx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"dirpx.dev/dbc/report"
)

func startSpan(t *testing.T) (trace.Span, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("dbc/otelx").Start(context.Background(), "op")
	return span, sr
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestObserver_RecordsViolationEvent(t *testing.T) {
	span, sr := startSpan(t)

	ob := Observer(span)
	ob(report.Diagnostic{
		File:      "main.go",
		Line:      42,
		Condition: "zero",
		Code:      errno.ENOENT,
		Phrase:    errno.Phrase(errno.ENOENT),
		Message:   "General pre-condition failed",
		Category:  category.Precondition,
	})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	s := spans[0]

	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Contains(t, s.Status().Description, "general.precondition")

	var violation, errEvent bool
	for _, ev := range s.Events() {
		switch ev.Name {
		case EventName:
			violation = true
			m := attrMap(ev.Attributes)
			assert.Equal(t, "main.go", m["violation.file"].AsString())
			assert.Equal(t, int64(42), m["violation.line"].AsInt64())
			assert.Equal(t, "zero", m["violation.condition"].AsString())
			assert.Equal(t, int64(2), m["violation.errno"].AsInt64())
			assert.Equal(t, "No such file or directory", m["violation.phrase"].AsString())
			assert.Equal(t, "General pre-condition failed", m["violation.message"].AsString())
			assert.Equal(t, "general.precondition", m["violation.category"].AsString())
			assert.NotContains(t, m, attribute.Key("violation.stack"))
		case "exception":
			errEvent = true
		}
	}
	assert.True(t, violation, "missing %s event", EventName)
	assert.True(t, errEvent, "missing recorded error event")
}

func TestObserver_StackAttribute(t *testing.T) {
	span, sr := startSpan(t)

	Observer(span)(report.Diagnostic{
		Condition: "ok",
		Stack:     []byte("goroutine 1 [running]:"),
	})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	for _, ev := range spans[0].Events() {
		if ev.Name == EventName {
			m := attrMap(ev.Attributes)
			assert.Equal(t, "goroutine 1 [running]:", m["violation.stack"].AsString())
			return
		}
	}
	t.Fatalf("missing %s event", EventName)
}

func TestObserver_SkipsEndedSpan(t *testing.T) {
	span, sr := startSpan(t)
	span.End()

	// A span that already ended is no longer recording; the observer must
	// leave it untouched.
	Observer(span)(report.Diagnostic{Condition: "ok"})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Empty(t, spans[0].Events())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestObserver_NilSpan(t *testing.T) {
	// Must not panic.
	Observer(nil)(report.Diagnostic{Condition: "ok"})
}
