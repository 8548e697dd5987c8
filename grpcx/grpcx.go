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

// Package grpcx projects contract violation diagnostics into gRPC status
// values for crash-report collectors.
//
// The process that violated a contract is gone by the time anyone reads
// the diagnostic; this package serves the other side of that pipeline —
// ingestion services that accept forwarded diagnostics and need to answer
// their own callers with a canonical *status.Status carrying structured
// detail.
package grpcx

import (
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"dirpx.dev/dbc/apis"
	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"dirpx.dev/dbc/report"
)

// Domain is the value placed in ErrorInfo.Domain for diagnostics produced
// by this framework.
const Domain = "dbc.dirpx.dev"

// fallbackReason is used in ErrorInfo.Reason when the diagnostic carries
// no category.
const fallbackReason = "CONTRACT_VIOLATION"

// StatusFromDiagnostic maps a diagnostic record to a *status.Status using
// the provided mapper, attaching an errdetails.ErrorInfo with the
// diagnostic's fields and, when a stack was captured, an
// errdetails.DebugInfo.
//
// If detail attachment fails (it only can for marshaling reasons), the
// bare status is returned rather than nothing — the status code itself
// must always survive.
func StatusFromDiagnostic(m apis.Mapper, d report.Diagnostic) *status.Status {
	st := m.Status(d.Code, d.Category)
	s := status.New(st.GRPC, d.Message)

	info := &errdetails.ErrorInfo{
		Reason: reasonFor(d.Category),
		Domain: Domain,
		Metadata: map[string]string{
			"file":      d.File,
			"line":      strconv.Itoa(d.Line),
			"condition": d.Condition,
			"errno":     strconv.Itoa(int(d.Code)),
			"phrase":    d.Phrase,
			"category":  string(d.Category),
		},
	}

	if len(d.Stack) > 0 {
		debug := &errdetails.DebugInfo{
			Detail:       strings.TrimSuffix(report.Line(d), "\n"),
			StackEntries: strings.Split(strings.TrimRight(string(d.Stack), "\n"), "\n"),
		}
		if withDetails, err := s.WithDetails(info, debug); err == nil {
			return withDetails
		}
		return s
	}

	if withDetails, err := s.WithDetails(info); err == nil {
		return withDetails
	}
	return s
}

// StatusFromDescriptor is the descriptor-side variant of
// StatusFromDiagnostic, for collectors that receive the portable view
// rather than the in-process record.
func StatusFromDescriptor(m apis.Mapper, v apis.ViolationDescriptor) *status.Status {
	cat := category.Category(v.Category)
	st := m.Status(errno.Code(v.Errno), cat)
	s := status.New(st.GRPC, v.Message)

	info := &errdetails.ErrorInfo{
		Reason: reasonFor(cat),
		Domain: Domain,
		Metadata: map[string]string{
			"file":      v.File,
			"line":      strconv.Itoa(v.Line),
			"condition": v.Condition,
			"errno":     strconv.Itoa(v.Errno),
			"phrase":    v.Phrase,
			"category":  v.Category,
		},
	}
	if withDetails, err := s.WithDetails(info); err == nil {
		return withDetails
	}
	return s
}

// reasonFor renders a category as an UPPER_SNAKE_CASE ErrorInfo reason:
// "fs.exists" becomes "FS_EXISTS". The empty category becomes
// CONTRACT_VIOLATION.
func reasonFor(cat category.Category) string {
	if cat == category.Empty {
		return fallbackReason
	}
	r := strings.ReplaceAll(string(cat), ".", "_")
	return strings.ToUpper(r)
}
