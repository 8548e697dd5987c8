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

// Package adapter converts the core diagnostic record into the portable
// view types defined in dirpx.dev/dbc/apis.
package adapter

import (
	"dirpx.dev/dbc/apis"
	"dirpx.dev/dbc/report"
)

// timeLayout mirrors the diagnostic line's timestamp rendering so that a
// descriptor and the line it came from always agree on the time field.
const timeLayout = "2006-01-02 15:04:05"

// ToDescriptor converts a diagnostic record into a portable
// ViolationDescriptor.
//
// The descriptor is intended for structured logging, crash-report
// forwarding, or message bus propagation. It carries the same fields as
// the diagnostic line plus the category tag and the optional stack, all
// as plain strings.
func ToDescriptor(d report.Diagnostic) apis.ViolationDescriptor {
	return apis.ViolationDescriptor{
		Time:      d.Time.Format(timeLayout),
		File:      d.File,
		Line:      d.Line,
		Condition: d.Condition,
		Errno:     int(d.Code),
		Phrase:    d.Phrase,
		Message:   d.Message,
		Category:  string(d.Category),
		Stack:     string(d.Stack),
	}
}
