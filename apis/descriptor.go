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

package apis

// ViolationDescriptor is a flat, transport-friendly description of one
// contract violation.
//
// This type intentionally uses plain strings and ints (not the internal
// errno.Code / category.Category value types) so that it can live in the
// public "apis" layer and be marshaled to JSON or proto by adapters
// without importing the core packages.
type ViolationDescriptor struct {
	// Time is the violation timestamp in "YYYY-MM-DD HH:MM:SS" form,
	// local wall clock, second resolution — the same rendering the
	// diagnostic line uses.
	Time string `json:"time"`

	// File is the originating source file, basename only.
	File string `json:"file"`

	// Line is the source line of the failed check's call site.
	Line int `json:"line"`

	// Condition is the literal text of the failed condition.
	Condition string `json:"condition"`

	// Errno is the numeric system error code observed at violation time.
	// Zero means the goroutine saw no system error.
	Errno int `json:"errno"`

	// Phrase is the canonical phrase for Errno.
	Phrase string `json:"phrase"`

	// Message is the caller-supplied explanation of the violated contract.
	Message string `json:"message,omitempty"`

	// Category is the semantic tag of the failed check, e.g.
	// "memory.address" or "fs.exists". May be empty.
	Category string `json:"category,omitempty"`

	// Stack optionally carries a captured stack trace, one frame per line.
	// Empty unless the handler was configured to capture stacks.
	Stack string `json:"stack,omitempty"`
}
