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

// Package dbc is a Design-by-Contract assertion framework for low-level
// programs: a uniform way to state preconditions, postconditions, and
// invariants across semantic domains (memory, filesystem, process,
// network, encoding, permissions), with violations reported as one
// structured diagnostic line tied to the operating system's standard
// error-code vocabulary.
//
// Every check in this package is a thin semantic alias over one shared
// primitive: if the condition holds, the check is a no-op; if it fails,
// control transfers to the failure handler, which renders
//
//	[YYYY-MM-DD HH:MM:SS] <file>:<line>|<condition>|<errno>(<phrase>)|<message>
//
// to standard error and terminates the process. There is no return path
// from a failed check — violations are fatal by design, never recoverable.
// Checks are meant to stay in production code paths; a passing check costs
// a branch.
//
// Condition text is threaded explicitly (Go has no macro stringification),
// and the call site's file and line are captured via runtime.Caller:
//
//	f, err := os.Open(path)
//	syserr.Record(err)
//	dbc.RequireExists(err == nil, "err == nil", "required file does not exist")
//
// The distinct check names exist to make call sites self-documenting and
// greppable by domain; they all reduce to assert-or-abort at runtime.
package dbc
