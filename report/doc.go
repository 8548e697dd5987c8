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

// Package report implements the failure handler: it assembles the
// diagnostic record for a contract violation, writes one structured line
// to the diagnostic stream, and terminates the process.
//
// The diagnostic line format is fixed:
//
//	[YYYY-MM-DD HH:MM:SS] <basename>:<line>|<condition>|<code>(<phrase>)|<message>
//
// This is the most safety-critical path in the framework. It runs when the
// process may already be corrupted or resource-exhausted, so the line is
// rendered into a stack buffer with no dynamic allocation, the system
// error phrase is a bounded table lookup, and nothing in the handler
// recurses into another contract check. Sink and observer failures are
// swallowed: a broken diagnostic stream degrades the report, never the
// termination.
//
// Termination is unconditional. Even when the exit function is replaced
// (tests, the demo walkthrough), Fail still ends the calling goroutine
// with runtime.Goexit, so there is no code path that continues past a
// violated invariant.
package report
