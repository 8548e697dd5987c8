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

// Package category defines the semantic tags that document why a check
// exists, independent of its boolean outcome.
//
// A category answers "which assumption domain failed?" — memory, numeric
// range, filesystem, process state, network, encoding, access — so that a
// diagnostic line or a code review can distinguish "this failed because of
// a filesystem assumption" from "this failed because of a numeric range
// assumption". Categories carry no state and have no effect on runtime
// semantics; every check reduces to assert-or-abort.
//
// Categories are two-segment, dot-separated identifiers:
//
//   - "general.precondition"
//   - "memory.address"
//   - "fs.exists"
//   - "net.timeout"
//
// The first segment is the family; the second names the specific
// assumption. The catalog in this package is closed but extensible: new
// categories may be added without altering the failure handler's contract.
package category
