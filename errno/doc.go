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

// Package errno defines the taxonomy of standard operating-system error
// codes consulted by the failure handler, and the lookup that turns a
// numeric code into a stable human-readable phrase.
//
// Codes are meant to be:
//
//   - numeric and fixed at compile time;
//   - read-only shared state, safe for concurrent use without locking;
//   - total under lookup: every value, defined or not, resolves to a
//     non-empty phrase.
//
// The constants are organized into four historical bands (early Unix,
// structural extensions, networking era, modern POSIX). The banding is
// documentation only; it has no effect on lookup behavior.
//
// Phrase resolution runs during failure handling, when the process may
// already be degraded, so it is a bounded array access with no allocation
// and no failure path.
package errno
