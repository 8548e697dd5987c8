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

// Package syserr models the process's "last observed system error" as
// goroutine-affine state with explicit accessors.
//
// C programs read errno, a thread-local value set by the most recent
// failing system call. Go surfaces the same information as error values
// instead, so this package makes the convention explicit: code that makes
// a failing system call records the error here (Record or Set), and the
// failure handler reads the calling goroutine's own value at violation
// time (Last).
//
// The store is keyed by goroutine, never shared: concurrent goroutines
// cannot misattribute each other's last error. The framework only reads
// this state; setting it is the caller's responsibility, exactly as with
// errno.
package syserr
