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

package syserr

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"

	"dirpx.dev/dbc/errno"
)

// last holds the per-goroutine last-error state. Entries are written by
// Set/Record on the owning goroutine and read by Last on the same
// goroutine; sync.Map keeps cross-goroutine writes from contending.
var last sync.Map // goroutine id → errno.Code

// Set records c as the calling goroutine's last observed system error.
// Setting errno.Success is equivalent to Clear in effect but keeps the
// entry, matching the "errno is never reset by success" convention only
// when callers choose to leave it alone.
func Set(c errno.Code) {
	last.Store(gid(), c)
}

// Record extracts a system error code from err's chain and, if one is
// present, records it for the calling goroutine. It returns err unchanged
// so that it can wrap call sites:
//
//	if err := syserr.Record(os.Remove(path)); err != nil { ... }
//
// A nil err and an err with no system error in its chain leave the stored
// state untouched.
func Record(err error) error {
	if err == nil {
		return nil
	}
	if c, ok := errno.FromError(err); ok {
		Set(c)
	}
	return err
}

// Last returns the calling goroutine's last observed system error code.
// If the goroutine never recorded one, it returns errno.Success.
func Last() errno.Code {
	if v, ok := last.Load(gid()); ok {
		return v.(errno.Code)
	}
	return errno.Success
}

// Clear removes the calling goroutine's last-error entry. Long-lived
// worker goroutines should call it when recycling, so the map does not
// accumulate entries for work that already completed.
func Clear() {
	last.Delete(gid())
}

// gidPrefix is the fixed header runtime.Stack emits before the goroutine id.
var gidPrefix = []byte("goroutine ")

// gid returns the calling goroutine's id, parsed from the first line of
// its stack header ("goroutine 123 [running]:"). The id is only used as a
// map key; no scheduling decision ever depends on it.
func gid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], gidPrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
