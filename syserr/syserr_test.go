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
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"

	"dirpx.dev/dbc/errno"
)

func TestLast_DefaultIsSuccess(t *testing.T) {
	done := make(chan errno.Code, 1)
	go func() {
		// A fresh goroutine has never recorded anything.
		done <- Last()
	}()
	if got := <-done; got != errno.Success {
		t.Fatalf("Last() on a fresh goroutine = %v, want Success", got)
	}
}

func TestSet_Last_Clear(t *testing.T) {
	defer Clear()

	Set(errno.ENOENT)
	if got := Last(); got != errno.ENOENT {
		t.Fatalf("Last() = %v, want ENOENT", got)
	}

	Set(errno.EACCES)
	if got := Last(); got != errno.EACCES {
		t.Fatalf("Last() after second Set = %v, want EACCES", got)
	}

	Clear()
	if got := Last(); got != errno.Success {
		t.Fatalf("Last() after Clear = %v, want Success", got)
	}
}

func TestRecord(t *testing.T) {
	defer Clear()

	if err := Record(nil); err != nil {
		t.Fatalf("Record(nil) = %v, want nil", err)
	}
	if got := Last(); got != errno.Success {
		t.Fatalf("Record(nil) disturbed state: Last() = %v", got)
	}

	pathErr := &os.PathError{Op: "open", Path: "/nope", Err: syscall.ENOENT}
	if err := Record(pathErr); err != pathErr {
		t.Fatalf("Record did not return its argument unchanged")
	}
	if got := Last(); got != errno.ENOENT {
		t.Fatalf("Last() after Record = %v, want ENOENT", got)
	}

	// An error with no system code in its chain leaves the state alone.
	plain := errors.New("boom")
	if err := Record(plain); err != plain {
		t.Fatalf("Record did not return its argument unchanged")
	}
	if got := Last(); got != errno.ENOENT {
		t.Fatalf("Record of a plain error disturbed state: Last() = %v", got)
	}
}

func TestGoroutineAffinity(t *testing.T) {
	codes := []errno.Code{errno.EPERM, errno.ENOENT, errno.EACCES, errno.ETIMEDOUT}

	var wg sync.WaitGroup
	errs := make(chan error, len(codes))
	for _, c := range codes {
		wg.Add(1)
		go func(c errno.Code) {
			defer wg.Done()
			defer Clear()
			Set(c)
			// Every goroutine must see only its own code, no matter how
			// the others interleave.
			for i := 0; i < 100; i++ {
				if got := Last(); got != c {
					errs <- errors.New("goroutine observed another goroutine's code")
					return
				}
			}
		}(c)
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		t.Fatal(err)
	}
}

func TestGID_StableWithinGoroutine(t *testing.T) {
	if gid() != gid() {
		t.Fatal("gid() is not stable within one goroutine")
	}
	other := make(chan uint64, 1)
	go func() { other <- gid() }()
	if gid() == <-other {
		t.Fatal("two goroutines reported the same id")
	}
}
