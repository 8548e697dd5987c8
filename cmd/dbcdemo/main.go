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

// Command dbcdemo walks through every check category, triggering each one
// with a failing condition so that a human operator can verify the
// diagnostic line format, errno mapping, and source location reporting.
//
// The demo installs a handler whose exit function does not end the
// process; each failing check still diverges (its goroutine ends), so the
// walkthrough runs every check on a goroutine of its own and waits for
// the diagnostic before moving on.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"dirpx.dev/dbc"
	"dirpx.dev/dbc/errno"
	"dirpx.dev/dbc/report"
	"dirpx.dev/dbc/syserr"
)

func main() {
	auto := flag.Bool("auto", false, "run without pausing between groups")
	flag.Parse()

	// Keep the process alive across violations: the exit override returns,
	// and each check's goroutine ends via the handler's Goexit backstop.
	dbc.SetHandler(report.New(report.WithExit(func(int) {})))

	in := bufio.NewReader(os.Stdin)
	pause := func() {
		if *auto {
			fmt.Println()
			return
		}
		fmt.Print(">>> Press Enter to continue...")
		_, _ = in.ReadString('\n')
		fmt.Println()
	}

	fmt.Println("DESIGN-BY-CONTRACT CHECKS DEMO")
	fmt.Println("Each group will fail and print its diagnostic line")
	fmt.Println()

	// Dummy values, named as they appear in the condition fields.
	zero := 0
	one := 1
	var val int64 = 150

	fmt.Println("1. DEFAULT CONTRACTS require, ensure, invariant")
	trip(errno.ENOENT, func() { dbc.Require(zero != 0, "zero", "General pre-condition failed") })
	trip(errno.ENOENT, func() { dbc.Ensure(zero != 0, "zero", "General post-condition failed") })
	trip(errno.ENOENT, func() { dbc.Invariant(zero != 0, "zero", "Object state invariant violated") })
	pause()

	fmt.Println("2. MEMORY & ADDRESS CONTRACTS")
	trip(errno.EFAULT, func() { dbc.RequireAddress(zero != 0, "ptr != nil", "Null pointer not allowed") })
	trip(errno.ENOMEM, func() { dbc.RequireMem(zero != 0, "buf != nil", "Memory allocation failed") })
	trip(errno.EFAULT, func() { dbc.EnsureAddress(zero != 0, "ret != nil", "Function returned null pointer") })
	trip(errno.EFAULT, func() { dbc.RequireAligned(zero != 0, "addr%8 == 0", "Pointer not properly aligned") })
	pause()

	fmt.Println("3. MATHEMATICAL & RANGE CONTRACTS")
	trip(errno.EDOM, func() { dbc.RequireDomain(zero != 0, "x >= 0", "Argument outside mathematical domain (e.g., sqrt(-1))") })
	trip(errno.ERANGE, func() { dbc.RequireRange(zero != 0, "r <= max", "Result exceeds representable range") })
	trip(errno.ERANGE, func() { dbc.EnsureInRange(val, 0, 100, "val in [0..100]", "Value out of valid bounds [0..100]") })
	trip(errno.EOVERFLOW, func() { dbc.EnsureNoOverflow(zero != 0, "sum < maxint", "Computation hit integer limit") })
	trip(errno.EINVAL, func() { dbc.EnsureFail(one != 0, "op failed", "Operation unexpectedly succeeded") })
	pause()

	fmt.Println("4. FILESYSTEM CONTRACTS")
	trip(errno.EBADF, func() { dbc.RequireFD(zero != 0, "fd >= 0", "Invalid file descriptor") })
	trip(errno.ENOENT, func() { dbc.RequireExists(zero != 0, "exists(path)", "Required file or path does not exist") })
	trip(errno.ENOTDIR, func() { dbc.RequireIsDir(zero != 0, "isdir(path)", "Path is not a directory") })
	trip(errno.EISDIR, func() { dbc.RequireNotDir(one != 0, "isdir(path)", "Path must not be a directory") })
	trip(errno.ENOTEMPTY, func() { dbc.RequireEmptyDir(zero != 0, "empty(dir)", "Directory is not empty") })
	trip(errno.EROFS, func() { dbc.RequireWritable(zero != 0, "writable(fs)", "Filesystem is read-only") })
	trip(errno.EFBIG, func() { dbc.RequireFileSize(zero != 0, "size <= limit", "File exceeds maximum size") })
	trip(errno.ENAMETOOLONG, func() { dbc.RequireNameLength(zero != 0, "len(name) <= max", "Filename too long") })
	trip(errno.EXDEV, func() { dbc.RequireSameDevice(zero != 0, "dev(a) == dev(b)", "Cross-device link not allowed") })
	trip(errno.EBUSY, func() { dbc.RequireNotBusy(zero != 0, "!busy(res)", "Resource is busy or locked") })
	trip(errno.ESTALE, func() { dbc.RequireFreshHandle(zero != 0, "fresh(h)", "File handle is stale") })
	trip(errno.EPIPE, func() { dbc.RequirePipeReady(zero != 0, "ready(pipe)", "Pipe is broken") })
	trip(errno.EINVAL, func() { dbc.RequireRegularFile(zero != 0, "regular(path)", "Not a regular file") })
	trip(errno.EINVAL, func() { dbc.RequireNotFIFO(one != 0, "fifo(path)", "Operation not allowed on pipe") })
	pause()

	fmt.Println("5. PROCESS & SYSTEM STATE CONTRACTS")
	trip(errno.ESRCH, func() { dbc.RequireProcess(zero != 0, "alive(pid)", "Target process does not exist") })
	trip(errno.EDEADLK, func() { dbc.RequireNoDeadlock(zero != 0, "!deadlock", "Deadlock condition detected") })
	trip(errno.ECANCELED, func() { dbc.RequireNotCanceled(zero != 0, "!canceled", "Operation was canceled") })
	trip(errno.EIDRM, func() { dbc.RequireIDValid(zero != 0, "valid(id)", "Shared memory or semaphore ID invalid") })
	trip(errno.EAGAIN, func() { dbc.EnsureResourceAvailable(zero != 0, "available(res)", "Resource unavailable") })
	trip(errno.EOWNERDEAD, func() { dbc.EnsureMutexConsistent(zero != 0, "consistent(mu)", "Mutex in inconsistent state") })
	pause()

	fmt.Println("6. NETWORK & COMMUNICATION CONTRACTS")
	trip(errno.ENETDOWN, func() { dbc.RequireNetworkUp(zero != 0, "netup", "Network is down") })
	trip(errno.EHOSTUNREACH, func() { dbc.RequireHostReachable(zero != 0, "reachable(host)", "Host is unreachable") })
	trip(errno.ETIMEDOUT, func() { dbc.RequireNoTimeout(zero != 0, "!timeout", "Operation timed out") })
	trip(errno.EALREADY, func() { dbc.RequireNotAlreadyConnecting(one != 0, "connecting", "Connection already in progress") })
	trip(errno.EPROTONOSUPPORT, func() { dbc.RequireProtoAvailable(zero != 0, "proto(ok)", "Protocol not supported") })
	pause()

	fmt.Println("7. DATA & ENCODING CONTRACTS")
	trip(errno.EILSEQ, func() { dbc.RequireValidEncoding(zero != 0, "utf8(in)", "Input contains invalid byte sequence") })
	trip(errno.EILSEQ, func() { dbc.EnsureValidEncoding(zero != 0, "utf8(out)", "Output contains invalid encoding") })
	pause()

	fmt.Println("8. PERMISSION & ACCESS CONTRACTS")
	trip(errno.EACCES, func() { dbc.RequirePermission(zero != 0, "allowed(op)", "Insufficient privileges") })
	trip(errno.EIO, func() { dbc.RequireIOSuccess(zero != 0, "io(ok)", "I/O operation failed") })
	trip(errno.ENODEV, func() { dbc.RequireDevice(zero != 0, "present(dev)", "Device not found") })
	pause()

	fmt.Println("9. MISCELLANEOUS & CUSTOM GUARANTEES")
	trip(errno.ENOTSUP, func() { dbc.RequireSupported(zero != 0, "supported(feat)", "Feature not supported") })
	trip(errno.ENOTRECOVERABLE, func() { dbc.RequireRecoverable(zero != 0, "recoverable", "State is unrecoverable") })
	trip(errno.EOWNERDEAD, func() { dbc.RequireOwnerAlive(zero != 0, "owner alive", "Mutex owner died") })
	pause()

	fmt.Println("DEMO COMPLETE.")
	fmt.Println("All checks have been exercised.")
	fmt.Println("With the default handler each line would be followed by process termination.")
}

// trip runs one deliberately failing check on its own goroutine, with c
// recorded as that goroutine's last system error, and waits for the
// diagnostic. The goroutine ends via the handler's Goexit backstop; its
// deferred close is what releases the wait.
func trip(c errno.Code, f func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		syserr.Set(c)
		f()
	}()
	<-done
}
