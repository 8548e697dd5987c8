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

package dbc

import "dirpx.dev/dbc/category"

// Memory & address checks
//
// Assumptions about pointers, allocations, and alignment. None of these
// return on failure.

// RequireAddress asserts that a pointer-like value is valid (non-null).
func RequireAddress(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Address)
}

// RequireMem asserts that an allocation succeeded.
func RequireMem(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Allocation)
}

// EnsureAddress asserts that a function did not return a null pointer.
func EnsureAddress(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Address)
}

// RequireAligned asserts that a pointer or buffer is properly aligned.
func RequireAligned(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Alignment)
}

// Mathematical & range checks

// RequireDomain asserts that an argument lies inside a mathematical
// function's domain (for example, the operand of a square root is
// non-negative).
func RequireDomain(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Domain)
}

// RequireRange asserts that a result fits the representable range.
func RequireRange(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Range)
}

// EnsureInRange asserts that v lies within the closed interval [lo, hi].
func EnsureInRange(v, lo, hi int64, cond, msg string) {
	check(v >= lo && v <= hi, cond, msg, category.Bounds)
}

// EnsureNoOverflow asserts that a computation stayed below its type limit.
func EnsureNoOverflow(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Overflow)
}

// EnsureFail asserts that an operation failed as expected: succeeded must
// be false. Used around calls that are required to be rejected.
func EnsureFail(succeeded bool, cond, msg string) {
	check(!succeeded, cond, msg, category.MustFail)
}

// Filesystem checks

// RequireFD asserts that a file descriptor is valid.
func RequireFD(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Descriptor)
}

// RequireExists asserts that a required file or path exists.
func RequireExists(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Exists)
}

// RequireIsDir asserts that a path is a directory.
func RequireIsDir(ok bool, cond, msg string) {
	check(ok, cond, msg, category.IsDir)
}

// RequireNotDir asserts that a path is not a directory: isDir must be
// false.
func RequireNotDir(isDir bool, cond, msg string) {
	check(!isDir, cond, msg, category.NotDir)
}

// RequireEmptyDir asserts that a directory is empty.
func RequireEmptyDir(ok bool, cond, msg string) {
	check(ok, cond, msg, category.EmptyDir)
}

// RequireWritable asserts that the target filesystem is writable.
func RequireWritable(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Writable)
}

// RequireFileSize asserts that a file is within the permitted size.
func RequireFileSize(ok bool, cond, msg string) {
	check(ok, cond, msg, category.FileSize)
}

// RequireNameLength asserts that a file name is within the length limit.
func RequireNameLength(ok bool, cond, msg string) {
	check(ok, cond, msg, category.NameLength)
}

// RequireSameDevice asserts that two paths are on the same filesystem.
func RequireSameDevice(ok bool, cond, msg string) {
	check(ok, cond, msg, category.SameDevice)
}

// RequireNotBusy asserts that a resource is not busy or locked.
func RequireNotBusy(ok bool, cond, msg string) {
	check(ok, cond, msg, category.NotBusy)
}

// RequireFreshHandle asserts that a file handle is not stale.
func RequireFreshHandle(ok bool, cond, msg string) {
	check(ok, cond, msg, category.FreshHandle)
}

// RequirePipeReady asserts that a pipe is intact and ready.
func RequirePipeReady(ok bool, cond, msg string) {
	check(ok, cond, msg, category.PipeReady)
}

// RequireRegularFile asserts that a path names a regular file.
func RequireRegularFile(ok bool, cond, msg string) {
	check(ok, cond, msg, category.RegularFile)
}

// RequireNotFIFO asserts that a handle is not a pipe: isFIFO must be
// false.
func RequireNotFIFO(isFIFO bool, cond, msg string) {
	check(!isFIFO, cond, msg, category.NotFIFO)
}

// Process & system-state checks

// RequireProcess asserts that a target process exists.
func RequireProcess(ok bool, cond, msg string) {
	check(ok, cond, msg, category.ProcessExists)
}

// RequireNoDeadlock asserts that proceeding cannot deadlock.
func RequireNoDeadlock(ok bool, cond, msg string) {
	check(ok, cond, msg, category.NoDeadlock)
}

// RequireNotCanceled asserts that the operation has not been canceled.
func RequireNotCanceled(ok bool, cond, msg string) {
	check(ok, cond, msg, category.NotCanceled)
}

// RequireIDValid asserts that a system identifier (shared memory,
// semaphore) is valid.
func RequireIDValid(ok bool, cond, msg string) {
	check(ok, cond, msg, category.ValidID)
}

// EnsureResourceAvailable asserts that a required resource is available.
func EnsureResourceAvailable(ok bool, cond, msg string) {
	check(ok, cond, msg, category.ResourceAvailable)
}

// EnsureMutexConsistent asserts that a mutex is in a consistent state.
func EnsureMutexConsistent(ok bool, cond, msg string) {
	check(ok, cond, msg, category.MutexConsistent)
}

// Network & communication checks

// RequireNetworkUp asserts that the network is up.
func RequireNetworkUp(ok bool, cond, msg string) {
	check(ok, cond, msg, category.NetworkUp)
}

// RequireHostReachable asserts that the target host is reachable.
func RequireHostReachable(ok bool, cond, msg string) {
	check(ok, cond, msg, category.HostReachable)
}

// RequireNoTimeout asserts that the operation did not time out.
func RequireNoTimeout(ok bool, cond, msg string) {
	check(ok, cond, msg, category.NoTimeout)
}

// RequireNotAlreadyConnecting asserts that no connection attempt is in
// flight: connecting must be false.
func RequireNotAlreadyConnecting(connecting bool, cond, msg string) {
	check(!connecting, cond, msg, category.NotConnecting)
}

// RequireProtoAvailable asserts that the requested protocol is available.
func RequireProtoAvailable(ok bool, cond, msg string) {
	check(ok, cond, msg, category.ProtoAvailable)
}

// Data & encoding checks

// RequireValidEncoding asserts that input bytes form a valid encoding.
func RequireValidEncoding(ok bool, cond, msg string) {
	check(ok, cond, msg, category.EncodingIn)
}

// EnsureValidEncoding asserts that output bytes form a valid encoding.
func EnsureValidEncoding(ok bool, cond, msg string) {
	check(ok, cond, msg, category.EncodingOut)
}

// Permission & access checks

// RequirePermission asserts that the caller holds sufficient privileges.
func RequirePermission(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Permission)
}

// RequireIOSuccess asserts that an I/O operation succeeded.
func RequireIOSuccess(ok bool, cond, msg string) {
	check(ok, cond, msg, category.IOSuccess)
}

// RequireDevice asserts that a required device is present.
func RequireDevice(ok bool, cond, msg string) {
	check(ok, cond, msg, category.DevicePresent)
}

// Miscellaneous checks

// RequireSupported asserts that a feature is supported in this
// environment.
func RequireSupported(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Supported)
}

// RequireRecoverable asserts that state is still recoverable.
func RequireRecoverable(ok bool, cond, msg string) {
	check(ok, cond, msg, category.Recoverable)
}

// RequireOwnerAlive asserts that the owner of a robust mutex is alive.
func RequireOwnerAlive(ok bool, cond, msg string) {
	check(ok, cond, msg, category.OwnerAlive)
}
