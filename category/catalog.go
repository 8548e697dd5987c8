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

package category

// General contract categories
//
// The classic Design-by-Contract trio. Use these when no domain-specific
// category applies.
const (
	// Precondition tags an assumption about inputs and state on entry.
	Precondition Category = "general.precondition"

	// Postcondition tags a guarantee about results and state on exit.
	Postcondition Category = "general.postcondition"

	// Invariant tags a property that must hold for an object or subsystem
	// at every observable point.
	Invariant Category = "general.invariant"
)

// Memory and address categories
//
// Assumptions about pointers, allocations, and alignment.
const (
	// Address tags null / non-null pointer checks.
	Address Category = "memory.address"

	// Allocation tags allocation-success checks.
	Allocation Category = "memory.allocation"

	// Alignment tags pointer/buffer alignment checks.
	Alignment Category = "memory.alignment"
)

// Numeric categories
//
// Assumptions about mathematical domains, ranges, and overflow.
const (
	// Domain tags argument-validity checks for mathematical functions
	// (for example, the argument of a square root must be non-negative).
	Domain Category = "numeric.domain"

	// Range tags representable-range checks on results.
	Range Category = "numeric.range"

	// Bounds tags closed-interval checks: value within [lo, hi].
	Bounds Category = "numeric.bounds"

	// Overflow tags checks that a computation stayed below its type limit.
	Overflow Category = "numeric.overflow"

	// MustFail tags checks that an operation failed as expected.
	MustFail Category = "numeric.must_fail"
)

// Filesystem categories
//
// Assumptions about descriptors, paths, and filesystem state.
const (
	// Descriptor tags file-descriptor validity checks.
	Descriptor Category = "fs.descriptor"

	// Exists tags path-existence checks.
	Exists Category = "fs.exists"

	// IsDir tags is-a-directory checks.
	IsDir Category = "fs.is_dir"

	// NotDir tags must-not-be-a-directory checks.
	NotDir Category = "fs.not_dir"

	// EmptyDir tags directory-emptiness checks.
	EmptyDir Category = "fs.empty_dir"

	// Writable tags filesystem-writability checks.
	Writable Category = "fs.writable"

	// FileSize tags maximum-file-size checks.
	FileSize Category = "fs.file_size"

	// NameLength tags file-name-length checks.
	NameLength Category = "fs.name_length"

	// SameDevice tags same-filesystem (no cross-device link) checks.
	SameDevice Category = "fs.same_device"

	// NotBusy tags resource-not-busy checks.
	NotBusy Category = "fs.not_busy"

	// FreshHandle tags handle-freshness (not stale) checks.
	FreshHandle Category = "fs.fresh_handle"

	// PipeReady tags pipe-readiness (not broken) checks.
	PipeReady Category = "fs.pipe_ready"

	// RegularFile tags regular-file checks.
	RegularFile Category = "fs.regular_file"

	// NotFIFO tags must-not-be-a-fifo checks.
	NotFIFO Category = "fs.not_fifo"
)

// Process and system-state categories
//
// Assumptions about processes, identifiers, and synchronization state.
const (
	// ProcessExists tags target-process-existence checks.
	ProcessExists Category = "process.exists"

	// NoDeadlock tags no-deadlock checks.
	NoDeadlock Category = "process.no_deadlock"

	// NotCanceled tags not-canceled checks.
	NotCanceled Category = "process.not_canceled"

	// ValidID tags identifier-validity checks (shared memory, semaphores).
	ValidID Category = "process.valid_id"

	// ResourceAvailable tags resource-availability checks.
	ResourceAvailable Category = "process.resource_available"

	// MutexConsistent tags mutex-consistency checks.
	MutexConsistent Category = "process.mutex_consistent"
)

// Network categories
//
// Assumptions about network and connection state.
const (
	// NetworkUp tags network-up checks.
	NetworkUp Category = "net.up"

	// HostReachable tags host-reachability checks.
	HostReachable Category = "net.host_reachable"

	// NoTimeout tags no-timeout checks.
	NoTimeout Category = "net.timeout"

	// NotConnecting tags not-already-connecting checks.
	NotConnecting Category = "net.not_connecting"

	// ProtoAvailable tags protocol-availability checks.
	ProtoAvailable Category = "net.proto_available"
)

// Encoding categories
//
// Assumptions about byte-sequence validity on the way in and out.
const (
	// EncodingIn tags valid-encoding checks on input.
	EncodingIn Category = "encoding.input"

	// EncodingOut tags valid-encoding checks on output.
	EncodingOut Category = "encoding.output"
)

// Permission and access categories
const (
	// Permission tags sufficient-privilege checks.
	Permission Category = "access.permission"

	// IOSuccess tags I/O-success checks.
	IOSuccess Category = "access.io"

	// DevicePresent tags device-presence checks.
	DevicePresent Category = "access.device"
)

// Miscellaneous categories
const (
	// Supported tags feature-supported checks.
	Supported Category = "misc.supported"

	// Recoverable tags state-recoverability checks.
	Recoverable Category = "misc.recoverable"

	// OwnerAlive tags mutex-owner-alive checks.
	OwnerAlive Category = "misc.owner_alive"
)

// Catalog returns every category shipped with this package, in declaration
// order. The returned slice is a fresh copy on each call.
func Catalog() []Category {
	return []Category{
		Precondition, Postcondition, Invariant,
		Address, Allocation, Alignment,
		Domain, Range, Bounds, Overflow, MustFail,
		Descriptor, Exists, IsDir, NotDir, EmptyDir, Writable,
		FileSize, NameLength, SameDevice, NotBusy, FreshHandle,
		PipeReady, RegularFile, NotFIFO,
		ProcessExists, NoDeadlock, NotCanceled, ValidID,
		ResourceAvailable, MutexConsistent,
		NetworkUp, HostReachable, NoTimeout, NotConnecting, ProtoAvailable,
		EncodingIn, EncodingOut,
		Permission, IOSuccess, DevicePresent,
		Supported, Recoverable, OwnerAlive,
	}
}
