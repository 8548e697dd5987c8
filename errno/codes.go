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

package errno

// Success
//
// The zero code means "no error": the last system call the thread made
// either succeeded or was never recorded.
const (
	// Success indicates no error; the operation succeeded.
	Success Code = 0
)

// Early Unix (Version 7, 1979)
//
// Core file, process, and memory errors. Standardised by POSIX.1-1988.
// Gaps in numbering reflect historical divergence and reserved ranges.
const (
	// EPERM indicates the operation is not permitted.
	EPERM Code = 1
	// ENOENT indicates no such file or directory.
	ENOENT Code = 2
	// ESRCH indicates no such process.
	ESRCH Code = 3
	// EINTR indicates an interrupted system call.
	EINTR Code = 4
	// EIO indicates an input/output error.
	EIO Code = 5
	// ENXIO indicates no such device or address.
	ENXIO Code = 6
	// E2BIG indicates the argument list is too long.
	E2BIG Code = 7
	// ENOEXEC indicates an executable file format error.
	ENOEXEC Code = 8
	// EBADF indicates a bad file descriptor.
	EBADF Code = 9
	// ECHILD indicates there are no child processes.
	ECHILD Code = 10
	// EAGAIN indicates the resource is unavailable; try again.
	EAGAIN Code = 11
	// EWOULDBLOCK indicates the operation would block.
	// Same numeric value as EAGAIN; both resolve to one phrase.
	EWOULDBLOCK Code = 11
	// ENOMEM indicates the process is out of memory.
	ENOMEM Code = 12
	// EACCES indicates permission was denied.
	EACCES Code = 13
	// EFAULT indicates a bad address.
	EFAULT Code = 14
	// EBUSY indicates the device or resource is busy.
	EBUSY Code = 16
	// EEXIST indicates the file exists.
	EEXIST Code = 17
	// EXDEV indicates a cross-device link.
	EXDEV Code = 18
	// ENODEV indicates no such device.
	ENODEV Code = 19
	// ENOTDIR indicates the path is not a directory.
	ENOTDIR Code = 20
	// EISDIR indicates the path is a directory.
	EISDIR Code = 21
	// EINVAL indicates an invalid argument.
	EINVAL Code = 22
	// ENFILE indicates too many files are open in the system.
	ENFILE Code = 23
	// EMFILE indicates too many open files in the process.
	EMFILE Code = 24
	// ENOTTY indicates an inappropriate I/O control operation.
	ENOTTY Code = 25
	// ETXTBSY indicates the text file is busy.
	ETXTBSY Code = 26
	// EFBIG indicates the file is too large.
	EFBIG Code = 27
	// EROFS indicates a read-only file system.
	EROFS Code = 30
	// EMLINK indicates too many links.
	EMLINK Code = 31
	// EPIPE indicates a broken pipe.
	EPIPE Code = 32
	// EDOM indicates a numerical argument outside the function's domain.
	EDOM Code = 33
	// ERANGE indicates the result is too large to represent.
	ERANGE Code = 34
	// EDEADLK indicates a resource deadlock would occur.
	EDEADLK Code = 35
	// ENAMETOOLONG indicates the file name is too long.
	ENAMETOOLONG Code = 36
	// ENOTEMPTY indicates the directory is not empty.
	ENOTEMPTY Code = 39
	// ELOOP indicates too many levels of symbolic links.
	ELOOP Code = 40
	// EIDRM indicates the identifier was removed.
	EIDRM Code = 43
)

// Structural Extensions (1980s–1990s)
//
// IPC, real-time, and filesystem limits (timers, locks, large files).
const (
	// ETIME indicates the timer expired.
	ETIME Code = 62
	// ENOLINK indicates the link has been severed.
	ENOLINK Code = 67
	// EPROTO indicates a protocol error.
	EPROTO Code = 71
	// EOVERFLOW indicates a value too large to be stored in its data type.
	EOVERFLOW Code = 75
	// ENOLCK indicates no locks are available.
	ENOLCK Code = 77
	// EILSEQ indicates an illegal byte sequence.
	EILSEQ Code = 84
)

// Networking Era (BSD 4.2+, 1980s–1990s)
//
// Socket and network-specific errors from TCP/IP integration.
const (
	// EMSGSIZE indicates the message is too long.
	EMSGSIZE Code = 90
	// EPROTOTYPE indicates the protocol is the wrong type for the socket.
	EPROTOTYPE Code = 91
	// EPROTONOSUPPORT indicates the protocol is not supported.
	EPROTONOSUPPORT Code = 93
	// ENOTSUP indicates the operation is not supported.
	ENOTSUP Code = 95
	// EOPNOTSUPP indicates the operation is not supported on the socket.
	// Same numeric value as ENOTSUP; both resolve to one phrase.
	EOPNOTSUPP Code = 95
	// ENETDOWN indicates the network is down.
	ENETDOWN Code = 100
	// ENETUNREACH indicates the network is unreachable.
	ENETUNREACH Code = 101
	// ETIMEDOUT indicates the connection timed out.
	ETIMEDOUT Code = 110
	// EHOSTUNREACH indicates there is no route to the host.
	EHOSTUNREACH Code = 113
	// EALREADY indicates a connection is already in progress.
	EALREADY Code = 114
	// EINPROGRESS indicates the operation is in progress.
	EINPROGRESS Code = 115
	// ESTALE indicates a stale file handle.
	ESTALE Code = 116
)

// Modern POSIX (2000s, POSIX.1-2001)
//
// Thread cancellation and robust mutex recovery.
const (
	// ECANCELED indicates the operation was canceled.
	ECANCELED Code = 125
	// EOWNERDEAD indicates the previous mutex owner died.
	EOWNERDEAD Code = 130
	// ENOTRECOVERABLE indicates the state is not recoverable.
	ENOTRECOVERABLE Code = 131
)
