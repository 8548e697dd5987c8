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

import (
	"errors"
	"strconv"
	"syscall"
)

// Code is the numeric classification of an operating-system-level failure
// reason, as left in the thread's last-error state by a failing system call.
//
// The code space is fixed at compile time. Codes are read, never created or
// destroyed at runtime. Two names may alias one numeric value (EAGAIN and
// EWOULDBLOCK, ENOTSUP and EOPNOTSUPP); the phrase for an aliased value is
// chosen once and shared.
type Code int

// FallbackPhrase is returned by Phrase for any code outside the defined set.
// Lookup is total: it never fails and never returns an empty string.
const FallbackPhrase = "Unknown error"

// maxCode is the highest defined code. The phrase table is sized to it.
const maxCode = int(ENOTRECOVERABLE)

// phrases maps each defined code to its canonical phrase. Holes in the
// numeric space stay empty and resolve to FallbackPhrase.
//
// The table is a fixed-size array, not a map, so that lookup during failure
// handling is a bounded, allocation-free index operation.
var phrases = [maxCode + 1]string{
	Success: "Success",

	// Early Unix (Version 7, 1979).
	EPERM:        "Operation not permitted",
	ENOENT:       "No such file or directory",
	ESRCH:        "No such process",
	EINTR:        "Interrupted system call",
	EIO:          "Input/output error",
	ENXIO:        "No such device or address",
	E2BIG:        "Argument list too long",
	ENOEXEC:      "Executable file format error",
	EBADF:        "Bad file descriptor",
	ECHILD:       "No child processes",
	EAGAIN:       "Resource unavailable, try again",
	ENOMEM:       "Out of memory",
	EACCES:       "Permission denied",
	EFAULT:       "Bad address",
	EBUSY:        "Device or resource busy",
	EEXIST:       "File exists",
	EXDEV:        "Cross-device link",
	ENODEV:       "No such device",
	ENOTDIR:      "Not a directory",
	EISDIR:       "Is a directory",
	EINVAL:       "Invalid argument",
	ENFILE:       "Too many files open in system",
	EMFILE:       "Too many open files",
	ENOTTY:       "Inappropriate I/O control operation",
	ETXTBSY:      "Text file busy",
	EFBIG:        "File too large",
	EROFS:        "Read-only file system",
	EMLINK:       "Too many links",
	EPIPE:        "Broken pipe",
	EDOM:         "Numerical argument out of domain",
	ERANGE:       "Result too large",
	EDEADLK:      "Resource deadlock would occur",
	ENAMETOOLONG: "File name too long",
	ENOTEMPTY:    "Directory not empty",
	ELOOP:        "Too many levels of symbolic links",
	EIDRM:        "Identifier removed",

	// Structural extensions (1980s–1990s).
	ETIME:     "Timer expired",
	ENOLINK:   "Link has been severed",
	EPROTO:    "Protocol error",
	EOVERFLOW: "Value too large to be stored in data type",
	ENOLCK:    "No locks available",
	EILSEQ:    "Illegal byte sequence",

	// Networking era (BSD 4.2+).
	EMSGSIZE:        "Message too long",
	EPROTOTYPE:      "Protocol wrong type for socket",
	EPROTONOSUPPORT: "Protocol not supported",
	ENOTSUP:         "Operation not supported",
	ENETDOWN:        "Network is down",
	ENETUNREACH:     "Network is unreachable",
	ETIMEDOUT:       "Connection timed out",
	EHOSTUNREACH:    "No route to host",
	EALREADY:        "Connection already in progress",
	EINPROGRESS:     "Operation in progress",
	ESTALE:          "Stale file handle",

	// Modern POSIX (POSIX.1-2001).
	ECANCELED:       "Operation canceled",
	EOWNERDEAD:      "Previous owner died",
	ENOTRECOVERABLE: "State not recoverable",
}

// names maps each defined numeric value to its primary symbolic name.
// Aliased values carry the historically older name; the secondary names
// are listed in aliases.
var names = [maxCode + 1]string{
	Success: "SUCCESS",

	EPERM:        "EPERM",
	ENOENT:       "ENOENT",
	ESRCH:        "ESRCH",
	EINTR:        "EINTR",
	EIO:          "EIO",
	ENXIO:        "ENXIO",
	E2BIG:        "E2BIG",
	ENOEXEC:      "ENOEXEC",
	EBADF:        "EBADF",
	ECHILD:       "ECHILD",
	EAGAIN:       "EAGAIN",
	ENOMEM:       "ENOMEM",
	EACCES:       "EACCES",
	EFAULT:       "EFAULT",
	EBUSY:        "EBUSY",
	EEXIST:       "EEXIST",
	EXDEV:        "EXDEV",
	ENODEV:       "ENODEV",
	ENOTDIR:      "ENOTDIR",
	EISDIR:       "EISDIR",
	EINVAL:       "EINVAL",
	ENFILE:       "ENFILE",
	EMFILE:       "EMFILE",
	ENOTTY:       "ENOTTY",
	ETXTBSY:      "ETXTBSY",
	EFBIG:        "EFBIG",
	EROFS:        "EROFS",
	EMLINK:       "EMLINK",
	EPIPE:        "EPIPE",
	EDOM:         "EDOM",
	ERANGE:       "ERANGE",
	EDEADLK:      "EDEADLK",
	ENAMETOOLONG: "ENAMETOOLONG",
	ENOTEMPTY:    "ENOTEMPTY",
	ELOOP:        "ELOOP",
	EIDRM:        "EIDRM",

	ETIME:     "ETIME",
	ENOLINK:   "ENOLINK",
	EPROTO:    "EPROTO",
	EOVERFLOW: "EOVERFLOW",
	ENOLCK:    "ENOLCK",
	EILSEQ:    "EILSEQ",

	EMSGSIZE:        "EMSGSIZE",
	EPROTOTYPE:      "EPROTOTYPE",
	EPROTONOSUPPORT: "EPROTONOSUPPORT",
	ENOTSUP:         "ENOTSUP",
	ENETDOWN:        "ENETDOWN",
	ENETUNREACH:     "ENETUNREACH",
	ETIMEDOUT:       "ETIMEDOUT",
	EHOSTUNREACH:    "EHOSTUNREACH",
	EALREADY:        "EALREADY",
	EINPROGRESS:     "EINPROGRESS",
	ESTALE:          "ESTALE",

	ECANCELED:       "ECANCELED",
	EOWNERDEAD:      "EOWNERDEAD",
	ENOTRECOVERABLE: "ENOTRECOVERABLE",
}

// aliases lists the secondary symbolic names that share a numeric value
// with a primary name. Exposed for the table tool and for tests; lookup
// behavior never depends on which name a caller used.
var aliases = map[string]Code{
	"EWOULDBLOCK": EWOULDBLOCK,
	"EOPNOTSUPP":  EOPNOTSUPP,
}

// Phrase returns the canonical human-readable phrase for c.
//
// The lookup is total and deterministic: every defined code resolves to a
// non-empty, stable phrase, and any undefined or out-of-range value resolves
// to FallbackPhrase. No side effects, no allocation.
func Phrase(c Code) string {
	if c < 0 || int(c) > maxCode {
		return FallbackPhrase
	}
	if p := phrases[c]; p != "" {
		return p
	}
	return FallbackPhrase
}

// Phrase is the method form of the package-level Phrase.
func (c Code) Phrase() string { return Phrase(c) }

// Defined reports whether c is inside the defined code space.
func Defined(c Code) bool {
	return c >= 0 && int(c) <= maxCode && phrases[c] != ""
}

// Name returns the primary symbolic name for c ("ENOENT", "EAGAIN", ...),
// or the empty string when c is undefined. Aliased values resolve to the
// historically older name.
func Name(c Code) string {
	if !Defined(c) {
		return ""
	}
	return names[c]
}

// String implements fmt.Stringer. Defined codes render as their symbolic
// name; undefined codes render as the decimal value.
func (c Code) String() string {
	if n := Name(c); n != "" {
		return n
	}
	return strconv.Itoa(int(c))
}

// Aliases returns the secondary name → value pairs of the taxonomy.
// The returned map is a copy; callers may mutate it freely.
func Aliases() map[string]Code {
	m := make(map[string]Code, len(aliases))
	for k, v := range aliases {
		m[k] = v
	}
	return m
}

// Codes returns every defined code in ascending numeric order.
// Aliased values appear once.
func Codes() []Code {
	out := make([]Code, 0, maxCode+1)
	for i := 0; i <= maxCode; i++ {
		if phrases[i] != "" {
			out = append(out, Code(i))
		}
	}
	return out
}

// FromError extracts an operating-system error code from anywhere in err's
// chain. It recognizes syscall.Errno values (the form in which Go surfaces
// errno from failing system calls). The second return is false when the
// chain carries no system error.
func FromError(err error) (Code, bool) {
	var se syscall.Errno
	if errors.As(err, &se) {
		return Code(se), true
	}
	return Success, false
}
