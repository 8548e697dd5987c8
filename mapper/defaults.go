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

package mapper

import (
	"net/http"

	"dirpx.dev/dbc/errno"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for errno codes
// with a natural transport meaning. These are only defaults: crash
// collectors are expected to override them at the boundary where HTTP is
// actually produced.
//
// Codes not listed here (and errno 0 — a violation with no recorded system
// error is still a crash) resolve through the global fallback, 500.
var defaultHTTP = map[errno.Code]int{
	// Input shape and numeric assumptions.
	errno.EINVAL: http.StatusBadRequest,            // Invalid argument.
	errno.EDOM:   http.StatusBadRequest,            // Argument outside mathematical domain.
	errno.ERANGE: http.StatusBadRequest,            // Result not representable.
	errno.EILSEQ: http.StatusBadRequest,            // Illegal byte sequence in input.
	errno.E2BIG:  http.StatusRequestEntityTooLarge, // Argument list too long.

	// Resource existence and identity.
	errno.ENOENT: http.StatusNotFound, // Referenced file/path does not exist.
	errno.ESRCH:  http.StatusNotFound, // Referenced process does not exist.
	errno.ENODEV: http.StatusNotFound, // Referenced device does not exist.
	errno.EEXIST: http.StatusConflict, // Creation clash — already exists.
	errno.EBUSY:  http.StatusConflict, // Resource busy or locked.
	errno.ESTALE: http.StatusGone,     // Handle refers to something gone.

	// Permissions.
	errno.EPERM:  http.StatusForbidden, // Operation not permitted.
	errno.EACCES: http.StatusForbidden, // Permission denied.
	errno.EROFS:  http.StatusForbidden, // Read-only file system.

	// Capacity and limits.
	errno.ENOMEM:       http.StatusInsufficientStorage, // Out of memory.
	errno.EFBIG:        http.StatusRequestEntityTooLarge,
	errno.EMSGSIZE:     http.StatusRequestEntityTooLarge,
	errno.ENAMETOOLONG: http.StatusRequestURITooLong,
	errno.ENFILE:       http.StatusServiceUnavailable, // System file table full.
	errno.EMFILE:       http.StatusServiceUnavailable, // Process descriptor table full.
	errno.ENOLCK:       http.StatusServiceUnavailable, // No locks available.

	// Support and availability.
	errno.ENOTSUP:         http.StatusNotImplemented, // Operation not supported.
	errno.EPROTONOSUPPORT: http.StatusNotImplemented,
	errno.ENETDOWN:        http.StatusServiceUnavailable,
	errno.ENETUNREACH:     http.StatusServiceUnavailable,
	errno.EHOSTUNREACH:    http.StatusServiceUnavailable,

	// Time and cancellation.
	errno.ETIMEDOUT: http.StatusGatewayTimeout, // Connection timed out.
	errno.ETIME:     http.StatusGatewayTimeout, // Timer expired.
	errno.ECANCELED: http.StatusRequestTimeout, // Operation canceled.
}

// defaultGRPC defines the library's built-in gRPC mappings for errno
// codes. Values align with canonical gRPC status semantics. As with HTTP,
// collectors may override these at the transport edge.
var defaultGRPC = map[errno.Code]codes.Code{
	// Input shape and numeric assumptions.
	errno.EINVAL:    codes.InvalidArgument,
	errno.EDOM:      codes.InvalidArgument,
	errno.EILSEQ:    codes.InvalidArgument,
	errno.ERANGE:    codes.OutOfRange,
	errno.EOVERFLOW: codes.OutOfRange,
	errno.E2BIG:     codes.InvalidArgument,

	// Resource existence and identity.
	errno.ENOENT: codes.NotFound,
	errno.ESRCH:  codes.NotFound,
	errno.ENODEV: codes.NotFound,
	errno.EEXIST: codes.AlreadyExists,
	errno.EBUSY:  codes.Aborted,  // Busy resource — caller may retry the whole transaction.
	errno.ESTALE: codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.

	// Permissions.
	errno.EPERM:  codes.PermissionDenied,
	errno.EACCES: codes.PermissionDenied,
	errno.EROFS:  codes.PermissionDenied,

	// Capacity and limits.
	errno.ENOMEM:       codes.ResourceExhausted,
	errno.EFBIG:        codes.ResourceExhausted,
	errno.EMSGSIZE:     codes.ResourceExhausted,
	errno.ENAMETOOLONG: codes.InvalidArgument,
	errno.ENFILE:       codes.ResourceExhausted,
	errno.EMFILE:       codes.ResourceExhausted,
	errno.ENOLCK:       codes.ResourceExhausted,

	// Concurrency and consistency.
	errno.EDEADLK:         codes.Aborted, // Deadlock avoided — retry from scratch.
	errno.EOWNERDEAD:      codes.DataLoss,
	errno.ENOTRECOVERABLE: codes.DataLoss,

	// Support and availability.
	errno.ENOTSUP:         codes.Unimplemented,
	errno.EPROTONOSUPPORT: codes.Unimplemented,
	errno.ENETDOWN:        codes.Unavailable,
	errno.ENETUNREACH:     codes.Unavailable,
	errno.EHOSTUNREACH:    codes.Unavailable,
	errno.EAGAIN:          codes.Unavailable, // Would block / try again.

	// Time and cancellation.
	errno.ETIMEDOUT: codes.DeadlineExceeded,
	errno.ETIME:     codes.DeadlineExceeded,
	errno.ECANCELED: codes.Canceled,
	errno.EINTR:     codes.Canceled, // Interrupted system call.
}
