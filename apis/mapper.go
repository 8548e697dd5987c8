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

package apis

import (
	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status mapping
// rules. It resolves a system error code (and optionally the violated
// check's category) into transport statuses for HTTP and gRPC, so that
// crash collectors can respond with something meaningful.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given system error code
	// and category. Category rules take precedence over code defaults;
	// with no matching rule the mapper must fall back to a non-zero value.
	HTTPStatus(c errno.Code, cat category.Category) int

	// GRPCStatus returns the gRPC status code for the given system error
	// code and category, with the same precedence as HTTPStatus.
	GRPCStatus(c errno.Code, cat category.Category) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(c errno.Code, cat category.Category) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(c errno.Code, cat category.Category) string
}

// Status represents a resolved pair of transport statuses for a single
// violation. It is the final output of the mapper and can be written
// directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
