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

	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-code HTTP defaults that override library defaults.
	httpDefaults map[errno.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[errno.Code]int

	// httpOverride holds exact per-code HTTP overrides (higher than any rule).
	httpOverride map[errno.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[errno.Code]int

	// httpCategory holds HTTP rules keyed by exact category or bare family.
	httpCategory map[category.Category]int
	// grpcCategory holds gRPC rules keyed by exact category or bare family.
	grpcCategory map[category.Category]int

	// global fallbacks used when a code has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[errno.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[errno.Code]int, len(defaultGRPC)),

		// overrides and category rules are usually few
		httpOverride: make(map[errno.Code]int),
		grpcOverride: make(map[errno.Code]int),
		httpCategory: make(map[category.Category]int),
		grpcCategory: make(map[category.Category]int),

		// hard fallbacks if the code was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
