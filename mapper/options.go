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
	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given errno code. This affects the fallback value used when
// no category rule and no override match.
func WithHTTPDefault(c errno.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given errno code. This affects the fallback value used when
// no category rule and no override match.
func WithGRPCDefault(c errno.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given errno
// code. Overrides take precedence over category rules and defaults.
func WithHTTPOverride(c errno.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given errno
// code. Overrides take precedence over category rules and defaults.
func WithGRPCOverride(c errno.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPCategory adds an HTTP rule for a category. The key may be an
// exact category ("fs.exists") or a bare family ("fs"); an exact match
// wins over a family match. The rule is normalized and validated when the
// mapper is built.
func WithHTTPCategory(cat category.Category, http int) Option {
	return func(b *builder) { b.httpCategory[cat] = http }
}

// WithGRPCCategory adds a gRPC rule for a category. The key may be an
// exact category or a bare family; an exact match wins over a family
// match. The rule is normalized and validated when the mapper is built.
func WithGRPCCategory(cat category.Category, grpc int) Option {
	return func(b *builder) { b.grpcCategory[cat] = grpc }
}
