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
	"fmt"
	"strings"

	"dirpx.dev/dbc/apis"
	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained mapper instance —
// no shared references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, category rules).
//  3. Normalize and validate all category rule keys (via category.Parse).
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid category keys.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder. No pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Normalize and validate category rule keys.
	httpCat, err := normalizeCategoryRules(b.httpCategory)
	if err != nil {
		return nil, fmt.Errorf("mapper: invalid HTTP category rule: %w", err)
	}
	grpcCat, err := normalizeCategoryRules(b.grpcCategory)
	if err != nil {
		return nil, fmt.Errorf("mapper: invalid gRPC category rule: %w", err)
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpCategory: httpCat,
		grpcCategory: toGRPCRules(grpcCat),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults, per-code exact overrides, and category rules with family
// fallback. Lookups are O(1) map accesses and safe for concurrent use
// once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given errno code.
	// Used when no category rule and no override are present.
	httpDefault map[errno.Code]int

	// grpcDefault holds the base gRPC status for a given errno code.
	grpcDefault map[errno.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over everything else.
	httpOverride map[errno.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[errno.Code]codes.Code

	// httpCategory holds HTTP rules keyed by exact category or family.
	httpCategory map[category.Category]int

	// grpcCategory holds gRPC rules keyed by exact category or family.
	grpcCategory map[category.Category]codes.Code

	// fallbackHTTP is used when nothing matched at all.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when nothing matched at all.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given errno code and category.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. exact category rule;
//  3. category family rule;
//  4. per-code default (library or user overridden);
//  5. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c errno.Code, cat category.Category) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2-3. Category rule: exact, then family.
	if v, ok := m.httpCategory[cat]; ok {
		return v
	}
	if v, ok := m.httpCategory[category.Category(cat.Family())]; ok {
		return v
	}

	// 4. Per-code default.
	if v, ok := m.httpDefault[c]; ok {
		return v
	}

	// 5. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given errno code and category.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c errno.Code, cat category.Category) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2-3. Category rule: exact, then family.
	if v, ok := m.grpcCategory[cat]; ok {
		return v
	}
	if v, ok := m.grpcCategory[category.Category(cat.Family())]; ok {
		return v
	}

	// 4. Default for this code.
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}

	// 5. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single violation.
func (m *mapper) Status(c errno.Code, cat category.Category) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, cat),
		GRPC: m.GRPCStatus(c, cat),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and
// gRPC statuses for a particular (code, category) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, category, family, default, or fallback).
//
// Example output:
//
//	code=ENOENT category="fs.exists"
//	http: source=category key="fs.exists" -> 404
//	grpc: source=default -> NOTFOUND(5)
func (m *mapper) Explain(c errno.Code, cat category.Category) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%s category=%q\n", c, cat)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c, cat))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c, cat))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats a line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c errno.Code, cat category.Category) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpCategory[cat]; ok {
		return fmt.Sprintf("http: source=category key=%q -> %d", cat, v)
	}
	if fam := category.Category(cat.Family()); fam != "" {
		if v, ok := m.httpCategory[fam]; ok {
			return fmt.Sprintf("http: source=family key=%q -> %d", fam, v)
		}
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC formats a line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c errno.Code, cat category.Category) string {
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	if v, ok := m.grpcCategory[cat]; ok {
		return fmt.Sprintf("grpc: source=category key=%q -> %s(%d)", cat, strings.ToUpper(v.String()), int(v))
	}
	if fam := category.Category(cat.Family()); fam != "" {
		if v, ok := m.grpcCategory[fam]; ok {
			return fmt.Sprintf("grpc: source=family key=%q -> %s(%d)", fam, strings.ToUpper(v.String()), int(v))
		}
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// normalizeCategoryRules validates rule keys and returns a fresh map with
// canonical keys. A key may be an exact category or a bare family; both
// go through category.Parse.
func normalizeCategoryRules(src map[category.Category]int) (map[category.Category]int, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[category.Category]int, len(src))
	for k, v := range src {
		p, err := category.Parse(string(k))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		if p == category.Empty {
			return nil, fmt.Errorf("key %q: empty category", k)
		}
		dst[p] = v
	}
	return dst, nil
}

// freezeHTTP makes an immutable copy of an HTTP status map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper.
func freezeHTTP(src map[errno.Code]int) map[errno.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[errno.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC status map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC(src map[errno.Code]int) map[errno.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[errno.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// toGRPCRules converts validated int category rules into typed gRPC codes.
func toGRPCRules(src map[category.Category]int) map[category.Category]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[category.Category]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
