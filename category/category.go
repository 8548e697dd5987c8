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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Category is the canonical, validated representation of a check category.
//
// It is defined as a separate type (not just string) so that call sites and
// adapters can explicitly declare which values they expect, and so that raw
// user input is not accidentally mixed with catalog values.
type Category string

// MinLength and MaxLength define the allowed length range for a canonical
// category string.
const (
	// MinLength is the minimum length for a non-empty category.
	// Two characters admit the shortest shipped family ("fs") while
	// ruling out one-letter identifiers. A bare family must itself be a
	// valid category, or family rules could never be registered for it.
	MinLength = 2

	// MaxLength is the maximum length for a valid category.
	// 64 characters is enough for "family.descriptive_name" forms while
	// preventing unbounded or accidental long strings.
	MaxLength = 64
)

const (
	// categoryFmt is the canonical regular expression used to validate
	// categories.
	//
	// We accept 1 or 2 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore
	//
	// Examples that match:
	//
	//	"memory.address"
	//	"fs.empty_dir"
	//	"general.precondition"
	//
	// Examples that DO NOT match:
	//
	//	"Memory.Address"   (uppercase)
	//	"fs/empty"         (slash)
	//	"fs..empty"        (empty segment)
	//	"1fs.empty"        (digit first)
	categoryFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)?$`
)

var (
	// categoryRe is the compiled regexp for the above pattern.
	categoryRe = regexp.MustCompile(categoryFmt)
)

var (
	// ErrCategoryInvalidFormat is returned when a category does not conform
	// to the expected format.
	ErrCategoryInvalidFormat = errors.New("dbc: invalid category format")
	// ErrCategoryInvalidLength is returned when a category is too short or
	// too long.
	ErrCategoryInvalidLength = errors.New("dbc: invalid category length")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero-value category. It is considered "not provided" and is
// valid to store in diagnostic structs; the failure handler renders it as
// an absent field.
var Empty Category = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical category form. Only obvious, non-lossy transformations are
// applied:
//
//   - trim surrounding spaces;
//   - lower-case;
//   - replace '-' with '_'.
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Category value.
//
// Parse accepts the empty string and returns category.Empty without error;
// the category is an optional part of a diagnostic.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Category(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level category constants in var/const blocks.
//
// Unlike Parse, MustParse does NOT allow the empty string — passing an
// empty string here is almost always a programmer error.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if c == Empty {
		panic("dbc: empty category in MustParse")
	}
	return c
}

// Validate checks whether the provided Category is in canonical form.
// The empty category ("") is considered valid; enforce non-emptiness at
// the call site if required.
func Validate(c Category) error {
	if c == Empty {
		return nil
	}
	return validate(string(c))
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Family returns the first, dot-separated segment of the category
// ("memory", "fs", "net", ...). For a single-segment category it returns
// the category itself; for the empty category it returns "".
func (c Category) Family() string {
	s := string(c)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
//
// The empty category marshals to an empty slice so that JSON/YAML encoders
// relying on TextMarshaler are not broken.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	if c == Empty {
		return []byte{}, nil
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// Empty or whitespace-only input produces category.Empty.
func (c *Category) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCategoryInvalidLength
	}
	if !categoryRe.MatchString(s) {
		return ErrCategoryInvalidFormat
	}
	return nil
}
