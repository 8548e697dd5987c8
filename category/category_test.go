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
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "memory.address", "memory.address"},
		{"trims spaces", "  fs.exists  ", "fs.exists"},
		{"lower-cases", "Memory.Address", "memory.address"},
		{"dashes to underscores", "fs.empty-dir", "fs.empty_dir"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Category
		wantErr error
	}{
		{"valid two segments", "memory.address", Category("memory.address"), nil},
		{"valid single segment", "misc", Category("misc"), nil},
		{"normalized on the way in", " FS.Empty-Dir ", Category("fs.empty_dir"), nil},
		{"empty is allowed", "", Empty, nil},
		{"digit first", "1fs.empty", Empty, ErrCategoryInvalidFormat},
		{"empty segment", "fs..empty", Empty, ErrCategoryInvalidFormat},
		{"slash", "fs/empty", Empty, ErrCategoryInvalidFormat},
		{"three segments", "a.b.c", Empty, ErrCategoryInvalidFormat},
		{"bare family", "fs", Category("fs"), nil},
		{"too short", "a", Empty, ErrCategoryInvalidLength},
		{"too long", strings.Repeat("a", MaxLength+1), Empty, ErrCategoryInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(\"\") did not panic")
		}
	}()
	MustParse("")
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse on invalid input did not panic")
		}
	}()
	MustParse("fs..empty")
}

func TestValidate(t *testing.T) {
	if err := Validate(Empty); err != nil {
		t.Fatalf("Validate(Empty) = %v, want nil", err)
	}
	if err := Validate(Category("fs.exists")); err != nil {
		t.Fatalf("Validate(fs.exists) = %v, want nil", err)
	}
	if err := Validate(Category("FS.Exists")); !errors.Is(err, ErrCategoryInvalidFormat) {
		t.Fatalf("Validate on uppercase = %v, want ErrCategoryInvalidFormat", err)
	}
}

func TestFamily(t *testing.T) {
	tests := []struct {
		in   Category
		want string
	}{
		{Category("memory.address"), "memory"},
		{Category("misc"), "misc"},
		{Empty, ""},
	}
	for _, tt := range tests {
		if got := tt.in.Family(); got != tt.want {
			t.Fatalf("Family(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	c := Category("net.timeout")
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "net.timeout" {
		t.Fatalf("MarshalText = %q, want %q", b, "net.timeout")
	}

	var out Category
	if err := out.UnmarshalText([]byte(" Net.Timeout ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if out != c {
		t.Fatalf("UnmarshalText = %q, want %q", out, c)
	}

	if err := out.UnmarshalText([]byte("not/valid")); err == nil {
		t.Fatal("UnmarshalText accepted an invalid category")
	}

	if _, err := Category("Bad.Case").MarshalText(); err == nil {
		t.Fatal("MarshalText accepted an invalid category")
	}
}

// The shipped catalog must be entirely canonical; every constant carries a
// family so transport adapters can group on it.
func TestCatalog_AllCanonical(t *testing.T) {
	for _, c := range Catalog() {
		if err := Validate(c); err != nil {
			t.Fatalf("catalog entry %q is not canonical: %v", c, err)
		}
		if !strings.Contains(string(c), ".") {
			t.Fatalf("catalog entry %q has no family segment", c)
		}
	}
}

// Every catalog family must itself parse as a category: family-level rules
// (status mappers keyed by a bare family) are registered through the same
// Parse pipeline as full categories.
func TestCatalog_FamiliesAreParseable(t *testing.T) {
	for _, c := range Catalog() {
		fam := c.Family()
		got, err := Parse(fam)
		if err != nil {
			t.Fatalf("family %q of catalog entry %q does not parse: %v", fam, c, err)
		}
		if got != Category(fam) {
			t.Fatalf("Parse(%q) = %q, want %q", fam, got, fam)
		}
	}
}
