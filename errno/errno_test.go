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
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestPhrase_DefinedCodes(t *testing.T) {
	for _, c := range Codes() {
		p := Phrase(c)
		if p == "" {
			t.Fatalf("Phrase(%d) returned empty string", int(c))
		}
		if p == FallbackPhrase {
			t.Fatalf("Phrase(%d) returned fallback for a defined code", int(c))
		}
		// Determinism: repeated calls must be identical.
		if again := Phrase(c); again != p {
			t.Fatalf("Phrase(%d) not deterministic: %q then %q", int(c), p, again)
		}
	}
}

func TestPhrase_Known(t *testing.T) {
	tests := []struct {
		name string
		in   Code
		want string
	}{
		{"success", Success, "Success"},
		{"enoent", ENOENT, "No such file or directory"},
		{"eacces", EACCES, "Permission denied"},
		{"edom", EDOM, "Numerical argument out of domain"},
		{"etimedout", ETIMEDOUT, "Connection timed out"},
		{"enotrecoverable", ENOTRECOVERABLE, "State not recoverable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phrase(tt.in); got != tt.want {
				t.Fatalf("Phrase(%d) = %q, want %q", int(tt.in), got, tt.want)
			}
		})
	}
}

func TestPhrase_Undefined(t *testing.T) {
	tests := []struct {
		name string
		in   Code
	}{
		{"negative", -1},
		{"hole in early band", 15},
		{"hole between bands", 50},
		{"past the table", Code(maxCode + 1)},
		{"far out of range", 9999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phrase(tt.in); got != FallbackPhrase {
				t.Fatalf("Phrase(%d) = %q, want fallback %q", int(tt.in), got, FallbackPhrase)
			}
			if Defined(tt.in) {
				t.Fatalf("Defined(%d) = true, want false", int(tt.in))
			}
		})
	}
}

func TestAliases_SharePhrase(t *testing.T) {
	if EAGAIN != EWOULDBLOCK {
		t.Fatalf("EAGAIN (%d) and EWOULDBLOCK (%d) must share a value", EAGAIN, EWOULDBLOCK)
	}
	if ENOTSUP != EOPNOTSUPP {
		t.Fatalf("ENOTSUP (%d) and EOPNOTSUPP (%d) must share a value", ENOTSUP, EOPNOTSUPP)
	}
	if Phrase(EAGAIN) != Phrase(EWOULDBLOCK) {
		t.Fatalf("aliased codes resolved to different phrases")
	}

	for name, c := range Aliases() {
		if !Defined(c) {
			t.Fatalf("alias %s maps to undefined code %d", name, int(c))
		}
	}
}

func TestName_And_String(t *testing.T) {
	tests := []struct {
		in         Code
		wantName   string
		wantString string
	}{
		{ENOENT, "ENOENT", "ENOENT"},
		{EWOULDBLOCK, "EAGAIN", "EAGAIN"}, // alias resolves to the older name
		{Success, "SUCCESS", "SUCCESS"},
		{Code(999), "", "999"},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.wantName {
			t.Fatalf("Name(%d) = %q, want %q", int(tt.in), got, tt.wantName)
		}
		if got := tt.in.String(); got != tt.wantString {
			t.Fatalf("Code(%d).String() = %q, want %q", int(tt.in), got, tt.wantString)
		}
	}
}

func TestCodes_AscendingAndComplete(t *testing.T) {
	cs := Codes()
	if len(cs) == 0 {
		t.Fatal("Codes() returned no codes")
	}
	for i := 1; i < len(cs); i++ {
		if cs[i] <= cs[i-1] {
			t.Fatalf("Codes() not strictly ascending at index %d: %d then %d", i, cs[i-1], cs[i])
		}
	}
	// Aliased values appear once.
	seen := map[Code]bool{}
	for _, c := range cs {
		if seen[c] {
			t.Fatalf("Codes() contains %d twice", int(c))
		}
		seen[c] = true
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		in     error
		want   Code
		wantOK bool
	}{
		{"nil", nil, Success, false},
		{"plain error", errors.New("boom"), Success, false},
		{"bare errno", syscall.ENOENT, ENOENT, true},
		{"path error", &os.PathError{Op: "open", Path: "/nope", Err: syscall.EACCES}, EACCES, true},
		{"wrapped", fmt.Errorf("outer: %w", syscall.ETIMEDOUT), ETIMEDOUT, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromError(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("FromError() = (%d, %v), want (%d, %v)", int(got), ok, int(tt.want), tt.wantOK)
			}
		})
	}
}
