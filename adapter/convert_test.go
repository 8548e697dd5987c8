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

package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/dbc/apis"
	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
	"dirpx.dev/dbc/report"
)

func TestToDescriptor(t *testing.T) {
	d := report.Diagnostic{
		Time:      time.Date(2026, time.August, 29, 10, 11, 12, 0, time.Local),
		File:      "main.go",
		Line:      42,
		Condition: "zero",
		Code:      errno.ENOENT,
		Phrase:    errno.Phrase(errno.ENOENT),
		Message:   "General pre-condition failed",
		Category:  category.Precondition,
		Stack:     []byte("goroutine 1 [running]:\nmain.main()"),
	}

	got := ToDescriptor(d)
	want := apis.ViolationDescriptor{
		Time:      "2026-08-29 10:11:12",
		File:      "main.go",
		Line:      42,
		Condition: "zero",
		Errno:     2,
		Phrase:    "No such file or directory",
		Message:   "General pre-condition failed",
		Category:  "general.precondition",
		Stack:     "goroutine 1 [running]:\nmain.main()",
	}
	assert.Equal(t, want, got)
}

// The descriptor timestamp must match the timestamp field of the rendered
// diagnostic line, character for character.
func TestToDescriptor_TimeMatchesLine(t *testing.T) {
	d := report.Diagnostic{
		Time:   time.Date(2026, time.January, 2, 3, 4, 5, 0, time.Local),
		File:   "x.go",
		Phrase: errno.Phrase(errno.Success),
	}
	v := ToDescriptor(d)
	assert.Contains(t, report.Line(d), "["+v.Time+"]")
}

func TestToDescriptor_OptionalFieldsStayEmpty(t *testing.T) {
	v := ToDescriptor(report.Diagnostic{
		Time:   time.Now(),
		File:   "x.go",
		Phrase: errno.Phrase(errno.Success),
	})
	assert.Empty(t, v.Category)
	assert.Empty(t, v.Stack)
	assert.Zero(t, v.Errno)
}
