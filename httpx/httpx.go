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

// Package httpx projects contract violation descriptors into HTTP
// responses for crash-report ingestion endpoints.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/dbc/apis"
	"dirpx.dev/dbc/category"
	"dirpx.dev/dbc/errno"
)

// Writer is a thin adapter that knows how to turn a ViolationDescriptor
// into an HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the descriptor as JSON and writes it to the response
// writer. The HTTP status is resolved via the Mapper from the
// descriptor's errno and category.
//
// No automatic redaction or filtering is performed here: whatever is
// present in the descriptor is exposed as-is. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, v apis.ViolationDescriptor) {
	st := w.Mapper.Status(errno.Code(v.Errno), category.Category(v.Category))

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)

	b, err := json.Marshal(v)
	if err != nil {
		// The descriptor is plain strings and ints; this cannot happen in
		// practice, but a collector endpoint must still answer something.
		_, _ = rw.Write([]byte(`{}`))
		return
	}
	_, _ = rw.Write(b)
}
