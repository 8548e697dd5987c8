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

// Package mapper provides deterministic, immutable mappings from system
// error codes (dirpx.dev/dbc/errno) and check categories
// (dirpx.dev/dbc/category) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A contract violation carries two classifiers:
//
//  1. the errno Code observed at violation time (e.g. errno.ENOENT),
//  2. the Category of the failed check (e.g. "fs.exists", "net.timeout").
//
// Crash collectors and report-ingestion endpoints need to turn this pair
// into concrete status codes. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per errno code;
//   - category-aware — callers can add rules for specific categories or
//     whole families;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the errno code;
//  2. rule for the exact category ("fs.exists");
//  3. rule for the category's family ("fs");
//  4. per-code default (library or user-adjusted);
//  5. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// The package ships with defaults for the whole errno taxonomy band that
// has a natural transport meaning (ENOENT -> 404 / NotFound, EACCES -> 403
// / PermissionDenied, ETIMEDOUT -> 504 / DeadlineExceeded, ...). Every
// violation report is still a crash, so the fallback for codes with no
// transport meaning — including errno 0 — stays 500 / Internal.
package mapper
