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

// Package apis defines the public contracts between the dbc core and its
// transport projections.
//
// The core's job ends when the diagnostic line is written and the process
// terminates; everything in this package exists for the tooling around
// that moment — crash collectors, log aggregators, and the HTTP/gRPC
// adapters that serve them. It contains only interfaces and small view
// types so that adapters never import the concrete handler.
package apis
