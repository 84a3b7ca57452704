// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wkt

import (
	"m4o.io/wkt/internal/grammar"
	"m4o.io/wkt/internal/scanner"
)

// SyntaxError reports input that does not conform to the WKT grammar.  The
// parse aborts at the reported position; no partial result is returned.
type SyntaxError = scanner.SyntaxError

var (
	// ErrProjectionRequired is returned by Parse when coordinates are
	// expressed in a reference system other than EPSG:4326 and no
	// WithProjection option was supplied.
	ErrProjectionRequired = grammar.ErrProjectionRequired

	// ErrUnsupportedCRS is returned by Parse when a GeoSPARQL CRS IRI does
	// not name an EPSG reference system, whether or not a projection was
	// supplied.
	ErrUnsupportedCRS = grammar.ErrUnsupportedCRS
)
