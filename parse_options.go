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
)

// ProjFunc reprojects a single position from the named source reference
// system into the named target reference system, EPSG:4326.  The source is
// either an "EPSG:<n>" code, for EWKT input, or the raw CRS IRI, for
// GeoSPARQL input.  Implementations must be pure for round-trips to be
// meaningful; errors propagate to the caller of Parse unmodified.
type ProjFunc = grammar.ProjFunc

// parseOptions provides optional configuration parameters for one parse call.
type parseOptions struct {
	emptyAsNull bool     // collapse EMPTY geometries to nil
	proj        ProjFunc // reprojection of non-WGS84 coordinates
}

var defaultParseOptions = parseOptions{emptyAsNull: true}

// ParseOption configures how we parse.
type ParseOption func(*parseOptions)

// WithEmptyAsNull controls the representation of EMPTY geometries.  When
// true, the default, an EMPTY geometry at any nesting depth becomes nil and
// nil children are omitted from collection children.  When false a typed
// geometry with zero-length coordinates is produced instead, which preserves
// the kind on round-trip.
func WithEmptyAsNull(b bool) ParseOption {
	return func(o *parseOptions) {
		o.emptyAsNull = b
	}
}

// WithProjection lets you supply the reprojection used for coordinates
// expressed in a reference system other than EPSG:4326.  It is invoked
// synchronously, once per coordinate.
func WithProjection(proj ProjFunc) ParseOption {
	return func(o *parseOptions) {
		o.proj = proj
	}
}
