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

// Package wkt converts between the WKT family of geometry encodings and
// GeoJSON geometry objects.
//
// Three dialects are read: plain WKT (POINT(-44.3 60.1)), EWKT with a
// numeric spatial reference prefix (SRID=4326;POINT(-44.3 60.1)), and
// GeoSPARQL WKT literals with a reference-system IRI prefix
// (<http://www.opengis.net/def/crs/EPSG/0/4326> POINT(60.1 -44.3)).
// Keywords are case-insensitive.  Output is always canonical upper-case WKT
// without a reference-system prefix, GeoJSON being defined over WGS84.
package wkt

import (
	geojson "github.com/paulmach/go.geojson"

	"m4o.io/wkt/internal/grammar"
)

// Parse reads a WKT, EWKT, or GeoSPARQL WKT literal and returns the
// equivalent GeoJSON geometry.
//
// An EMPTY geometry parses to nil unless WithEmptyAsNull(false) is supplied,
// in which case a typed geometry with zero-length coordinates is returned.
// Coordinates expressed in a reference system other than EPSG:4326 require a
// projection supplied with WithProjection; without one Parse fails with
// ErrProjectionRequired when the first coordinate is reached.
//
// Parse either returns one fully formed geometry or an error; there is no
// partial result for malformed input.  Concurrent calls are independent.
func Parse(input string, opts ...ParseOption) (*geojson.Geometry, error) {
	cfg := defaultParseOptions

	for _, opt := range opts {
		opt(&cfg)
	}

	return grammar.Parse(input, grammar.Config{
		EmptyAsNull: cfg.emptyAsNull,
		Proj:        cfg.proj,
	})
}
