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

package wkt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/wkt"
)

// Canonical WKT survives parse-then-stringify byte for byte.  Input here is
// already canonical: upper-case keywords, no redundant whitespace, shortest
// decimal form.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"POINT(-44.3 60.1)",
		"POINT Z(-44.3 60.1 12)",
		"LINESTRING(1 2,3 4,5 6)",
		"LINESTRING Z(1 2 3,4 5 6)",
		"POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 2,1 1))",
		"MULTIPOINT(1 2,3 4)",
		"MULTILINESTRING((1 2,3 4),(5 6,7 8))",
		"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
		"GEOMETRYCOLLECTION(POINT(1 2),MULTIPOINT(3 4,5 6))",
		"GEOMETRYCOLLECTION(GEOMETRYCOLLECTION(POINT(1 2)))",
	}

	for _, input := range inputs {
		g, err := wkt.Parse(input)
		require.NoError(t, err, input)

		actual, err := wkt.Stringify(g)
		require.NoError(t, err, input)

		assert.Equal(t, input, actual)
	}
}

// Non-canonical spellings normalize rather than round-trip.
func TestRoundTripNormalizes(t *testing.T) {
	tests := map[string]string{
		"point( -44.30 60.1 )":    "POINT(-44.3 60.1)",
		"MultiPoint((1 2),(3 4))": "MULTIPOINT(1 2,3 4)",
		"SRID=4326;POINT(1 2)":    "POINT(1 2)",
		"POINT(1e3 2)":            "POINT(1000 2)",
	}

	for input, expected := range tests {
		g, err := wkt.Parse(input)
		require.NoError(t, err, input)

		actual, err := wkt.Stringify(g)
		require.NoError(t, err, input)

		assert.Equal(t, expected, actual, input)
	}
}

// Typed EMPTY geometries keep their kind through a round-trip when
// WithEmptyAsNull is off.
func TestRoundTripTypedEmpty(t *testing.T) {
	inputs := []string{
		"POINT EMPTY",
		"LINESTRING EMPTY",
		"POLYGON EMPTY",
		"MULTIPOINT EMPTY",
		"MULTILINESTRING EMPTY",
		"MULTIPOLYGON EMPTY",
		"GEOMETRYCOLLECTION EMPTY",
	}

	for _, input := range inputs {
		g, err := wkt.Parse(input, wkt.WithEmptyAsNull(false))
		require.NoError(t, err, input)

		actual, err := wkt.Stringify(g)
		require.NoError(t, err, input)

		assert.Equal(t, input, actual)
	}
}
