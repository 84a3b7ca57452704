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
	"encoding/json"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/wkt"
)

func TestParseToGeoJSON(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"point": {
			"POINT(-44.3 60.1)",
			`{"type":"Point","coordinates":[-44.3,60.1]}`,
		},
		"point z": {
			"POINT Z(-44.3 60.1 12)",
			`{"type":"Point","coordinates":[-44.3,60.1,12]}`,
		},
		"line string": {
			"LINESTRING(1 2,3 4)",
			`{"type":"LineString","coordinates":[[1,2],[3,4]]}`,
		},
		"polygon": {
			"POLYGON((0 0,4 0,4 4,0 0))",
			`{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,0]]]}`,
		},
		"multi point": {
			"MULTIPOINT((1 2),(3 4))",
			`{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`,
		},
		"multi line string": {
			"MULTILINESTRING((1 2,3 4),(5 6,7 8))",
			`{"type":"MultiLineString","coordinates":[[[1,2],[3,4]],[[5,6],[7,8]]]}`,
		},
		"multi polygon": {
			"MULTIPOLYGON(((0 0,1 0,1 1,0 0)))",
			`{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]}`,
		},
		"collection": {
			"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(3 4,5 6))",
			`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]},{"type":"LineString","coordinates":[[3,4],[5,6]]}]}`,
		},
		"ewkt wgs84": {
			"SRID=4326;POINT(-44.3 60.1)",
			`{"type":"Point","coordinates":[-44.3,60.1]}`,
		},
		"geosparql wgs84": {
			"<http://www.opengis.net/def/crs/EPSG/0/4326> POINT(60.1 -44.3)",
			`{"type":"Point","coordinates":[-44.3,60.1]}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := wkt.Parse(tt.input)
			require.NoError(t, err)

			actual, err := json.Marshal(g)
			require.NoError(t, err)

			assert.JSONEq(t, tt.expected, string(actual))
		})
	}
}

func TestParseEmptyDefaultsToNil(t *testing.T) {
	g, err := wkt.Parse("GEOMETRYCOLLECTION EMPTY")
	require.NoError(t, err)

	assert.Nil(t, g)
}

func TestParseEmptyAsTypedGeometry(t *testing.T) {
	g, err := wkt.Parse("MULTIPOLYGON EMPTY", wkt.WithEmptyAsNull(false))
	require.NoError(t, err)

	require.NotNil(t, g)
	assert.Equal(t, geojson.GeometryMultiPolygon, g.Type)
	assert.Empty(t, g.MultiPolygon)
}

func TestParseSyntaxErrorCarriesPosition(t *testing.T) {
	_, err := wkt.Parse("POINT(1,2)")

	var serr *wkt.SyntaxError
	require.ErrorAs(t, err, &serr)

	assert.Equal(t, "POINT(1,2)", serr.Input)
	assert.Contains(t, err.Error(), "^")
}

func TestParseProjectionRequired(t *testing.T) {
	_, err := wkt.Parse("SRID=3857;POINT(1 2)")

	assert.ErrorIs(t, err, wkt.ErrProjectionRequired)
}

func TestParseUnsupportedCRS(t *testing.T) {
	_, err := wkt.Parse("<urn:ogc:def:crs:OGC:1.3:CRS84> POINT(1 2)")

	assert.ErrorIs(t, err, wkt.ErrUnsupportedCRS)
}

func TestParseWithProjection(t *testing.T) {
	g, err := wkt.Parse("SRID=3857;POINT(0 0)",
		wkt.WithProjection(func(from, to string, position []float64) ([]float64, error) {
			assert.Equal(t, "EPSG:3857", from)
			assert.Equal(t, "EPSG:4326", to)

			return []float64{0, 0}, nil
		}))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, g.Point)
}
