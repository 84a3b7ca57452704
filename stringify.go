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
	"bytes"
	"errors"
	"fmt"
	"strconv"

	geojson "github.com/paulmach/go.geojson"
)

// ErrNilGeometry is returned by Stringify for a nil geometry or a nil
// collection child.
var ErrNilGeometry = errors.New("cannot stringify nil geometry")

// Stringify renders a GeoJSON geometry as canonical WKT.  Keywords are
// always upper-case; zero-length coordinates render as EMPTY; a Z dimension
// token is emitted when the geometry's first position carries exactly three
// components.  No reference-system prefix is ever produced: GeoJSON is
// defined over WGS84, so the output is plain WKT, never EWKT.
func Stringify(g *geojson.Geometry) (string, error) {
	var buf bytes.Buffer

	if err := write(&buf, g); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// write dispatches on the geometry kind to the structural mirror of its
// production rule.
func write(buf *bytes.Buffer, g *geojson.Geometry) error {
	if g == nil {
		return ErrNilGeometry
	}

	switch g.Type {
	case geojson.GeometryPoint:
		if writeTag(buf, "POINT", g.Point, len(g.Point) == 0) {
			buf.WriteByte('(')
			writePosition(buf, g.Point)
			buf.WriteByte(')')
		}

	case geojson.GeometryMultiPoint:
		if writeTag(buf, "MULTIPOINT", samplePositions(g.MultiPoint), len(g.MultiPoint) == 0) {
			writePositionList(buf, g.MultiPoint)
		}

	case geojson.GeometryLineString:
		if writeTag(buf, "LINESTRING", samplePositions(g.LineString), len(g.LineString) == 0) {
			writePositionList(buf, g.LineString)
		}

	case geojson.GeometryMultiLineString:
		if writeTag(buf, "MULTILINESTRING", sampleRings(g.MultiLineString), len(g.MultiLineString) == 0) {
			writeRingList(buf, g.MultiLineString)
		}

	case geojson.GeometryPolygon:
		if writeTag(buf, "POLYGON", sampleRings(g.Polygon), len(g.Polygon) == 0) {
			writeRingList(buf, g.Polygon)
		}

	case geojson.GeometryMultiPolygon:
		if writeTag(buf, "MULTIPOLYGON", samplePolygons(g.MultiPolygon), len(g.MultiPolygon) == 0) {
			buf.WriteByte('(')

			for i, polygon := range g.MultiPolygon {
				if i > 0 {
					buf.WriteByte(',')
				}

				writeRingList(buf, polygon)
			}

			buf.WriteByte(')')
		}

	case geojson.GeometryCollection:
		if writeTag(buf, "GEOMETRYCOLLECTION", nil, len(g.Geometries) == 0) {
			buf.WriteByte('(')

			for i, child := range g.Geometries {
				if i > 0 {
					buf.WriteByte(',')
				}

				if err := write(buf, child); err != nil {
					return err
				}
			}

			buf.WriteByte(')')
		}

	default:
		return fmt.Errorf("unsupported geometry type %q", g.Type)
	}

	return nil
}

// writeTag emits the upper-case keyword, the Z dimension token when the
// sampled position has exactly three components, and EMPTY when the body is
// zero-length.  It reports whether a body should follow.
func writeTag(buf *bytes.Buffer, keyword string, sample []float64, empty bool) bool {
	buf.WriteString(keyword)

	if len(sample) == 3 {
		buf.WriteString(" Z")
	}

	if empty {
		buf.WriteString(" EMPTY")

		return false
	}

	return true
}

func writePosition(buf *bytes.Buffer, position []float64) {
	for i, v := range position {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
}

func writePositionList(buf *bytes.Buffer, coords [][]float64) {
	buf.WriteByte('(')

	for i, p := range coords {
		if i > 0 {
			buf.WriteByte(',')
		}

		writePosition(buf, p)
	}

	buf.WriteByte(')')
}

func writeRingList(buf *bytes.Buffer, rings [][][]float64) {
	buf.WriteByte('(')

	for i, ring := range rings {
		if i > 0 {
			buf.WriteByte(',')
		}

		writePositionList(buf, ring)
	}

	buf.WriteByte(')')
}

func samplePositions(coords [][]float64) []float64 {
	if len(coords) > 0 {
		return coords[0]
	}

	return nil
}

func sampleRings(rings [][][]float64) []float64 {
	if len(rings) > 0 {
		return samplePositions(rings[0])
	}

	return nil
}

func samplePolygons(polygons [][][][]float64) []float64 {
	if len(polygons) > 0 {
		return sampleRings(polygons[0])
	}

	return nil
}
