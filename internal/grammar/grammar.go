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

// Package grammar implements the recursive-descent production rules of the
// WKT family of encodings.  Productions mirror the BNF one to one; each is
// unambiguous given a single lookahead token, so no backtracking is needed
// for well-formed input.
package grammar

import (
	"regexp"
	"strconv"

	geojson "github.com/paulmach/go.geojson"

	"m4o.io/wkt/internal/scanner"
)

// ProjFunc reprojects a single position from the named source reference
// system into the named target reference system.
type ProjFunc func(from, to string, position []float64) ([]float64, error)

// Config carries the per-parse settings.  It is immutable for one parse call.
type Config struct {
	// EmptyAsNull collapses every EMPTY geometry to a nil result instead of
	// a typed geometry with zero-length coordinates.
	EmptyAsNull bool

	// Proj, when non-nil, reprojects coordinates expressed in a reference
	// system other than EPSG:4326.
	Proj ProjFunc
}

// Parse converts a WKT, EWKT, or GeoSPARQL WKT literal into a GeoJSON
// geometry.  EMPTY geometries yield nil under Config.EmptyAsNull.
func Parse(input string, cfg Config) (*geojson.Geometry, error) {
	s := scanner.New(input)

	p := &parser{scan: s, cfg: cfg}

	crs, err := parseCRS(s)
	if err != nil {
		return nil, err
	}

	p.crs = crs

	g, err := p.geometry()
	if err != nil {
		return nil, err
	}

	if !s.AtEOF() {
		return nil, p.syntaxError("end of input")
	}

	return g, nil
}

const number = `-?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`

// coordPattern is indexed by arity-2; the dimension suffix decides how a flat
// run of numbers is sliced into tuples.
var coordPattern = [3]*regexp.Regexp{
	regexp.MustCompile(`^(` + number + `)\s+(` + number + `)`),
	regexp.MustCompile(`^(` + number + `)\s+(` + number + `)\s+(` + number + `)`),
	regexp.MustCompile(`^(` + number + `)\s+(` + number + `)\s+(` + number + `)\s+(` + number + `)`),
}

// geometryKinds are candidates for the keyword token.  Prefix matches are
// anchored at the current offset, so the order carries no ambiguity.
var geometryKinds = []string{
	"GEOMETRYCOLLECTION",
	"MULTILINESTRING",
	"MULTIPOLYGON",
	"MULTIPOINT",
	"LINESTRING",
	"POLYGON",
	"POINT",
}

// dims is the dimension flag derived from the optional Z/M/ZM suffix.
type dims struct {
	hasZ bool
	hasM bool
}

// arity is the number of numeric fields one coordinate tuple carries.
func (d dims) arity() int {
	n := 2
	if d.hasZ {
		n++
	}

	if d.hasM {
		n++
	}

	return n
}

type parser struct {
	scan *scanner.Scanner
	cfg  Config
	crs  crs
}

func (p *parser) syntaxError(expected string) error {
	return &scanner.SyntaxError{Expected: expected, Pos: p.scan.Pos(), Input: p.scan.Input()}
}

// geometry is the top-level production, re-entered recursively for each
// child of a geometry collection.
func (p *parser) geometry() (*geojson.Geometry, error) {
	kind, ok := p.scan.Match(geometryKinds...)
	if !ok {
		return nil, p.syntaxError("geometry type")
	}

	d := p.dimensions()

	switch kind {
	case "POINT":
		return p.point(d)
	case "LINESTRING":
		return p.lineString(d)
	case "POLYGON":
		return p.polygon(d)
	case "MULTIPOINT":
		return p.multiPoint(d)
	case "MULTILINESTRING":
		return p.multiLineString(d)
	case "MULTIPOLYGON":
		return p.multiPolygon(d)
	default:
		return p.geometryCollection()
	}
}

// dimensions consumes an optional Z, M, or ZM token.  ZM is tried first so
// that Z does not shadow it.
func (p *parser) dimensions() dims {
	tok, ok := p.scan.Match("ZM", "Z", "M")
	if !ok {
		return dims{}
	}

	switch tok {
	case "ZM":
		return dims{hasZ: true, hasM: true}
	case "Z":
		return dims{hasZ: true}
	default:
		return dims{hasM: true}
	}
}

func (p *parser) point(d dims) (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryPoint); empty {
		return g, nil
	}

	if err := p.scan.Expect("("); err != nil {
		return nil, err
	}

	c, err := p.coordinate(d)
	if err != nil {
		return nil, err
	}

	if err := p.scan.Expect(")"); err != nil {
		return nil, err
	}

	return geojson.NewPointGeometry(c), nil
}

func (p *parser) lineString(d dims) (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryLineString); empty {
		return g, nil
	}

	coords, err := p.coordinateGroup(d)
	if err != nil {
		return nil, err
	}

	return geojson.NewLineStringGeometry(coords), nil
}

func (p *parser) multiPoint(d dims) (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryMultiPoint); empty {
		return g, nil
	}

	coords, err := p.coordinateGroup(d)
	if err != nil {
		return nil, err
	}

	return geojson.NewMultiPointGeometry(coords...), nil
}

func (p *parser) polygon(d dims) (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryPolygon); empty {
		return g, nil
	}

	rings, err := p.ringGroup(d)
	if err != nil {
		return nil, err
	}

	return geojson.NewPolygonGeometry(rings), nil
}

func (p *parser) multiLineString(d dims) (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryMultiLineString); empty {
		return g, nil
	}

	lines, err := p.ringGroup(d)
	if err != nil {
		return nil, err
	}

	return geojson.NewMultiLineStringGeometry(lines...), nil
}

func (p *parser) multiPolygon(d dims) (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryMultiPolygon); empty {
		return g, nil
	}

	if err := p.scan.Expect("("); err != nil {
		return nil, err
	}

	var polygons [][][][]float64

	for {
		rings, err := p.ringGroup(d)
		if err != nil {
			return nil, err
		}

		polygons = append(polygons, rings)

		if _, ok := p.scan.Match(","); !ok {
			break
		}
	}

	if err := p.scan.Expect(")"); err != nil {
		return nil, err
	}

	return geojson.NewMultiPolygonGeometry(polygons...), nil
}

// geometryCollection is the only production that recurses into the top-level
// geometry production.  Recursion depth equals collection nesting depth, not
// coordinate count.
func (p *parser) geometryCollection() (*geojson.Geometry, error) {
	if empty, g := p.matchEmpty(geojson.GeometryCollection); empty {
		return g, nil
	}

	if err := p.scan.Expect("("); err != nil {
		return nil, err
	}

	var children []*geojson.Geometry

	for {
		g, err := p.geometry()
		if err != nil {
			return nil, err
		}

		// nil children, EMPTY collapsed under EmptyAsNull, are omitted
		// rather than kept as placeholders
		if g != nil {
			children = append(children, g)
		}

		if _, ok := p.scan.Match(","); !ok {
			break
		}
	}

	if err := p.scan.Expect(")"); err != nil {
		return nil, err
	}

	return geojson.NewCollectionGeometry(children...), nil
}

// coordinateGroup parses a parenthesized, comma-separated coordinate list.
// Individual coordinates may carry their own parentheses, the MultiPoint
// legacy form emitted by PostGIS among others.
func (p *parser) coordinateGroup(d dims) ([][]float64, error) {
	if err := p.scan.Expect("("); err != nil {
		return nil, err
	}

	coords, err := p.coordinateList(d, true)
	if err != nil {
		return nil, err
	}

	if err := p.scan.Expect(")"); err != nil {
		return nil, err
	}

	return coords, nil
}

// ringGroup parses a parenthesized, comma-separated list of coordinate
// lists: polygon rings or the lines of a multi line string.
func (p *parser) ringGroup(d dims) ([][][]float64, error) {
	if err := p.scan.Expect("("); err != nil {
		return nil, err
	}

	var rings [][][]float64

	for {
		if err := p.scan.Expect("("); err != nil {
			return nil, err
		}

		ring, err := p.coordinateList(d, false)
		if err != nil {
			return nil, err
		}

		if err := p.scan.Expect(")"); err != nil {
			return nil, err
		}

		rings = append(rings, ring)

		if _, ok := p.scan.Match(","); !ok {
			break
		}
	}

	if err := p.scan.Expect(")"); err != nil {
		return nil, err
	}

	return rings, nil
}

// coordinateList parses one-or-more comma-separated coordinates.  The list is
// iterated, never recursed, so coordinate-heavy geometries cannot exhaust the
// call stack.
func (p *parser) coordinateList(d dims, allowParens bool) ([][]float64, error) {
	var coords [][]float64

	for {
		parens := false
		if allowParens {
			_, parens = p.scan.Match("(")
		}

		c, err := p.coordinate(d)
		if err != nil {
			return nil, err
		}

		if parens {
			if err := p.scan.Expect(")"); err != nil {
				return nil, err
			}
		}

		coords = append(coords, c)

		if _, ok := p.scan.Match(","); !ok {
			break
		}
	}

	return coords, nil
}

// coordinate extracts one tuple whose arity comes from the dimension flags,
// then runs it through CRS resolution.
func (p *parser) coordinate(d dims) ([]float64, error) {
	caps, ok := p.scan.MatchRegexp(coordPattern[d.arity()-2])
	if !ok {
		return nil, p.syntaxError("coordinates")
	}

	if d.hasM && !d.hasZ {
		// the measure value of an M-only coordinate is consumed but not
		// carried; it round-trips as a 2-tuple
		caps = caps[:2]
	}

	position := make([]float64, len(caps))

	for i, c := range caps {
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, p.syntaxError("coordinates")
		}

		position[i] = f
	}

	return p.crs.resolve(position, p.cfg.Proj)
}

// matchEmpty consumes an EMPTY token if present and reports how the caller
// should represent it.
func (p *parser) matchEmpty(kind geojson.GeometryType) (bool, *geojson.Geometry) {
	if _, ok := p.scan.Match("EMPTY"); !ok {
		return false, nil
	}

	if p.cfg.EmptyAsNull {
		return true, nil
	}

	return true, typedEmpty(kind)
}

// typedEmpty builds the zero-length representation that preserves the
// geometry kind on round-trip.
func typedEmpty(kind geojson.GeometryType) *geojson.Geometry {
	g := &geojson.Geometry{Type: kind}

	switch kind {
	case geojson.GeometryPoint:
		g.Point = []float64{}
	case geojson.GeometryLineString:
		g.LineString = [][]float64{}
	case geojson.GeometryPolygon:
		g.Polygon = [][][]float64{}
	case geojson.GeometryMultiPoint:
		g.MultiPoint = [][]float64{}
	case geojson.GeometryMultiLineString:
		g.MultiLineString = [][][]float64{}
	case geojson.GeometryMultiPolygon:
		g.MultiPolygon = [][][][]float64{}
	case geojson.GeometryCollection:
		g.Geometries = []*geojson.Geometry{}
	}

	return g
}
