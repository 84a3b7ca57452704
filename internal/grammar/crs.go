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

package grammar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"m4o.io/wkt/internal/scanner"
)

var (
	// ErrProjectionRequired is returned when coordinates are expressed in a
	// reference system other than EPSG:4326 and no projection was supplied.
	ErrProjectionRequired = errors.New("projection required")

	// ErrUnsupportedCRS is returned when a GeoSPARQL CRS IRI does not name
	// an EPSG reference system.
	ErrUnsupportedCRS = errors.New("unsupported coordinate reference system")
)

const (
	wgs84SRID = 4326
	wgs84     = "EPSG:4326"
)

var (
	sridPattern    = regexp.MustCompile(`^(\d+);`)
	iriPattern     = regexp.MustCompile(`^<([^>]*)>`)
	epsgIRIPattern = regexp.MustCompile(`^http://www\.opengis\.net/def/crs/EPSG/0/(\d+)$`)
)

type crsKind int

const (
	crsNone crsKind = iota
	crsSRID
	crsIRI
)

// crs is the reference-system descriptor for one whole parse.  Exactly one
// applies per document; it is read once at the very start of the input and
// never per nested geometry.
type crs struct {
	kind crsKind
	srid int
	iri  string
}

// parseCRS consumes an optional EWKT SRID prefix or GeoSPARQL IRI prefix.
func parseCRS(s *scanner.Scanner) (crs, error) {
	if _, ok := s.Match("SRID="); ok {
		caps, ok := s.MatchRegexp(sridPattern)
		if !ok {
			return crs{}, &scanner.SyntaxError{Expected: "spatial reference id", Pos: s.Pos(), Input: s.Input()}
		}

		srid, err := strconv.Atoi(caps[0])
		if err != nil {
			return crs{}, &scanner.SyntaxError{Expected: "spatial reference id", Pos: s.Pos(), Input: s.Input()}
		}

		return crs{kind: crsSRID, srid: srid}, nil
	}

	if caps, ok := s.MatchRegexp(iriPattern); ok {
		return crs{kind: crsIRI, iri: caps[0]}, nil
	}

	return crs{}, nil
}

// resolve transforms one raw position into GeoJSON axis order and reference
// system.  It runs once per coordinate: the descriptor is global to the
// document but the projection contract is stateless and cheap to invoke.
// Errors surface at the first offending coordinate, not up front.
func (c crs) resolve(position []float64, proj ProjFunc) ([]float64, error) {
	switch c.kind {
	case crsNone:
		return position, nil

	case crsSRID:
		if c.srid == wgs84SRID {
			return position, nil
		}

		from := fmt.Sprintf("EPSG:%d", c.srid)

		if proj == nil {
			return nil, fmt.Errorf("%w for %s", ErrProjectionRequired, from)
		}

		return proj(from, wgs84, position)

	default: // crsIRI
		caps := epsgIRIPattern.FindStringSubmatch(c.iri)
		if caps == nil {
			return nil, fmt.Errorf("%w: <%s>", ErrUnsupportedCRS, c.iri)
		}

		srid, err := strconv.Atoi(caps[1])
		if err != nil {
			return nil, fmt.Errorf("%w: <%s>", ErrUnsupportedCRS, c.iri)
		}

		if srid == wgs84SRID {
			// GeoSPARQL EPSG:4326 literals carry latitude first; GeoJSON
			// wants longitude first
			position[0], position[1] = position[1], position[0]

			return position, nil
		}

		if proj == nil {
			return nil, fmt.Errorf("%w for <%s>", ErrProjectionRequired, c.iri)
		}

		// the raw IRI, not a normalized EPSG code, names the source
		return proj(c.iri, wgs84, position)
	}
}
