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
	"fmt"
	"log"

	geojson "github.com/paulmach/go.geojson"

	"m4o.io/wkt"
)

func ExampleParse() {
	g, err := wkt.Parse("SRID=4326;LINESTRING(-44.3 60.1,-44.2 60.2)")
	if err != nil {
		log.Fatal(err)
	}

	raw, err := g.MarshalJSON()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(raw))
	// Output: {"type":"LineString","coordinates":[[-44.3,60.1],[-44.2,60.2]]}
}

func ExampleParse_geoSPARQL() {
	// GeoSPARQL EPSG:4326 literals carry latitude first; the result is
	// longitude first, as GeoJSON requires.
	g, err := wkt.Parse("<http://www.opengis.net/def/crs/EPSG/0/4326> POINT(60.1 -44.3)")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(g.Point)
	// Output: [-44.3 60.1]
}

func ExampleStringify() {
	g := geojson.NewCollectionGeometry(
		geojson.NewPointGeometry([]float64{-44.3, 60.1}),
		geojson.NewMultiPointGeometry([]float64{1, 2}, []float64{3, 4}),
	)

	s, err := wkt.Stringify(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(s)
	// Output: GEOMETRYCOLLECTION(POINT(-44.3 60.1),MULTIPOINT(1 2,3 4))
}
