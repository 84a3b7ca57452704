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

package model

import (
	geojson "github.com/paulmach/go.geojson"
)

// EachPosition visits every position of the geometry in encounter order.
// Recursion follows geometry collection nesting only; coordinate sequences
// are iterated.
func EachPosition(g *geojson.Geometry, fn func(position []float64)) {
	if g == nil {
		return
	}

	switch g.Type {
	case geojson.GeometryPoint:
		if len(g.Point) > 0 {
			fn(g.Point)
		}
	case geojson.GeometryMultiPoint:
		for _, p := range g.MultiPoint {
			fn(p)
		}
	case geojson.GeometryLineString:
		for _, p := range g.LineString {
			fn(p)
		}
	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			for _, p := range line {
				fn(p)
			}
		}
	case geojson.GeometryPolygon:
		for _, ring := range g.Polygon {
			for _, p := range ring {
				fn(p)
			}
		}
	case geojson.GeometryMultiPolygon:
		for _, polygon := range g.MultiPolygon {
			for _, ring := range polygon {
				for _, p := range ring {
					fn(p)
				}
			}
		}
	case geojson.GeometryCollection:
		for _, child := range g.Geometries {
			EachPosition(child, fn)
		}
	}
}
