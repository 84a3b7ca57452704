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

// Package info implements the wkt info command, which summarizes the
// geometries in a WKT file.
package info

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/wkt"
	"m4o.io/wkt/cmd/wkt/cli"
	"m4o.io/wkt/model"
)

var out io.Writer = os.Stdout

// summary aggregates what was seen in one WKT file.
type summary struct {
	Geometries  int64              `json:"geometries"`
	Counts      map[string]int64   `json:"counts"`
	Empty       int64              `json:"empty"`
	Positions   int64              `json:"positions"`
	BoundingBox *model.BoundingBox `json:"bounding_box,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
}

var infoCmd = &cobra.Command{
	Use:   "info [<WKT file>]",
	Short: "Print information about a WKT file",
	Long:  "Print per-kind geometry counts, position counts, and the overall bounding box of a newline-delimited WKT file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) == 1 {
			path = args[0]
		}

		flags := cmd.Flags()

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		in, err := cli.OpenInput(path, !jsonfmt)
		if err != nil {
			log.Fatal(err)
		}

		info, err := runInfo(in)
		if err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(info)
		} else {
			renderTxt(info)
		}
	},
}

// runInfo scans a newline-delimited WKT stream and aggregates a summary.
// EMPTY geometries count toward their kind but contribute no positions.
func runInfo(in io.Reader) (*summary, error) {
	info := &summary{
		Counts:      make(map[string]int64),
		BoundingBox: model.InitialBoundingBox(),
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 64*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		g, err := wkt.Parse(line, wkt.WithEmptyAsNull(false))
		if err != nil {
			return nil, err
		}

		info.Geometries++
		info.Counts[string(g.Type)]++

		var positions int64

		model.EachPosition(g, func(position []float64) {
			positions++

			info.BoundingBox.ExpandWithPosition(position)
		})

		if positions == 0 {
			info.Empty++
		}

		info.Positions += positions
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	if info.Positions == 0 {
		info.BoundingBox = nil
	}

	return info, nil
}

func renderJSON(info *summary) {
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
}

func renderTxt(info *summary) {
	fmt.Fprintf(out, "Geometries: %s\n", humanize.Comma(info.Geometries))

	for _, kind := range []string{
		"Point", "LineString", "Polygon",
		"MultiPoint", "MultiLineString", "MultiPolygon",
		"GeometryCollection",
	} {
		if n, ok := info.Counts[kind]; ok {
			fmt.Fprintf(out, "  %s: %s\n", kind, humanize.Comma(n))
		}
	}

	fmt.Fprintf(out, "Empty: %s\n", humanize.Comma(info.Empty))
	fmt.Fprintf(out, "Positions: %s\n", humanize.Comma(info.Positions))

	if info.BoundingBox != nil {
		fmt.Fprintf(out, "Bounding box: %s\n", info.BoundingBox)
	}
}
