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

// Package convert implements the wkt convert command, which turns
// newline-delimited WKT into newline-delimited GeoJSON.
package convert

import (
	"bufio"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/destel/rill"
	"github.com/spf13/cobra"

	"m4o.io/wkt"
	"m4o.io/wkt/cmd/wkt/cli"
)

const maxLineSize = 64 * 1024 * 1024 // a single ring can carry thousands of points

var out *os.File

func init() {
	cli.RootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.Uint16P("cpu", "c", uint16(runtime.GOMAXPROCS(-1)), "number of CPUs to use for conversion")
	flags.BoolP("keep-empty", "k", false, "render EMPTY geometries as typed geometries with empty coordinates instead of null")
	flags.VarP(cli.NewWriterValue(os.Stdout, &out, "file"), "output", "o", "write newline-delimited GeoJSON to a file instead of stdout")
}

var convertCmd = &cobra.Command{
	Use:   "convert [<WKT file>]",
	Short: "Convert newline-delimited WKT into newline-delimited GeoJSON",
	Long: "Convert newline-delimited WKT, EWKT, or GeoSPARQL literals into " +
		"newline-delimited GeoJSON; gzip, zstd, lz4, and xz inputs are " +
		"decompressed transparently",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) == 1 {
			path = args[0]
		}

		flags := cmd.Flags()

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			log.Fatal(err)
		}

		keepEmpty, err := flags.GetBool("keep-empty")
		if err != nil {
			log.Fatal(err)
		}

		in, err := cli.OpenInput(path, out != os.Stdout)
		if err != nil {
			log.Fatal(err)
		}

		if err := runConvert(in, out, ncpu, keepEmpty); err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}
	},
}

// runConvert drives the conversion pipeline: one goroutine reads lines, ncpu
// goroutines parse and re-encode them, and the caller's goroutine writes
// results in input order.
func runConvert(in io.Reader, w io.Writer, ncpu uint16, keepEmpty bool) error {
	if ncpu < 1 {
		ncpu = 1
	}

	lines := readLines(in)

	converted := rill.OrderedMap(lines, int(ncpu), func(line string) (string, error) {
		return convertLine(line, keepEmpty)
	})

	wrtr := bufio.NewWriter(w)

	for res := range converted {
		if res.Error != nil {
			return res.Error
		}

		if _, err := wrtr.WriteString(res.Value); err != nil {
			return err
		}

		if err := wrtr.WriteByte('\n'); err != nil {
			return err
		}
	}

	return wrtr.Flush()
}

// convertLine parses one WKT line and renders it as a GeoJSON geometry
// object.  A null EMPTY geometry renders as JSON null.
func convertLine(line string, keepEmpty bool) (string, error) {
	g, err := wkt.Parse(line, wkt.WithEmptyAsNull(!keepEmpty))
	if err != nil {
		return "", err
	}

	if g == nil {
		return "null", nil
	}

	b, err := g.MarshalJSON()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// readLines feeds non-blank input lines into the pipeline.
func readLines(in io.Reader) <-chan rill.Try[string] {
	ch := make(chan rill.Try[string])

	go func() {
		defer close(ch)

		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}

			ch <- rill.Try[string]{Value: line}
		}

		if err := sc.Err(); err != nil {
			slog.Error("unable to read input", "error", err)
			ch <- rill.Try[string]{Error: err}
		}
	}()

	return ch
}
