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

package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

// OpenInput opens path for reading, transparently decompressing gzip, zstd,
// lz4, and xz inputs selected by file extension.  An empty path means stdin.
// When progress is true and the input is a regular file, reads are tracked
// by a progress bar on stderr.
func OpenInput(path string, progress bool) (io.ReadCloser, error) {
	if path == "" {
		return os.Stdin, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var rdr io.ReadCloser = f

	if progress {
		rdr, err = wrapProgress(f)
		if err != nil {
			f.Close()

			return nil, err
		}
	}

	unpacked, err := unpack(rdr, path)
	if err != nil {
		rdr.Close()

		return nil, err
	}

	return unpacked, nil
}

// unpack selects a decompressor for the input by its file extension.
func unpack(rdr io.ReadCloser, path string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(rdr)
		if err != nil {
			return nil, err
		}

		return &unpackedReader{r: zr, closers: []io.Closer{zr, rdr}}, nil

	case ".zst":
		zr, err := zstd.NewReader(rdr)
		if err != nil {
			return nil, err
		}

		return &unpackedReader{r: zr, closers: []io.Closer{zr.IOReadCloser(), rdr}}, nil

	case ".lz4":
		return &unpackedReader{r: lz4.NewReader(rdr), closers: []io.Closer{rdr}}, nil

	case ".xz":
		xr, err := xz.NewReader(rdr)
		if err != nil {
			return nil, err
		}

		return &unpackedReader{r: xr, closers: []io.Closer{rdr}}, nil

	default:
		return rdr, nil
	}
}

// unpackedReader pairs a decompressing reader with the closers of the layers
// beneath it.
type unpackedReader struct {
	r       io.Reader
	closers []io.Closer
}

func (u *unpackedReader) Read(b []byte) (int, error) {
	return u.r.Read(b)
}

func (u *unpackedReader) Close() error {
	var err error

	for _, c := range u.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}

	return err
}
