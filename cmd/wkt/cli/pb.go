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
	"fmt"
	"io"
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressBar is an io.ReadCloser with an associated ProgressBar.  Closing
// it closes the delegate and clears the terminal line of progress output.
type progressBar struct {
	r   io.ReadCloser
	bar *pb.ProgressBar
}

// wrapProgress wraps f with a progress bar on stderr that tracks the bytes
// read relative to the file size.  Stdin is returned as is.
func wrapProgress(f *os.File) (io.ReadCloser, error) {
	if f == os.Stdin {
		return os.Stdin, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New(int(fi.Size())).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = os.Stderr
	bar.Start()

	return progressBar{
		r:   bar.NewProxyReader(f),
		bar: bar,
	}, nil
}

// Read implements io.Reader.Read by simple delegation.
func (p progressBar) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

// Close implements io.Closer.Close by closing the delegate instance of
// ReadCloser as well as clearing the terminal line of progress output.
func (p progressBar) Close() error {
	// make sure newline is not printed by Finish()
	p.bar.Output = nil
	p.bar.NotPrint = true

	p.bar.Finish()

	fmt.Fprintf(os.Stderr, "\033[2K\r") // clear status bar

	return p.r.Close()
}
