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
	"os"

	"github.com/spf13/pflag"
)

// -- *os.File Value
type writerValue struct {
	value    **os.File
	typename string
}

// NewWriterValue creates a cobra Value object for an *os.File opened for
// writing.
func NewWriterValue(def *os.File, p **os.File, typename string) pflag.Value {
	wv := &writerValue{
		value:    p,
		typename: typename,
	}
	*wv.value = def

	return wv
}

func (w *writerValue) Set(val string) error {
	f, err := os.Create(val)
	if err != nil {
		return err
	}

	*w.value = f

	return nil
}

func (w *writerValue) Type() string {
	return w.typename
}

func (w *writerValue) String() string {
	if *w.value == nil {
		return ""
	}

	return (*w.value).Name()
}
