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

package scanner_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/wkt/internal/scanner"
)

func TestMatchSkipsLeadingSpace(t *testing.T) {
	s := scanner.New("   point")

	tok, ok := s.Match("POINT")
	assert.True(t, ok)
	assert.Equal(t, "POINT", tok)
	assert.Equal(t, 8, s.Pos())
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	s := scanner.New("MuLtIpOiNt(1 2)")

	tok, ok := s.Match("MULTIPOINT")
	assert.True(t, ok)
	assert.Equal(t, "MULTIPOINT", tok)
}

func TestMatchReturnsCanonicalCandidate(t *testing.T) {
	s := scanner.New("empty")

	tok, ok := s.Match("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "EMPTY", tok)
}

func TestMatchTriesCandidatesInOrder(t *testing.T) {
	s := scanner.New("ZM rest")

	tok, ok := s.Match("ZM", "Z", "M")
	assert.True(t, ok)
	assert.Equal(t, "ZM", tok)
}

func TestMatchLeavesPositionOnFailure(t *testing.T) {
	s := scanner.New("  LINESTRING")

	_, ok := s.Match("POINT")
	assert.False(t, ok)

	// the failed match must not consume the candidate, only whitespace
	tok, ok := s.Match("LINESTRING")
	assert.True(t, ok)
	assert.Equal(t, "LINESTRING", tok)
}

func TestMatchRegexpAdvancesPastMatch(t *testing.T) {
	s := scanner.New(" 12.5 -3")

	re := regexp.MustCompile(`^(-?[\d.]+)\s+(-?[\d.]+)`)

	caps, ok := s.MatchRegexp(re)
	assert.True(t, ok)
	assert.Equal(t, []string{"12.5", "-3"}, caps)
	assert.True(t, s.AtEOF())
}

func TestExpect(t *testing.T) {
	s := scanner.New("(1 2)")

	assert.NoError(t, s.Expect("("))

	err := s.Expect(")")
	assert.Error(t, err)

	var serr *scanner.SyntaxError
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, `")"`, serr.Expected)
	assert.Equal(t, 1, serr.Pos)
}

func TestAtEOF(t *testing.T) {
	s := scanner.New("POINT   ")

	_, ok := s.Match("POINT")
	assert.True(t, ok)
	assert.True(t, s.AtEOF())

	s = scanner.New("POINT x")
	_, _ = s.Match("POINT")
	assert.False(t, s.AtEOF())
}
