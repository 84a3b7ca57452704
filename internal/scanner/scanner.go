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

// Package scanner provides a position-tracking cursor over a WKT input
// string.  Matching is case-insensitive and never backtracks; a failed match
// leaves the cursor where it was.
package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// Scanner is a cursor over one input string.  It is single-use: once a parse
// fails the offset is no longer meaningful.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// Input returns the full input string.
func (s *Scanner) Input() string { return s.input }

// AtEOF reports whether only trailing whitespace remains.
func (s *Scanner) AtEOF() bool {
	s.skipSpace()

	return s.pos == len(s.input)
}

// Match tries each candidate in order for a case-insensitive prefix match at
// the current offset.  On success the cursor advances past the match and the
// canonical candidate is returned.
func (s *Scanner) Match(candidates ...string) (string, bool) {
	s.skipSpace()

	for _, c := range candidates {
		end := s.pos + len(c)
		if end <= len(s.input) && strings.EqualFold(s.input[s.pos:end], c) {
			s.pos = end

			return c, true
		}
	}

	return "", false
}

// MatchRegexp applies an anchored pattern at the current offset, after
// skipping whitespace, and returns its capture groups.  The pattern must be
// anchored with ^.
func (s *Scanner) MatchRegexp(re *regexp.Regexp) ([]string, bool) {
	s.skipSpace()

	m := re.FindStringSubmatch(s.input[s.pos:])
	if m == nil {
		return nil, false
	}

	s.pos += len(m[0])

	return m[1:], true
}

// Expect consumes the literal or fails with a SyntaxError naming it.
func (s *Scanner) Expect(literal string) error {
	if _, ok := s.Match(literal); !ok {
		return &SyntaxError{Expected: fmt.Sprintf("%q", literal), Pos: s.pos, Input: s.input}
	}

	return nil
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// SyntaxError reports input that does not conform to the WKT grammar at a
// given position.
type SyntaxError struct {
	Expected string
	Pos      int
	Input    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s at pos %d\n%s\n%s^",
		e.Expected, e.Pos, e.Input, strings.Repeat(" ", e.Pos))
}
