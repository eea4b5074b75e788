package giturl

import (
	"strings"
	"unicode/utf8"
)

const eof = -1

// scanner is a forward-only cursor over the input. Every recognizer works on
// a copy, so a failed alternative leaves the caller's position untouched.
type scanner struct {
	input string
	pos   int
}

func (s scanner) rest() string {
	return s.input[s.pos:]
}

func (s scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s scanner) peek() rune {
	if s.done() {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

// run consumes the longest prefix accepted by valid and returns it.
func (s *scanner) run(valid func(rune) bool) string {
	start := s.pos
	for s.pos < len(s.input) {
		r, width := utf8.DecodeRuneInString(s.input[s.pos:])
		if !valid(r) {
			break
		}
		s.pos += width
	}
	return s.input[start:s.pos]
}

// consume advances past prefix if the input continues with it.
func (s *scanner) consume(prefix string) bool {
	if !strings.HasPrefix(s.rest(), prefix) {
		return false
	}
	s.pos += len(prefix)
	return true
}
