package scanner

import (
	"strings"

	"github.com/odatakit/go-odata-query/ast"
)

// Source is a cursor over an immutable input string. Reads advance a byte
// offset; rewinding to a Checkpoint makes backtracking across parse
// alternatives free, since nothing but the offset ever changes.
type Source struct {
	str string
	pos ast.Idx
}

func NewSource(src string) *Source {
	return &Source{str: src}
}

func (s *Source) EOF() bool {
	return int(s.pos) >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) EndOffset() ast.Idx {
	return ast.Idx(len(s.str))
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

func (s *Source) NextByte() (byte, bool) {
	b, ok := s.PeekByte()
	if ok {
		s.pos++
	}
	return b, ok
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

// AdvanceIfMatch consumes tag if the input starts with it exactly.
func (s *Source) AdvanceIfMatch(tag string) bool {
	if strings.HasPrefix(s.str[s.pos:], tag) {
		s.pos += ast.Idx(len(tag))
		return true
	}
	return false
}

// AdvanceIfMatchFold is AdvanceIfMatch under case folding.
func (s *Source) AdvanceIfMatchFold(tag string) bool {
	rest := s.str[s.pos:]
	if len(rest) < len(tag) || !strings.EqualFold(rest[:len(tag)], tag) {
		return false
	}
	s.pos += ast.Idx(len(tag))
	return true
}

// TakeWhile consumes the longest run of bytes satisfying pred and
// returns it. The run may be empty.
func (s *Source) TakeWhile(pred func(byte) bool) string {
	start := s.pos
	for !s.EOF() && pred(s.str[s.pos]) {
		s.pos++
	}
	return s.str[start:s.pos]
}

// TakeWhileMN consumes between min and max bytes satisfying pred. When
// fewer than min match it reports false and consumes nothing.
func (s *Source) TakeWhileMN(min, max int, pred func(byte) bool) (string, bool) {
	start := s.pos
	for int(s.pos-start) < max && !s.EOF() && pred(s.str[s.pos]) {
		s.pos++
	}
	if int(s.pos-start) < min {
		s.pos = start
		return "", false
	}
	return s.str[start:s.pos], true
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}

// Rest returns the unconsumed remainder of the input.
func (s *Source) Rest() string {
	return s.str[s.pos:]
}

type Checkpoint struct {
	pos ast.Idx
}

func (s *Source) Checkpoint() Checkpoint {
	return Checkpoint{pos: s.pos}
}

func (s *Source) Rewind(c Checkpoint) {
	s.pos = c.pos
}
