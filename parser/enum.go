package parser

import (
	"strings"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// parseEnum matches an enum literal: a dot-qualified type name followed by
// one or more single-quoted, comma-separated member names, e.g.
// TestStatus'enabled' or my.namespace.Color'Red,Blue'.
func parseEnum(s *scanner.Source) (*ast.EnumLiteral, error) {
	start := s.Offset()

	name, err := parseQualifiedName(s)
	if err != nil {
		return nil, err
	}
	// A failed binary literal must stay an error instead of re-matching
	// here as an enum of type "binary".
	if strings.EqualFold(name, "binary") {
		return nil, lexicalMismatch(`"binary" is not an enum type name`, start, s.Offset())
	}
	if !s.AdvanceIfByteEquals('\'') {
		return nil, lexicalMismatch("expected ' after enum type name", s.Offset(), s.Offset())
	}

	var values []string
	for {
		member := s.TakeWhile(isEnumMemberByte)
		if member == "" {
			return nil, lexicalMismatch("expected enum member name", s.Offset(), s.Offset())
		}
		values = append(values, member)
		if !s.AdvanceIfByteEquals(',') {
			break
		}
	}
	if !s.AdvanceIfByteEquals('\'') {
		return nil, lexicalMismatch("unterminated enum literal", start, s.Offset())
	}
	return &ast.EnumLiteral{
		Idx:      start,
		Literal:  s.FromPositionToCurrent(start),
		TypeName: name,
		Values:   values,
	}, nil
}

func parseQualifiedName(s *scanner.Source) (string, error) {
	start := s.Offset()
	for {
		if b, ok := s.PeekByte(); !ok || !scanner.IsIdentifierStart(b) {
			return "", lexicalMismatch("expected identifier", s.Offset(), s.Offset())
		}
		s.NextByte()
		s.TakeWhile(scanner.IsIdentifierPart)
		if !s.AdvanceIfByteEquals('.') {
			break
		}
	}
	return s.FromPositionToCurrent(start), nil
}

// Member names may carry underscores, hyphens and dots.
func isEnumMemberByte(b byte) bool {
	return scanner.IsIdentifierPart(b) || b == '-' || b == '.'
}
