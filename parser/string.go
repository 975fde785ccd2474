package parser

import (
	"strings"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// parseString matches a single-quoted string. The only escape mechanism is
// a doubled quote, which collapses to one literal quote character. Raw
// chunks between quotes are copied verbatim, so non-ASCII input passes
// through untouched. A missing closing quote is a hard failure.
func parseString(s *scanner.Source) (*ast.StringLiteral, error) {
	start := s.Offset()
	if !s.AdvanceIfByteEquals('\'') {
		return nil, lexicalMismatch("expected opening '", start, start)
	}

	var sb strings.Builder
	chunkStart := s.Offset()
	for {
		b, ok := s.NextByte()
		if !ok {
			return nil, unterminatedString(start, s.Offset())
		}
		if b != '\'' {
			continue
		}
		sb.WriteString(s.Slice(chunkStart, s.Offset()-1))
		if s.AdvanceIfByteEquals('\'') {
			sb.WriteByte('\'')
			chunkStart = s.Offset()
			continue
		}
		return &ast.StringLiteral{
			Idx:     start,
			Literal: s.FromPositionToCurrent(start),
			Value:   sb.String(),
		}, nil
	}
}
