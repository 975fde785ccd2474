package parser

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// parseBinary matches the case-insensitive binary keyword and a
// single-quoted run of URL-safe base64. Clients differ on whether they
// emit padding, so canonical padding and no padding both decode; anything
// in between is a conversion failure.
func parseBinary(s *scanner.Source) (*ast.BinaryLiteral, error) {
	start := s.Offset()
	if !s.AdvanceIfMatchFold("binary'") {
		return nil, lexicalMismatch(`expected "binary'"`, start, start)
	}
	encoded := s.TakeWhile(scanner.IsBase64URLByte)
	if !s.AdvanceIfByteEquals('\'') {
		return nil, lexicalMismatch("unterminated binary literal", start, s.Offset())
	}

	data, err := decodeBase64URL(encoded)
	if err != nil {
		return nil, conversionFailure(err, fmt.Sprintf("invalid base64 in binary literal: %v", err), start, s.Offset())
	}
	return &ast.BinaryLiteral{
		Idx:     start,
		Literal: s.FromPositionToCurrent(start),
		Value:   data,
	}, nil
}

func decodeBase64URL(encoded string) ([]byte, error) {
	if strings.HasSuffix(encoded, "=") {
		return base64.URLEncoding.DecodeString(encoded)
	}
	return base64.RawURLEncoding.DecodeString(encoded)
}
