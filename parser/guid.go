package parser

import (
	"fmt"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// The 8-4-4-4-12 hyphenated layout. No 0x prefix, no braces.
var guidGroups = [...]int{8, 4, 4, 4, 12}

// parseGUID matches exactly five hex groups separated by hyphens. The
// matched text is kept verbatim: case is preserved, not canonicalized.
func parseGUID(s *scanner.Source) (*ast.GUIDLiteral, error) {
	start := s.Offset()
	for i, n := range guidGroups {
		if i > 0 && !s.AdvanceIfByteEquals('-') {
			return nil, lexicalMismatch("expected '-' between GUID groups", s.Offset(), s.Offset())
		}
		if _, ok := s.TakeWhileMN(n, n, scanner.IsHexDigit); !ok {
			return nil, lexicalMismatch(fmt.Sprintf("expected %d hex digits in GUID group %d", n, i+1), s.Offset(), s.Offset())
		}
	}
	return &ast.GUIDLiteral{Idx: start, Value: s.FromPositionToCurrent(start)}, nil
}
