// Package parser parses OData primitive literals into typed ast nodes.
//
// The entry point is ParseLiteral, which matches one literal at the start
// of the input and returns the typed node together with the unconsumed
// remainder. Each primitive sub-parser is also exposed on its own for
// grammar rules that expect a specific shape, e.g. a date-valued function
// argument. Every call is a pure function of its input: the package holds
// no state and is safe for concurrent use.
package parser

import (
	"fmt"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// ParseLiteral matches one literal at the start of src. On success it
// returns the typed node and the unconsumed remainder of src; on failure
// the error is an Error of kind ExhaustedAlternatives carrying the
// offending position.
func ParseLiteral(src string) (ast.Literal, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseLiteral(s)
	if err != nil {
		return nil, src, err
	}
	return lit, s.Rest(), nil
}

// ParseLiteralFull is ParseLiteral, but the literal must span the entire
// input.
func ParseLiteralFull(src string) (ast.Literal, error) {
	lit, rest, err := ParseLiteral(src)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, lexicalMismatch(
			fmt.Sprintf("unparsed input after literal: %q", rest),
			ast.Idx(len(src)-len(rest)), ast.Idx(len(src)),
		)
	}
	return lit, nil
}

// ParseFloat matches a float literal: sign, digits, and at least one of a
// fraction or an exponent. The named NaN/INF/-INF tokens belong to the
// dispatcher, not to this rule.
func ParseFloat(src string) (float64, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseFloat(s)
	if err != nil {
		return 0, src, err
	}
	return lit.Value, s.Rest(), nil
}

// ParseString matches a single-quoted string literal and returns its
// unescaped value.
func ParseString(src string) (string, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseString(s)
	if err != nil {
		return "", src, err
	}
	return lit.Value, s.Rest(), nil
}

// ParseGUID matches a hyphenated 8-4-4-4-12 hex GUID and returns it
// verbatim, case preserved.
func ParseGUID(src string) (string, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseGUID(s)
	if err != nil {
		return "", src, err
	}
	return lit.Value, s.Rest(), nil
}

// ParseDate matches a calendar date literal.
func ParseDate(src string) (ast.Date, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseDate(s)
	if err != nil {
		return ast.Date{}, src, err
	}
	return lit.Value, s.Rest(), nil
}

// ParseBinary matches a binary literal and returns the decoded bytes.
func ParseBinary(src string) ([]byte, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseBinary(s)
	if err != nil {
		return nil, src, err
	}
	return lit.Value, s.Rest(), nil
}

// ParseEnum matches an enum literal.
func ParseEnum(src string) (*ast.EnumLiteral, string, error) {
	s := scanner.NewSource(src)
	lit, err := parseEnum(s)
	if err != nil {
		return nil, src, err
	}
	return lit, s.Rest(), nil
}
