package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// A leading sign is part of the token itself, not a negation operator:
// "-123456789" is one integer literal.
func advanceSign(s *scanner.Source) {
	if b, ok := s.PeekByte(); ok && (b == '+' || b == '-') {
		s.NextByte()
	}
}

func parseInteger(s *scanner.Source) (*ast.IntegerLiteral, error) {
	start := s.Offset()
	advanceSign(s)
	if digits := s.TakeWhile(scanner.IsDecimalDigit); digits == "" {
		return nil, lexicalMismatch("expected decimal digit", s.Offset(), s.Offset())
	}

	raw := s.FromPositionToCurrent(start)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, conversionFailure(err, fmt.Sprintf("integer literal %q overflows int64", raw), start, s.Offset())
	}
	return &ast.IntegerLiteral{Idx: start, Literal: raw, Value: n}, nil
}

// parseFloat matches sign, a mandatory digit run, an optional fraction and
// an optional exponent. At least one of fraction or exponent must be
// present: a bare digit run is an integer literal, not a float.
func parseFloat(s *scanner.Source) (*ast.FloatLiteral, error) {
	start := s.Offset()
	advanceSign(s)
	if digits := s.TakeWhile(scanner.IsDecimalDigit); digits == "" {
		return nil, lexicalMismatch("expected decimal digit", s.Offset(), s.Offset())
	}

	var fraction, exponent bool
	if s.AdvanceIfByteEquals('.') {
		// Digits after the point are optional: "1." is a valid float.
		fraction = true
		s.TakeWhile(scanner.IsDecimalDigit)
	}
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.NextByte()
		exponent = true
		advanceSign(s)
		// The grammar commits once the exponent marker is consumed; missing
		// digits here abort the whole dispatch instead of falling through.
		if digits := s.TakeWhile(scanner.IsDecimalDigit); digits == "" {
			return nil, malformedExponent(start, s.Offset())
		}
	}
	if !fraction && !exponent {
		return nil, lexicalMismatch("float literal requires a fraction or exponent", start, s.Offset())
	}

	raw := s.FromPositionToCurrent(start)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out-of-range values saturate to ±Inf; anything else is malformed.
		return nil, conversionFailure(err, fmt.Sprintf("malformed float literal %q", raw), start, s.Offset())
	}
	return &ast.FloatLiteral{Idx: start, Literal: raw, Value: f}, nil
}

// parseFloatOrNamed is the dispatcher's float candidate: the numeric
// grammar first, then the NaN/INF/-INF tokens, which are case-sensitive
// and have no digit form.
func parseFloatOrNamed(s *scanner.Source) (*ast.FloatLiteral, error) {
	cp := s.Checkpoint()
	start := s.Offset()

	lit, err := parseFloat(s)
	if err == nil {
		return lit, nil
	}
	var pe Error
	if errors.As(err, &pe) && pe.fatal {
		return nil, err
	}
	s.Rewind(cp)

	for _, named := range []struct {
		tag   string
		value float64
	}{
		{"NaN", math.NaN()},
		{"INF", math.Inf(1)},
		{"-INF", math.Inf(-1)},
	} {
		if s.AdvanceIfMatch(named.tag) {
			return &ast.FloatLiteral{Idx: start, Literal: named.tag, Value: named.value}, nil
		}
	}
	return nil, err
}
