package parser

import (
	"errors"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// asLiteral adapts a concrete sub-parser to the dispatch signature without
// wrapping a typed nil pointer into a non-nil interface.
func asLiteral[T ast.Literal](parse func(*scanner.Source) (T, error)) func(*scanner.Source) (ast.Literal, error) {
	return func(s *scanner.Source) (ast.Literal, error) {
		lit, err := parse(s)
		if err != nil {
			return nil, err
		}
		return lit, nil
	}
}

// alternatives are tried in a fixed order; the first success wins. Order
// matters because several lexical shapes overlap: a date must be ruled out
// before an integer can claim a leading digit run, the float/integer split
// is decided inside the float sub-parser itself (no fraction and no
// exponent means the text falls through to integer), and binary keeps
// priority over enum since both start with an identifier and a quote.
var alternatives = []func(*scanner.Source) (ast.Literal, error){
	asLiteral(parseNull),
	asLiteral(parseBoolean),
	asLiteral(parseString),
	asLiteral(parseDate),
	asLiteral(parseGUID),
	asLiteral(parseFloatOrNamed),
	asLiteral(parseInteger),
	asLiteral(parseBinary),
	asLiteral(parseEnum),
}

// parseLiteral is the dispatcher. Failed attempts rewind the cursor to the
// starting checkpoint so every candidate sees the same unconsumed input.
// On exhaustion it surfaces the sub-error with the longest partial match.
func parseLiteral(s *scanner.Source) (ast.Literal, error) {
	cp := s.Checkpoint()
	start := s.Offset()

	var best *Error
	for _, parse := range alternatives {
		lit, err := parse(s)
		if err == nil {
			return lit, nil
		}
		s.Rewind(cp)

		var pe Error
		if errors.As(err, &pe) {
			if pe.fatal {
				return nil, err
			}
			if best == nil || pe.End > best.End {
				best = &pe
			}
		}
	}

	var cause error
	if best != nil {
		cause = *best
	}
	return nil, exhaustedAlternatives(start, cause)
}

func parseNull(s *scanner.Source) (*ast.NullLiteral, error) {
	start := s.Offset()
	if !s.AdvanceIfMatch("null") {
		return nil, lexicalMismatch(`expected "null"`, start, start)
	}
	return &ast.NullLiteral{Idx: start}, nil
}

func parseBoolean(s *scanner.Source) (*ast.BooleanLiteral, error) {
	start := s.Offset()
	if s.AdvanceIfMatchFold("true") {
		return &ast.BooleanLiteral{Idx: start, Literal: s.FromPositionToCurrent(start), Value: true}, nil
	}
	if s.AdvanceIfMatchFold("false") {
		return &ast.BooleanLiteral{Idx: start, Literal: s.FromPositionToCurrent(start), Value: false}, nil
	}
	return nil, lexicalMismatch(`expected "true" or "false"`, start, start)
}
