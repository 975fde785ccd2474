package parser

import (
	"strconv"
	"time"

	"github.com/odatakit/go-odata-query/ast"
	"github.com/odatakit/go-odata-query/parser/scanner"
)

// parseDate matches <year>-<month>-<day> and then validates the calendar
// date. A lexically well-formed but impossible date (2023-02-30) fails the
// whole literal; it is never clamped.
func parseDate(s *scanner.Source) (*ast.DateLiteral, error) {
	start := s.Offset()

	year, err := parseYear(s)
	if err != nil {
		return nil, err
	}
	if !s.AdvanceIfByteEquals('-') {
		return nil, lexicalMismatch("expected '-' after year", s.Offset(), s.Offset())
	}
	month, err := parseMonth(s)
	if err != nil {
		return nil, err
	}
	if !s.AdvanceIfByteEquals('-') {
		return nil, lexicalMismatch("expected '-' after month", s.Offset(), s.Offset())
	}
	day, err := parseDay(s)
	if err != nil {
		return nil, err
	}

	date, err := ast.NewDate(year, month, day)
	if err != nil {
		return nil, conversionFailure(err, err.Error(), start, s.Offset())
	}
	return &ast.DateLiteral{
		Idx:     start,
		Literal: s.FromPositionToCurrent(start),
		Value:   date,
	}, nil
}

// parseYear matches an optional minus sign and exactly four digits. Years
// can be negative or zero, conflicting with ISO 8601 by design.
func parseYear(s *scanner.Source) (int, error) {
	start := s.Offset()
	s.AdvanceIfByteEquals('-')
	if _, ok := s.TakeWhileMN(4, 4, scanner.IsDecimalDigit); !ok {
		return 0, lexicalMismatch("expected four digit year", s.Offset(), s.Offset())
	}
	year, err := strconv.Atoi(s.FromPositionToCurrent(start))
	if err != nil {
		return 0, lexicalMismatch("expected four digit year", start, s.Offset())
	}
	return year, nil
}

// parseMonth matches two digits, the first 0 or 1. Range checking beyond
// that is NewDate's job.
func parseMonth(s *scanner.Source) (time.Month, error) {
	start := s.Offset()
	if b, ok := s.PeekByte(); !ok || (b != '0' && b != '1') {
		return 0, lexicalMismatch("expected two digit month", start, start)
	}
	s.NextByte()
	if b, ok := s.PeekByte(); !ok || !scanner.IsDecimalDigit(b) {
		return 0, lexicalMismatch("expected two digit month", start, s.Offset())
	}
	s.NextByte()
	n, _ := strconv.Atoi(s.FromPositionToCurrent(start))
	return time.Month(n), nil
}

// parseDay matches two digits, the first 0 through 3.
func parseDay(s *scanner.Source) (int, error) {
	start := s.Offset()
	if b, ok := s.PeekByte(); !ok || b < '0' || b > '3' {
		return 0, lexicalMismatch("expected two digit day", start, start)
	}
	s.NextByte()
	if b, ok := s.PeekByte(); !ok || !scanner.IsDecimalDigit(b) {
		return 0, lexicalMismatch("expected two digit day", start, s.Offset())
	}
	s.NextByte()
	n, _ := strconv.Atoi(s.FromPositionToCurrent(start))
	return n, nil
}
