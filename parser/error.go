package parser

import (
	"fmt"

	"github.com/odatakit/go-odata-query/ast"
)

// ErrorKind classifies parse failures for dispatch purposes.
type ErrorKind int

const (
	// LexicalMismatch means the input does not have the character shape a
	// sub-parser expects. The dispatcher falls through to the next candidate.
	LexicalMismatch ErrorKind = iota

	// ConversionFailure means the matched text is lexically valid but cannot
	// be converted to the target value: integer overflow, an impossible
	// calendar date, a base64 decode failure. Also causes fallthrough.
	ConversionFailure

	// ExhaustedAlternatives means no candidate literal matched. This is the
	// only kind the dispatcher surfaces to its caller.
	ExhaustedAlternatives
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalMismatch:
		return "lexical mismatch"
	case ConversionFailure:
		return "conversion failure"
	case ExhaustedAlternatives:
		return "exhausted alternatives"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a position-aware parse failure. Start and End are byte offsets
// into the input handed to the entry point.
type Error struct {
	Kind    ErrorKind
	Message string
	Start   ast.Idx
	End     ast.Idx

	cause error
	// fatal stops the dispatcher instead of falling through. Only the
	// committed exponent of a float literal sets it.
	fatal bool
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Unwrap() error {
	return e.cause
}

func lexicalMismatch(msg string, start, end ast.Idx) Error {
	return Error{
		Kind:    LexicalMismatch,
		Message: msg,
		Start:   start,
		End:     end,
	}
}

func conversionFailure(cause error, msg string, start, end ast.Idx) Error {
	return Error{
		Kind:    ConversionFailure,
		Message: msg,
		Start:   start,
		End:     end,
		cause:   cause,
	}
}

func unterminatedString(start, end ast.Idx) Error {
	return lexicalMismatch("unterminated string literal", start, end)
}

func malformedExponent(start, end ast.Idx) Error {
	return Error{
		Kind:    ConversionFailure,
		Message: "missing digits in float exponent",
		Start:   start,
		End:     end,
		fatal:   true,
	}
}

func exhaustedAlternatives(offset ast.Idx, best error) Error {
	return Error{
		Kind:    ExhaustedAlternatives,
		Message: fmt.Sprintf("no literal matches input at offset %d", offset),
		Start:   offset,
		End:     offset,
		cause:   best,
	}
}
