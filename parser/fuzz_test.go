package parser_test

import (
	"strings"
	"testing"

	"github.com/odatakit/go-odata-query/parser"
)

// FuzzParseLiteral checks that the dispatcher never panics and that a
// reported success always accounts for a prefix of the input.
// Run with: go test -fuzz=FuzzParseLiteral ./parser
func FuzzParseLiteral(f *testing.F) {
	seeds := []string{
		"",
		"null",
		"true",
		"False",
		"0",
		"-123456789",
		"9223372036854775808",
		"1.5e-10",
		"1e",
		"NaN",
		"-INF",
		"''",
		"'g''day sir'",
		"'unterminated",
		"d13efbec-aa20-47f4-8756-c38852488b6e",
		"2023-01-01",
		"-0001-01-01",
		"2023-02-30",
		"binary'SGVsbG8='",
		"binary'SGVsbG8",
		"Color'Red,Blue'",
		"my.namespace.Status'pending'",
		"~",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		lit, rest, err := parser.ParseLiteral(input)
		if err != nil {
			return
		}
		if lit == nil {
			t.Fatal("nil literal without error")
		}
		if !strings.HasSuffix(input, rest) {
			t.Fatalf("remainder %q is not a suffix of %q", rest, input)
		}
		if len(rest) == len(input) {
			t.Fatalf("ParseLiteral(%q) succeeded without consuming input", input)
		}
	})
}
