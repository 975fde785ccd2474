package token

import (
	"strconv"
)

// Token is the set of literal kinds in the OData primitive literal grammar.
type Token int

const (
	Undetermined Token = iota

	Null
	Boolean
	String
	Date
	GUID
	Float
	Integer
	Binary
	Enum
)

var token2string = [...]string{
	Undetermined: "UNKNOWN",
	Null:         "null",
	Boolean:      "boolean",
	String:       "string",
	Date:         "date",
	GUID:         "guid",
	Float:        "float",
	Integer:      "integer",
	Binary:       "binary",
	Enum:         "enum",
}

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}
