package ast

import (
	"github.com/google/uuid"

	"github.com/odatakit/go-odata-query/token"
)

// Literal is implemented by all primitive literal nodes. A literal is
// constructed once by a successful parse and is immutable afterwards.
type Literal interface {
	Node
	Kind() token.Token
	_literal()
}

type (
	NullLiteral struct {
		Idx Idx
	}

	BooleanLiteral struct {
		Idx Idx
		// Literal is the raw matched keyword; the grammar accepts
		// true/false in any case.
		Literal string
		Value   bool
	}

	IntegerLiteral struct {
		Idx     Idx
		Literal string
		Value   int64
	}

	FloatLiteral struct {
		Idx     Idx
		Literal string
		// Value may be NaN or ±Inf for the NaN/INF/-INF tokens.
		Value float64
	}

	StringLiteral struct {
		Idx Idx
		// Literal is the raw quoted form, Value the unescaped content.
		Literal string
		Value   string
	}

	GUIDLiteral struct {
		Idx Idx
		// Value is the verbatim 8-4-4-4-12 form; case is preserved
		// from the input, not canonicalized.
		Value string
	}

	BinaryLiteral struct {
		Idx     Idx
		Literal string
		Value   []byte
	}

	DateLiteral struct {
		Idx     Idx
		Literal string
		Value   Date
	}

	// EnumLiteral is a qualified enum type name with one or more member
	// names, e.g. TestStatus'enabled' or Color'Red,Blue'.
	EnumLiteral struct {
		Idx      Idx
		Literal  string
		TypeName string
		Values   []string
	}
)

func (n *NullLiteral) Idx0() Idx    { return n.Idx }
func (n *BooleanLiteral) Idx0() Idx { return n.Idx }
func (n *IntegerLiteral) Idx0() Idx { return n.Idx }
func (n *FloatLiteral) Idx0() Idx   { return n.Idx }
func (n *StringLiteral) Idx0() Idx  { return n.Idx }
func (n *GUIDLiteral) Idx0() Idx    { return n.Idx }
func (n *BinaryLiteral) Idx0() Idx  { return n.Idx }
func (n *DateLiteral) Idx0() Idx    { return n.Idx }
func (n *EnumLiteral) Idx0() Idx    { return n.Idx }

func (n *NullLiteral) Idx1() Idx    { return n.Idx + 4 } // "null"
func (n *BooleanLiteral) Idx1() Idx { return n.Idx + Idx(len(n.Literal)) }
func (n *IntegerLiteral) Idx1() Idx { return n.Idx + Idx(len(n.Literal)) }
func (n *FloatLiteral) Idx1() Idx   { return n.Idx + Idx(len(n.Literal)) }
func (n *StringLiteral) Idx1() Idx  { return n.Idx + Idx(len(n.Literal)) }
func (n *GUIDLiteral) Idx1() Idx    { return n.Idx + Idx(len(n.Value)) }
func (n *BinaryLiteral) Idx1() Idx  { return n.Idx + Idx(len(n.Literal)) }
func (n *DateLiteral) Idx1() Idx    { return n.Idx + Idx(len(n.Literal)) }
func (n *EnumLiteral) Idx1() Idx    { return n.Idx + Idx(len(n.Literal)) }

func (*NullLiteral) Kind() token.Token    { return token.Null }
func (*BooleanLiteral) Kind() token.Token { return token.Boolean }
func (*IntegerLiteral) Kind() token.Token { return token.Integer }
func (*FloatLiteral) Kind() token.Token   { return token.Float }
func (*StringLiteral) Kind() token.Token  { return token.String }
func (*GUIDLiteral) Kind() token.Token    { return token.GUID }
func (*BinaryLiteral) Kind() token.Token  { return token.Binary }
func (*DateLiteral) Kind() token.Token    { return token.Date }
func (*EnumLiteral) Kind() token.Token    { return token.Enum }

func (*NullLiteral) _literal()    {}
func (*BooleanLiteral) _literal() {}
func (*IntegerLiteral) _literal() {}
func (*FloatLiteral) _literal()   {}
func (*StringLiteral) _literal()  {}
func (*GUIDLiteral) _literal()    {}
func (*BinaryLiteral) _literal()  {}
func (*DateLiteral) _literal()    {}
func (*EnumLiteral) _literal()    {}

// UUID parses the literal's verbatim value into its binary form. The
// literal itself keeps the case of the input; callers that need a
// normalized representation go through this.
func (n *GUIDLiteral) UUID() (uuid.UUID, error) {
	return uuid.Parse(n.Value)
}
