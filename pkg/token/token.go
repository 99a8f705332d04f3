package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	EOF Kind = iota
	Illegal

	// Literals
	Identifier
	Number
	String

	// Keywords
	TouchGrass
	NumberType
	As
	Print
	If
	Then
	Else
	While
	GoOutside
	FrFr
	GlowUp
	To
	NoCap
	Cap
	Bugatti

	// Operators
	GreaterThan
	LessThan
	Equals
	Plus
	Minus
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Illegal:
		return "illegal"
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case TouchGrass:
		return "touch grass"
	case NumberType:
		return "number type"
	case As:
		return "as"
	case Print:
		return "print"
	case If:
		return "if"
	case Then:
		return "then"
	case Else:
		return "else"
	case While:
		return "while"
	case GoOutside:
		return "go outside"
	case FrFr:
		return "fr fr"
	case GlowUp:
		return "glow up"
	case To:
		return "to"
	case NoCap:
		return "no_cap"
	case Cap:
		return "cap"
	case Bugatti:
		return "bugatti"
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case Equals:
		return "="
	case Plus:
		return "+"
	case Minus:
		return "-"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Position is a 1-based line/column location in the source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit. Only the payload field matching Kind is set:
// Literal for Identifier and String, Int for Number, Ch for Illegal.
type Token struct {
	Kind    Kind
	Literal string
	Int     int64
	Ch      rune
	Pos     Position
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Identifier:
		return fmt.Sprintf("identifier %q", t.Literal)
	case String:
		return fmt.Sprintf("string %q", t.Literal)
	case Number:
		return "number " + strconv.FormatInt(t.Int, 10)
	case Illegal:
		return fmt.Sprintf("illegal character %q", t.Ch)
	default:
		return "'" + t.Kind.String() + "'"
	}
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
