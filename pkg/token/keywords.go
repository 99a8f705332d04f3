package token

var keywords = map[string]Kind{
	"number":  NumberType,
	"as":      As,
	"print":   Print,
	"if":      If,
	"then":    Then,
	"else":    Else,
	"while":   While,
	"to":      To,
	"no_cap":  NoCap,
	"cap":     Cap,
	"bugatti": Bugatti,
}

type compound struct {
	second string
	kind   Kind
}

// Two-word keywords, keyed by their first word.
var compounds = map[string]compound{
	"touch": {second: "grass", kind: TouchGrass},
	"go":    {second: "outside", kind: GoOutside},
	"fr":    {second: "fr", kind: FrFr},
	"glow":  {second: "up", kind: GlowUp},
}

// LookupWord classifies a single word as a keyword or an identifier.
func LookupWord(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return Identifier
}

// IsCompoundPrefix reports whether word can start a two-word keyword.
func IsCompoundPrefix(word string) bool {
	_, ok := compounds[word]
	return ok
}

// LookupCompound resolves a two-word keyword.
func LookupCompound(first, second string) (Kind, bool) {
	c, ok := compounds[first]
	if !ok || c.second != second {
		return Identifier, false
	}
	return c.kind, true
}
