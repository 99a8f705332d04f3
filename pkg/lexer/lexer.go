package lexer

import (
	"strconv"
	"unicode"

	"touchgrass/interpreter-go/pkg/diag"
	"touchgrass/interpreter-go/pkg/token"
)

// Lexer turns Touch Grass source into tokens, strictly left to right. The
// cursor never moves backwards.
type Lexer struct {
	src    []rune
	cursor int
	line   int
	col    int
	diags  []diag.Diagnostic
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

// Diagnostics returns the problems reported so far.
func (l *Lexer) Diagnostics() []diag.Diagnostic {
	return l.diags
}

// NextToken returns the next token. Once the input is exhausted every call
// returns EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.pos()
	if l.atEnd() {
		return token.Token{Kind: token.EOF, Pos: pos}
	}

	ch := l.src[l.cursor]
	switch {
	case ch == '"':
		return l.scanString(pos)
	case isLetter(ch):
		return l.scanWord(pos)
	case unicode.IsDigit(ch):
		return l.scanNumber(pos)
	}

	l.advance()
	switch ch {
	case '>':
		return token.Token{Kind: token.GreaterThan, Pos: pos}
	case '<':
		return token.Token{Kind: token.LessThan, Pos: pos}
	case '=':
		return token.Token{Kind: token.Equals, Pos: pos}
	case '+':
		return token.Token{Kind: token.Plus, Pos: pos}
	case '-':
		return token.Token{Kind: token.Minus, Pos: pos}
	}
	l.report(pos, "illegal character %q", ch)
	return token.Token{Kind: token.Illegal, Ch: ch, Pos: pos}
}

// scanWord reads a word and classifies it. A compound prefix pulls in the
// following word; when the pair is not a known compound the first word
// becomes an identifier and the second word is dropped.
func (l *Lexer) scanWord(pos token.Position) token.Token {
	first := l.readWord()
	if !token.IsCompoundPrefix(first) {
		kind := token.LookupWord(first)
		if kind == token.Identifier {
			return token.Token{Kind: token.Identifier, Literal: first, Pos: pos}
		}
		return token.Token{Kind: kind, Pos: pos}
	}

	l.skipWhitespace()
	second := l.readWord()
	if kind, ok := token.LookupCompound(first, second); ok {
		return token.Token{Kind: kind, Pos: pos}
	}
	return token.Token{Kind: token.Identifier, Literal: first, Pos: pos}
}

func (l *Lexer) readWord() string {
	start := l.cursor
	for !l.atEnd() && isLetter(l.src[l.cursor]) {
		l.advance()
	}
	return string(l.src[start:l.cursor])
}

// scanNumber reads a run of digits. Text that does not fit an int64 lexes
// as 0.
func (l *Lexer) scanNumber(pos token.Position) token.Token {
	start := l.cursor
	for !l.atEnd() && unicode.IsDigit(l.src[l.cursor]) {
		l.advance()
	}
	n, err := strconv.ParseInt(string(l.src[start:l.cursor]), 10, 64)
	if err != nil {
		n = 0
	}
	return token.Token{Kind: token.Number, Int: n, Pos: pos}
}

func (l *Lexer) scanString(pos token.Position) token.Token {
	l.advance() // opening quote
	start := l.cursor
	for !l.atEnd() && l.src[l.cursor] != '"' {
		l.advance()
	}
	text := string(l.src[start:l.cursor])
	if l.atEnd() {
		l.report(pos, "unterminated string")
	} else {
		l.advance() // closing quote
	}
	return token.Token{Kind: token.String, Literal: text, Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.src[l.cursor] {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	if l.src[l.cursor] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.cursor++
}

func (l *Lexer) atEnd() bool {
	return l.cursor >= len(l.src)
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func (l *Lexer) report(pos token.Position, format string, args ...any) {
	l.diags = append(l.diags, diag.New(diag.StageLexer, pos, format, args...))
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

// Tokenize lexes the whole input. The result always ends with exactly one
// EOF token.
func Tokenize(src string) ([]token.Token, []diag.Diagnostic) {
	l := New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, l.Diagnostics()
		}
	}
}
