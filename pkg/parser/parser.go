package parser

import (
	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/diag"
	"touchgrass/interpreter-go/pkg/lexer"
	"touchgrass/interpreter-go/pkg/token"
)

// Parser builds a program tree from a token sequence by recursive descent
// with one token of lookahead.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  []diag.Diagnostic
}

// New returns a parser over tokens. A trailing EOF token is optional.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Diagnostics returns the problems reported while parsing.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diags
}

// Parse consumes the whole token sequence. It never fails: statements that
// cannot be parsed are reported and skipped, so the result is always a
// (possibly empty) program.
func (p *Parser) Parse() *ast.Program {
	statements := make([]ast.Statement, 0)
	for !p.atEnd() {
		stmt := p.parseStatement()
		if stmt == nil {
			p.skip(false)
			continue
		}
		statements = append(statements, stmt)
	}
	return ast.NewProgram(statements)
}

// ParseTokens parses an already lexed token sequence.
func ParseTokens(tokens []token.Token) (*ast.Program, []diag.Diagnostic) {
	p := New(tokens)
	program := p.Parse()
	return program, p.Diagnostics()
}

// ParseSource lexes and parses src. Lexer diagnostics come first in the
// returned slice.
func ParseSource(src string) (*ast.Program, []diag.Diagnostic) {
	tokens, lexDiags := lexer.Tokenize(src)
	program, parseDiags := ParseTokens(tokens)
	diags := make([]diag.Diagnostic, 0, len(lexDiags)+len(parseDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, parseDiags...)
	return program, diags
}
