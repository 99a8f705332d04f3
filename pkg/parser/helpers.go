package parser

import (
	"touchgrass/interpreter-go/pkg/diag"
	"touchgrass/interpreter-go/pkg/token"
)

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

func (p *Parser) eof() token.Token {
	if n := len(p.tokens); n > 0 {
		return token.Token{Kind: token.EOF, Pos: p.tokens[n-1].Pos}
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

// expect consumes the next token when it has the wanted kind, and reports
// what was found instead otherwise.
func (p *Parser) expect(kind token.Kind, context string) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind != kind {
		p.errorf(tok, "expected '%s' %s, found %s", kind, context, tok)
		return tok, false
	}
	return p.advance(), true
}

// skip discards the current token after a failed statement. Inside a body
// the closing marker is left for the body loop.
func (p *Parser) skip(inBody bool) {
	if p.atEnd() {
		return
	}
	if inBody && p.peek().Kind == token.FrFr {
		return
	}
	p.advance()
}

func (p *Parser) errorf(at token.Token, format string, args ...any) {
	p.diags = append(p.diags, diag.New(diag.StageParser, at.Pos, format, args...))
}
