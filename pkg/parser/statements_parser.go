package parser

import (
	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/token"
)

// parseStatement dispatches on the current token. It returns nil when no
// statement could be built; the caller decides how to recover.
func (p *Parser) parseStatement() ast.Statement {
	tok := p.peek()
	switch tok.Kind {
	case token.TouchGrass:
		return p.parseVarDeclaration()
	case token.GlowUp:
		return p.parseAssignment()
	case token.Print:
		return p.parsePrint()
	case token.If:
		return p.parseConditional()
	case token.While:
		return p.parseWhileLoop()
	case token.GoOutside:
		p.advance()
		return p.parseBody()
	case token.Illegal:
		// Already reported by the lexer.
		return nil
	default:
		p.errorf(tok, "unexpected %s at start of statement", tok)
		return nil
	}
}

// touch grass number <name> as <expr>
func (p *Parser) parseVarDeclaration() ast.Statement {
	p.advance()
	if _, ok := p.expect(token.NumberType, "after 'touch grass'"); !ok {
		return nil
	}
	name, ok := p.expect(token.Identifier, "in declaration")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.As, "after declared name"); !ok {
		return nil
	}
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return ast.NewVarDeclaration(name.Literal, "number", value)
}

// glow up <name> to <expr>
func (p *Parser) parseAssignment() ast.Statement {
	p.advance()
	name, ok := p.expect(token.Identifier, "after 'glow up'")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.To, "after assigned name"); !ok {
		return nil
	}
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return ast.NewAssignment(name.Literal, value)
}

func (p *Parser) parsePrint() ast.Statement {
	p.advance()
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	return ast.NewPrint(expr)
}

// if <expr> then <body> [else <body>]
func (p *Parser) parseConditional() ast.Statement {
	p.advance()
	condition := p.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := p.expect(token.Then, "after if condition"); !ok {
		return nil
	}
	then := p.parseBody()
	var els *ast.Block
	if p.peek().Kind == token.Else {
		p.advance()
		els = p.parseBody()
	}
	return ast.NewConditional(condition, then, els)
}

// while <expr> go outside <body>
func (p *Parser) parseWhileLoop() ast.Statement {
	p.advance()
	condition := p.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := p.expect(token.GoOutside, "after while condition"); !ok {
		return nil
	}
	return ast.NewWhileLoop(condition, p.parseBody())
}

// parseBody reads statements up to and including 'fr fr'. Running out of
// input first simply ends the block.
func (p *Parser) parseBody() *ast.Block {
	statements := make([]ast.Statement, 0)
	for !p.atEnd() {
		if p.peek().Kind == token.FrFr {
			p.advance()
			break
		}
		stmt := p.parseStatement()
		if stmt == nil {
			p.skip(true)
			continue
		}
		statements = append(statements, stmt)
	}
	return ast.NewBlock(statements)
}
