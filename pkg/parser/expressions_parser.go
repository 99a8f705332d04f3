package parser

import (
	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/token"
)

var comparisonOperators = map[token.Kind]ast.Operator{
	token.GreaterThan: ast.OpGreaterThan,
	token.LessThan:    ast.OpLessThan,
	token.Equals:      ast.OpEquals,
}

var additiveOperators = map[token.Kind]ast.Operator{
	token.Plus:  ast.OpPlus,
	token.Minus: ast.OpMinus,
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseComparison()
}

// comparison := term (('>' | '<' | '=') term)*
func (p *Parser) parseComparison() ast.Expression {
	return p.parseLeftAssoc(comparisonOperators, p.parseTerm)
}

// term := factor (('+' | '-') factor)*
func (p *Parser) parseTerm() ast.Expression {
	return p.parseLeftAssoc(additiveOperators, p.parseFactor)
}

// parseLeftAssoc folds operands joined by operators from ops into a
// left-leaning tree.
func (p *Parser) parseLeftAssoc(ops map[token.Kind]ast.Operator, operand func() ast.Expression) ast.Expression {
	left := operand()
	if left == nil {
		return nil
	}
	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return left
		}
		p.advance()
		right := operand()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryOp(left, op, right)
	}
}

func (p *Parser) parseFactor() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return ast.NewNumberLiteral(tok.Int)
	case token.String:
		p.advance()
		return ast.NewStringLiteral(tok.Literal)
	case token.NoCap:
		p.advance()
		return ast.NewBooleanLiteral(true)
	case token.Cap:
		p.advance()
		return ast.NewBooleanLiteral(false)
	case token.Bugatti:
		p.advance()
		return ast.NewNullLiteral()
	case token.Identifier:
		p.advance()
		return ast.NewIdentifier(tok.Literal)
	case token.Illegal:
		return nil
	default:
		p.errorf(tok, "expected expression, found %s", tok)
		return nil
	}
}
