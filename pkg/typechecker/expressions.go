package typechecker

import (
	"fmt"

	"touchgrass/interpreter-go/pkg/ast"
)

func (c *Checker) checkExpression(env *Environment, expr ast.Expression) ([]Diagnostic, Type) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return nil, numberType
	case *ast.StringLiteral:
		return nil, stringType
	case *ast.BooleanLiteral:
		return nil, boolType
	case *ast.NullLiteral:
		return nil, nullType
	case *ast.Identifier:
		typ, ok := env.Lookup(e.Name)
		if !ok {
			return []Diagnostic{{
				Message: fmt.Sprintf("typechecker: '%s' is used before it is declared", e.Name),
				Node:    e,
			}}, UnknownType{}
		}
		return nil, typ
	case *ast.BinaryOp:
		return c.checkBinaryOp(env, e)
	case nil:
		return nil, UnknownType{}
	default:
		return []Diagnostic{{
			Message: fmt.Sprintf("typechecker: unsupported expression %T", expr),
			Node:    expr,
		}}, UnknownType{}
	}
}

// checkBinaryOp mirrors the interpreter: every operator takes two numbers.
func (c *Checker) checkBinaryOp(env *Environment, expr *ast.BinaryOp) ([]Diagnostic, Type) {
	leftDiags, leftType := c.checkExpression(env, expr.Left)
	rightDiags, rightType := c.checkExpression(env, expr.Right)
	var diags []Diagnostic
	diags = append(diags, leftDiags...)
	diags = append(diags, rightDiags...)

	resultType := Type(numberType)
	if expr.Operator.IsComparison() {
		resultType = boolType
	}

	if isNonNumber(leftType) || isNonNumber(rightType) {
		diags = append(diags, Diagnostic{
			Message: fmt.Sprintf("typechecker: '%s' requires number operands (got %s and %s)", expr.Operator.Symbol(), typeName(leftType), typeName(rightType)),
			Node:    expr,
		})
	}
	return diags, resultType
}

func isNonNumber(t Type) bool {
	return !isUnknownType(t) && t.Name() != numberType.Name()
}
