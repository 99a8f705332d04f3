package interpreter

import (
	"fmt"

	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NullLiteral:
		return runtime.NullValue{}, nil
	case *ast.Identifier:
		val, ok := env.Get(n.Name)
		if !ok {
			return nil, newRuntimeError(ErrUnboundIdentifier, n,
				fmt.Sprintf("skill issue: %s is not defined", n.Name))
		}
		return val, nil
	case *ast.BinaryOp:
		return i.evaluateBinaryOp(n, env)
	default:
		return nil, newRuntimeError(ErrUnsupportedNode, node, fmt.Sprintf("unsupported expression type: %s", node.NodeType()))
	}
}

// evaluateBinaryOp evaluates left before right, then applies the operator.
// Every operator is defined only for two numbers.
func (i *Interpreter) evaluateBinaryOp(expr *ast.BinaryOp, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	lv, lok := leftVal.(runtime.NumberValue)
	rv, rok := rightVal.(runtime.NumberValue)
	if !lok || !rok {
		verb := "compare"
		if !expr.Operator.IsComparison() {
			verb = "combine"
		}
		return nil, newRuntimeError(ErrOperandMismatch, expr,
			fmt.Sprintf("skill issue: can't %s these values fr fr (%s %s %s)", verb, leftVal.Kind(), expr.Operator.Symbol(), rightVal.Kind()))
	}

	switch expr.Operator {
	case ast.OpPlus:
		return runtime.NumberValue{Val: lv.Val + rv.Val}, nil
	case ast.OpMinus:
		return runtime.NumberValue{Val: lv.Val - rv.Val}, nil
	case ast.OpGreaterThan:
		return runtime.BoolValue{Val: lv.Val > rv.Val}, nil
	case ast.OpLessThan:
		return runtime.BoolValue{Val: lv.Val < rv.Val}, nil
	case ast.OpEquals:
		return runtime.BoolValue{Val: lv.Val == rv.Val}, nil
	default:
		return nil, newRuntimeError(ErrUnsupportedNode, expr, fmt.Sprintf("unsupported binary operator %s", expr.Operator))
	}
}
