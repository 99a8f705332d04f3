package interpreter

import (
	"fmt"

	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.VarDeclaration:
		return i.evaluateVarDeclaration(n, env)
	case *ast.Assignment:
		return i.evaluateAssignment(n, env)
	case *ast.Print:
		return i.evaluatePrint(n, env)
	case *ast.Conditional:
		return i.evaluateConditional(n, env)
	case *ast.Block:
		return i.evaluateBlock(n, env)
	case *ast.WhileLoop:
		return i.evaluateWhileLoop(n, env)
	default:
		return nil, newRuntimeError(ErrUnsupportedNode, node, fmt.Sprintf("unsupported statement type: %s", node.NodeType()))
	}
}

func (i *Interpreter) evaluateVarDeclaration(decl *ast.VarDeclaration, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(decl.Value, env)
	if err != nil {
		return nil, err
	}
	env.Define(decl.Name, val)
	return val, nil
}

// evaluateAssignment only rebinds existing names. An unbound target is an
// error and the environment is left as it was.
func (i *Interpreter) evaluateAssignment(assign *ast.Assignment, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(assign.Name, val); err != nil {
		return nil, newRuntimeError(ErrUndeclaredAssignment, assign,
			fmt.Sprintf("skill issue: can't glow up %s, touch grass first", assign.Name))
	}
	return val, nil
}

func (i *Interpreter) evaluatePrint(stmt *ast.Print, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(i.out, FormatValue(val)); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return val, nil
}

// evaluateConditional requires a real boolean; unlike while loops it does
// not apply truthiness.
func (i *Interpreter) evaluateConditional(cond *ast.Conditional, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(cond.Condition, env)
	if err != nil {
		return nil, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return nil, newRuntimeError(ErrNonBooleanCondition, cond,
			fmt.Sprintf("bro that's not a condition fr fr (got %s)", val.Kind()))
	}
	if b.Val {
		return i.evaluateBlock(cond.Then, env)
	}
	if cond.Else != nil {
		return i.evaluateBlock(cond.Else, env)
	}
	return runtime.NullValue{}, nil
}

// evaluateBlock runs the statements against the same environment; blocks do
// not open a scope.
func (i *Interpreter) evaluateBlock(block *ast.Block, env *runtime.Environment) (runtime.Value, error) {
	if block == nil {
		return runtime.NullValue{}, nil
	}
	return i.evaluateStatements(block.Statements, env)
}

func (i *Interpreter) evaluateWhileLoop(loop *ast.WhileLoop, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NullValue{}
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(cond) {
			return result, nil
		}
		val, err := i.evaluateBlock(loop.Body, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
}
