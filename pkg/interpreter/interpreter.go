package interpreter

import (
	"fmt"
	"io"
	"os"

	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/runtime"
)

// Interpreter walks Touch Grass program trees. It owns no bindings: every
// call receives the environment to read and mutate, so independent runs can
// share one interpreter or use several side by side.
type Interpreter struct {
	out io.Writer
}

// New returns an interpreter that writes printed lines to out (os.Stdout
// when nil).
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{out: out}
}

// Interpret executes every statement of the program in order. It stops at
// the first evaluation failure, which is returned as a *RuntimeError;
// bindings made by earlier statements are kept.
func (i *Interpreter) Interpret(program *ast.Program, env *runtime.Environment) error {
	_, err := i.EvaluateProgram(program, env)
	return err
}

// EvaluateProgram is Interpret that also reports the value of the last
// statement (Null for an empty program).
func (i *Interpreter) EvaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	if program == nil {
		return runtime.NullValue{}, nil
	}
	return i.evaluateStatements(program.Statements, env)
}

// Execute evaluates any node: statements are run for effect and still yield
// a value, expressions yield their value.
func (i *Interpreter) Execute(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return i.EvaluateProgram(n, env)
	case ast.Statement:
		return i.evaluateStatement(n, env)
	case ast.Expression:
		return i.evaluateExpression(n, env)
	default:
		return nil, newRuntimeError(ErrUnsupportedNode, node, fmt.Sprintf("unsupported node type: %T", node))
	}
}

func (i *Interpreter) evaluateStatements(statements []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NullValue{}
	for _, stmt := range statements {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}
