package interpreter

import (
	"errors"

	"touchgrass/interpreter-go/pkg/ast"
)

// Evaluation failure kinds. Match them with errors.Is.
var (
	ErrUnboundIdentifier    = errors.New("unbound identifier")
	ErrNonBooleanCondition  = errors.New("non-boolean condition")
	ErrOperandMismatch      = errors.New("incompatible operands")
	ErrUndeclaredAssignment = errors.New("assignment to undeclared name")
	ErrUnsupportedNode      = errors.New("unsupported node")
)

// RuntimeError is an evaluation-fatal failure. Hosts can report it and keep
// the environment for the next run.
type RuntimeError struct {
	Kind    error
	Node    ast.Node
	Message string
}

func newRuntimeError(kind error, node ast.Node, message string) *RuntimeError {
	return &RuntimeError{Kind: kind, Node: node, Message: message}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}
