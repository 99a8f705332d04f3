package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"touchgrass/interpreter-go/pkg/diag"
	"touchgrass/interpreter-go/pkg/interpreter"
	"touchgrass/interpreter-go/pkg/parser"
	"touchgrass/interpreter-go/pkg/runtime"
	"touchgrass/interpreter-go/pkg/typechecker"
)

// Session runs successive pieces of source against one environment, the way
// a REPL feeds lines one after another.
type Session struct {
	interp  *interpreter.Interpreter
	env     *runtime.Environment
	checker *typechecker.Checker
	diags   *diag.Printer
}

// NewSession writes program output to stdout and diagnostics to stderr.
func NewSession(stdout, stderr io.Writer, colorize bool) *Session {
	return &Session{
		interp:  interpreter.New(stdout),
		env:     runtime.NewEnvironment(),
		checker: typechecker.New(),
		diags:   diag.NewPrinter(stderr, colorize),
	}
}

// Environment exposes the bindings accumulated so far.
func (s *Session) Environment() *runtime.Environment {
	return s.env
}

// Run lexes, parses and evaluates source. Diagnostics are printed and do not
// stop evaluation; the returned error is the evaluation failure, if any.
// Bindings made before a failure are kept.
func (s *Session) Run(source string) error {
	program, diags := parser.ParseSource(source)
	s.diags.Print(diags)
	return s.interp.Interpret(program, s.env)
}

// RunFile reads path and runs its contents.
func (s *Session) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return s.Run(string(data))
}

// Check lexes, parses and typechecks source without running it. Every
// diagnostic is printed; the count is returned.
func (s *Session) Check(source string) (int, error) {
	program, diags := parser.ParseSource(source)
	checked, err := s.checker.CheckProgram(program)
	if err != nil {
		return 0, err
	}
	for _, d := range checked {
		msg := strings.TrimPrefix(d.Message, "typechecker: ")
		diags = append(diags, diag.Diagnostic{Stage: diag.StageTypechecker, Message: msg})
	}
	return s.diags.Print(diags), nil
}

// CheckFile reads path and checks its contents.
func (s *Session) CheckFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return s.Check(string(data))
}
