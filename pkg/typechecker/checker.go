package typechecker

import (
	"fmt"

	"touchgrass/interpreter-go/pkg/ast"
)

// Checker walks a program before it runs and reports statements that are
// certain or likely to fail at runtime. It never rejects a program on its
// own; callers decide what to do with the diagnostics.
type Checker struct {
	global    *Environment
	loopDepth int
}

// Diagnostic represents a type-checking warning.
type Diagnostic struct {
	Message string
	Node    ast.Node
}

// New returns a checker with an empty environment.
func New() *Checker {
	return &Checker{global: NewEnvironment()}
}

// Environment exposes the bindings collected so far.
func (c *Checker) Environment() *Environment {
	return c.global
}

// CheckProgram checks every statement in order. Bindings persist across
// calls so a REPL can check one line at a time.
func (c *Checker) CheckProgram(program *ast.Program) ([]Diagnostic, error) {
	if program == nil {
		return nil, fmt.Errorf("typechecker: program is nil")
	}
	c.loopDepth = 0
	var diagnostics []Diagnostic
	for _, stmt := range program.Statements {
		diagnostics = append(diagnostics, c.checkStatement(c.global, stmt)...)
	}
	return diagnostics, nil
}

func (c *Checker) checkStatement(env *Environment, stmt ast.Statement) []Diagnostic {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		return c.checkVarDeclaration(env, s)
	case *ast.Assignment:
		return c.checkAssignment(env, s)
	case *ast.Print:
		diags, _ := c.checkExpression(env, s.Expression)
		return diags
	case *ast.Block:
		return c.checkBlock(env, s)
	case *ast.Conditional:
		return c.checkConditional(env, s)
	case *ast.WhileLoop:
		return c.checkWhileLoop(env, s)
	case nil:
		return nil
	default:
		return []Diagnostic{{
			Message: fmt.Sprintf("typechecker: unsupported statement %T", stmt),
			Node:    stmt,
		}}
	}
}

func (c *Checker) checkVarDeclaration(env *Environment, decl *ast.VarDeclaration) []Diagnostic {
	diags, valueType := c.checkExpression(env, decl.Value)
	want := declaredType(decl)
	if !isUnknownType(want) && !isUnknownType(valueType) && want.Name() != valueType.Name() {
		diags = append(diags, Diagnostic{
			Message: fmt.Sprintf("typechecker: '%s' is declared %s but initialised with %s", decl.Name, want.Name(), valueType.Name()),
			Node:    decl,
		})
	}
	c.bind(env, decl.Name, valueType)
	return diags
}

func (c *Checker) checkAssignment(env *Environment, assign *ast.Assignment) []Diagnostic {
	diags, valueType := c.checkExpression(env, assign.Value)
	if _, ok := env.Lookup(assign.Name); !ok {
		diags = append(diags, Diagnostic{
			Message: fmt.Sprintf("typechecker: '%s' is assigned before it is declared", assign.Name),
			Node:    assign,
		})
		return diags
	}
	c.bind(env, assign.Name, valueType)
	return diags
}

// bind records a new type for name. Inside a loop body the old and new
// types are joined because the body may run any number of times.
func (c *Checker) bind(env *Environment, name string, typ Type) {
	if c.loopDepth > 0 {
		if existing, ok := env.Lookup(name); ok {
			typ = joinTypes(existing, typ)
		}
	}
	env.Define(name, typ)
}

func (c *Checker) checkBlock(env *Environment, block *ast.Block) []Diagnostic {
	if block == nil {
		return nil
	}
	var diags []Diagnostic
	for _, stmt := range block.Statements {
		diags = append(diags, c.checkStatement(env, stmt)...)
	}
	return diags
}

func (c *Checker) checkConditional(env *Environment, cond *ast.Conditional) []Diagnostic {
	diags, condType := c.checkExpression(env, cond.Condition)
	if !isUnknownType(condType) && condType.Name() != boolType.Name() {
		diags = append(diags, Diagnostic{
			Message: fmt.Sprintf("typechecker: if condition must be bool (got %s)", condType.Name()),
			Node:    cond,
		})
	}

	thenEnv := env.Clone()
	diags = append(diags, c.checkBlock(thenEnv, cond.Then)...)
	elseEnv := env.Clone()
	diags = append(diags, c.checkBlock(elseEnv, cond.Else)...)

	thenEnv.Merge(elseEnv)
	*env = *thenEnv
	return diags
}

func (c *Checker) checkWhileLoop(env *Environment, loop *ast.WhileLoop) []Diagnostic {
	diags, _ := c.checkExpression(env, loop.Condition)

	bodyEnv := env.Clone()
	c.loopDepth++
	diags = append(diags, c.checkBlock(bodyEnv, loop.Body)...)
	c.loopDepth--

	env.Merge(bodyEnv)
	return diags
}
