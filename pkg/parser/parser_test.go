package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"touchgrass/interpreter-go/pkg/ast"
	"touchgrass/interpreter-go/pkg/parser"
	"touchgrass/interpreter-go/pkg/token"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, diags := parser.ParseSource(src)
	if len(diags) != 0 {
		t.Fatalf("ParseSource(%q) diagnostics: %v", src, diags)
	}
	if program == nil {
		t.Fatalf("ParseSource(%q) returned nil program", src)
	}
	return program
}

func assertProgram(t *testing.T, got, want *ast.Program) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("program mismatch\n got: %#v\nwant: %#v", got.Statements, want.Statements)
	}
}

func TestParseVarDeclaration(t *testing.T) {
	got := mustParse(t, "touch grass number x as 5")
	assertProgram(t, got, ast.Prog(ast.Decl("x", ast.Num(5))))
}

func TestParseAssignment(t *testing.T) {
	got := mustParse(t, "glow up x to x + 1")
	assertProgram(t, got, ast.Prog(ast.Set("x", ast.Bin(ast.ID("x"), ast.OpPlus, ast.Num(1)))))
}

func TestParsePrintLiterals(t *testing.T) {
	got := mustParse(t, `print "hi" print no_cap print cap print bugatti print y`)
	assertProgram(t, got, ast.Prog(
		ast.Say(ast.Str("hi")),
		ast.Say(ast.Bool(true)),
		ast.Say(ast.Bool(false)),
		ast.Say(ast.Null()),
		ast.Say(ast.ID("y")),
	))
}

func TestAdditiveIsLeftAssociative(t *testing.T) {
	got := mustParse(t, "print 10 - 3 - 2")
	want := ast.Prog(ast.Say(
		ast.Bin(ast.Bin(ast.Num(10), ast.OpMinus, ast.Num(3)), ast.OpMinus, ast.Num(2)),
	))
	assertProgram(t, got, want)
}

func TestComparisonBindsLooserThanTerms(t *testing.T) {
	got := mustParse(t, "print 1 + 2 > 2 - 1")
	want := ast.Prog(ast.Say(ast.Bin(
		ast.Bin(ast.Num(1), ast.OpPlus, ast.Num(2)),
		ast.OpGreaterThan,
		ast.Bin(ast.Num(2), ast.OpMinus, ast.Num(1)),
	)))
	assertProgram(t, got, want)
}

func TestChainedComparisonLeansLeft(t *testing.T) {
	got := mustParse(t, "print 1 < 2 = 3")
	want := ast.Prog(ast.Say(ast.Bin(
		ast.Bin(ast.Num(1), ast.OpLessThan, ast.Num(2)),
		ast.OpEquals,
		ast.Num(3),
	)))
	assertProgram(t, got, want)
}

func TestParseConditional(t *testing.T) {
	got := mustParse(t, `if x > 1 then print "big" fr fr`)
	want := ast.Prog(ast.IfThen(
		ast.Bin(ast.ID("x"), ast.OpGreaterThan, ast.Num(1)),
		ast.Blk(ast.Say(ast.Str("big"))),
	))
	assertProgram(t, got, want)
}

func TestParseConditionalWithElse(t *testing.T) {
	got := mustParse(t, `
if x > 1 then
  print "big"
fr fr else
  print "small"
  print "very"
fr fr
print "done"`)
	want := ast.Prog(
		ast.IfElse(
			ast.Bin(ast.ID("x"), ast.OpGreaterThan, ast.Num(1)),
			ast.Blk(ast.Say(ast.Str("big"))),
			ast.Blk(ast.Say(ast.Str("small")), ast.Say(ast.Str("very"))),
		),
		ast.Say(ast.Str("done")),
	)
	assertProgram(t, got, want)
}

func TestParseWhileLoop(t *testing.T) {
	got := mustParse(t, `
touch grass number i as 0
while i < 3 go outside
  print i
  glow up i to i + 1
fr fr`)
	want := ast.Prog(
		ast.Decl("i", ast.Num(0)),
		ast.While(
			ast.Bin(ast.ID("i"), ast.OpLessThan, ast.Num(3)),
			ast.Blk(
				ast.Say(ast.ID("i")),
				ast.Set("i", ast.Bin(ast.ID("i"), ast.OpPlus, ast.Num(1))),
			),
		),
	)
	assertProgram(t, got, want)
}

func TestParseStandaloneAndNestedBlocks(t *testing.T) {
	got := mustParse(t, `go outside print 1 go outside print 2 fr fr fr fr print 3`)
	want := ast.Prog(
		ast.Blk(ast.Say(ast.Num(1)), ast.Blk(ast.Say(ast.Num(2)))),
		ast.Say(ast.Num(3)),
	)
	assertProgram(t, got, want)
}

func TestMissingBlockTerminatorIsTolerated(t *testing.T) {
	got := mustParse(t, `if no_cap then print 1`)
	assertProgram(t, got, ast.Prog(ast.IfThen(ast.Bool(true), ast.Blk(ast.Say(ast.Num(1))))))
}

func TestIllegalTokenDoesNotAbortProgram(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Illegal, Ch: '@'},
		{Kind: token.Print},
		{Kind: token.String, Literal: "ok"},
		{Kind: token.EOF},
	}
	program, diags := parser.ParseTokens(toks)
	assertProgram(t, program, ast.Prog(ast.Say(ast.Str("ok"))))
	if len(diags) != 0 {
		t.Fatalf("illegal tokens are reported by the lexer, parser diagnostics: %v", diags)
	}
}

func TestUnexpectedTokenIsReportedAndSkipped(t *testing.T) {
	program, diags := parser.ParseSource(`then print "ok"`)
	assertProgram(t, program, ast.Prog(ast.Say(ast.Str("ok"))))
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "unexpected 'then'") {
		t.Fatalf("diagnostics = %v, want one unexpected 'then'", diags)
	}
}

func TestBrokenDeclarationRecovers(t *testing.T) {
	program, diags := parser.ParseSource(`touch grass number as 5 print "ok"`)
	assertProgram(t, program, ast.Prog(ast.Say(ast.Str("ok"))))
	if len(diags) == 0 {
		t.Fatalf("expected diagnostics for broken declaration")
	}
	if !strings.Contains(diags[0].Message, "expected 'identifier' in declaration") {
		t.Fatalf("first diagnostic = %q", diags[0].Message)
	}
}

func TestMissingOperandDropsStatement(t *testing.T) {
	program, diags := parser.ParseSource(`print 1 + print 2`)
	// The failed print discards the second 'print'; "2" is then unexpected.
	if len(program.Statements) != 0 {
		t.Fatalf("expected no statements, got %#v", program.Statements)
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2", diags)
	}
}

func TestRecoveryInsideBodyKeepsTerminator(t *testing.T) {
	program, diags := parser.ParseSource(`go outside print fr fr print "after"`)
	want := ast.Prog(ast.Blk(), ast.Say(ast.Str("after")))
	assertProgram(t, program, want)
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "expected expression, found 'fr fr'") {
		t.Fatalf("diagnostics = %v", diags)
	}
}

func TestStrayBlockTerminatorAtTopLevel(t *testing.T) {
	program, diags := parser.ParseSource(`fr fr print 1`)
	assertProgram(t, program, ast.Prog(ast.Say(ast.Num(1))))
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want 1", diags)
	}
}

func TestParseWithoutTrailingEOF(t *testing.T) {
	toks := []token.Token{{Kind: token.Print}, {Kind: token.Number, Int: 7}}
	program, diags := parser.ParseTokens(toks)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	assertProgram(t, program, ast.Prog(ast.Say(ast.Num(7))))
}

func TestParseEmptyProgram(t *testing.T) {
	program, diags := parser.ParseTokens(nil)
	if program == nil || len(program.Statements) != 0 || len(diags) != 0 {
		t.Fatalf("empty input: program=%#v diags=%v", program, diags)
	}
}

func TestLexerDiagnosticsComeFirst(t *testing.T) {
	_, diags := parser.ParseSource(`then print "open`)
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2", diags)
	}
	if diags[0].Stage != "lexer" || diags[1].Stage != "parser" {
		t.Fatalf("diagnostic order = %s, %s", diags[0].Stage, diags[1].Stage)
	}
}

func TestDiagnosticPositions(t *testing.T) {
	_, diags := parser.ParseSource("print 1\nwhile 1 print 2")
	if len(diags) == 0 {
		t.Fatalf("expected diagnostics")
	}
	if got := diags[0].Pos; got.Line != 2 || got.Column != 9 {
		t.Fatalf("diagnostic position = %v, want 2:9", got)
	}
}
