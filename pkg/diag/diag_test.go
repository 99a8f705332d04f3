package diag

import (
	"bytes"
	"testing"

	"touchgrass/interpreter-go/pkg/token"
)

func TestPrinterWritesOneLinePerDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	n := p.Print([]Diagnostic{
		New(StageLexer, token.Position{Line: 1, Column: 7}, "unterminated string"),
		New(StageParser, token.Position{}, "unexpected %s", "'then'"),
	})
	if n != 2 {
		t.Fatalf("Print returned %d, want 2", n)
	}
	want := "lexer:1:7: unterminated string\nparser: unexpected 'then'\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinterColour(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Print([]Diagnostic{New(StageLexer, token.Position{Line: 2, Column: 1}, "illegal character '@'")})
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestDiagnosticString(t *testing.T) {
	d := New(StageParser, token.Position{Line: 3, Column: 4}, "expected %s", "'then'")
	if got, want := d.String(), "parser:3:4: expected 'then'"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
