package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"touchgrass/interpreter-go/pkg/token"
)

// Stage names the pipeline component that produced a diagnostic.
type Stage string

const (
	StageLexer       Stage = "lexer"
	StageParser      Stage = "parser"
	StageTypechecker Stage = "typechecker"
)

// Diagnostic is a non-fatal problem found before evaluation. The pipeline
// keeps going after recording one.
type Diagnostic struct {
	Stage   Stage
	Pos     token.Position
	Message string
}

func New(stage Stage, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Stage: stage, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (d Diagnostic) String() string {
	if d.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Stage, d.Message)
	}
	return fmt.Sprintf("%s:%s: %s", d.Stage, d.Pos, d.Message)
}

// Printer writes diagnostics to an error channel, one per line.
type Printer struct {
	w     io.Writer
	stage *color.Color
	msg   *color.Color
}

// NewPrinter returns a printer writing to w. Colour escapes are emitted only
// when colorize is true.
func NewPrinter(w io.Writer, colorize bool) *Printer {
	p := &Printer{
		w:     w,
		stage: color.New(color.FgYellow, color.Bold),
		msg:   color.New(color.FgYellow),
	}
	if colorize {
		p.stage.EnableColor()
		p.msg.EnableColor()
	} else {
		p.stage.DisableColor()
		p.msg.DisableColor()
	}
	return p
}

// Print writes every diagnostic and returns how many were written.
func (p *Printer) Print(diags []Diagnostic) int {
	for _, d := range diags {
		prefix := string(d.Stage)
		if d.Pos.Line != 0 {
			prefix += ":" + d.Pos.String()
		}
		p.stage.Fprint(p.w, prefix+":")
		p.msg.Fprintln(p.w, " "+d.Message)
	}
	return len(diags)
}
