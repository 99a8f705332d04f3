package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"touchgrass/interpreter-go/pkg/driver"
)

// isolateConfig points the CLI at a colourless config so the caller's
// working directory cannot leak settings into the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "touchgrass.yml")
	if err := os.WriteFile(path, []byte("color: never\nhistory: \"\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(driver.ConfigEnvVar, path)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"touchgrass"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunInlineSource(t *testing.T) {
	isolateConfig(t)
	code, stdout, stderr := runCLI(t, "-e", "touch grass number x as 5 print x")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if stdout != "5\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestRunFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "hello.tg")
	if err := os.WriteFile(path, []byte(`print "touch grass"`+"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, stdout, _ := runCLI(t, path)
	if code != 0 || stdout != "touch grass\n" {
		t.Fatalf("code = %d, stdout = %q", code, stdout)
	}
}

func TestRunReportsRuntimeError(t *testing.T) {
	isolateConfig(t)
	code, _, stderr := runCLI(t, "-e", "print y")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "runtime error: skill issue: y is not defined") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRunMissingFile(t *testing.T) {
	isolateConfig(t)
	code, _, stderr := runCLI(t, filepath.Join(t.TempDir(), "nope.tg"))
	if code != 1 || !strings.Contains(stderr, "nope.tg") {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	isolateConfig(t)
	if code, stdout, _ := runCLI(t, "-V"); code != 0 || strings.TrimSpace(stdout) != cliToolVersion {
		t.Fatalf("-V: code = %d, stdout = %q", code, stdout)
	}
	if code, stdout, _ := runCLI(t, "-h"); code != 0 || !strings.Contains(stdout, "usage: touchgrass") {
		t.Fatalf("-h: code = %d, stdout = %q", code, stdout)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	isolateConfig(t)
	if code, _, stderr := runCLI(t, "-x"); code != 2 || !strings.Contains(stderr, "usage:") {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRunRejectsExtraArguments(t *testing.T) {
	isolateConfig(t)
	if code, _, stderr := runCLI(t, "a.tg", "b.tg"); code != 1 || !strings.Contains(stderr, "unexpected arguments: b.tg") {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRunBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("color: plaid\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code, _, stderr := runCLI(t, "-c", path, "-e", "print 1"); code != 1 || !strings.Contains(stderr, "failed to load config") {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRunCheckOnly(t *testing.T) {
	isolateConfig(t)
	code, stdout, stderr := runCLI(t, "-t", "-e", "print \"hi\" + 1")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Fatalf("check must not run the program, stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "typechecker: '+' requires number operands (got string and number)") {
		t.Fatalf("stderr = %q", stderr)
	}

	if code, _, stderr := runCLI(t, "-t", "-e", "touch grass number x as 1 print x"); code != 0 {
		t.Fatalf("clean program: code = %d, stderr = %q", code, stderr)
	}
	if code, _, _ := runCLI(t, "-t"); code != 1 {
		t.Fatalf("-t without a program: code = %d, want 1", code)
	}
}

type scriptedReader struct {
	lines   []string
	prompts []string
	history []string
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

func plainColor() *color.Color {
	c := color.New(color.FgRed)
	c.DisableColor()
	return c
}

func TestREPLKeepsEnvironmentAfterError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	reader := &scriptedReader{lines: []string{
		"touch grass number x as 1",
		"print nope",
		"",
		"glow up x to x + 1",
		"print x",
		"exit",
		"print 99",
	}}
	session := driver.NewSession(&stdout, &stderr, false)

	code := repl(reader, "> ", session, &stdout, &stderr, plainColor())
	if code != 0 {
		t.Fatalf("repl exit code = %d", code)
	}
	if want := "2\n" + farewell + "\n"; stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
	if !strings.Contains(stderr.String(), "error: skill issue: nope is not defined") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if len(reader.history) != 5 {
		t.Fatalf("history = %v, want 5 non-blank entries", reader.history)
	}
	if reader.prompts[0] != "> " {
		t.Fatalf("prompt = %q", reader.prompts[0])
	}
}

func TestREPLStopsAtEOF(t *testing.T) {
	var stdout, stderr bytes.Buffer
	session := driver.NewSession(&stdout, &stderr, false)
	code := repl(&scriptedReader{lines: []string{"print no_cap"}}, "> ", session, &stdout, &stderr, plainColor())
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stdout.String() != "no cap\n\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
}
