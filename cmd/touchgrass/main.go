package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"touchgrass/interpreter-go/pkg/driver"
	"touchgrass/interpreter-go/pkg/interpreter"
)

const (
	cliToolVersion = "touchgrass 0.1.0"
	bannerTitle    = "Touch Grass Programming Language v0.1.0"
	bannerTagline  = "Because you clearly need to..."
	farewell       = "Finally... touch grass my friend!"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run takes the full argv, program name included.
func run(args []string, stdout, stderr io.Writer) int {
	opts, optind, err := getopt.Getopts(args, "hVtc:e:")
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		printUsage(stderr)
		return 2
	}

	var (
		configPath string
		inline     string
		haveInline bool
		checkOnly  bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			printUsage(stdout)
			return 0
		case 'V':
			fmt.Fprintln(stdout, cliToolVersion)
			return 0
		case 't':
			checkOnly = true
		case 'c':
			configPath = opt.Value
		case 'e':
			inline = opt.Value
			haveInline = true
		}
	}
	rest := args[optind:]

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	cfg, err := driver.ResolveConfig(configPath, workDir)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	colorize := cfg.Color.Enabled(!color.NoColor)
	errColor := color.New(color.FgRed, color.Bold)
	if colorize {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}
	session := driver.NewSession(stdout, stderr, colorize)

	if checkOnly {
		return runCheck(session, inline, haveInline, rest, stderr)
	}

	switch {
	case haveInline && len(rest) > 0:
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(rest, " "))
		return 1
	case haveInline:
		return reportRun(session.Run(inline), stderr, errColor)
	case len(rest) == 1:
		return reportRun(session.RunFile(rest[0]), stderr, errColor)
	case len(rest) > 1:
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(rest[1:], " "))
		return 1
	default:
		return runREPL(cfg, session, stdout, stderr, errColor)
	}
}

func reportRun(err error, stderr io.Writer, errColor *color.Color) int {
	if err == nil {
		return 0
	}
	var rtErr *interpreter.RuntimeError
	if errors.As(err, &rtErr) {
		errColor.Fprintf(stderr, "runtime error: %v\n", rtErr)
		return 1
	}
	fmt.Fprintf(stderr, "%v\n", err)
	return 1
}

// runCheck typechecks without evaluating. Any diagnostic fails the run.
func runCheck(session *driver.Session, inline string, haveInline bool, rest []string, stderr io.Writer) int {
	var (
		count int
		err   error
	)
	switch {
	case haveInline && len(rest) == 0:
		count, err = session.Check(inline)
	case !haveInline && len(rest) == 1:
		count, err = session.CheckFile(rest[0])
	default:
		fmt.Fprintln(stderr, "-t needs exactly one program (-e source or a file)")
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if count > 0 {
		return 1
	}
	return 0
}

func runREPL(cfg *driver.Config, session *driver.Session, stdout, stderr io.Writer, errColor *color.Color) int {
	if cfg.Banner {
		fmt.Fprintln(stdout, bannerTitle)
		fmt.Fprintln(stdout, bannerTagline)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	code := repl(ln, cfg.Prompt, session, stdout, stderr, errColor)

	if cfg.History != "" {
		if f, err := os.Create(cfg.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return code
}

// lineReader is the part of liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// repl reads one line at a time and runs it in the shared session. A failed
// line is reported and the session carries on with its bindings intact.
func repl(r lineReader, prompt string, session *driver.Session, stdout, stderr io.Writer, errColor *color.Color) int {
	for {
		line, err := r.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(stdout)
				return 0
			}
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		r.AppendHistory(line)
		if trimmed == "exit" {
			fmt.Fprintln(stdout, farewell)
			return 0
		}

		if err := session.Run(line); err != nil {
			errColor.Fprintf(stderr, "error: %v\n", err)
		}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: touchgrass [-t] [-c config.yml] [-e source | file.tg]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no program the interactive prompt starts; type exit to leave.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "options:")
	fmt.Fprintln(w, "  -c FILE    read settings from FILE instead of touchgrass.yml")
	fmt.Fprintln(w, "  -e SOURCE  run SOURCE and exit")
	fmt.Fprintln(w, "  -t         typecheck the program without running it")
	fmt.Fprintln(w, "  -h         show this help")
	fmt.Fprintln(w, "  -V         print the version")
}
