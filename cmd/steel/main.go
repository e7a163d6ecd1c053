package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	steel "github.com/kenaryn/steel"
)

const (
	appName     = "steel"
	historyFile = ".steel_history"
	promptMain  = "λ> "
	promptCont  = ".. "
)

var banner = fmt.Sprintf("steel %s reader REPL\nCtrl+C cancels input, Ctrl+D exits.", steel.Version)

var log = logrus.New()

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(steel.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`steel %s (built %s)

Usage:
  %s lex [-v] [-comments] <file.scm>    Dump the token stream.
  %s parse [-v] <file.scm>              Parse and pretty-print expressions.
  %s repl                               Start the reader REPL.
  %s version                            Print the compiled version.

`, steel.Version, steel.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// lex
// -----------------------------------------------------------------------------

func cmdLex(args []string) int {
	fs := flag.NewFlagSet("lex", flag.ExitOnError)
	verbose := fs.Bool("v", false, "debug logging")
	comments := fs.Bool("comments", false, "keep comment tokens")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s lex [-v] [-comments] <file.scm>\n", appName)
		return 2
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	file := fs.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	stream := steel.NewTokenStream(string(src), !*comments, 1)
	bad := 0
	for {
		tok, lexErr := stream.Next()
		if lexErr != nil {
			bad++
			log.WithFields(logrus.Fields{
				"file": file,
				"span": fmt.Sprintf("[%d,%d)", tok.Span.Start, tok.Span.End),
			}).Warn(lexErr)
			fmt.Fprintln(os.Stderr, red(steel.WrapErrorWithName(lexErr, file, string(src)).Error()))
			continue
		}
		if tok.Type == steel.EOF {
			break
		}
		log.WithFields(logrus.Fields{
			"type": tok.Type.String(),
			"span": fmt.Sprintf("[%d,%d)", tok.Span.Start, tok.Span.End),
		}).Debug("token")
		line := fmt.Sprintf("%-20s %q [%d,%d)", tok.Type, tok.Source, tok.Span.Start, tok.Span.End)
		if tok.Type == steel.Comment {
			line = green(line)
		}
		fmt.Println(line)
	}
	if bad > 0 {
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	verbose := fs.Bool("v", false, "debug logging")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s parse [-v] <file.scm>\n", appName)
		return 2
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	file := fs.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	p := steel.NewStreamParser(steel.NewTokenStream(string(src), true, 1))
	count := 0
	for {
		expr, perr := p.Next()
		if perr == io.EOF {
			break
		}
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(steel.WrapErrorWithName(perr, file, string(src)).Error()))
			return 1
		}
		count++
		fmt.Println(steel.FormatExpr(expr))
	}
	log.WithFields(logrus.Fields{"file": file, "exprs": count}).Debug("parsed")
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		input, ok := readForm(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}
		if input == "" {
			continue
		}
		ln.AppendHistory(input)

		exprs, err := steel.Parse(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(steel.WrapErrorWithSource(err, input).Error()))
			continue
		}
		for _, e := range exprs {
			fmt.Println(blue(steel.FormatExpr(e)))
		}
	}
}

// readForm accumulates lines until the input parses, fails with something
// other than an open group, or the user aborts. An unexpected-EOF parse
// failure just means the form is still open, so we keep prompting.
func readForm(ln *liner.State, prompt, cont string) (string, bool) {
	var buf string
	p := prompt
	for {
		line, err := ln.Prompt(p)
		if err == liner.ErrPromptAborted {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if buf == "" {
			buf = line
		} else {
			buf += "\n" + line
		}
		if !incomplete(buf) {
			return buf, true
		}
		p = cont
	}
}

func incomplete(src string) bool {
	_, err := steel.Parse(src)
	var perr *steel.ParseError
	if errors.As(err, &perr) {
		return perr.Kind == steel.UnexpectedEOF
	}
	return false
}
