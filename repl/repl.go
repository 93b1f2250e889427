/*
File    : loxmix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the interactive Read-Eval-Print Loop: a
// colored, history-backed line editor built on chzyer/readline that feeds
// each line through the lexer, parser, and evaluator against one
// persistent environment, threading an immutable eval.Environment
// between lines rather than mutating a shared evaluator.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/loxmix/config"
	"github.com/akashmaji946/loxmix/eval"
	"github.com/akashmaji946/loxmix/lexer"
	"github.com/akashmaji946/loxmix/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _                 _
 | | _____  ___ __ (_)_  __
 | |/ _ \ \/ / '_ \| \ \/ /
 | | (_) >  <| | | | |>  <
 |_|\___/_/\_\_| |_|_/_/\_\
`

const line = "--------------------------------------------------------------"

// Repl is one interactive session. Cfg controls the prompt string and
// whether output is colored; both default sensibly via config.Default().
type Repl struct {
	Version string
	Author  string
	Cfg     config.Config
}

// New returns a Repl ready to Start.
func New(version, author string, cfg config.Config) *Repl {
	return &Repl{Version: version, Author: author, Cfg: cfg}
}

func (r *Repl) printBanner(w io.Writer) {
	if !r.Cfg.ColorEnabled {
		color.NoColor = true
	}
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "loxmix "+r.Version+" | "+r.Author)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintf(w, "%s\n", "Type a loxmix statement or expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop against w until the user exits (`.exit` or
// EOF/Ctrl-D). Each accepted line is parsed and evaluated against one
// environment that persists across lines, so `var x = 1;` on one line
// makes `x` visible on the next.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Cfg.Prompt,
		Stdout: w,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := eval.New()
	executor := eval.NewExecutor(w)

	for {
		input, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Bye!\n"))
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			w.Write([]byte("Bye!\n"))
			return nil
		}
		rl.SaveHistory(input)

		env = r.evalLine(w, executor, input, env)
	}
}

// evalLine parses and executes one line of input against env, printing
// either the value of a bare expression, the effects of a program, or an
// error — and always returns the environment to carry forward, even when
// that line failed (so one bad line in the REPL does not forget prior
// bindings).
func (r *Repl) evalLine(w io.Writer, executor *eval.Executor, input string, env eval.Environment) eval.Environment {
	tokens := lexer.Tokenize(input)
	for _, tok := range tokens {
		if tok.IsError() {
			redColor.Fprintf(w, "%s\n", tok.Message)
			return env
		}
	}

	prog, expr, errs := parser.ParseSingleExpressionFallback(tokens)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(w, "%s\n", e.Error())
		}
		return env
	}

	if expr != nil {
		value, newEnv, err := eval.Eval(expr, env)
		if err != nil {
			redColor.Fprintf(w, "%s\n", err.Error())
			return newEnv
		}
		yellowColor.Fprintf(w, "%s\n", value.Format())
		return newEnv
	}

	newEnv, err := executor.ExecProgram(prog.Statements, env)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err.Error())
	}
	return newEnv
}
