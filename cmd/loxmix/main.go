/*
File    : loxmix/cmd/loxmix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command loxmix is the driver: it dispatches the four required
// subcommands plus three supplemental ones (repl, version, help),
// orchestrates the lexer/parser/evaluator/printer pipeline, and maps
// each stage's errors to process exit codes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxmix/config"
	"github.com/akashmaji946/loxmix/eval"
	"github.com/akashmaji946/loxmix/format"
	"github.com/akashmaji946/loxmix/lexer"
	"github.com/akashmaji946/loxmix/parser"
	"github.com/akashmaji946/loxmix/printer"
	"github.com/akashmaji946/loxmix/repl"
	"github.com/akashmaji946/loxmix/token"
	"github.com/fatih/color"
)

const (
	versionString = "v1.0.0"
	authorString  = "akashmaji(@iisc.ac.in)"
)

// redColor colors lexical/syntax/runtime diagnostics on stderr, the same
// library and color the REPL uses for its own error output.
var redColor = color.New(color.FgRed)

func main() {
	cfg, _ := config.LoadDefault()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, cfg))
}

// run is main's testable core: it takes argv, output streams, and a
// config explicitly instead of reaching for globals, and returns the
// process exit code instead of calling os.Exit itself.
func run(args []string, stdout, stderr io.Writer, cfg config.Config) int {
	if !cfg.ColorEnabled {
		color.NoColor = true
	}

	if len(args) == 0 {
		return startRepl(stdout, stderr, cfg)
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "loxmix %s\n", versionString)
		return 0
	case "repl":
		return startRepl(stdout, stderr, cfg)
	}

	if len(args) < 2 {
		fmt.Fprintln(stderr, "Usage: loxmix <tokenize|parse|evaluate|run> <filename>")
		return 1
	}

	command, filename := args[0], args[1]
	switch command {
	case "tokenize", "parse", "evaluate", "run":
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		return 1
	}

	contents, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file '%s': %v\n", filename, err)
		return 1
	}
	source := string(contents)

	switch command {
	case "tokenize":
		return runTokenize(source, stdout, stderr)
	case "parse":
		return runParse(source, stdout, stderr)
	case "evaluate":
		return runEvaluate(source, stdout, stderr)
	default: // "run"
		return runProgram(source, stdout, stderr)
	}
}

func startRepl(stdout, stderr io.Writer, cfg config.Config) int {
	r := repl.New(versionString, authorString, cfg)
	if err := r.Start(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "loxmix - a small Lox-family interpreter")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  loxmix                       Start the interactive REPL")
	fmt.Fprintln(w, "  loxmix repl                  Start the interactive REPL")
	fmt.Fprintln(w, "  loxmix tokenize <file>       Print the token stream")
	fmt.Fprintln(w, "  loxmix parse <file>          Print the parsed AST")
	fmt.Fprintln(w, "  loxmix evaluate <file>       Evaluate a single expression")
	fmt.Fprintln(w, "  loxmix run <file>            Execute a full program")
	fmt.Fprintln(w, "  loxmix --version             Print the interpreter version")
	fmt.Fprintln(w, "  loxmix --help                Print this message")
}

// runTokenize implements the `tokenize` command: one line per non-error
// token to stdout, one line per lexical error to stderr, exit 65 if any
// error occurred.
func runTokenize(source string, stdout, stderr io.Writer) int {
	tokens := lexer.Tokenize(source)
	hadError := false
	for _, tok := range tokens {
		if tok.IsError() {
			hadError = true
			redColor.Fprintf(stderr, "[line %d] Error: %s\n", tok.Line, tok.Message)
			continue
		}
		fmt.Fprintln(stdout, tokenLine(tok))
	}
	if hadError {
		return 65
	}
	return 0
}

// tokenLine renders one token as "KIND LEXEME LITERAL".
func tokenLine(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "EOF  null"
	case token.STRING:
		return fmt.Sprintf("STRING \"%s\" %s", tok.StrValue, tok.StrValue)
	case token.NUMBER:
		return fmt.Sprintf("NUMBER %s %s", tok.Lexeme, format.TokenizeNumber(tok.NumValue))
	default:
		return fmt.Sprintf("%s %s null", tok.Kind, tok.Lexeme)
	}
}

// runParse implements the `parse` command, including the
// single-expression compatibility mode: pretty-print the AST, one
// logical tree per line.
func runParse(source string, stdout, stderr io.Writer) int {
	clean, ok := requireNoLexicalErrors(source, stderr)
	if !ok {
		return 65
	}

	prog, expr, errs := parser.ParseSingleExpressionFallback(clean)
	if len(errs) > 0 {
		reportSyntaxErrors(errs, stderr)
		return 65
	}
	if expr != nil {
		fmt.Fprintln(stdout, printer.PrintExpr(expr))
		return 0
	}
	for _, stmt := range prog.Statements {
		fmt.Fprintln(stdout, printer.PrintStmt(stmt))
	}
	return 0
}

// runEvaluate implements the `evaluate` command: a bare expression
// prints its value on one line; a program runs for its statement
// effects (`print`). Syntax errors exit 65, runtime errors 70.
func runEvaluate(source string, stdout, stderr io.Writer) int {
	clean, ok := requireNoLexicalErrors(source, stderr)
	if !ok {
		return 65
	}

	prog, expr, errs := parser.ParseSingleExpressionFallback(clean)
	if len(errs) > 0 {
		reportSyntaxErrors(errs, stderr)
		return 65
	}

	env := eval.New()
	if expr != nil {
		value, _, err := eval.Eval(expr, env)
		if err != nil {
			redColor.Fprintf(stderr, "%s\n", err.Error())
			return 70
		}
		fmt.Fprintln(stdout, value.Format())
		return 0
	}

	executor := eval.NewExecutor(stdout)
	if _, err := executor.ExecProgram(prog.Statements, env); err != nil {
		redColor.Fprintf(stderr, "%s\n", err.Error())
		return 70
	}
	return 0
}

// runProgram implements the `run` command: a full program, always
// parsed in program mode (no single-expression fallback — that
// compatibility mode is `evaluate`/`parse` only), executed for its
// effects.
func runProgram(source string, stdout, stderr io.Writer) int {
	clean, ok := requireNoLexicalErrors(source, stderr)
	if !ok {
		return 65
	}

	prog, errs := parser.Parse(clean)
	if len(errs) > 0 {
		reportSyntaxErrors(errs, stderr)
		return 65
	}

	executor := eval.NewExecutor(stdout)
	if _, err := executor.ExecProgram(prog.Statements, eval.New()); err != nil {
		redColor.Fprintf(stderr, "%s\n", err.Error())
		return 70
	}
	return 0
}

// requireNoLexicalErrors tokenizes source and, if any LexicalError token
// appears, reports every one of them and returns ok=false: a lexical
// error always causes exit 65 for parse/evaluate/run, so parsing never
// proceeds past a bad token. On success it returns the token sequence
// with LexicalError tokens filtered out, ready to hand to the parser.
func requireNoLexicalErrors(source string, stderr io.Writer) ([]token.Token, bool) {
	tokens := lexer.Tokenize(source)
	var clean []token.Token
	hadError := false
	for _, tok := range tokens {
		if tok.IsError() {
			hadError = true
			redColor.Fprintf(stderr, "[line %d] Error: %s\n", tok.Line, tok.Message)
			continue
		}
		clean = append(clean, tok)
	}
	if hadError {
		return nil, false
	}
	return clean, true
}

func reportSyntaxErrors(errs []*parser.ParseError, stderr io.Writer) {
	for _, e := range errs {
		redColor.Fprintf(stderr, "%s\n", e.Error())
	}
}
