/*
File    : loxmix/cmd/loxmix/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/loxmix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun_TokenizeSuccess(t *testing.T) {
	path := writeSource(t, "(( ))")
	var stdout, stderr bytes.Buffer
	code := run([]string{"tokenize", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "LEFT_PAREN ( null\nLEFT_PAREN ( null\nRIGHT_PAREN ) null\nRIGHT_PAREN ) null\nEOF  null\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_TokenizeLexicalError(t *testing.T) {
	path := writeSource(t, "@")
	var stdout, stderr bytes.Buffer
	code := run([]string{"tokenize", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr.String(), "Unexpected character: @")
}

func TestRun_TokenizeNumberFormatting(t *testing.T) {
	path := writeSource(t, "42")
	var stdout, stderr bytes.Buffer
	code := run([]string{"tokenize", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "NUMBER 42 42.0")
}

func TestRun_ParseExpressionFallback(t *testing.T) {
	path := writeSource(t, "1 + 2 * 3")
	var stdout, stderr bytes.Buffer
	code := run([]string{"parse", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))\n", stdout.String())
}

func TestRun_ParseSyntaxError(t *testing.T) {
	path := writeSource(t, "1 +")
	var stdout, stderr bytes.Buffer
	code := run([]string{"parse", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestRun_EvaluateSingleExpression(t *testing.T) {
	path := writeSource(t, "-42")
	var stdout, stderr bytes.Buffer
	code := run([]string{"evaluate", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "-42\n", stdout.String())
}

func TestRun_EvaluateDivisionByZero(t *testing.T) {
	path := writeSource(t, "1 / 0")
	var stdout, stderr bytes.Buffer
	code := run([]string{"evaluate", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 70, code)
	assert.Contains(t, stderr.String(), "Division by zero")
}

func TestRun_EvaluateStringConcatenation(t *testing.T) {
	path := writeSource(t, `"hello" + " " + "world"`)
	var stdout, stderr bytes.Buffer
	code := run([]string{"evaluate", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestRun_RunProgramPrintsEffects(t *testing.T) {
	path := writeSource(t, "var a = 1; var b = 2; print a + b;")
	var stdout, stderr bytes.Buffer
	code := run([]string{"run", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout.String())
}

func TestRun_RunProgramReassignment(t *testing.T) {
	path := writeSource(t, "var a = 1; a = a + 2; print a;")
	var stdout, stderr bytes.Buffer
	code := run([]string{"run", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout.String())
}

func TestRun_RunProgramUndefinedVariable(t *testing.T) {
	path := writeSource(t, "print x;")
	var stdout, stderr bytes.Buffer
	code := run([]string{"run", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 70, code)
	assert.Contains(t, stderr.String(), "Undefined variable 'x'")
}

func TestRun_UsageErrorOnMissingArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"run"}, &stdout, &stderr, config.Default())
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_UsageErrorOnUnknownCommand(t *testing.T) {
	path := writeSource(t, "1;")
	var stdout, stderr bytes.Buffer
	code := run([]string{"frobnicate", path}, &stdout, &stderr, config.Default())
	assert.Equal(t, 1, code)
}

func TestRun_VersionAndHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--version"}, &stdout, &stderr, config.Default()))
	assert.Contains(t, stdout.String(), "loxmix")

	stdout.Reset()
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr, config.Default()))
	assert.Contains(t, stdout.String(), "USAGE")
}
