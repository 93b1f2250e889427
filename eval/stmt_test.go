/*
File    : loxmix/eval/stmt_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/loxmix/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_PrintWritesFormattedValue(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	_, err := ex.Exec(&ast.PrintStmt{Expression: num(10.40)}, New())
	require.NoError(t, err)
	assert.Equal(t, "10.4\n", buf.String())
}

func TestExec_VarDeclDefaultsToNil(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	env, err := ex.Exec(&ast.VarStmt{Name: "x"}, New())
	require.NoError(t, err)
	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, Nil, v)
}

func TestExec_VarDeclWithInitializer(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	env, err := ex.Exec(&ast.VarStmt{Name: "x", Initializer: num(5)}, New())
	require.NoError(t, err)
	v, _ := env.Get("x")
	assert.Equal(t, Num(5), v)
}

func TestExec_BlockDoesNotLeakLocalBindings(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	block := &ast.BlockStmt{Statements: []ast.Stmt{
		&ast.VarStmt{Name: "local", Initializer: num(1)},
	}}
	env, err := ex.Exec(block, New())
	require.NoError(t, err)
	_, ok := env.Get("local")
	assert.False(t, ok, "block-local var must not survive the block")
}

func TestExec_BlockSeesOuterBindings(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	env := New().Define("outer", Num(1))
	block := &ast.BlockStmt{Statements: []ast.Stmt{
		&ast.PrintStmt{Expression: &ast.Variable{Name: "outer"}},
	}}
	_, err := ex.Exec(block, env)
	require.NoError(t, err)
	assert.Equal(t, "1\n", buf.String())
}

func TestExec_BlockStopsOnFirstErrorAndStillPopsScope(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	block := &ast.BlockStmt{Statements: []ast.Stmt{
		&ast.ExprStmt{Expression: &ast.Variable{Name: "missing"}},
		&ast.VarStmt{Name: "unreached", Initializer: num(1)},
	}}
	env, err := ex.Exec(block, New())
	require.Error(t, err)
	_, ok := env.Get("unreached")
	assert.False(t, ok)
}

func TestExecProgram_ThreadsEnvironmentAndStopsOnError(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	stmts := []ast.Stmt{
		&ast.VarStmt{Name: "a", Initializer: num(1)},
		&ast.VarStmt{Name: "b", Initializer: num(2)},
		&ast.PrintStmt{Expression: &ast.Binary{
			Left:  &ast.Variable{Name: "a"},
			Op:    ast.OpAdd,
			Right: &ast.Variable{Name: "b"},
		}},
	}
	_, err := ex.ExecProgram(stmts, New())
	require.NoError(t, err)
	assert.Equal(t, "3\n", buf.String())
}

func TestExecProgram_ReassignAccumulates(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	stmts := []ast.Stmt{
		&ast.VarStmt{Name: "a", Initializer: num(1)},
		&ast.ExprStmt{Expression: &ast.Assignment{
			Name:  "a",
			Value: &ast.Binary{Left: &ast.Variable{Name: "a"}, Op: ast.OpAdd, Right: num(2)},
		}},
		&ast.PrintStmt{Expression: &ast.Variable{Name: "a"}},
	}
	_, err := ex.ExecProgram(stmts, New())
	require.NoError(t, err)
	assert.Equal(t, "3\n", buf.String())
}

func TestExecProgram_UndefinedVariableAborts(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(&buf)
	stmts := []ast.Stmt{
		&ast.PrintStmt{Expression: &ast.Variable{Name: "x"}},
	}
	_, err := ex.ExecProgram(stmts, New())
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'x'", err.Error())
}
