/*
File    : loxmix/eval/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/loxmix/ast"
)

// Executor runs statements for effect, writing `print` output to Out.
// Driver code constructs one Executor per run and reuses it across every
// top-level statement so that a single io.Writer (stdout, or a buffer in
// tests) backs the whole program.
type Executor struct {
	Out io.Writer
}

// NewExecutor returns an Executor that writes print output to out.
func NewExecutor(out io.Writer) *Executor {
	return &Executor{Out: out}
}

// Exec executes one statement against env, returning the resulting
// environment and, if execution failed, the runtime error that aborted
// it. A nil error means the statement ran to completion.
func (ex *Executor) Exec(stmt ast.Stmt, env Environment) (Environment, error) {
	s := &stmtExecutor{out: ex.Out, env: env}
	stmt.Accept(s)
	return s.env, s.err
}

// ExecProgram runs stmts in order against env, threading the environment
// from one statement to the next and stopping at the first runtime
// error, which immediately aborts the rest of the program.
func (ex *Executor) ExecProgram(stmts []ast.Stmt, env Environment) (Environment, error) {
	for _, stmt := range stmts {
		next, err := ex.Exec(stmt, env)
		env = next
		if err != nil {
			return env, err
		}
	}
	return env, nil
}

type stmtExecutor struct {
	out io.Writer
	env Environment
	err error
}

func (s *stmtExecutor) VisitExprStmt(st *ast.ExprStmt) {
	_, env, err := Eval(st.Expression, s.env)
	s.env = env
	s.err = err
}

func (s *stmtExecutor) VisitPrintStmt(st *ast.PrintStmt) {
	value, env, err := Eval(st.Expression, s.env)
	s.env = env
	if err != nil {
		s.err = err
		return
	}
	fmt.Fprintln(s.out, value.Format())
}

func (s *stmtExecutor) VisitVarStmt(st *ast.VarStmt) {
	value := Nil
	env := s.env
	if st.Initializer != nil {
		var err error
		value, env, err = Eval(st.Initializer, s.env)
		if err != nil {
			s.env = env
			s.err = err
			return
		}
	}
	s.env = env.Define(st.Name, value)
}

// VisitBlockStmt pushes a fresh scope frame, runs the block's statements
// against it in order, and pops that frame back off on exit — whether it
// exits normally or via a runtime error — so bindings declared inside the
// block never leak into the enclosing scope.
func (s *stmtExecutor) VisitBlockStmt(st *ast.BlockStmt) {
	s.env = s.env.PushScope()
	for _, stmt := range st.Statements {
		stmt.Accept(s)
		if s.err != nil {
			break
		}
	}
	s.env = s.env.PopScope()
}
