/*
File    : loxmix/printer/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package printer pretty-prints the loxmix AST in a parenthesised
// S-expression form, implementing ExprVisitor/StmtVisitor and
// accumulating into a buffer as it walks the tree.
package printer

import (
	"strings"

	"github.com/akashmaji946/loxmix/ast"
	"github.com/akashmaji946/loxmix/format"
)

// Printer renders expressions and statements to their S-expression form.
type Printer struct {
	buf strings.Builder
}

// New returns a ready-to-use Printer.
func New() *Printer {
	return &Printer{}
}

// PrintExpr renders a single expression tree.
func PrintExpr(e ast.Expr) string {
	p := New()
	e.Accept(p)
	return p.buf.String()
}

// PrintStmt renders a single statement tree.
func PrintStmt(s ast.Stmt) string {
	p := New()
	s.Accept(p)
	return p.buf.String()
}

// --- ast.ExprVisitor ---------------------------------------------------

// Number literals print with the always-fractional-digit form (so
// `1 + 2 * 3` parses to `(+ 1.0 (* 2.0 3.0))`), not the trimmed
// value-formatting rule that `print`/`evaluate` output uses — the
// printer is dumping the parsed literal, not a computed runtime value,
// the same distinction a literal's toString() draws from an
// interpreter's stringify().
func (p *Printer) VisitNumberLiteral(e *ast.NumberLiteral) {
	p.buf.WriteString(format.TokenizeNumber(e.Value))
}

func (p *Printer) VisitStringLiteral(e *ast.StringLiteral) {
	p.buf.WriteString(e.Value)
}

func (p *Printer) VisitBooleanLiteral(e *ast.BooleanLiteral) {
	if e.Value {
		p.buf.WriteString("true")
	} else {
		p.buf.WriteString("false")
	}
}

func (p *Printer) VisitNilLiteral(e *ast.NilLiteral) {
	p.buf.WriteString("nil")
}

func (p *Printer) VisitGrouping(e *ast.Grouping) {
	p.parenthesize("group", e.Inner)
}

func (p *Printer) VisitUnary(e *ast.Unary) {
	p.parenthesize(string(e.Op), e.Right)
}

func (p *Printer) VisitBinary(e *ast.Binary) {
	p.parenthesize(string(e.Op), e.Left, e.Right)
}

func (p *Printer) VisitVariable(e *ast.Variable) {
	p.buf.WriteString(e.Name)
}

func (p *Printer) VisitAssignment(e *ast.Assignment) {
	p.buf.WriteString("(= ")
	p.buf.WriteString(e.Name)
	p.buf.WriteString(" ")
	e.Value.Accept(p)
	p.buf.WriteString(")")
}

// --- ast.StmtVisitor ---------------------------------------------------

func (p *Printer) VisitExprStmt(s *ast.ExprStmt) {
	p.buf.WriteString("(expr ")
	s.Expression.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitPrintStmt(s *ast.PrintStmt) {
	p.buf.WriteString("(print ")
	s.Expression.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitVarStmt(s *ast.VarStmt) {
	p.buf.WriteString("(var ")
	p.buf.WriteString(s.Name)
	p.buf.WriteString(" ")
	if s.Initializer != nil {
		s.Initializer.Accept(p)
	} else {
		p.buf.WriteString("nil")
	}
	p.buf.WriteString(")")
}

func (p *Printer) VisitBlockStmt(s *ast.BlockStmt) {
	p.buf.WriteString("(block")
	for _, stmt := range s.Statements {
		p.buf.WriteString(" ")
		stmt.Accept(p)
	}
	p.buf.WriteString(")")
}

// parenthesize writes "(name expr1 expr2 ...)" the way the Grouping,
// Unary, and Binary forms all do.
func (p *Printer) parenthesize(name string, exprs ...ast.Expr) {
	p.buf.WriteString("(")
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteString(" ")
		e.Accept(p)
	}
	p.buf.WriteString(")")
}
