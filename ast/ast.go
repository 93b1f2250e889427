/*
File    : loxmix/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the loxmix abstract syntax tree: a tagged variant
// per expression and statement form, each owning its children exclusively
// so the tree is acyclic by construction. Dispatch over the variants
// uses the visitor pattern — one Visit method per concrete node type,
// and an Accept method on each node that calls back into the visitor.
package ast

// Expr is any expression node. The marker method keeps non-ast types
// from accidentally satisfying the interface.
type Expr interface {
	exprNode()
	Accept(v ExprVisitor)
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
	Accept(v StmtVisitor)
}

// ExprVisitor dispatches over every expression variant.
type ExprVisitor interface {
	VisitNumberLiteral(e *NumberLiteral)
	VisitStringLiteral(e *StringLiteral)
	VisitBooleanLiteral(e *BooleanLiteral)
	VisitNilLiteral(e *NilLiteral)
	VisitGrouping(e *Grouping)
	VisitUnary(e *Unary)
	VisitBinary(e *Binary)
	VisitVariable(e *Variable)
	VisitAssignment(e *Assignment)
}

// StmtVisitor dispatches over every statement variant.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt)
	VisitPrintStmt(s *PrintStmt)
	VisitVarStmt(s *VarStmt)
	VisitBlockStmt(s *BlockStmt)
}

// --- Expressions -----------------------------------------------------

// NumberLiteral is a numeric constant. Lexeme is the source text, kept
// alongside the parsed Value; the printer renders from Value, not from
// Lexeme.
type NumberLiteral struct {
	Value  float64
	Lexeme string
}

func (*NumberLiteral) exprNode() {}
func (e *NumberLiteral) Accept(v ExprVisitor) { v.VisitNumberLiteral(e) }

// StringLiteral is a string constant; Value excludes the surrounding quotes.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode() {}
func (e *StringLiteral) Accept(v ExprVisitor) { v.VisitStringLiteral(e) }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Value bool
}

func (*BooleanLiteral) exprNode() {}
func (e *BooleanLiteral) Accept(v ExprVisitor) { v.VisitBooleanLiteral(e) }

// NilLiteral is the `nil` literal. It carries no payload.
type NilLiteral struct{}

func (*NilLiteral) exprNode() {}
func (e *NilLiteral) Accept(v ExprVisitor) { v.VisitNilLiteral(e) }

// Grouping is a parenthesized expression. It always has exactly one
// child and is kept as its own node — rather than being collapsed away —
// purely so the printer can reproduce the `(group ...)` form.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}
func (e *Grouping) Accept(v ExprVisitor) { v.VisitGrouping(e) }

// UnaryOp is the operator of a Unary expression: `-` or `!`.
type UnaryOp string

const (
	OpNeg UnaryOp = "-"
	OpNot UnaryOp = "!"
)

// Unary is a prefix operator applied to a single operand.
type Unary struct {
	Op    UnaryOp
	Right Expr
}

func (*Unary) exprNode() {}
func (e *Unary) Accept(v ExprVisitor) { v.VisitUnary(e) }

// BinaryOp is the operator of a Binary expression.
type BinaryOp string

const (
	OpAdd  BinaryOp = "+"
	OpSub  BinaryOp = "-"
	OpMul  BinaryOp = "*"
	OpDiv  BinaryOp = "/"
	OpEq   BinaryOp = "=="
	OpNeq  BinaryOp = "!="
	OpLt   BinaryOp = "<"
	OpLe   BinaryOp = "<="
	OpGt   BinaryOp = ">"
	OpGe   BinaryOp = ">="
)

// Binary is a left-associative infix expression (associativity is
// enforced by the parser's iterative consumption, not by this node).
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (*Binary) exprNode() {}
func (e *Binary) Accept(v ExprVisitor) { v.VisitBinary(e) }

// Variable is a bare identifier reference.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}
func (e *Variable) Accept(v ExprVisitor) { v.VisitVariable(e) }

// Assignment binds Value to an already-declared Name. The parser only
// ever builds one of these once it has confirmed the left-hand side was
// a Variable; by the time this node exists, that check has already
// passed.
type Assignment struct {
	Name  string
	Value Expr
}

func (*Assignment) exprNode() {}
func (e *Assignment) Accept(v ExprVisitor) { v.VisitAssignment(e) }

// --- Statements --------------------------------------------------------

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Expression Expr
}

func (*ExprStmt) stmtNode() {}
func (s *ExprStmt) Accept(v StmtVisitor) { v.VisitExprStmt(s) }

// PrintStmt evaluates an expression and writes its formatted value.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}
func (s *PrintStmt) Accept(v StmtVisitor) { v.VisitPrintStmt(s) }

// VarStmt declares a variable in the current scope. Initializer is nil
// when the declaration has no `= expr` clause, in which case the bound
// value defaults to nil.
type VarStmt struct {
	Name        string
	Initializer Expr
}

func (*VarStmt) stmtNode() {}
func (s *VarStmt) Accept(v StmtVisitor) { v.VisitVarStmt(s) }

// BlockStmt is a `{ ... }` sequence of statements executed in its own
// scope; eval.Environment pops the block's frame on exit so its local
// bindings never leak into the enclosing scope.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}
func (s *BlockStmt) Accept(v StmtVisitor) { v.VisitBlockStmt(s) }
