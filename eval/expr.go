/*
File    : loxmix/eval/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/loxmix/ast"
)

// Eval evaluates an expression against env, returning a Value (err nil)
// or a RuntimeError. The resulting environment is always returned
// regardless of which side of a binary expression failed, and the
// evaluation order is always left first (yielding env1), then right
// evaluated against env1.
//
// Like printer.Printer, this threads its output through visitor-struct
// fields rather than return values, since ast.ExprVisitor's Visit
// methods are void — the env/value/err fields play the same role the
// printer's strings.Builder does.
func Eval(expr ast.Expr, env Environment) (Value, Environment, error) {
	ev := &exprEvaluator{env: env}
	expr.Accept(ev)
	return ev.value, ev.env, ev.err
}

type exprEvaluator struct {
	env   Environment
	value Value
	err   error
}

func (ev *exprEvaluator) VisitNumberLiteral(e *ast.NumberLiteral) {
	ev.value = Num(e.Value)
}

func (ev *exprEvaluator) VisitStringLiteral(e *ast.StringLiteral) {
	ev.value = Str(e.Value)
}

func (ev *exprEvaluator) VisitBooleanLiteral(e *ast.BooleanLiteral) {
	ev.value = Bool(e.Value)
}

func (ev *exprEvaluator) VisitNilLiteral(e *ast.NilLiteral) {
	ev.value = Nil
}

func (ev *exprEvaluator) VisitGrouping(e *ast.Grouping) {
	e.Inner.Accept(ev)
}

func (ev *exprEvaluator) VisitUnary(e *ast.Unary) {
	e.Right.Accept(ev)
	if ev.err != nil {
		return
	}
	right := ev.value
	switch e.Op {
	case ast.OpNeg:
		if right.Kind != KindNumber {
			ev.err = &RuntimeError{Message: "Operand must be a number for unary operator '-'"}
			return
		}
		ev.value = Num(-right.Number)
	case ast.OpNot:
		ev.value = Bool(!right.Truthy())
	}
}

func (ev *exprEvaluator) VisitBinary(e *ast.Binary) {
	e.Left.Accept(ev)
	if ev.err != nil {
		return
	}
	left := ev.value

	e.Right.Accept(ev)
	right := ev.value
	if ev.err != nil {
		return
	}

	switch e.Op {
	case ast.OpAdd:
		switch {
		case left.Kind == KindNumber && right.Kind == KindNumber:
			ev.value = Num(left.Number + right.Number)
		case left.Kind == KindString && right.Kind == KindString:
			ev.value = Str(left.Str + right.Str)
		default:
			ev.err = &RuntimeError{Message: "Operands must be two numbers or two strings"}
		}
	case ast.OpSub:
		ev.numericBinary(left, right, func(a, b float64) Value { return Num(a - b) })
	case ast.OpMul:
		ev.numericBinary(left, right, func(a, b float64) Value { return Num(a * b) })
	case ast.OpDiv:
		if left.Kind != KindNumber || right.Kind != KindNumber {
			ev.err = &RuntimeError{Message: "Operands must be numbers"}
			return
		}
		if right.Number == 0 {
			ev.err = &RuntimeError{Message: "Division by zero"}
			return
		}
		ev.value = Num(left.Number / right.Number)
	case ast.OpLt:
		ev.numericBinary(left, right, func(a, b float64) Value { return Bool(a < b) })
	case ast.OpLe:
		ev.numericBinary(left, right, func(a, b float64) Value { return Bool(a <= b) })
	case ast.OpGt:
		ev.numericBinary(left, right, func(a, b float64) Value { return Bool(a > b) })
	case ast.OpGe:
		ev.numericBinary(left, right, func(a, b float64) Value { return Bool(a >= b) })
	case ast.OpEq:
		ev.value = Bool(left.Equals(right))
	case ast.OpNeq:
		ev.value = Bool(!left.Equals(right))
	}
}

// numericBinary applies f to two Number operands, or records the shared
// "Operands must be numbers" error if either is not one.
func (ev *exprEvaluator) numericBinary(left, right Value, f func(a, b float64) Value) {
	if left.Kind != KindNumber || right.Kind != KindNumber {
		ev.err = &RuntimeError{Message: "Operands must be numbers"}
		return
	}
	ev.value = f(left.Number, right.Number)
}

func (ev *exprEvaluator) VisitVariable(e *ast.Variable) {
	v, ok := ev.env.Get(e.Name)
	if !ok {
		ev.err = &RuntimeError{Message: fmt.Sprintf("Undefined variable '%s'", e.Name)}
		return
	}
	ev.value = v
}

func (ev *exprEvaluator) VisitAssignment(e *ast.Assignment) {
	e.Value.Accept(ev)
	if ev.err != nil {
		return
	}
	value := ev.value
	newEnv, ok := ev.env.Assign(e.Name, value)
	if !ok {
		ev.err = &RuntimeError{Message: fmt.Sprintf("Undefined variable '%s'", e.Name)}
		return
	}
	ev.env = newEnv
	ev.value = value
}
