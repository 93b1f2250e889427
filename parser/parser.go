/*
File    : loxmix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser over an immutable
// token cursor. Every grammar production is a small function of the
// cursor's current position; none of them mutate shared parser state the
// way a CurrToken/NextToken pair would. By threading a
// cursor.Cursor[token.Token] through return values instead, a failed
// speculative parse costs nothing to back out of, and a recovery point is
// just a cursor value sitting in an error record rather than a position
// the caller has to manually restore.
//
// Expression-level functions bubble the first error they hit straight to
// their caller. Statement-level functions instead collect every error
// they can recover from and keep going, the way declaration* loops in
// `program` and `block` both do.
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/loxmix/ast"
	"github.com/akashmaji946/loxmix/cursor"
	"github.com/akashmaji946/loxmix/token"
)

// tokenCursor is the specific cursor instantiation the parser threads
// through every production.
type tokenCursor = cursor.Cursor[token.Token]

// ParseError is one recoverable syntax error: a message and the cursor
// position recovery should resume from.
type ParseError struct {
	Message  string
	Line     int
	Recovery tokenCursor
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error: %s", e.Message)
}

// Program is the root of a parsed source file: an ordered list of
// top-level statements (`program → declaration* EOF`).
type Program struct {
	Statements []ast.Stmt
}

// Parse parses tokens as a full program, collecting every recoverable
// syntax error along the way instead of stopping at the first one.
func Parse(tokens []token.Token) (Program, []*ParseError) {
	c := cursor.New(tokens)
	stmts, _, errs := parseDeclarations(c, token.EOF)
	return Program{Statements: stmts}, errs
}

// ParseExpression parses tokens as a single bare expression with no
// trailing statement terminator, used by the single-expression
// compatibility mode (ParseSingleExpressionFallback).
func ParseExpression(tokens []token.Token) (ast.Expr, *ParseError) {
	c := cursor.New(tokens)
	expr, _, err := parseExpression(c)
	return expr, err
}

// ParseSingleExpressionFallback implements the `parse`/`evaluate`
// compatibility rule: try parsing as a full program first; if the first
// error produced is of the form "Expected ';'", the input is probably a
// bare expression typed at the CLI without a trailing semicolon, so
// reparse it from scratch as a single expression instead. This can mask
// an unrelated later syntax error — that trade-off is preserved
// deliberately for CLI compatibility.
//
// Returns (program, nil, errs) for ordinary program parses, or
// (Program{}, expr, nil) when the fallback kicked in and succeeded.
func ParseSingleExpressionFallback(tokens []token.Token) (Program, ast.Expr, []*ParseError) {
	prog, errs := Parse(tokens)
	if len(errs) == 0 || !strings.HasPrefix(errs[0].Message, "Expected ';'") {
		return prog, nil, errs
	}
	expr, err := ParseExpression(tokens)
	if err != nil {
		return Program{}, nil, []*ParseError{err}
	}
	return Program{}, expr, nil
}

// parseDeclarations repeatedly parses `declaration` until it sees stop
// or EOF, collecting statements and errors as it goes. Used both for the
// top-level program and for the inside of a block — the same recovery
// shape `program` uses, applied one level deeper.
func parseDeclarations(c tokenCursor, stop token.Kind) ([]ast.Stmt, tokenCursor, []*ParseError) {
	var stmts []ast.Stmt
	var errs []*ParseError
	for {
		cur, ok := c.Current()
		if !ok || cur.Kind == token.EOF || cur.Kind == stop {
			break
		}
		stmt, next, stmtErrs := parseDeclaration(c)
		errs = append(errs, stmtErrs...)
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		c = next
	}
	return stmts, c, errs
}

// parseDeclaration → varDecl | statement
func parseDeclaration(c tokenCursor) (ast.Stmt, tokenCursor, []*ParseError) {
	if cur, ok := c.Current(); ok && cur.Kind == token.VAR {
		return parseVarDecl(c)
	}
	return parseStatement(c)
}

// parseVarDecl → "var" IDENTIFIER ( "=" expression )? ";"
func parseVarDecl(c tokenCursor) (ast.Stmt, tokenCursor, []*ParseError) {
	c1 := c.Advance() // consume "var"

	nameTok, ok := c1.Current()
	if !ok || nameTok.Kind != token.IDENTIFIER {
		e := &ParseError{Message: "Expected variable name.", Line: lineAt(c1), Recovery: c1.Advance()}
		return nil, e.Recovery, []*ParseError{e}
	}
	c2 := c1.Advance()

	var initializer ast.Expr
	if cur, ok := c2.Current(); ok && cur.Kind == token.EQUAL {
		var err *ParseError
		initializer, c2, err = parseExpression(c2.Advance())
		if err != nil {
			return nil, err.Recovery, []*ParseError{err}
		}
	}

	semi, ok := c2.Current()
	if !ok || semi.Kind != token.SEMICOLON {
		e := &ParseError{Message: "Expected ';' after variable declaration.", Line: lineAt(c2), Recovery: c2.Advance()}
		return nil, e.Recovery, []*ParseError{e}
	}
	return &ast.VarStmt{Name: nameTok.Lexeme, Initializer: initializer}, c2.Advance(), nil
}

// parseStatement → printStmt | block | exprStmt
func parseStatement(c tokenCursor) (ast.Stmt, tokenCursor, []*ParseError) {
	cur, ok := c.Current()
	if ok {
		switch cur.Kind {
		case token.PRINT:
			return parsePrintStmt(c)
		case token.LEFT_BRACE:
			return parseBlock(c)
		}
	}
	return parseExprStmt(c)
}

// parsePrintStmt → "print" expression ";"
func parsePrintStmt(c tokenCursor) (ast.Stmt, tokenCursor, []*ParseError) {
	expr, c2, err := parseExpression(c.Advance())
	if err != nil {
		return nil, err.Recovery, []*ParseError{err}
	}
	semi, ok := c2.Current()
	if !ok || semi.Kind != token.SEMICOLON {
		e := &ParseError{Message: "Expected ';' after value.", Line: lineAt(c2), Recovery: c2.Advance()}
		return nil, e.Recovery, []*ParseError{e}
	}
	return &ast.PrintStmt{Expression: expr}, c2.Advance(), nil
}

// exprStmt → expression ";"
func parseExprStmt(c tokenCursor) (ast.Stmt, tokenCursor, []*ParseError) {
	expr, c2, err := parseExpression(c)
	if err != nil {
		return nil, err.Recovery, []*ParseError{err}
	}
	semi, ok := c2.Current()
	if !ok || semi.Kind != token.SEMICOLON {
		e := &ParseError{Message: "Expected ';' after expression.", Line: lineAt(c2), Recovery: c2.Advance()}
		return nil, e.Recovery, []*ParseError{e}
	}
	return &ast.ExprStmt{Expression: expr}, c2.Advance(), nil
}

// block → "{" declaration* "}"
func parseBlock(c tokenCursor) (ast.Stmt, tokenCursor, []*ParseError) {
	inner := c.Advance() // consume "{"
	stmts, c2, errs := parseDeclarations(inner, token.RIGHT_BRACE)

	closing, ok := c2.Current()
	if !ok || closing.Kind != token.RIGHT_BRACE {
		e := &ParseError{Message: "Expected '}' after block.", Line: lineAt(c2), Recovery: c2.Advance()}
		return nil, e.Recovery, append(errs, e)
	}
	return &ast.BlockStmt{Statements: stmts}, c2.Advance(), errs
}

// expression → assignment
func parseExpression(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	return parseAssignment(c)
}

// assignment → IDENTIFIER "=" assignment | equality
//
// The left-hand side is parsed as an ordinary equality expression first;
// only once a following "=" is seen is it checked to see whether it was
// in fact a Variable. This means the right-hand side is always parsed
// exactly once, never spuriously re-parsed as a target.
func parseAssignment(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	left, c2, err := parseEquality(c)
	if err != nil {
		return nil, c2, err
	}

	cur, ok := c2.Current()
	if !ok || cur.Kind != token.EQUAL {
		return left, c2, nil
	}
	eqLine := cur.Line
	value, c3, err := parseAssignment(c2.Advance())
	if err != nil {
		return nil, c3, err
	}

	if variable, isVar := left.(*ast.Variable); isVar {
		return &ast.Assignment{Name: variable.Name, Value: value}, c3, nil
	}
	e := &ParseError{Message: "Invalid assignment target", Line: eqLine, Recovery: c3.Advance()}
	return nil, e.Recovery, e
}

// equality → comparison ( ("==" | "!=") comparison )*
func parseEquality(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	return parseLeftAssocBinary(c, parseComparison, map[token.Kind]ast.BinaryOp{
		token.EQUAL_EQUAL: ast.OpEq,
		token.BANG_EQUAL:  ast.OpNeq,
	})
}

// comparison → term ( (">" | ">=" | "<" | "<=") term )*
func parseComparison(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	return parseLeftAssocBinary(c, parseTerm, map[token.Kind]ast.BinaryOp{
		token.GREATER:       ast.OpGt,
		token.GREATER_EQUAL: ast.OpGe,
		token.LESS:          ast.OpLt,
		token.LESS_EQUAL:    ast.OpLe,
	})
}

// term → factor ( ("+" | "-") factor )*
func parseTerm(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	return parseLeftAssocBinary(c, parseFactor, map[token.Kind]ast.BinaryOp{
		token.PLUS:  ast.OpAdd,
		token.MINUS: ast.OpSub,
	})
}

// factor → unary ( ("*" | "/") unary )*
func parseFactor(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	return parseLeftAssocBinary(c, parseUnary, map[token.Kind]ast.BinaryOp{
		token.STAR:  ast.OpMul,
		token.SLASH: ast.OpDiv,
	})
}

// parseLeftAssocBinary is the shared shape of equality/comparison/term/
// factor: parse one operand at the next-higher precedence, then loop
// consuming operator+operand pairs iteratively (not via recursion) so
// the result tree associates to the left.
func parseLeftAssocBinary(
	c tokenCursor,
	operand func(tokenCursor) (ast.Expr, tokenCursor, *ParseError),
	ops map[token.Kind]ast.BinaryOp,
) (ast.Expr, tokenCursor, *ParseError) {
	left, c2, err := operand(c)
	if err != nil {
		return nil, c2, err
	}
	for {
		cur, ok := c2.Current()
		if !ok {
			break
		}
		op, matched := ops[cur.Kind]
		if !matched {
			break
		}
		right, c3, err := operand(c2.Advance())
		if err != nil {
			return nil, c3, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
		c2 = c3
	}
	return left, c2, nil
}

// unary → ("!" | "-") unary | primary
func parseUnary(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	cur, ok := c.Current()
	if ok && (cur.Kind == token.BANG || cur.Kind == token.MINUS) {
		op := ast.OpNot
		if cur.Kind == token.MINUS {
			op = ast.OpNeg
		}
		right, c2, err := parseUnary(c.Advance())
		if err != nil {
			return nil, c2, err
		}
		return &ast.Unary{Op: op, Right: right}, c2, nil
	}
	return parsePrimary(c)
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | IDENTIFIER | "(" expression ")"
func parsePrimary(c tokenCursor) (ast.Expr, tokenCursor, *ParseError) {
	cur, ok := c.Current()
	if !ok {
		e := &ParseError{Message: "Expected expression.", Line: lineAt(c), Recovery: c}
		return nil, e.Recovery, e
	}

	switch cur.Kind {
	case token.NUMBER:
		return &ast.NumberLiteral{Value: cur.NumValue, Lexeme: cur.Lexeme}, c.Advance(), nil
	case token.STRING:
		return &ast.StringLiteral{Value: cur.StrValue}, c.Advance(), nil
	case token.TRUE:
		return &ast.BooleanLiteral{Value: true}, c.Advance(), nil
	case token.FALSE:
		return &ast.BooleanLiteral{Value: false}, c.Advance(), nil
	case token.NIL:
		return &ast.NilLiteral{}, c.Advance(), nil
	case token.IDENTIFIER:
		return &ast.Variable{Name: cur.Lexeme}, c.Advance(), nil
	case token.LEFT_PAREN:
		inner, c2, err := parseExpression(c.Advance())
		if err != nil {
			return nil, c2, err
		}
		closing, ok := c2.Current()
		if !ok || closing.Kind != token.RIGHT_PAREN {
			e := &ParseError{Message: "Expected ')' after expression.", Line: lineAt(c2), Recovery: c2.Advance()}
			return nil, e.Recovery, e
		}
		return &ast.Grouping{Inner: inner}, c2.Advance(), nil
	default:
		e := &ParseError{Message: "Expected expression.", Line: cur.Line, Recovery: c.Advance()}
		return nil, e.Recovery, e
	}
}

// lineAt returns the line of the token at c, or 0 if c has run past the
// end of the token stream.
func lineAt(c tokenCursor) int {
	if cur, ok := c.Current(); ok {
		return cur.Line
	}
	return 0
}
