/*
File    : loxmix/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements the single-pass, state-machine scanner that
// turns loxmix source text into a flat token sequence. The scanner
// itself is the only mutable piece of state: it wraps an immutable
// cursor.Cursor[byte] and reassigns it on every step rather than
// mutating a position field directly, so the character stream is never
// at risk of being walked twice by accident.
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/loxmix/cursor"
	"github.com/akashmaji946/loxmix/token"
)

// Lexer holds the scanning state for one source string: the character
// cursor and the current line number (the cursor itself does not track
// lines).
type Lexer struct {
	src  cursor.Cursor[byte]
	line int
}

// New creates a Lexer positioned at the start of src, on line 1.
func New(src string) *Lexer {
	return &Lexer{
		src:  cursor.New([]byte(src)),
		line: 1,
	}
}

// Tokenize scans the entire source and returns the full token sequence,
// always terminated by exactly one EOF token. LexicalError tokens are
// embedded in the returned sequence at the point they occurred rather
// than collected on a side channel.
func Tokenize(src string) []token.Token {
	lx := New(src)
	var tokens []token.Token
	for {
		tok := lx.next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// current returns the byte under the cursor, or 0 at end of input.
func (l *Lexer) current() byte {
	b, ok := l.src.Current()
	if !ok {
		return 0
	}
	return b
}

// peek returns the byte one past the cursor without consuming it.
func (l *Lexer) peek() byte {
	next := l.src.Advance()
	b, ok := next.Current()
	if !ok {
		return 0
	}
	return b
}

// advance moves the cursor forward one byte, tracking line numbers as it
// crosses a '\n'.
func (l *Lexer) advance() {
	if l.current() == '\n' {
		l.line++
	}
	l.src = l.src.Advance()
}

// atEnd reports whether the cursor has run off the end of the source.
func (l *Lexer) atEnd() bool {
	return l.src.AtEnd()
}

// next scans and returns the single next token, skipping any leading
// whitespace and comments first.
func (l *Lexer) next() token.Token {
	l.skipWhitespaceAndComments()

	line := l.line
	if l.atEnd() {
		return token.Simple(token.EOF, "", line)
	}

	c := l.current()
	switch {
	case c == '(':
		l.advance()
		return token.Simple(token.LEFT_PAREN, "(", line)
	case c == ')':
		l.advance()
		return token.Simple(token.RIGHT_PAREN, ")", line)
	case c == '{':
		l.advance()
		return token.Simple(token.LEFT_BRACE, "{", line)
	case c == '}':
		l.advance()
		return token.Simple(token.RIGHT_BRACE, "}", line)
	case c == '*':
		l.advance()
		return token.Simple(token.STAR, "*", line)
	case c == ',':
		l.advance()
		return token.Simple(token.COMMA, ",", line)
	case c == '.':
		l.advance()
		return token.Simple(token.DOT, ".", line)
	case c == '+':
		l.advance()
		return token.Simple(token.PLUS, "+", line)
	case c == '-':
		l.advance()
		return token.Simple(token.MINUS, "-", line)
	case c == ';':
		l.advance()
		return token.Simple(token.SEMICOLON, ";", line)
	case c == '/':
		// A bare '/' — the "//" comment case is consumed by
		// skipWhitespaceAndComments before we ever get here.
		l.advance()
		return token.Simple(token.SLASH, "/", line)
	case c == '=':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return token.Simple(token.EQUAL_EQUAL, "==", line)
		}
		return token.Simple(token.EQUAL, "=", line)
	case c == '!':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return token.Simple(token.BANG_EQUAL, "!=", line)
		}
		return token.Simple(token.BANG, "!", line)
	case c == '<':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return token.Simple(token.LESS_EQUAL, "<=", line)
		}
		return token.Simple(token.LESS, "<", line)
	case c == '>':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return token.Simple(token.GREATER_EQUAL, ">=", line)
		}
		return token.Simple(token.GREATER, ">", line)
	case c == '"':
		return l.readString(line)
	case isDigit(c):
		return l.readNumber(line)
	case isAlpha(c):
		return l.readIdentifier(line)
	default:
		l.advance()
		return token.NewLexicalError(line, "Unexpected character: "+string(c))
	}
}

// skipWhitespaceAndComments consumes spaces, tabs, newlines, and line
// comments between tokens.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case !l.atEnd() && isWhitespace(l.current()):
			l.advance()
		case l.current() == '/' && l.peek() == '/':
			for !l.atEnd() && l.current() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// readString scans a double-quoted string literal. An unterminated
// string — end of line or end of input before the closing quote —
// produces a LexicalError instead.
func (l *Lexer) readString(startLine int) token.Token {
	l.advance() // consume opening quote
	var sb strings.Builder
	for {
		if l.atEnd() || l.current() == '\n' {
			return token.NewLexicalError(startLine, "Unterminated string.")
		}
		if l.current() == '"' {
			l.advance() // consume closing quote
			return token.NewString(sb.String(), startLine)
		}
		sb.WriteByte(l.current())
		l.advance()
	}
}

// readNumber scans a greedy run of digits and '.' characters and parses
// the resulting lexeme as a float64. The lexeme is not validated for
// at-most-one '.' at lex time; a malformed run like "1.2.3" simply fails
// strconv.ParseFloat below and surfaces as a LexicalError.
func (l *Lexer) readNumber(line int) token.Token {
	var sb strings.Builder
	for !l.atEnd() && (isDigit(l.current()) || l.current() == '.') {
		sb.WriteByte(l.current())
		l.advance()
	}
	lexeme := sb.String()
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// A malformed lexeme (e.g. "1.2.3") cannot be rendered as a
		// NUMBER token; surface it the same way any other lexical
		// failure is surfaced rather than propagating a zero value
		// silently.
		return token.NewLexicalError(line, "Invalid number literal: "+lexeme)
	}
	return token.NewNumber(lexeme, value, line)
}

// readIdentifier scans a greedy run of identifier characters and
// classifies the result as a keyword or IDENTIFIER.
func (l *Lexer) readIdentifier(line int) token.Token {
	var sb strings.Builder
	for !l.atEnd() && (isAlphaNumeric(l.current())) {
		sb.WriteByte(l.current())
		l.advance()
	}
	lexeme := sb.String()
	return token.Simple(token.LookupIdentifier(lexeme), lexeme, line)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
