/*
File    : loxmix/format/format.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package format holds the two ways a float64 Number renders as text:
// Number, the trimmed form the evaluator's print/evaluate output uses,
// and TokenizeNumber, the always-fractional form shared by the
// `tokenize` command and the AST printer.
package format

import (
	"strconv"
	"strings"
)

// Number renders x in trimmed form: if x is exactly its own truncation to
// a 64-bit integer, render as that integer (no decimal point); otherwise
// render with the platform's default double-to-decimal conversion, then
// trim trailing zeros after the decimal point and a trailing lone '.' if
// one remains. So 10.40 -> "10.4", 42.0 -> "42", 3.14 -> "3.14".
func Number(x float64) string {
	if x == float64(int64(x)) {
		return strconv.FormatInt(int64(x), 10)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// TokenizeNumber renders x the way the `tokenize` subcommand's NUMBER
// line does: the platform's default double-to-decimal conversion, but
// always with at least one fractional digit, so an integral value like
// 42 renders as "42.0" rather than "42".
func TokenizeNumber(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
