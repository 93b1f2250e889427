/*
File    : loxmix/eval/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the loxmix AST against an environment, producing
// values for expressions and effects for statements. Runtime values use
// a single closed Value type rather than an interface with one struct
// per variant, since the language has exactly four runtime shapes and
// numbers are a single float64-backed variant (no int/float split).
package eval

import "github.com/akashmaji946/loxmix/format"

// ValueKind tags which of the four runtime shapes a Value holds.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBoolean
	KindNumber
	KindString
)

// Value is a runtime value: Nil, Boolean, Number, or String. Only the
// field matching Kind is meaningful.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
}

// Nil is the singular Nil value.
var Nil = Value{Kind: KindNil}

// Bool constructs a Boolean value.
func Bool(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// Num constructs a Number value.
func Num(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// Str constructs a String value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Truthy implements loxmix's truthiness rule: Nil and Boolean(false)
// are falsy, everything else — including Number(0) and String("") — is
// truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBoolean:
		return v.Bool
	default:
		return true
	}
}

// Equals implements loxmix's equality rule: same-variant value
// equality for Number/String/Boolean, Nil equals only Nil, and different
// variants are never equal (so `1 == "1"` and `nil == false` are false).
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBoolean:
		return v.Bool == other.Bool
	case KindNumber:
		return v.Number == other.Number
	case KindString:
		return v.Str == other.Str
	}
	return false
}

// Format renders v in the trimmed form `print` and `evaluate` use.
func (v Value) Format() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return format.Number(v.Number)
	case KindString:
		return v.Str
	}
	return ""
}
