/*
File    : loxmix/eval/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy_NilAndFalseAreFalsy(t *testing.T) {
	assert.False(t, Nil.Truthy())
	assert.False(t, Bool(false).Truthy())
}

func TestTruthy_EverythingElseIsTruthy(t *testing.T) {
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Num(0).Truthy())
	assert.True(t, Str("").Truthy())
}

func TestEquals_CrossVariantIsAlwaysFalse(t *testing.T) {
	assert.False(t, Num(1).Equals(Str("1")))
	assert.False(t, Nil.Equals(Bool(false)))
}

func TestEquals_SameVariant(t *testing.T) {
	assert.True(t, Num(1).Equals(Num(1)))
	assert.True(t, Str("a").Equals(Str("a")))
	assert.True(t, Nil.Equals(Nil))
	assert.False(t, Num(1).Equals(Num(2)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "nil", Nil.Format())
	assert.Equal(t, "true", Bool(true).Format())
	assert.Equal(t, "42", Num(42).Format())
	assert.Equal(t, "10.4", Num(10.40).Format())
	assert.Equal(t, "hello", Str("hello").Format())
}
