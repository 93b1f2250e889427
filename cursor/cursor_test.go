/*
File    : loxmix/cursor/cursor_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_CurrentAndAdvance(t *testing.T) {
	c := New([]int{10, 20, 30})

	v, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	c = c.Advance()
	v, ok = c.Current()
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	c = c.Advance().Advance()
	_, ok = c.Current()
	assert.False(t, ok)
	assert.True(t, c.AtEnd())
}

func TestCursor_AdvancePastEndIsSafe(t *testing.T) {
	c := New([]string{"only"})
	c = c.Advance().Advance().Advance()
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestCursor_Immutable(t *testing.T) {
	c := New([]int{1, 2, 3})
	next := c.Advance()

	v, _ := c.Current()
	assert.Equal(t, 1, v, "original cursor must be unaffected by Advance")

	v, _ = next.Current()
	assert.Equal(t, 2, v)
}

func TestCursor_Empty(t *testing.T) {
	c := New[int](nil)
	assert.True(t, c.AtEnd())
	_, ok := c.Current()
	assert.False(t, ok)
}
