package pstring

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestAssignTruncates(t *testing.T) {
	v := New(5)
	v.Assign("hello world")
	assert.Equal(t, v.String(), "hello")
	assert.Equal(t, v.Len(), 5)
}

func TestEqualIsLengthSensitive(t *testing.T) {
	a := From(10, "BC")
	b := From(10, "BC")
	assert.Equal(t, a.Equal(b), true)

	c := From(10, "BCX")
	assert.Equal(t, a.Equal(c), false)
}

func TestContains(t *testing.T) {
	v := From(32, "this item is original quality")
	assert.Equal(t, v.Contains("original"), true)
	assert.Equal(t, v.Contains("fake"), false)
}

func TestCompareFoldIgnoresCase(t *testing.T) {
	a := From(16, "barbara")
	b := From(16, "BARBARA")
	assert.Equal(t, a.CompareFold(b), 0)

	c := From(16, "alice")
	assert.Equal(t, c.CompareFold(a) < 0, true)
}

func TestCopyIsIndependent(t *testing.T) {
	a := From(8, "abc")
	b := a.Copy()
	b.Assign("xyz")
	assert.Equal(t, a.String(), "abc")
	assert.Equal(t, b.String(), "xyz")
}

func TestZeroValueIsZero(t *testing.T) {
	var v String
	assert.Equal(t, v.IsZero(), true)
	v2 := New(4)
	assert.Equal(t, v2.IsZero(), true)
	v2.Assign("a")
	assert.Equal(t, v2.IsZero(), false)
}
