package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeConstructors(t *testing.T) {
	r := Bound(1, 10, true, false)
	assert.Equal(t, 1, r.Lower)
	assert.Equal(t, 10, r.Upper)
	assert.True(t, r.LowerOpen)
	assert.False(t, r.UpperOpen)

	lo := LowerBound("a", false)
	assert.Equal(t, "a", lo.Lower)
	assert.Nil(t, lo.Upper)

	hi := UpperBound("z", true)
	assert.Nil(t, hi.Lower)
	assert.Equal(t, "z", hi.Upper)
	assert.True(t, hi.UpperOpen)

	only := Only(7)
	assert.Equal(t, 7, only.Lower)
	assert.Equal(t, 7, only.Upper)
	assert.False(t, only.LowerOpen)
	assert.False(t, only.UpperOpen)
}

func TestRangeIsZero(t *testing.T) {
	assert.True(t, Range{}.IsZero())
	assert.False(t, LowerBound(0, false).IsZero())
	assert.False(t, UpperBound("", false).IsZero())
}
