package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/stockbox/internal/types"
)

func TestSet(t *testing.T) {
	var s Set
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains(1))

	s.Add(3)
	s.Add(1)
	s.Add(0)
	s.Add(-4)
	assert.Equal(t, []int{1, 3}, s.IDs())

	assert.True(t, s.Contains(3))
	assert.Equal(t, 2, s.Len())
}

func TestRetain(t *testing.T) {
	s := New(types.ProductID(1), types.ProductID(2), types.ProductID(5))
	s.Retain([]int{2, 5, 9})
	assert.Equal(t, []int{2, 5}, s.IDs())

	var empty Set
	empty.Retain([]int{1})
	assert.Zero(t, empty.Len())
}
