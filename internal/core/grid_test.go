package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCheckedAccess(t *testing.T) {
	g := NewGrid[int](4, 3)

	require.NoError(t, g.Set(3, 2, 7))
	v, ok := g.Get(3, 2)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		err := g.Set(p.X, p.Y, 9)
		assert.Truef(t, errors.Is(err, ErrOutOfBounds), "Set(%d,%d) err = %v", p.X, p.Y, err)
		_, ok := g.Get(p.X, p.Y)
		assert.False(t, ok)
		assert.Zero(t, g.At(p.X, p.Y))
	}
	assert.Equal(t, 1, g.Count(func(v int) bool { return v != 0 }), "failed writes must not touch the grid")
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid[bool](3, 3)
	g.Fill(true)
	c := g.Clone()
	require.NoError(t, c.Set(1, 1, false))

	assert.True(t, g.At(1, 1))
	assert.False(t, c.At(1, 1))
}

func TestGridCopyFromSizeMismatch(t *testing.T) {
	a := NewGrid[int](2, 2)
	b := NewGrid[int](3, 2)
	assert.ErrorIs(t, a.CopyFrom(b), ErrOutOfBounds)
}

func TestGridNeighbors8AtEdges(t *testing.T) {
	g := NewGrid[bool](3, 3)
	g.Fill(true)
	alive := func(v bool) bool { return v }

	assert.Equal(t, 8, g.Neighbors8(1, 1, alive))
	assert.Equal(t, 3, g.Neighbors8(0, 0, alive), "corner has three in-bounds neighbours")
	assert.Equal(t, 5, g.Neighbors8(1, 0, alive))
}

func TestGridRow(t *testing.T) {
	g := NewGrid[rune](3, 2)
	_ = g.Set(0, 1, 'a')
	_ = g.Set(2, 1, 'c')

	row := g.Row(1)
	assert.Equal(t, []rune{'a', 0, 'c'}, row)
	row[1] = 'x'
	assert.Equal(t, rune(0), g.At(1, 1), "Row must return a copy")
	assert.Nil(t, g.Row(5))
}
