package slide

import (
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
)

// Board is an n x n sliding puzzle. Tile 0 is the blank.
type Board struct {
	tiles *core.Grid[int]
	blank core.Point
}

// Solved returns the goal position: 1..n*n-1 in reading order, blank last.
func Solved(n int) *Board {
	b := &Board{tiles: core.NewGrid[int](n, n)}
	for i := 0; i < n*n-1; i++ {
		_ = b.tiles.Set(i%n, i/n, i+1)
	}
	b.blank = core.Point{X: n - 1, Y: n - 1}
	return b
}

// Shuffled deals a random solvable position that is not already solved.
// Tiles are permuted with Fisher-Yates; if the permutation has the wrong
// parity two numbered tiles are swapped, which flips it.
func Shuffled(rng *rand.Rand, n int) *Board {
	for {
		perm := make([]int, n*n)
		for i := range perm {
			perm[i] = i
		}
		core.Shuffle(rng, perm)

		b := &Board{tiles: core.NewGrid[int](n, n)}
		for i, v := range perm {
			_ = b.tiles.Set(i%n, i/n, v)
			if v == 0 {
				b.blank = core.Point{X: i % n, Y: i / n}
			}
		}
		if !b.Solvable() {
			b.swapFirstTwoTiles()
		}
		if n < 2 || !b.IsSolved() {
			return b
		}
	}
}

// Size returns the board edge length.
func (b *Board) Size() int { return b.tiles.Width() }

// At returns the tile at (x, y).
func (b *Board) At(x, y int) int { return b.tiles.At(x, y) }

// Blank returns the blank position.
func (b *Board) Blank() core.Point { return b.blank }

func (b *Board) order() []int {
	var out []int
	b.tiles.Each(func(_, _ int, v int) {
		if v != 0 {
			out = append(out, v)
		}
	})
	return out
}

// Inversions counts tile pairs that appear in the wrong order.
func (b *Board) Inversions() int {
	tiles := b.order()
	inv := 0
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			if tiles[i] > tiles[j] {
				inv++
			}
		}
	}
	return inv
}

// Solvable applies the standard parity rule. On odd boards the inversion
// count must be even; on even boards inversions plus the blank's row
// counted from the bottom (1-based) must be odd.
func (b *Board) Solvable() bool {
	n := b.Size()
	inv := b.Inversions()
	if n%2 == 1 {
		return inv%2 == 0
	}
	return (inv+n-b.blank.Y)%2 == 1
}

func (b *Board) swapFirstTwoTiles() {
	var first, second *core.Point
	b.tiles.Each(func(x, y int, v int) {
		if v == 0 || second != nil {
			return
		}
		p := core.Point{X: x, Y: y}
		if first == nil {
			first = &p
		} else {
			second = &p
		}
	})
	if second == nil {
		return
	}
	a, c := b.tiles.At(first.X, first.Y), b.tiles.At(second.X, second.Y)
	_ = b.tiles.Set(first.X, first.Y, c)
	_ = b.tiles.Set(second.X, second.Y, a)
}

// IsSolved reports whether every tile is in its goal position.
func (b *Board) IsSolved() bool {
	n := b.Size()
	ok := true
	b.tiles.Each(func(x, y int, v int) {
		want := y*n + x + 1
		if want == n*n {
			want = 0
		}
		if v != want {
			ok = false
		}
	})
	return ok
}

// Slide moves the tile at p into the blank if they are adjacent.
func (b *Board) Slide(p core.Point) bool {
	d := core.Point{X: p.X - b.blank.X, Y: p.Y - b.blank.Y}
	if core.Abs(d.X)+core.Abs(d.Y) != 1 || !b.tiles.InBounds(p.X, p.Y) {
		return false
	}
	_ = b.tiles.Set(b.blank.X, b.blank.Y, b.tiles.At(p.X, p.Y))
	_ = b.tiles.Set(p.X, p.Y, 0)
	b.blank = p
	return true
}
