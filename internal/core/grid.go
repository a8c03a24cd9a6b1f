package core

import "fmt"

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Orthogonal holds the four neighbour offsets in up, right, down, left order.
var Orthogonal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a fixed-size 2D board of small cell values.
// Cells are stored in row-major order: index = y*W + x.
// Dimensions never change after construction and every access is bounds-checked.
type Grid[T any] struct {
	w, h  int
	cells []T
}

// NewGrid creates a w x h grid with zero-valued cells.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the cell value and whether the coordinate was valid.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.w+x], true
}

// At returns the cell value, or the zero value outside the grid.
func (g *Grid[T]) At(x, y int) T {
	v, _ := g.Get(x, y)
	return v
}

// Set writes a cell. Out-of-range writes return ErrOutOfBounds and leave the grid untouched.
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("core: set (%d,%d) on %dx%d grid: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	g.cells[y*g.w+x] = v
	return nil
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.h {
		return nil
	}
	row := make([]T, g.w)
	copy(row, g.cells[y*g.w:(y+1)*g.w])
	return row
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := NewGrid[T](g.w, g.h)
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites this grid with src. Both grids must have the same size.
func (g *Grid[T]) CopyFrom(src *Grid[T]) error {
	if src.w != g.w || src.h != g.h {
		return fmt.Errorf("core: copy %dx%d into %dx%d grid: %w", src.w, src.h, g.w, g.h, ErrOutOfBounds)
	}
	copy(g.cells, src.cells)
	return nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			fn(x, y, g.cells[y*g.w+x])
		}
	}
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Neighbors8 counts the in-bounds cells around (x, y) that satisfy pred.
// Cells outside the grid never count.
func (g *Grid[T]) Neighbors8(x, y int, pred func(T) bool) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if v, ok := g.Get(x+dx, y+dy); ok && pred(v) {
				n++
			}
		}
	}
	return n
}
