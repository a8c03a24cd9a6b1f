package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
)

// Tile is the content of a maze grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Open
	Coin
)

// Maze is a perfect maze laid out on a (2w+1) x (2h+1) grid. Rooms sit at
// odd coordinates and the cells between them are carved walls.
type Maze struct {
	Grid  *core.Grid[Tile]
	Start core.Point
	Exit  core.Point
}

// Generate carves a w x h room maze with randomized backtracking. The stack
// is explicit so large mazes cannot exhaust the goroutine stack.
func Generate(rng *rand.Rand, w, h int) (*Maze, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("maze: %dx%d rooms: %w", w, h, core.ErrInvalidInput)
	}
	grid := core.NewGrid[Tile](2*w+1, 2*h+1)

	start := core.Point{X: 1, Y: 1}
	_ = grid.Set(start.X, start.Y, Open)
	stack := []core.Point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []core.Point
		for _, d := range core.Orthogonal {
			next := core.Point{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y}
			if v, ok := grid.Get(next.X, next.Y); ok && v == Wall && next.X > 0 && next.Y > 0 &&
				next.X < grid.Width()-1 && next.Y < grid.Height()-1 {
				options = append(options, next)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := options[rng.Intn(len(options))]
		_ = grid.Set((cur.X+next.X)/2, (cur.Y+next.Y)/2, Open)
		_ = grid.Set(next.X, next.Y, Open)
		stack = append(stack, next)
	}

	return &Maze{
		Grid:  grid,
		Start: start,
		Exit:  core.Point{X: grid.Width() - 2, Y: grid.Height() - 2},
	}, nil
}

// Passable reports whether p can be walked on.
func (m *Maze) Passable(p core.Point) bool {
	v, ok := m.Grid.Get(p.X, p.Y)
	return ok && v != Wall
}

// Distances runs a breadth-first search from the start and returns the
// step count to every reachable cell.
func (m *Maze) Distances() map[core.Point]int {
	dist := map[core.Point]int{m.Start: 0}
	queue := []core.Point{m.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range core.Orthogonal {
			next := cur.Add(d)
			if _, seen := dist[next]; seen || !m.Passable(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// Reachable reports whether the exit can be reached from the start.
func (m *Maze) Reachable() bool {
	_, ok := m.Distances()[m.Exit]
	return ok
}

// PlaceCoins drops n coins on open rooms, favouring rooms far from the start.
// It returns how many were placed.
func (m *Maze) PlaceCoins(rng *rand.Rand, n int) int {
	dist := m.Distances()
	var far []core.Point
	m.Grid.Each(func(x, y int, v Tile) {
		p := core.Point{X: x, Y: y}
		if v == Open && x%2 == 1 && y%2 == 1 && p != m.Start && p != m.Exit && dist[p] > 2 {
			far = append(far, p)
		}
	})
	core.Shuffle(rng, far)
	placed := 0
	for _, p := range far {
		if placed == n {
			break
		}
		_ = m.Grid.Set(p.X, p.Y, Coin)
		placed++
	}
	return placed
}
