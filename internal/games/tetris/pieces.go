package tetris

// Kind identifies a tetromino.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
	kindCount
)

func (k Kind) String() string {
	return [...]string{"I", "O", "T", "S", "Z", "J", "L"}[k]
}

// shapes holds, per kind and rotation, the four occupied indexes of the
// piece's 4x4 box (index = row*4 + col). Rotation is a table lookup; there
// are no wall kicks, so a rotation that does not fit is rejected.
var shapes = [kindCount][4][4]int{
	I: {{4, 5, 6, 7}, {2, 6, 10, 14}, {8, 9, 10, 11}, {1, 5, 9, 13}},
	O: {{1, 2, 5, 6}, {1, 2, 5, 6}, {1, 2, 5, 6}, {1, 2, 5, 6}},
	T: {{1, 4, 5, 6}, {1, 5, 6, 9}, {4, 5, 6, 9}, {1, 4, 5, 9}},
	S: {{1, 2, 4, 5}, {1, 5, 6, 10}, {5, 6, 8, 9}, {0, 4, 5, 9}},
	Z: {{0, 1, 5, 6}, {2, 5, 6, 9}, {4, 5, 9, 10}, {1, 4, 5, 8}},
	J: {{0, 4, 5, 6}, {1, 2, 5, 9}, {4, 5, 6, 10}, {1, 5, 8, 9}},
	L: {{2, 4, 5, 6}, {1, 5, 9, 10}, {4, 5, 6, 8}, {0, 1, 5, 9}},
}

// Piece is the falling tetromino.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int // Top-left of the 4x4 box on the board
}

// Cells returns the board coordinates the piece occupies.
func (p Piece) Cells() [4][2]int {
	var out [4][2]int
	for i, idx := range shapes[p.Kind][p.Rot] {
		out[i] = [2]int{p.X + idx%4, p.Y + idx/4}
	}
	return out
}

// Rotated returns the piece turned clockwise.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) % 4
	return p
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
