package flappy

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick     int
	BirdY    float64
	BirdVel  float64
	Score    int
	Pipes    int
	FirstX   float64
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.ticks,
		BirdY:    g.bird.Pos.Y,
		BirdVel:  g.bird.Vel.Y,
		Score:    g.score,
		Pipes:    len(g.pipes.Pipes()),
		GameOver: g.gameOver,
	}
	if s.Pipes > 0 {
		s.FirstX = g.pipes.Pipes()[0].X
	}
	return s
}
