package flappy

import (
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

// Pipe is a vertical obstacle with a gap the bird must pass through.
type Pipe struct {
	X         float64 // Left edge in world units
	GapY      int     // Row where the gap starts
	GapHeight int     // Height of the passable gap
	Passed    bool    // Whether the bird has passed this pipe
}

// TopBox returns the collision box of the upper pipe section.
func (p Pipe) TopBox(width int) core.Box {
	return core.BoxAt(p.X, 0, float64(width), float64(p.GapY))
}

// BottomBox returns the collision box of the lower pipe section down to the ground.
func (p Pipe) BottomBox(width, groundY int) core.Box {
	top := p.GapY + p.GapHeight
	return core.BoxAt(p.X, float64(top), float64(width), float64(groundY-top))
}

// PipeManager spawns, scrolls and despawns pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	screenW    int
	groundY    int
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a pipe manager with its own seeded RNG.
func NewPipeManager(seed int64, screenW, groundY int, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	return &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		rng:        rand.New(rand.NewSource(seed)),
		screenW:    screenW,
		groundY:    groundY,
		cfg:        cfg,
		difficulty: diff,
	}
}

// Update scrolls pipes left, removes those off screen and spawns new ones.
// Returns how many pipes the bird's left edge passed this tick.
func (pm *PipeManager) Update(birdX float64, score, ticks int) int {
	speed := pm.difficulty.Speed(pm.cfg.Physics.BaseSpeed, score, ticks)
	width := float64(pm.cfg.Obstacles.PipeWidth)

	passed := 0
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
		if !pm.pipes[i].Passed && pm.pipes[i].X+width < birdX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	visible := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+width > 0 {
			visible = append(visible, p)
		}
	}
	pm.pipes = visible

	spacing := pm.difficulty.Spacing(pm.cfg.Obstacles.PipeSpacing, score, ticks)
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < float64(pm.screenW-spacing) {
		pm.spawn(score, ticks)
	}

	return passed
}

// spawn creates a pipe at the right edge with a random gap.
func (pm *PipeManager) spawn(score, ticks int) {
	obs := pm.cfg.Obstacles
	minGap := obs.MinGapSize
	currentGap := max(pm.difficulty.GapSize(obs.MaxGapSize, score, ticks), minGap)

	gapHeight := minGap
	if currentGap > minGap {
		gapHeight = minGap + pm.rng.Intn(currentGap-minGap+1)
	}

	minGapY := obs.TopMargin
	maxGapY := max(pm.groundY-obs.BottomMargin-gapHeight, minGapY)
	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         float64(pm.screenW),
		GapY:      gapY,
		GapHeight: gapHeight,
	})
}

// Pipes returns the current pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Hits reports whether box overlaps any pipe section.
func (pm *PipeManager) Hits(box core.Box) bool {
	width := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.pipes {
		if box.Overlaps(p.TopBox(width)) || box.Overlaps(p.BottomBox(width, pm.groundY)) {
			return true
		}
	}
	return false
}
