package sprint

import (
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

// flyerChance is the probability that a spawn is a low-flying shadow
// (must be ducked) instead of a ground block (must be jumped).
const flyerChance = 0.25

// ObstacleManager spawns and scrolls obstacles. Positions are top-left
// corners in screen space.
type ObstacleManager struct {
	bodies     []core.Body
	rng        *rand.Rand
	screenW    int
	groundY    int
	playerH    int
	nextSpawnX float64
	cfg        *config.SprintConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates a manager with its own seeded RNG.
func NewObstacleManager(seed int64, screenW, groundY int, cfg *config.SprintConfig, diff *config.DifficultyManager) *ObstacleManager {
	return &ObstacleManager{
		bodies:     make([]core.Body, 0, 8),
		rng:        rand.New(rand.NewSource(seed)),
		screenW:    screenW,
		groundY:    groundY,
		playerH:    cfg.Player.Height,
		nextSpawnX: float64(screenW + cfg.Obstacles.MinSpacing),
		cfg:        cfg,
		difficulty: diff,
	}
}

// Update scrolls obstacles by the current speed, drops those off screen and
// spawns new ones once the spawn point scrolls into view.
func (om *ObstacleManager) Update(score, ticks int) {
	speed := om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, ticks)

	for i := range om.bodies {
		om.bodies[i].Vel.X = -speed
		om.bodies[i].Integrate(core.Vec{})
		if om.bodies[i].Pos.X+om.bodies[i].W <= 0 {
			om.bodies[i].Dead = true
		}
	}
	om.bodies = core.Sweep(om.bodies)

	om.nextSpawnX -= speed
	if om.nextSpawnX <= float64(om.screenW) {
		om.spawn(score, ticks)
	}
}

func (om *ObstacleManager) spawn(score, ticks int) {
	obs := om.cfg.Obstacles
	width := obs.MinWidth + om.rng.Intn(max(obs.MaxWidth-obs.MinWidth, 0)+1)

	var b core.Body
	if om.rng.Float64() < flyerChance {
		// Hangs one row above ground: the standing player's head row.
		b = core.Body{
			Pos:  core.Vec{X: om.nextSpawnX, Y: float64(om.groundY - om.playerH)},
			W:    float64(width + 1),
			H:    1,
			Kind: core.KindHazard,
		}
	} else {
		height := obs.MinHeight + om.rng.Intn(max(obs.MaxHeight-obs.MinHeight, 0)+1)
		b = core.Body{
			Pos:  core.Vec{X: om.nextSpawnX, Y: float64(om.groundY - height)},
			W:    float64(width),
			H:    float64(height),
			Kind: core.KindObstacle,
		}
	}
	om.bodies = append(om.bodies, b)

	maxSpacing := max(om.difficulty.Spacing(obs.MaxSpacing, score, ticks), obs.MinSpacing)
	spacing := obs.MinSpacing + om.rng.Intn(maxSpacing-obs.MinSpacing+1)
	om.nextSpawnX += float64(width + spacing)
}

// Bodies returns the live obstacles.
func (om *ObstacleManager) Bodies() []core.Body {
	return om.bodies
}

// Hits reports whether box overlaps any obstacle.
func (om *ObstacleManager) Hits(box core.Box) bool {
	for _, b := range om.bodies {
		if box.Overlaps(b.Box()) {
			return true
		}
	}
	return false
}
