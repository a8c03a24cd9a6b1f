package core

// Kind tags a body so collision response can branch on what was hit.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindProjectile
	KindPickup
	KindHazard
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindProjectile:
		return "projectile"
	case KindPickup:
		return "pickup"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Body is a moving entity: player, obstacle, projectile, fish, pipe.
// Position is changed only from a game's update step.
type Body struct {
	Pos  Vec
	Vel  Vec
	W, H float64 // Box size; zero for pure circles
	R    float64 // Radius for circular collision
	Kind Kind
	Dead bool // Marked for removal at the end of the tick
}

// Integrate applies gravity to velocity, then velocity to position.
func (b *Body) Integrate(gravity Vec) {
	b.Vel = b.Vel.Add(gravity)
	b.Pos = b.Pos.Add(b.Vel)
}

// Box returns the body's bounding box with Pos as the top-left corner.
func (b Body) Box() Box {
	return BoxAt(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Circle returns the body's collision circle centered at Pos.
func (b Body) Circle() Circle {
	return Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.R}
}

// Sweep removes dead bodies in place and returns the shortened slice.
func Sweep(bodies []Body) []Body {
	alive := bodies[:0]
	for _, b := range bodies {
		if !b.Dead {
			alive = append(alive, b)
		}
	}
	return alive
}
