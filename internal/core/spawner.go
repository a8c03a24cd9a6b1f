package core

// Spawner decides when to create the next entity. The interval is counted
// in ticks and may shrink after every spawn down to a floor, which is how
// most runners and whack games ramp difficulty.
type Spawner struct {
	Interval int     // Current ticks between spawns
	Floor    int     // Smallest allowed interval
	Shrink   float64 // Multiplier applied after each spawn (1 = constant)

	elapsed int
}

// NewSpawner creates a spawner that fires after interval ticks.
func NewSpawner(interval, floor int, shrink float64) *Spawner {
	if interval < 1 {
		interval = 1
	}
	if floor < 1 {
		floor = 1
	}
	if shrink <= 0 || shrink > 1 {
		shrink = 1
	}
	return &Spawner{Interval: interval, Floor: floor, Shrink: shrink}
}

// Tick advances the timer and reports whether a spawn is due this tick.
func (s *Spawner) Tick() bool {
	s.elapsed++
	if s.elapsed < s.Interval {
		return false
	}
	s.elapsed = 0
	next := int(float64(s.Interval) * s.Shrink)
	s.Interval = max(next, s.Floor)
	return true
}

// Reset restarts the countdown at the given interval.
func (s *Spawner) Reset(interval int) {
	s.Interval = max(interval, s.Floor)
	s.elapsed = 0
}
