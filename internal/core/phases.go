package core

// Phases is a small finite-state machine for sequential game phases
// ("show pattern, then wait for input, then score"). A phase may carry a
// tick budget; when it runs out the registered transition fires. All pending
// time lives in the machine itself so Cancel or re-entering a phase can never
// leave a stale timer behind.
type Phases[S comparable] struct {
	current   S
	remaining int
	next      map[S]S
	durations map[S]int
}

// NewPhases creates a machine in the initial state with no timer.
func NewPhases[S comparable](initial S) *Phases[S] {
	return &Phases[S]{
		current:   initial,
		next:      make(map[S]S),
		durations: make(map[S]int),
	}
}

// On registers the state entered when from's timer expires, and how many
// ticks that next state lasts (0 = untimed).
func (p *Phases[S]) On(from, to S, toTicks int) {
	p.next[from] = to
	p.durations[to] = toTicks
}

// Enter switches to state and arms its timer; ticks <= 0 means untimed.
func (p *Phases[S]) Enter(state S, ticks int) {
	p.current = state
	p.remaining = max(ticks, 0)
}

// Current returns the active state.
func (p *Phases[S]) Current() S {
	return p.current
}

// Is reports whether the machine is in state.
func (p *Phases[S]) Is(state S) bool {
	return p.current == state
}

// Remaining returns ticks left in the current timed phase, 0 if untimed.
func (p *Phases[S]) Remaining() int {
	return p.remaining
}

// Tick advances the timer by one tick. When the current phase expires it
// follows the registered transition, if any, and returns the expired state
// and true.
func (p *Phases[S]) Tick() (S, bool) {
	if p.remaining == 0 {
		var zero S
		return zero, false
	}
	p.remaining--
	if p.remaining > 0 {
		var zero S
		return zero, false
	}
	expired := p.current
	if to, ok := p.next[expired]; ok {
		p.Enter(to, p.durations[to])
	}
	return expired, true
}

// Cancel disarms the current timer without changing state.
func (p *Phases[S]) Cancel() {
	p.remaining = 0
}
