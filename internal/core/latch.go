package core

import "time"

// DefaultRepeatDelay is how long the OS waits before auto-repeating a held
// key. Typical settings run 250–600ms, so a press arriving sooner than this
// after the first one is treated as the first repeat.
const DefaultRepeatDelay = 600 * time.Millisecond

// DefaultRepeatWindow is how long a repeating key may go without a new press
// event before it is considered released. Terminals report no key-up, so
// native auto-repeat arrives as a stream of presses roughly every 30–50ms.
const DefaultRepeatWindow = 120 * time.Millisecond

// Latch debounces held keys: an action fires once when first pressed and
// not again while the key is held down through auto-repeat.
type Latch struct {
	delay  time.Duration
	window time.Duration
	held   map[Action]hold
}

type hold struct {
	last      time.Time
	repeating bool
}

// NewLatch creates a latch. delay is the allowance before the first repeat,
// window the gap allowed between later repeats. Non-positive values use
// DefaultRepeatDelay and DefaultRepeatWindow; delay is never shorter than window.
func NewLatch(delay, window time.Duration) *Latch {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	return &Latch{delay: max(delay, window), window: window, held: make(map[Action]hold)}
}

func (l *Latch) limit(h hold) time.Duration {
	if h.repeating {
		return l.window
	}
	return l.delay
}

// Press records a press of a at time now and reports whether it is a fresh
// press. Repeats arriving in time only refresh the held flag.
func (l *Latch) Press(a Action, now time.Time) bool {
	h, held := l.held[a]
	if held && now.Sub(h.last) <= l.limit(h) {
		l.held[a] = hold{last: now, repeating: true}
		return false
	}
	l.held[a] = hold{last: now}
	return true
}

// Release clears the pressed flag for a.
func (l *Latch) Release(a Action) {
	delete(l.held, a)
}

// Held reports whether a is currently considered pressed at time now.
func (l *Latch) Held(a Action, now time.Time) bool {
	h, ok := l.held[a]
	return ok && now.Sub(h.last) <= l.limit(h)
}

// Reset clears every pressed flag.
func (l *Latch) Reset() {
	clear(l.held)
}
