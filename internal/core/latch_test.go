package core

import (
	"testing"
	"time"
)

func TestLatchIgnoresAutoRepeat(t *testing.T) {
	l := NewLatch(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	if !l.Press(ActionJump, t0) {
		t.Fatal("first press should fire")
	}
	// Terminal auto-repeat every 30ms while held
	for i := 1; i <= 10; i++ {
		if l.Press(ActionJump, t0.Add(time.Duration(i*30)*time.Millisecond)) {
			t.Fatalf("repeat %d should not fire", i)
		}
	}
}

func TestLatchFiresAgainAfterRelease(t *testing.T) {
	l := NewLatch(0, 0)
	t0 := time.Unix(0, 0)

	l.Press(ActionJump, t0)
	l.Release(ActionJump)
	if !l.Press(ActionJump, t0.Add(10*time.Millisecond)) {
		t.Error("press after release should fire")
	}
}

func TestLatchFiresAfterQuietWindow(t *testing.T) {
	l := NewLatch(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	l.Press(ActionUp, t0)
	if l.Held(ActionUp, t0.Add(150*time.Millisecond)) {
		t.Error("key should count as released after the window")
	}
	if !l.Press(ActionUp, t0.Add(150*time.Millisecond)) {
		t.Error("press after the window should fire")
	}
}

func TestLatchActionsIndependent(t *testing.T) {
	l := NewLatch(0, 0)
	t0 := time.Unix(0, 0)

	l.Press(ActionLeft, t0)
	if !l.Press(ActionRight, t0) {
		t.Error("different actions must not debounce each other")
	}
	l.Reset()
	if !l.Press(ActionLeft, t0) {
		t.Error("Reset should clear held keys")
	}
}

func TestLatchWaitsOutInitialRepeatDelay(t *testing.T) {
	l := NewLatch(0, 0)
	t0 := time.Unix(0, 0)

	fired := 0
	if l.Press(ActionJump, t0) {
		fired++
	}
	// OS waits 500ms before repeating, then every 30ms
	for i := 0; i < 20; i++ {
		if l.Press(ActionJump, t0.Add(500*time.Millisecond+time.Duration(i*30)*time.Millisecond)) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("held jump fired %d times, expected 1", fired)
	}
	if !l.Held(ActionJump, t0.Add(1100*time.Millisecond)) {
		t.Error("key should still count as held right after the last repeat")
	}
}

func TestLatchShortWindowOnceRepeating(t *testing.T) {
	l := NewLatch(0, 0)
	t0 := time.Unix(0, 0)

	l.Press(ActionJump, t0)
	l.Press(ActionJump, t0.Add(400*time.Millisecond))
	if l.Held(ActionJump, t0.Add(400*time.Millisecond+DefaultRepeatWindow+time.Millisecond)) {
		t.Error("a repeating key should release after the short window")
	}
	if !l.Press(ActionJump, t0.Add(700*time.Millisecond)) {
		t.Error("press after the repeats stopped should fire")
	}
}

func TestLatchDelayNeverShorterThanWindow(t *testing.T) {
	l := NewLatch(10*time.Millisecond, 200*time.Millisecond)
	t0 := time.Unix(0, 0)

	l.Press(ActionJump, t0)
	if l.Press(ActionJump, t0.Add(150*time.Millisecond)) {
		t.Error("repeat inside the window should not fire")
	}
}
