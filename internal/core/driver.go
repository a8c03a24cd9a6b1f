package core

import (
	"context"
	"errors"
	"time"
)

// ErrStopped is returned by Run when the stop token was cleared.
var ErrStopped = errors.New("driver stopped")

// Driver advances a game one frame at a time: exactly one update and one
// render per Frame call. It stops rescheduling itself when the running flag
// is cleared or when update fails, and keeps the failure for inspection
// instead of freezing silently.
type Driver struct {
	update  func() error
	render  func()
	running bool
	frames  int
	err     error
}

// NewDriver creates a running driver around an update and a render step.
func NewDriver(update func() error, render func()) *Driver {
	return &Driver{update: update, render: render, running: true}
}

// Frame runs one update and one render. It returns false once the driver
// should not be called again.
func (d *Driver) Frame() bool {
	if !d.running {
		return false
	}
	if err := d.update(); err != nil {
		d.err = err
		d.running = false
		return false
	}
	d.render()
	d.frames++
	return d.running
}

// Stop clears the running flag; the next Frame does nothing.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether the driver will accept another frame.
func (d *Driver) Running() bool {
	return d.running
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() int {
	return d.frames
}

// Err returns the update error that stopped the driver, if any.
func (d *Driver) Err() error {
	return d.err
}

// Run calls Frame on every tick of interval until the driver stops or ctx is done.
// It returns the update error, ctx.Err(), or ErrStopped.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.running = false
			return ctx.Err()
		case <-ticker.C:
			if !d.Frame() {
				if d.err != nil {
					return d.err
				}
				return ErrStopped
			}
		}
	}
}
