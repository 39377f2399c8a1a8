// Package playback provides the transport clock of the host screen: a play
// position that advances with wall time and can be paused or moved.
// It does not decode or output audio.
package playback

import (
	"sync"
	"time"
)

// State is the transport state of the clock.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	}
	return "Unknown"
}

// IsActive reports whether a position is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Clock tracks a playback position within a fixed duration.
type Clock struct {
	mu       sync.Mutex
	state    State
	duration time.Duration
	position time.Duration // position at anchor
	anchor   time.Time     // wall time when position was last fixed
	now      func() time.Time
}

// NewClock creates a stopped clock for a media item of the given duration.
// A negative duration is treated as unknown (0), in which case the position
// is not bounded above.
func NewClock(duration time.Duration) *Clock {
	return &Clock{
		duration: max(duration, 0),
		now:      time.Now,
	}
}

// State returns the transport state.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Duration returns the total duration (0 if unknown).
func (c *Clock) Duration() time.Duration {
	return c.duration
}

// Position returns the current position.
func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

// Play starts or resumes the clock. Playing from the end restarts at 0.
func (c *Clock) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StatePlaying {
		return
	}
	if c.duration > 0 && c.position >= c.duration {
		c.position = 0
	}
	c.anchor = c.now()
	c.state = StatePlaying
}

// Pause freezes the clock at its current position.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePlaying {
		return
	}
	c.position = c.positionLocked()
	c.state = StatePaused
}

// Toggle switches between playing and paused.
func (c *Clock) Toggle() {
	if c.State() == StatePlaying {
		c.Pause()
		return
	}
	c.Play()
}

// Stop stops the clock and rewinds to 0.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateStopped
	c.position = 0
}

// SeekTo moves to an absolute position, clamped to [0, duration].
func (c *Clock) SeekTo(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.clamp(pos)
	c.anchor = c.now()
}

// Seek moves the position by delta.
func (c *Clock) Seek(delta time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.clamp(c.positionLocked() + delta)
	c.anchor = c.now()
}

// Finished reports whether a playing clock reached the end. The clock pauses
// itself at the end on the first call that observes it.
func (c *Clock) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.duration == 0 || c.state != StatePlaying {
		return false
	}
	if c.positionLocked() < c.duration {
		return false
	}
	c.position = c.duration
	c.state = StatePaused
	return true
}

func (c *Clock) positionLocked() time.Duration {
	if c.state != StatePlaying {
		return c.position
	}
	return c.clamp(c.position + c.now().Sub(c.anchor))
}

func (c *Clock) clamp(pos time.Duration) time.Duration {
	pos = max(pos, 0)
	if c.duration > 0 {
		pos = min(pos, c.duration)
	}
	return pos
}
