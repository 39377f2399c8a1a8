package playback

import (
	"testing"
	"time"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock(d time.Duration) (*Clock, *fakeTime) {
	ft := &fakeTime{t: time.Unix(1_700_000_000, 0)}
	c := NewClock(d)
	c.now = ft.now
	return c, ft
}

func TestClock_AdvancesWhilePlaying(t *testing.T) {
	c, ft := newTestClock(time.Minute)

	c.Play()
	ft.advance(10 * time.Second)
	if got := c.Position(); got != 10*time.Second {
		t.Errorf("Position() = %v, want 10s", got)
	}

	c.Pause()
	ft.advance(10 * time.Second)
	if got := c.Position(); got != 10*time.Second {
		t.Errorf("Position() after pause = %v, want 10s", got)
	}
	if c.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", c.State())
	}
}

func TestClock_SeekTo_Clamps(t *testing.T) {
	c, _ := newTestClock(360 * time.Second)

	tests := []struct {
		name string
		pos  time.Duration
		want time.Duration
	}{
		{"inside", 300 * time.Second, 300 * time.Second},
		{"negative", -time.Second, 0},
		{"past end", time.Hour, 360 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SeekTo(tt.pos)
			if got := c.Position(); got != tt.want {
				t.Errorf("SeekTo(%v) -> %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestClock_UnknownDurationIsUnbounded(t *testing.T) {
	c, _ := newTestClock(-5 * time.Second)
	if c.Duration() != 0 {
		t.Fatalf("Duration() = %v, want 0", c.Duration())
	}
	c.SeekTo(3 * time.Hour)
	if got := c.Position(); got != 3*time.Hour {
		t.Errorf("Position() = %v, want 3h", got)
	}
}

func TestClock_SeekRelative(t *testing.T) {
	c, ft := newTestClock(time.Minute)
	c.Play()
	ft.advance(20 * time.Second)

	c.Seek(-5 * time.Second)
	if got := c.Position(); got != 15*time.Second {
		t.Errorf("Position() = %v, want 15s", got)
	}
	ft.advance(time.Second)
	if got := c.Position(); got != 16*time.Second {
		t.Errorf("Position() = %v, want 16s", got)
	}
}

func TestClock_FinishedPausesAtEnd(t *testing.T) {
	c, ft := newTestClock(10 * time.Second)
	c.Play()
	ft.advance(5 * time.Second)
	if c.Finished() {
		t.Fatal("Finished() = true before the end")
	}

	ft.advance(time.Minute)
	if !c.Finished() {
		t.Fatal("Finished() = false at the end")
	}
	if c.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", c.State())
	}
	if c.Finished() {
		t.Error("Finished() should only report once")
	}

	c.Play()
	if got := c.Position(); got != 0 {
		t.Errorf("Play() at end should restart, Position() = %v", got)
	}
}

func TestClock_Toggle_Stop(t *testing.T) {
	c, ft := newTestClock(time.Minute)

	c.Toggle()
	if c.State() != StatePlaying {
		t.Fatalf("State() = %v, want Playing", c.State())
	}
	ft.advance(3 * time.Second)
	c.Toggle()
	if c.State() != StatePaused {
		t.Fatalf("State() = %v, want Paused", c.State())
	}

	c.Stop()
	if c.State() != StateStopped || c.Position() != 0 {
		t.Errorf("after Stop: state %v position %v", c.State(), c.Position())
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateStopped: "Stopped",
		StatePlaying: "Playing",
		StatePaused:  "Paused",
		State(9):     "Unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
	if StateStopped.IsActive() || !StatePaused.IsActive() {
		t.Error("IsActive mismatch")
	}
}
