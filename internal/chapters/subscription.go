package chapters

import (
	"slices"
	"sync"
)

const eventBufferSize = 16

// Event is a notification emitted by the Store.
type Event interface {
	kind() eventKind
}

type eventKind int

const (
	kindChapters eventKind = iota
	kindActive
	kindMaxHeight
)

// ChaptersChanged is emitted when the whole chapter sequence is replaced.
type ChaptersChanged struct {
	Chapters []Chapter
}

// ActiveChanged is emitted when the active chapter changes.
// Index is NoChapter when no chapter is active.
type ActiveChanged struct {
	Index int
}

// MaxHeightChanged is emitted when the sheet height limit changes.
type MaxHeightChanged struct {
	Rows int
}

func (ChaptersChanged) kind() eventKind  { return kindChapters }
func (ActiveChanged) kind() eventKind    { return kindActive }
func (MaxHeightChanged) kind() eventKind { return kindMaxHeight }

// Subscription delivers store events to one subscriber, in emit order.
type Subscription struct {
	Events <-chan Event
	Done   <-chan struct{}

	eventCh   chan Event
	doneCh    chan struct{}
	closeOnce sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		eventCh: make(chan Event, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Events = s.eventCh
	s.Done = s.doneCh
	return s
}

// send queues an event without blocking. When the buffer is full the pending
// events are coalesced so only the latest event of each kind is kept, in emit
// order. A flood of one kind never evicts the last event of another kind.
// Callers must serialize sends (the Store holds its lock).
func (s *Subscription) send(e Event) {
	select {
	case s.eventCh <- e:
		return
	default:
	}

	pending := make([]Event, 0, eventBufferSize+1)
	for drained := false; !drained; {
		select {
		case p := <-s.eventCh:
			pending = append(pending, p)
		default:
			drained = true
		}
	}
	for _, p := range coalesce(append(pending, e)) {
		s.eventCh <- p
	}
}

// coalesce keeps the last event of each kind, preserving relative order.
func coalesce(events []Event) []Event {
	out := make([]Event, 0, len(events))
	var seen [3]bool
	for i := len(events) - 1; i >= 0; i-- {
		k := events[i].kind()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, events[i])
	}
	slices.Reverse(out)
	return out
}

// close signals the subscriber to stop. Safe to call more than once.
func (s *Subscription) close() {
	s.closeOnce.Do(func() {
		close(s.doneCh)
	})
}

// Closed reports whether the subscription has been torn down.
func (s *Subscription) Closed() bool {
	select {
	case <-s.doneCh:
		return true
	default:
		return false
	}
}
