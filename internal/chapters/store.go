package chapters

import (
	"slices"
	"sync"
	"time"
)

// Snapshot is the store state at a point in time.
type Snapshot struct {
	Chapters  []Chapter
	Active    int // NoChapter when none
	MaxHeight int // rows, 0 = no limit
}

// ActiveIndex returns the active index and whether one is set.
func (s Snapshot) ActiveIndex() (int, bool) {
	return s.Active, s.Active != NoChapter
}

// Store holds the observable chapter state of the media item being played.
// It is owned by the host screen; panels only observe it.
type Store struct {
	mu        sync.Mutex
	chapters  []Chapter
	active    int
	maxHeight int
	subs      []*Subscription
}

// NewStore creates an empty store with no active chapter.
func NewStore() *Store {
	return &Store{active: NoChapter}
}

// Chapters returns a copy of the chapter sequence.
func (s *Store) Chapters() []Chapter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.chapters)
}

// ActiveIndex returns the active chapter index and whether one is set.
func (s *Store) ActiveIndex() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != NoChapter
}

// MaxHeight returns the maximum sheet height in rows (0 = no limit).
func (s *Store) MaxHeight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxHeight
}

// SetChapters replaces the chapter sequence. The active index is left as is.
func (s *Store) SetChapters(chs []Chapter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chapters = slices.Clone(chs)
	s.broadcast(ChaptersChanged{Chapters: slices.Clone(s.chapters)})
}

// SetActiveIndex marks chapter i as the one being played.
// A negative index clears the active chapter.
func (s *Store) SetActiveIndex(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setActiveLocked(i)
}

// ClearActiveIndex clears the active chapter.
func (s *Store) ClearActiveIndex() {
	s.SetActiveIndex(NoChapter)
}

// SyncPosition derives the active chapter from a playback position.
func (s *Store) SyncPosition(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setActiveLocked(IndexAt(s.chapters, pos))
}

// setActiveLocked must be called with s.mu held.
func (s *Store) setActiveLocked(i int) {
	if i < 0 {
		i = NoChapter
	}
	if s.active == i {
		return
	}
	s.active = i
	s.broadcast(ActiveChanged{Index: i})
}

// SetMaxHeight sets the maximum sheet height in rows.
func (s *Store) SetMaxHeight(rows int) {
	rows = max(rows, 0)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxHeight == rows {
		return
	}
	s.maxHeight = rows
	s.broadcast(MaxHeightChanged{Rows: rows})
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Observe atomically reads the current state and registers a subscriber
// for every change made after it.
func (s *Store) Observe() (Snapshot, *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return s.snapshot(), sub
}

// Unsubscribe removes a subscriber and closes its Done channel.
func (s *Store) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = slices.DeleteFunc(s.subs, func(o *Subscription) bool {
		return o == sub
	})
	sub.close()
}

// Subscribers returns the number of registered subscribers.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close unsubscribes every subscriber.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Chapters:  slices.Clone(s.chapters),
		Active:    s.active,
		MaxHeight: s.maxHeight,
	}
}

// broadcast must be called with s.mu held.
func (s *Store) broadcast(e Event) {
	for _, sub := range s.subs {
		sub.send(e)
	}
}
