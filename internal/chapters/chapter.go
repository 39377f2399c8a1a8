// Package chapters holds chapter markers of a media item and the observable
// store the chapter sheet binds to.
package chapters

import "time"

// NoChapter is the index used when no chapter is active.
const NoChapter = -1

// Chapter is a named, timestamped segment marker within a media timeline.
type Chapter struct {
	Title     string
	Start     time.Duration
	Thumbnail string // optional image reference, empty when absent
}

// HasThumbnail reports whether the chapter carries an image reference.
func (c Chapter) HasThumbnail() bool {
	return c.Thumbnail != ""
}

// ValidIndex reports whether i addresses a chapter of chs.
func ValidIndex(chs []Chapter, i int) bool {
	return i >= 0 && i < len(chs)
}

// IndexAt returns the index of the chapter containing pos: the last chapter
// whose start is at or before pos. Returns NoChapter if pos precedes the first
// chapter or chs is empty. Chapters are expected in start order.
func IndexAt(chs []Chapter, pos time.Duration) int {
	idx := NoChapter
	for i, ch := range chs {
		if ch.Start > pos {
			break
		}
		idx = i
	}
	return idx
}

// Length returns how long chapter i lasts: up to the next chapter start, or up
// to total for the last one. Returns 0 when the length cannot be determined.
func Length(chs []Chapter, i int, total time.Duration) time.Duration {
	if !ValidIndex(chs, i) {
		return 0
	}
	end := total
	if i+1 < len(chs) {
		end = chs[i+1].Start
	}
	if end <= chs[i].Start {
		return 0
	}
	return end - chs[i].Start
}
