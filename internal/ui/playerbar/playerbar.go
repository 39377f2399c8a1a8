// Package playerbar renders the transport bar: what is playing, the current
// chapter and a progress bar with chapter markers.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/playback"
	"github.com/llehouerou/chapters/internal/ui/render"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

// Height is the rows the bar takes: two content rows plus the border.
const Height = 4

// State holds everything needed to render the player bar.
type State struct {
	Playback playback.State
	Title    string
	Artist   string
	Position time.Duration
	Duration time.Duration
	Chapters []chapters.Chapter
	Current  int // active chapter, chapters.NoChapter if none
}

// NewState builds a State from the transport clock and the chapter store.
func NewState(c *playback.Clock, store *chapters.Store, title, artist string) State {
	snap := store.Snapshot()
	return State{
		Playback: c.State(),
		Title:    title,
		Artist:   artist,
		Position: c.Position(),
		Duration: c.Duration(),
		Chapters: snap.Chapters,
		Current:  snap.Active,
	}
}

// ChapterTitle returns the title of the active chapter, "" if none.
func (s State) ChapterTitle() string {
	if !chapters.ValidIndex(s.Chapters, s.Current) {
		return ""
	}
	return s.Chapters[s.Current].Title
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	// border and padding
	innerWidth := max(width-6, 0)

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	info := titleStyle().Render(title)
	if s.Artist != "" {
		info += "   " + artistStyle().Render(s.Artist)
	}

	chapter := ""
	if ct := s.ChapterTitle(); ct != "" {
		chapter = chapterStyle().Render(fmt.Sprintf("%d/%d  %s", s.Current+1, len(s.Chapters), ct))
	}
	chapterWidth := lipgloss.Width(chapter)
	maxInfo := innerWidth - chapterWidth - 3
	if chapter == "" {
		maxInfo = innerWidth
	}
	top := render.Row(truncateStyled(info, title, s.Artist, maxInfo), chapter, innerWidth)

	bar := RenderProgressBar(s.Position, s.Duration, s.Chapters, innerWidth, s.Playback)

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(top + "\n" + bar)
}

// truncateStyled keeps the styled line when it fits, otherwise falls back to
// the truncated plain title.
func truncateStyled(styled, title, artist string, maxWidth int) string {
	if lipgloss.Width(styled) <= maxWidth {
		return styled
	}
	plain := title
	if artist != "" {
		plain += "   " + artist
	}
	return titleStyle().Render(render.Truncate(plain, maxWidth))
}

func statusSymbol(st playback.State) string {
	switch st {
	case playback.StatePlaying:
		return playSymbol
	case playback.StatePaused:
		return pauseSymbol
	default:
		return stopSymbol
	}
}

// markerCells returns the bar cells where a chapter starts. The first
// chapter is skipped when it starts at zero.
func markerCells(chs []chapters.Chapter, duration time.Duration, barWidth int) map[int]bool {
	cells := make(map[int]bool)
	if duration <= 0 || barWidth <= 0 {
		return cells
	}
	for _, ch := range chs {
		if ch.Start <= 0 || ch.Start >= duration {
			continue
		}
		cell := int(int64(barWidth) * int64(ch.Start) / int64(duration))
		cells[min(cell, barWidth-1)] = true
	}
	return cells
}

func joinBar(parts ...string) string {
	return strings.Join(parts, "  ")
}
