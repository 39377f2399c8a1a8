package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/playback"
	"github.com/llehouerou/chapters/internal/ui/testutil"
)

func sampleState() State {
	return State{
		Playback: playback.StatePlaying,
		Title:    "The Book",
		Artist:   "The Author",
		Position: 45 * time.Second,
		Duration: 360 * time.Second,
		Chapters: []chapters.Chapter{
			{Title: "Intro", Start: 0},
			{Title: "Main", Start: 30 * time.Second},
			{Title: "Outro", Start: 300 * time.Second},
		},
		Current: 1,
	}
}

func TestRender_ShowsTrackAndChapter(t *testing.T) {
	out := testutil.StripANSI(Render(sampleState(), 80))
	lines := strings.Split(out, "\n")

	if len(lines) != Height {
		t.Fatalf("got %d lines, want %d", len(lines), Height)
	}
	if !strings.Contains(lines[1], "The Book") || !strings.Contains(lines[1], "The Author") {
		t.Errorf("info line = %q, want title and artist", lines[1])
	}
	if !strings.Contains(lines[1], "2/3  Main") {
		t.Errorf("info line = %q, want current chapter", lines[1])
	}
	if !strings.Contains(lines[2], "0:45") || !strings.Contains(lines[2], "6:00") {
		t.Errorf("bar line = %q, want position and duration", lines[2])
	}
}

func TestRender_NoChapter(t *testing.T) {
	s := sampleState()
	s.Current = chapters.NoChapter
	out := testutil.StripANSI(Render(s, 80))

	if strings.Contains(out, "Main") {
		t.Errorf("no chapter should be named, got %q", out)
	}
}

func TestRender_UnknownTitle(t *testing.T) {
	s := sampleState()
	s.Title = ""
	if out := testutil.StripANSI(Render(s, 80)); !strings.Contains(out, "Unknown Track") {
		t.Errorf("missing placeholder title in %q", out)
	}
}

func TestRender_LongTitleTruncated(t *testing.T) {
	s := sampleState()
	s.Title = strings.Repeat("Very long title ", 10)
	lines := strings.Split(testutil.StripANSI(Render(s, 60)), "\n")

	if !strings.Contains(lines[1], "…") {
		t.Errorf("expected truncated title, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "Main") {
		t.Errorf("chapter name should survive truncation, got %q", lines[1])
	}
}

func TestRenderProgressBar_Markers(t *testing.T) {
	chs := sampleState().Chapters
	out := testutil.StripANSI(RenderProgressBar(0, 360*time.Second, chs, 60, playback.StatePaused))

	if got := strings.Count(out, markerCell); got != 2 {
		t.Errorf("got %d markers, want 2 (first chapter at 0 is skipped): %q", got, out)
	}
	if !strings.HasPrefix(out, pauseSymbol) {
		t.Errorf("expected pause symbol, got %q", out)
	}
}

func TestRenderProgressBar_Filled(t *testing.T) {
	out := testutil.StripANSI(RenderProgressBar(30*time.Second, 60*time.Second, nil, 40, playback.StatePlaying))

	filled := strings.Count(out, filledCell)
	empty := strings.Count(out, emptyCell)
	if filled == 0 || empty == 0 {
		t.Fatalf("expected both filled and empty cells: %q", out)
	}
	if diff := filled - empty; diff < -1 || diff > 1 {
		t.Errorf("half-way bar: filled=%d empty=%d", filled, empty)
	}
}

func TestRenderProgressBar_TooNarrow(t *testing.T) {
	out := RenderProgressBar(time.Second, time.Minute, nil, 10, playback.StateStopped)
	if out != stopSymbol+"  0:01 / 1:00" {
		t.Errorf("narrow bar = %q", out)
	}
}

func TestMarkerCells(t *testing.T) {
	chs := []chapters.Chapter{
		{Start: 0},
		{Start: 50 * time.Second},
		{Start: 100 * time.Second}, // at the end: no marker
	}
	cells := markerCells(chs, 100*time.Second, 10)

	if len(cells) != 1 || !cells[5] {
		t.Errorf("markerCells = %v, want only cell 5", cells)
	}
	if got := markerCells(chs, 0, 10); len(got) != 0 {
		t.Errorf("unknown duration should have no markers, got %v", got)
	}
}

func TestNewState(t *testing.T) {
	store := chapters.NewStore()
	store.SetChapters(sampleState().Chapters)
	store.SyncPosition(40 * time.Second)
	clock := playback.NewClock(360 * time.Second)
	clock.SeekTo(40 * time.Second)

	s := NewState(clock, store, "Title", "Artist")
	if s.Current != 1 || s.ChapterTitle() != "Main" {
		t.Errorf("current = %d (%q), want 1 (Main)", s.Current, s.ChapterTitle())
	}
	if s.Position != 40*time.Second || s.Duration != 360*time.Second {
		t.Errorf("position/duration = %v/%v", s.Position, s.Duration)
	}
	if s.Playback != playback.StateStopped {
		t.Errorf("playback = %v, want stopped", s.Playback)
	}
}
