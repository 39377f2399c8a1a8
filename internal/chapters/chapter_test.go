package chapters

import (
	"testing"
	"time"
)

func sampleChapters() []Chapter {
	return []Chapter{
		{Title: "Intro", Start: 0},
		{Title: "Main", Start: 30 * time.Second},
		{Title: "Outro", Start: 300 * time.Second},
	}
}

func TestIndexAt(t *testing.T) {
	chs := sampleChapters()

	tests := []struct {
		name string
		chs  []Chapter
		pos  time.Duration
		want int
	}{
		{"empty sequence", nil, 10 * time.Second, NoChapter},
		{"start of first", chs, 0, 0},
		{"inside first", chs, 29 * time.Second, 0},
		{"boundary", chs, 30 * time.Second, 1},
		{"inside last", chs, 330 * time.Second, 2},
		{"past the end", chs, time.Hour, 2},
		{"before first", []Chapter{{Title: "Late", Start: 10 * time.Second}}, 5 * time.Second, NoChapter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexAt(tt.chs, tt.pos); got != tt.want {
				t.Errorf("IndexAt(%v) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestLength(t *testing.T) {
	chs := sampleChapters()
	total := 360 * time.Second

	tests := []struct {
		name  string
		i     int
		total time.Duration
		want  time.Duration
	}{
		{"first", 0, total, 30 * time.Second},
		{"middle", 1, total, 270 * time.Second},
		{"last uses total", 2, total, 60 * time.Second},
		{"last without total", 2, 0, 0},
		{"out of range", 3, total, 0},
		{"negative", -1, total, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(chs, tt.i, tt.total); got != tt.want {
				t.Errorf("Length(%d) = %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestValidIndex(t *testing.T) {
	chs := sampleChapters()
	for i, want := range map[int]bool{-1: false, 0: true, 2: true, 3: false} {
		if got := ValidIndex(chs, i); got != want {
			t.Errorf("ValidIndex(%d) = %v, want %v", i, got, want)
		}
	}
	if ValidIndex(nil, 0) {
		t.Error("ValidIndex(nil, 0) should be false")
	}
}

func TestChapter_HasThumbnail(t *testing.T) {
	if (Chapter{Title: "a"}).HasThumbnail() {
		t.Error("chapter without thumbnail reported one")
	}
	if !(Chapter{Title: "a", Thumbnail: "cover.jpg"}).HasThumbnail() {
		t.Error("chapter with thumbnail not reported")
	}
}
