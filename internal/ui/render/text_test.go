package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"wide characters", "日本語のタイトル", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii untouched", "Chapter 1", "Chapter 1"},
		{"control characters dropped", "Intro\x00\x1b\n", "Intro"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "ok\xff", "ok"},
		{"nbsp replaced", "a\u00a0b", "a b"},
		{"unicode kept", "Café", "Café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, s := range []string{"", "short", "a much longer title than fits"} {
		got := TruncateAndPad(s, 12)
		if w := lipgloss.Width(got); w != 12 {
			t.Errorf("TruncateAndPad(%q) width = %d, want 12", s, w)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 15); got != "left      right" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row too narrow = %q, want single space gap", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abcdef", 3); got != "abcdef" {
		t.Errorf("Center overflow = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{30 * time.Second, "0:30"},
		{300 * time.Second, "5:00"},
		{61*time.Minute + 5*time.Second, "1:01:05"},
		{1499 * time.Millisecond, "0:01"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
