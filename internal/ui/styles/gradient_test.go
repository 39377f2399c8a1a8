package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestGradient_KeepsText(t *testing.T) {
	for _, text := range []string{"Chapters", "é", "👩‍👩‍👧 family", ""} {
		got := ansi.Strip(Gradient(text, T().Primary, T().Secondary))
		if got != text {
			t.Errorf("Gradient(%q) stripped = %q", text, got)
		}
	}
}

func TestGradient_UnknownColorsDoNotPanic(t *testing.T) {
	out := Gradient("abc", "240", "nope")
	if !strings.Contains(ansi.Strip(out), "abc") {
		t.Errorf("unexpected output %q", out)
	}
}
