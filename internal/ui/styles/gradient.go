package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders bold text whose color blends from one color to another,
// one step per grapheme cluster.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	c1 := toColorful(from)
	c2 := toColorful(to)
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, cluster := range clusters {
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(cluster))
	}
	return b.String()
}

// toColorful converts a hex lipgloss color. ANSI palette colors have no hex
// form and fall back to gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
