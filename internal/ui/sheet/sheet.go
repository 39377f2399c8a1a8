// Package sheet renders bottom sheets: bordered panels anchored to the bottom
// edge of the terminal and composed over the host view.
package sheet

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/chapters/internal/ui/styles"
)

// Sheet defines the contract for modal bottom sheet components.
type Sheet interface {
	// Init returns any initial command (e.g., start observing a store).
	Init() tea.Cmd

	// Update handles messages and returns the updated sheet + command.
	Update(msg tea.Msg) (Sheet, tea.Cmd)

	// View renders the sheet content (without outer border and anchoring).
	View() string

	// SetSize sets the area the sheet may occupy; it is a layout pass.
	SetSize(width, height int)
}

// Handle is the drag handle drawn on the first row of a sheet.
const Handle = "──────"

// Frame returns the border style used around sheet content.
func Frame(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		Width(max(width-2, 0))
}

// RenderBottom wraps content in the sheet frame and anchors it to the bottom
// of a width x height canvas. drop pushes the sheet down by that many rows
// (a sheet being dragged away); rows pushed past the bottom are cut.
// The result always has exactly height lines.
func RenderBottom(content string, width, height, drop int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	box := strings.Split(Frame(width).Render(content), "\n")
	if len(box) > height {
		box = box[:height]
	}

	drop = max(drop, 0)
	top := height - len(box) + drop

	lines := make([]string, height)
	for i := range lines {
		row := i - top
		if row >= 0 && row < len(box) {
			lines[i] = box[row]
		}
	}
	return strings.Join(lines, "\n")
}

// Top returns the canvas row the sheet's first line lands on, matching
// RenderBottom for a sheet of sheetHeight rows.
func Top(height, sheetHeight, drop int) int {
	return height - min(sheetHeight, height) + max(drop, 0)
}

// Compose overlays a sheet on a base view. Overlay lines that are blank
// leave the base untouched; others replace the covered columns.
// ANSI styling of both views is preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	for len(baseLines) < len(overLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range overLines {
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := start + ansi.StringWidth(strings.TrimSpace(plain))

		b := baseLines[i]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}

		out := ansi.Cut(b, 0, start) + ansi.Cut(line, start, end)
		if end < width {
			out += ansi.Cut(b, end, width)
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}
