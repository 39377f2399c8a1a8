package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/playback"
	"github.com/llehouerou/chapters/internal/ui"
	"github.com/llehouerou/chapters/internal/ui/render"
)

const (
	filledCell = "━"
	emptyCell  = "─"
	markerCell = "┃"
)

// RenderProgressBar renders the progress line with chapter markers.
// Format: ▶  1:23  ━━━━┃━━───┃───  4:56
func RenderProgressBar(position, duration time.Duration, chs []chapters.Chapter, width int, st playback.State) string {
	status := statusSymbol(st)
	posStr := render.FormatDuration(position)
	durStr := render.FormatDuration(duration)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < ui.MinProgressBarWidth {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)
	markers := markerCells(chs, duration, barWidth)

	var bar strings.Builder
	for i := range barWidth {
		switch {
		case markers[i]:
			bar.WriteString(markerStyle().Render(markerCell))
		case i < filled:
			bar.WriteString(progressFilledStyle().Render(filledCell))
		default:
			bar.WriteString(progressEmptyStyle().Render(emptyCell))
		}
	}

	return joinBar(status, posStr, bar.String(), durStr)
}
