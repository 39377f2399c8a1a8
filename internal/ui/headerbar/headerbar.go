// Package headerbar renders the one-line header describing the open file.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/chapters/internal/ui/render"
	"github.com/llehouerou/chapters/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info is what the header shows about the media item.
type Info struct {
	Title    string
	Artist   string
	Album    string
	Size     int64 // bytes
	Chapters int
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	separator := s.Subtle.Render(" │ ")

	left := []string{s.Title.Render(info.Title)}
	if info.Artist != "" {
		left = append(left, s.Base.Render(info.Artist))
	}
	if info.Album != "" {
		left = append(left, s.Muted.Render(info.Album))
	}

	right := []string{chapterCount(info.Chapters)}
	if info.Size > 0 {
		right = append(right, humanize.Bytes(uint64(info.Size)))
	}
	rightStr := s.Muted.Render(strings.Join(right, " · "))

	leftStr := strings.Join(left, separator)
	if avail := width - lipgloss.Width(rightStr) - 1; lipgloss.Width(leftStr) > avail {
		leftStr = s.Title.Render(render.Truncate(info.Title, avail))
	}

	return render.Row(leftStr, rightStr, width)
}

func chapterCount(n int) string {
	switch n {
	case 0:
		return "no chapters"
	case 1:
		return "1 chapter"
	default:
		return fmt.Sprintf("%d chapters", n)
	}
}
