package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chapters/internal/keymap"
	"github.com/llehouerou/chapters/internal/ui/headerbar"
	"github.com/llehouerou/chapters/internal/ui/playerbar"
	"github.com/llehouerou/chapters/internal/ui/render"
	"github.com/llehouerou/chapters/internal/ui/styles"
)

// View renders the application UI.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := headerbar.Render(headerbar.Info{
		Title:    m.track.Title,
		Artist:   m.track.Artist,
		Album:    m.track.Album,
		Size:     m.track.Size,
		Chapters: len(m.track.Chapters),
	}, m.width)

	lines := make([]string, 0, m.height)
	lines = append(lines, header)
	for range max(m.height-headerbar.Height-playerbar.Height-FooterHeight, 0) {
		lines = append(lines, "")
	}
	// the sheet covers the controls; keep the rows so the layout is stable
	if m.controlsHidden {
		for range playerbar.Height {
			lines = append(lines, "")
		}
	} else {
		state := playerbar.NewState(m.clock, m.store, m.track.Title, m.track.Artist)
		lines = append(lines, strings.Split(playerbar.Render(state, m.width), "\n")...)
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	lines = lines[:m.height]

	screen := strings.Join(lines, "\n")
	if m.panel != nil {
		screen = m.panel.RenderOverlay(screen)
		lines = strings.Split(screen, "\n")
	}

	lines[len(lines)-1] = m.renderFooter()
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	context := []string{"global", "playback"}
	if m.panel != nil {
		context = []string{"chapters"}
	}
	if m.status == "" {
		return keymap.HintsWidth(m.width, context...)
	}
	status := styles.T().S().Title.Render(m.status)
	avail := max(m.width-lipgloss.Width(status)-1, 0)
	return render.Row(status, keymap.HintsWidth(avail, context...), m.width)
}
