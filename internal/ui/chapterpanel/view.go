package chapterpanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/keymap"
	"github.com/llehouerou/chapters/internal/ui"
	"github.com/llehouerou/chapters/internal/ui/render"
	"github.com/llehouerou/chapters/internal/ui/sheet"
	"github.com/llehouerou/chapters/internal/ui/styles"
)

const (
	currentPrefix   = "▶ "
	thumbnailMarker = "▣ "
)

// Row is the projection of one chapter as displayed.
type Row struct {
	Index     int
	Title     string
	Start     time.Duration // clamped to the total duration when known
	Length    time.Duration // 0 when unknown
	Current   bool
	Thumbnail bool
}

// Rows returns every chapter row, visible or not. Nil once dismissed.
func (m *Model) Rows() []Row {
	if m.binding == nil {
		return nil
	}
	items := m.binding.list.Items()
	rows := make([]Row, len(items))
	for i, ch := range items {
		rows[i] = Row{
			Index:     i,
			Title:     ch.Title,
			Start:     m.clampStart(ch.Start),
			Length:    chapters.Length(items, i, m.duration),
			Current:   i == m.binding.active,
			Thumbnail: ch.HasThumbnail(),
		}
	}
	return rows
}

// CurrentRow returns the highlighted row index, or -1.
func (m *Model) CurrentRow() int {
	if m.binding == nil || !chapters.ValidIndex(m.binding.list.Items(), m.binding.active) {
		return -1
	}
	return m.binding.active
}

// Offset returns the first visible chapter index.
func (m *Model) Offset() int {
	if m.binding == nil {
		return 0
	}
	return m.binding.list.Offset()
}

// View renders the sheet content, without frame or anchoring.
func (m *Model) View() string {
	if m.binding == nil || !m.HasSize() {
		return ""
	}
	width := max(m.Width()-4, 1)
	t := styles.T()

	lines := make([]string, 0, m.SheetHeight())
	lines = append(lines,
		t.S().Subtle.Render(render.Center(sheet.Handle, width)),
		m.renderTitle(width),
		"",
	)
	lines = append(lines, m.renderRows(width)...)
	for range m.bottomInset {
		lines = append(lines, "")
	}
	lines = append(lines, "", keymap.HintsWidth(width, "chapters"))
	if n := m.SheetHeight() - ui.BorderHeight; len(lines) > n {
		if n <= 0 {
			return ""
		}
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// RenderOverlay composes the framed sheet over the host view base.
func (m *Model) RenderOverlay(base string) string {
	if m.binding == nil || m.SheetHeight() <= ui.BorderHeight {
		return base
	}
	overlay := sheet.RenderBottom(m.View(), m.Width(), m.Height(), m.drag.offset)
	return sheet.Compose(base, overlay, m.Width())
}

func (m *Model) renderTitle(width int) string {
	t := styles.T()
	title := styles.Gradient("Chapters", t.Primary, t.Secondary)
	count := t.S().Muted.Render(fmt.Sprintf("%d", m.binding.list.Len()))
	return render.Row(title, count, width)
}

func (m *Model) renderRows(width int) []string {
	b := m.binding
	rows := b.list.Height()
	out := make([]string, 0, rows)

	if b.list.Len() == 0 {
		out = append(out, styles.T().S().Muted.Render(render.TruncateAndPad("No chapters", width)))
	} else {
		all := m.Rows()
		start, end := b.list.VisibleRange()
		for i := start; i < end; i++ {
			out = append(out, m.renderRow(all[i], width, i == b.list.SelectedIndex()))
		}
	}
	for len(out) < rows {
		out = append(out, "")
	}
	return out
}

func (m *Model) renderRow(r Row, width int, selected bool) string {
	s := styles.T().S()

	prefix := "  "
	if r.Current {
		prefix = currentPrefix
	}
	if m.opts.showThumbnails && r.Thumbnail {
		prefix += thumbnailMarker
	}

	right := render.FormatDuration(r.Start)
	if r.Length > 0 {
		right += " · " + render.FormatDuration(r.Length)
	}

	titleWidth := width - lipgloss.Width(prefix) - lipgloss.Width(right) - 1
	line := render.Row(prefix+render.Truncate(r.Title, titleWidth), right, width)

	style := s.Base
	if r.Current {
		style = s.Playing
	}
	if selected {
		style = style.Background(styles.T().BgCursor)
	}
	return style.Render(line)
}
