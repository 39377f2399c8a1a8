package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/keymap"
	"github.com/llehouerou/chapters/internal/ui/action"
	"github.com/llehouerou/chapters/internal/ui/chapterpanel"
	"github.com/llehouerou/chapters/internal/ui/render"
)

// transportKeys resolves the keys that still reach the player while the
// chapter sheet is open.
var transportKeys = keymap.ForContexts("playback")

// Update handles messages and returns updated model and commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		return m.handleTick()

	case action.Msg:
		return m, m.handleAction(msg)

	case tea.KeyMsg:
		if m.panel != nil {
			return m, m.updatePanel(msg)
		}
		return m, m.handleKey(msg)
	}

	// mouse input and store notifications belong to the sheet
	if m.panel != nil {
		return m, m.updatePanel(msg)
	}
	return m, nil
}

func (m *Model) updatePanel(msg tea.Msg) tea.Cmd {
	_, cmd := m.panel.Update(msg)
	return cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.store.SetMaxHeight(m.cfg.MaxSheetRows(msg.Height))
	if m.panel != nil {
		m.panel.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.clock.Finished() {
		m.status = "end of track"
	}
	m.store.SyncPosition(m.clock.Position())
	return m, TickCmd(m.cfg.TickInterval())
}

// handleAction consumes the requests sent by the chapter sheet.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch msg.Key {
	case chapterpanel.SeekRequestKey:
		if req, ok := msg.Action.(chapterpanel.SeekRequest); ok {
			m.seekTo(req)
		}
	case chapterpanel.PassthroughKey:
		p, ok := msg.Action.(chapterpanel.Passthrough)
		if ok && transportKeys.Resolve(p.Key.String()) != "" {
			return m.handleKey(p.Key)
		}
	}
	return nil
}

func (m *Model) seekTo(req chapterpanel.SeekRequest) {
	m.clock.SeekTo(req.Position)
	m.store.SyncPosition(m.clock.Position())
	m.status = "seek to " + render.FormatDuration(req.Position)
	m.log.Debug("seek", "position", req.Position)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	step := m.cfg.SeekStep()

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionChapters:
		return m.openPanel()
	case keymap.ActionPlayPause:
		m.clock.Toggle()
		m.status = m.clock.State().String()
	case keymap.ActionSeekBack:
		m.seekBy(-step)
	case keymap.ActionSeekForward:
		m.seekBy(step)
	case keymap.ActionPrevChapter:
		m.jumpChapter(-1)
	case keymap.ActionNextChapter:
		m.jumpChapter(1)
	}
	return nil
}

func (m *Model) seekBy(delta time.Duration) {
	m.clock.Seek(delta)
	pos := m.clock.Position()
	m.store.SyncPosition(pos)
	m.status = "seek to " + render.FormatDuration(pos)
}

// jumpChapter moves to the start of the chapter delta away from the current
// one. With no current chapter, only forward jumps go anywhere (chapter 0).
func (m *Model) jumpChapter(delta int) {
	chs := m.store.Chapters()
	cur, ok := m.store.ActiveIndex()
	if !ok {
		if delta < 0 {
			return
		}
		cur = -1
	}
	target := min(max(cur+delta, 0), len(chs)-1)
	if !chapters.ValidIndex(chs, target) || target == cur {
		return
	}
	m.seekTo(chapterpanel.SeekRequest{Position: chs[target].Start})
}
