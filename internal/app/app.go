// Package app is the host screen: it owns the chapter store and the
// transport clock, draws the player and opens the chapter sheet.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/config"
	"github.com/llehouerou/chapters/internal/keymap"
	"github.com/llehouerou/chapters/internal/logger"
	"github.com/llehouerou/chapters/internal/playback"
	"github.com/llehouerou/chapters/internal/ui/chapterpanel"
)

// FooterHeight is the status line at the bottom of the screen. The chapter
// sheet reserves it as a bottom inset.
const FooterHeight = 1

// Model is the root application model. It is used through a pointer so the
// chapter sheet can call back into it when dismissed.
type Model struct {
	cfg   *config.Config
	track *chapters.Track
	store *chapters.Store
	clock *playback.Clock
	keys  *keymap.Resolver

	panel          *chapterpanel.Model // nil when the sheet is closed
	controlsHidden bool

	status string
	width  int
	height int

	log *slog.Logger
}

var (
	_ tea.Model                    = (*Model)(nil)
	_ chapterpanel.DismissListener = (*Model)(nil)
)

// New creates the host screen for a loaded track and starts the clock.
func New(cfg *config.Config, track *chapters.Track) *Model {
	store := chapters.NewStore()
	store.SetChapters(track.Chapters)
	store.SyncPosition(0)

	clock := playback.NewClock(track.Duration)
	clock.Play()

	return &Model{
		cfg:   cfg,
		track: track,
		store: store,
		clock: clock,
		keys:  keymap.ForContexts("global", "playback"),
		log:   logger.ComponentLogger("app"),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return TickCmd(m.cfg.TickInterval())
}

// Store returns the chapter store observed by the sheet.
func (m *Model) Store() *chapters.Store {
	return m.store
}

// Clock returns the transport clock.
func (m *Model) Clock() *playback.Clock {
	return m.clock
}

// Panel returns the open chapter sheet, or nil.
func (m *Model) Panel() *chapterpanel.Model {
	return m.panel
}

// ControlsHidden reports whether the player bar is hidden behind the sheet.
func (m *Model) ControlsHidden() bool {
	return m.controlsHidden
}

// Status returns the footer status message.
func (m *Model) Status() string {
	return m.status
}

// OnPanelDismissed implements chapterpanel.DismissListener.
func (m *Model) OnPanelDismissed() {
	m.panel = nil
	m.controlsHidden = false
	m.log.Debug("chapter sheet dismissed")
}

func (m *Model) openPanel() tea.Cmd {
	if m.panel != nil {
		return nil
	}
	m.panel = chapterpanel.New(m.store, m.track.Duration, m,
		chapterpanel.WithScrollMargin(m.cfg.ScrollMargin()),
		chapterpanel.WithThumbnails(m.cfg.ShowThumbnails()),
	)
	m.panel.SetBottomInset(FooterHeight)
	m.panel.SetSize(m.width, m.height)
	m.controlsHidden = true
	m.status = ""
	m.log.Debug("chapter sheet opened")
	return m.panel.Init()
}

// Close releases the chapter sheet and the store.
func (m *Model) Close() {
	if m.panel != nil {
		m.panel.Close()
	}
	m.store.Close()
}
