// Package chapterpanel provides the chapter bottom sheet: a scrollable list
// of the chapters of the item being played, with the current chapter
// highlighted. Tapping a row asks the host to seek to that chapter.
package chapterpanel

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/keymap"
	"github.com/llehouerou/chapters/internal/logger"
	"github.com/llehouerou/chapters/internal/ui"
	"github.com/llehouerou/chapters/internal/ui/list"
	"github.com/llehouerou/chapters/internal/ui/sheet"
)

// listTop is the row of the first chapter relative to the sheet's top
// border: border, handle, title, blank line.
const listTop = ui.BorderHeight/2 + ui.HandleHeight + ui.TitleHeight

// Option configures a Model.
type Option func(*options)

type options struct {
	scrollMargin   int
	showThumbnails bool
}

// WithScrollMargin sets the rows kept visible around the keyboard cursor.
func WithScrollMargin(n int) Option {
	return func(o *options) { o.scrollMargin = max(n, 0) }
}

// WithThumbnails toggles the thumbnail marker on rows.
func WithThumbnails(show bool) Option {
	return func(o *options) { o.showThumbnails = show }
}

// binding is the list state tied to the store. It exists between creation
// and dismissal only.
type binding struct {
	list      list.Model[chapters.Chapter]
	active    int
	maxHeight int
}

type dragState struct {
	active bool
	startY int
	offset int
}

// Model is one instance of the chapter sheet. A new Model is created each
// time the sheet is opened; after dismissal it is inert.
type Model struct {
	ui.Base

	store    *chapters.Store
	sub      *chapters.Subscription
	listener DismissListener
	duration time.Duration
	opts     options
	keys     *keymap.Resolver

	phase       Phase
	binding     *binding
	layout      layoutObserver
	bottomInset int
	drag        dragState

	log *slog.Logger
}

var _ sheet.Sheet = (*Model)(nil)

// New creates a sheet observing store. duration is the total duration of
// the media item (negative means unknown and counts as 0). listener may be
// nil.
func New(store *chapters.Store, duration time.Duration, listener DismissListener, opts ...Option) *Model {
	if store == nil {
		store = chapters.NewStore()
	}
	o := options{scrollMargin: ui.ScrollMargin, showThumbnails: true}
	for _, opt := range opts {
		opt(&o)
	}

	snap, sub := store.Observe()
	b := &binding{
		list:      list.New[chapters.Chapter](o.scrollMargin),
		active:    snap.Active,
		maxHeight: snap.MaxHeight,
	}
	b.list.SetItems(snap.Chapters)

	m := &Model{
		store:    store,
		sub:      sub,
		listener: listener,
		duration: max(duration, 0),
		opts:     o,
		keys:     keymap.ForContexts("chapters"),
		phase:    PhaseOpening,
		binding:  b,
		log:      logger.ComponentLogger("chapterpanel"),
	}
	m.layout.add(m.scrollToCurrent)
	m.log.Debug("opening", "chapters", len(snap.Chapters), "active", snap.Active)
	return m
}

// Init starts listening to the store.
func (m *Model) Init() tea.Cmd {
	if m.binding == nil {
		return nil
	}
	return waitForStore(m.sub)
}

// SetSize runs a layout pass over the given area (usually the full
// terminal). The first pass with a usable size scrolls to the current
// chapter.
func (m *Model) SetSize(width, height int) {
	if m.binding == nil {
		return
	}
	m.Base.SetSize(width, height)
	m.relayout()
}

// SetBottomInset reserves rows at the bottom of the list, so a bar drawn by
// the host over the terminal bottom never hides the last chapter.
func (m *Model) SetBottomInset(rows int) {
	if m.binding == nil {
		return
	}
	m.bottomInset = max(rows, 0)
	m.relayout()
}

func (m *Model) relayout() {
	m.binding.list.SetHeight(m.listRows())
	if m.HasSize() {
		m.layout.dispatch()
	}
}

// scrollToCurrent is the open scroll. It runs on the first layout pass and
// unregisters itself.
func (m *Model) scrollToCurrent(remove func()) {
	remove()
	b := m.binding
	if chapters.ValidIndex(b.list.Items(), b.active) {
		b.list.ScrollTo(b.active)
	}
	m.phase = PhaseShown
	m.log.Debug("shown", "active", b.active, "offset", b.list.Offset())
}

// Update handles store notifications and user input.
func (m *Model) Update(msg tea.Msg) (sheet.Sheet, tea.Cmd) {
	if m.binding == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case StoreEventMsg:
		if msg.sub != m.sub {
			return m, nil
		}
		m.apply(msg.Event)
		return m, waitForStore(m.sub)
	case storeClosedMsg:
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) apply(e chapters.Event) {
	b := m.binding
	switch e := e.(type) {
	case chapters.ChaptersChanged:
		b.list.SetItems(e.Chapters)
		m.relayout()
	case chapters.ActiveChanged:
		b.active = e.Index
	case chapters.MaxHeightChanged:
		b.maxHeight = e.Rows
		m.relayout()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.keys.Resolve(msg.String()) == keymap.ActionCloseSheet {
		m.dismiss(reasonKey)
		return nil
	}

	res := m.binding.list.Update(msg, 0)
	switch res.Action {
	case list.ActionEnter:
		return m.seekToRow(res.Index)
	case list.ActionMoved:
		return nil
	}
	return m.passthrough(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.HasSize() {
		return nil
	}
	top := m.top()

	switch {
	case m.drag.active && msg.Action == tea.MouseActionMotion:
		m.drag.offset = max(msg.Y-m.drag.startY, 0)
		return nil
	case m.drag.active && msg.Action == tea.MouseActionRelease:
		offset := max(msg.Y-m.drag.startY, 0)
		m.drag = dragState{}
		if offset*2 >= m.SheetHeight() {
			m.dismiss(reasonDrag)
		}
		return nil
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if msg.Y < top {
			m.dismiss(reasonOutside)
			return nil
		}
		if msg.Y < top+listTop-ui.TitleHeight {
			m.drag = dragState{active: true, startY: msg.Y}
			return nil
		}
		if msg.Y >= top+m.SheetHeight()-ui.BorderHeight/2 {
			return nil
		}
	}

	res := m.binding.list.Update(msg, top+listTop)
	if res.Action == list.ActionClick {
		return m.seekToRow(res.Index)
	}
	return nil
}

func (m *Model) seekToRow(i int) tea.Cmd {
	ch, ok := m.binding.list.Item(i)
	if !ok {
		return nil
	}
	return m.RequestSeek(m.clampStart(ch.Start))
}

func (m *Model) clampStart(d time.Duration) time.Duration {
	d = max(d, 0)
	if m.duration > 0 {
		d = min(d, m.duration)
	}
	return d
}

// SheetHeight returns the rows the sheet occupies, border included. It never
// exceeds the store's max height or the available area; when that limit is
// below the sheet overhead the content is clipped from the bottom.
func (m *Model) SheetHeight() int {
	if m.binding == nil || !m.HasSize() {
		return 0
	}
	return min(ui.SheetOverhead+m.listRows()+m.bottomInset, m.heightLimit())
}

// DragOffset returns how far the sheet is currently dragged down.
func (m *Model) DragOffset() int {
	return m.drag.offset
}

// listRows is the number of chapter rows that fit: as many as there are
// chapters, bounded by the store's max height and the available area.
func (m *Model) listRows() int {
	overhead := ui.SheetOverhead + m.bottomInset
	need := overhead + max(m.binding.list.Len(), 1)
	return max(min(need, m.heightLimit())-overhead, ui.MinSheetRows)
}

func (m *Model) heightLimit() int {
	limit := m.Height()
	if m.binding.maxHeight > 0 {
		limit = min(limit, m.binding.maxHeight)
	}
	return limit
}

func (m *Model) top() int {
	return sheet.Top(m.Height(), m.SheetHeight(), m.drag.offset)
}
