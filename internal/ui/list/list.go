// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone   Action = iota
	ActionMoved         // cursor or viewport moved
	ActionEnter         // enter pressed on the cursor row
	ActionClick         // left click on a row (cursor moved to it)
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

// wheelStep is the number of rows a mouse wheel notch scrolls.
const wheelStep = 3

// Model is a scrollable list of items. It handles navigation and mouse
// input and reports actions; the parent renders rows using VisibleRange.
type Model[T any] struct {
	items  []T
	cursor cursor.Cursor
	height int // visible rows
}

// New creates a list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// SetItems replaces all items. The cursor and viewport are clamped to the
// new length but not otherwise moved.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items), m.height)
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Item returns item i and whether it exists.
func (m Model[T]) Item(i int) (T, bool) {
	if i < 0 || i >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[i], true
}

// SetHeight sets the number of visible rows.
func (m *Model[T]) SetHeight(h int) {
	m.height = max(h, 0)
	m.cursor.ClampToBounds(len(m.items), m.height)
}

// Height returns the number of visible rows.
func (m Model[T]) Height() int {
	return m.height
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Offset returns the first visible index.
func (m Model[T]) Offset() int {
	return m.cursor.Offset()
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.height)
}

// ScrollTo moves the cursor to index i and centers it in the viewport.
// Out-of-range indices are ignored.
func (m *Model[T]) ScrollTo(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.cursor.Jump(i, len(m.items), m.height)
	m.cursor.Center(len(m.items), m.height)
}

// Update handles a key or mouse message. top is the screen row of the first
// list row, used to map mouse coordinates to items.
func (m *Model[T]) Update(msg tea.Msg, top int) Result {
	n := len(m.items)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.cursor.HandleKey(msg.String(), n, m.height) {
			return Result{Action: ActionMoved, Index: -1}
		}
		if msg.String() == "enter" && n > 0 {
			return Result{Action: ActionEnter, Index: m.cursor.Pos()}
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.cursor.Scroll(-wheelStep, n, m.height)
			return Result{Action: ActionMoved, Index: -1}
		case msg.Button == tea.MouseButtonWheelDown:
			m.cursor.Scroll(wheelStep, n, m.height)
			return Result{Action: ActionMoved, Index: -1}
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			idx := m.cursor.IndexAtRow(msg.Y-top, n, m.height)
			if idx < 0 {
				return Result{Index: -1}
			}
			m.cursor.Jump(idx, n, m.height)
			return Result{Action: ActionClick, Index: idx}
		}
	}

	return Result{Index: -1}
}
