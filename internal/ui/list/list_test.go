package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newList(n, height int) Model[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i * 10
	}
	m := New[int](0)
	m.SetHeight(height)
	m.SetItems(items)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(y int) tea.MouseMsg {
	return tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestUpdate_Navigation(t *testing.T) {
	m := newList(10, 3)

	res := m.Update(key("j"), 0)
	if res.Action != ActionMoved {
		t.Errorf("Action = %v, want ActionMoved", res.Action)
	}
	m.Update(key("down"), 0)
	if m.SelectedIndex() != 2 {
		t.Errorf("SelectedIndex() = %d, want 2", m.SelectedIndex())
	}

	res = m.Update(key("enter"), 0)
	if res.Action != ActionEnter || res.Index != 2 {
		t.Errorf("enter: %+v, want ActionEnter at 2", res)
	}
}

func TestUpdate_EnterOnEmptyList(t *testing.T) {
	m := newList(0, 3)
	res := m.Update(key("enter"), 0)
	if res.Action != ActionNone || res.Index != -1 {
		t.Errorf("got %+v, want no action", res)
	}
}

func TestUpdate_Click(t *testing.T) {
	m := newList(10, 4)
	m.ScrollTo(5) // offset 3

	res := m.Update(click(7), 5) // row 2 of the viewport
	if res.Action != ActionClick {
		t.Fatalf("Action = %v, want ActionClick", res.Action)
	}
	if res.Index != m.Offset()+2 {
		t.Errorf("Index = %d, want %d", res.Index, m.Offset()+2)
	}
	if m.SelectedIndex() != res.Index {
		t.Errorf("cursor %d should follow the click %d", m.SelectedIndex(), res.Index)
	}
}

func TestUpdate_ClickOutsideRows(t *testing.T) {
	m := newList(2, 4)

	for _, y := range []int{4, 8, 9} { // above, past items, past viewport
		res := m.Update(click(y), 5)
		if res.Action != ActionNone {
			t.Errorf("click at y=%d: %+v, want none", y, res)
		}
	}
}

func TestUpdate_Wheel(t *testing.T) {
	m := newList(20, 5)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown}, 0)
	if m.Offset() != wheelStep {
		t.Errorf("Offset() = %d, want %d", m.Offset(), wheelStep)
	}
	if m.SelectedIndex() != 0 {
		t.Errorf("wheel should not move the cursor, got %d", m.SelectedIndex())
	}
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp}, 0)
	if m.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", m.Offset())
	}
}

func TestScrollTo(t *testing.T) {
	m := newList(30, 6)

	m.ScrollTo(20)
	if m.SelectedIndex() != 20 || m.Offset() != 17 {
		t.Errorf("pos %d offset %d, want 20 17", m.SelectedIndex(), m.Offset())
	}

	m.ScrollTo(99)
	m.ScrollTo(-1)
	if m.SelectedIndex() != 20 {
		t.Errorf("out of range ScrollTo moved the cursor to %d", m.SelectedIndex())
	}
}

func TestSetItems_KeepsViewport(t *testing.T) {
	m := newList(10, 4)
	m.ScrollTo(5)
	offset := m.Offset()

	m.SetItems(append(m.Items(), 100))
	if m.Offset() != offset || m.SelectedIndex() != 5 {
		t.Errorf("growing the list moved the view: pos %d offset %d", m.SelectedIndex(), m.Offset())
	}

	m.SetItems(m.Items()[:2])
	if m.SelectedIndex() != 1 || m.Offset() != 0 {
		t.Errorf("shrinking: pos %d offset %d, want 1 0", m.SelectedIndex(), m.Offset())
	}
}

func TestItem(t *testing.T) {
	m := newList(3, 3)
	if v, ok := m.Item(2); !ok || v != 20 {
		t.Errorf("Item(2) = %d, %v", v, ok)
	}
	if _, ok := m.Item(3); ok {
		t.Error("Item(3) should not exist")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d", m.Len())
	}
}
