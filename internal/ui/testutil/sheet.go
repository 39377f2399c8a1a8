package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/ui/sheet"
)

// SheetHarness wraps a sheet for testing, providing helpers to simulate
// user interactions and inspect the commands it returns.
type SheetHarness struct {
	sheet sheet.Sheet
	cmds  []tea.Cmd
}

// NewSheetHarness creates a harness and captures the sheet's init command.
func NewSheetHarness(s sheet.Sheet) *SheetHarness {
	h := &SheetHarness{sheet: s}
	if cmd := s.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Sheet returns the underlying sheet for type assertion when needed.
func (h *SheetHarness) Sheet() sheet.Sheet {
	return h.sheet
}

// SetSize runs a layout pass.
func (h *SheetHarness) SetSize(width, height int) {
	h.sheet.SetSize(width, height)
}

// View returns the sheet's rendered content without ANSI styling.
func (h *SheetHarness) View() string {
	return StripANSI(h.sheet.View())
}

// SendMsg sends any message to the sheet and returns the resulting command.
func (h *SheetHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.sheet, cmd = h.sheet.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *SheetHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows...).
func (h *SheetHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *SheetHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *SheetHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendDown sends the down arrow key.
func (h *SheetHarness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

// SendClick simulates a left click at screen coordinates.
func (h *SheetHarness) SendClick(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

// SendDrag simulates pressing at fromY, moving to toY and releasing there.
// Returns the command of the release.
func (h *SheetHarness) SendDrag(x, fromY, toY int) tea.Cmd {
	h.SendMsg(tea.MouseMsg{X: x, Y: fromY, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.SendMsg(tea.MouseMsg{X: x, Y: toY, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	return h.SendMsg(tea.MouseMsg{X: x, Y: toY, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Commands returns all commands collected since creation or ClearCommands.
func (h *SheetHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *SheetHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *SheetHarness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ViewContains checks if the sheet's view contains substr on some line.
func (h *SheetHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
