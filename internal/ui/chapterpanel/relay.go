package chapterpanel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/ui/action"
)

// SeekRequestKey is the name hosts listen on for seek requests.
const SeekRequestKey = "seek_to_position_request_key"

// PassthroughKey carries keys the panel does not use, so the host can keep
// handling its own shortcuts (play/pause...) while the panel is open.
const PassthroughKey = "chapter_sheet_passthrough"

// SeekRequest asks the host to move playback to Position.
type SeekRequest struct {
	Position time.Duration
}

// ActionType implements action.Action.
func (SeekRequest) ActionType() string { return "chapterpanel.seek" }

// Passthrough wraps a key the panel did not handle.
type Passthrough struct {
	Key tea.KeyMsg
}

// ActionType implements action.Action.
func (Passthrough) ActionType() string { return "chapterpanel.passthrough" }

var (
	_ action.Action = SeekRequest{}
	_ action.Action = Passthrough{}
)

// RequestSeek returns a command delivering one seek request to the host.
// Each call is an independent request; nothing is returned once the panel
// is dismissed.
func (m *Model) RequestSeek(position time.Duration) tea.Cmd {
	if m.binding == nil {
		return nil
	}
	m.log.Debug("seek requested", "position", position)
	return action.Emit(SeekRequestKey, SeekRequest{Position: position})
}

func (m *Model) passthrough(msg tea.KeyMsg) tea.Cmd {
	return action.Emit(PassthroughKey, Passthrough{Key: msg})
}
