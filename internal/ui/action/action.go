// Package action defines the keyed request channel UI components use to talk
// to the screen hosting them.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request or result sent by a UI component.
// ActionType returns an identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg delivers an Action under a well-known key. Hosts switch on Key to pick
// the requests they consume; unknown keys are ignored.
type Msg struct {
	Key    string
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Emit returns a command delivering a under key. The runtime runs it off the
// update loop, so the host receives it on a later Update. Each returned
// command yields exactly one message.
func Emit(key string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Key: key, Action: a}
	}
}
