package chapterpanel

// Phase is a step of the panel lifecycle. Phases only move forward.
type Phase int

const (
	PhaseOpening    Phase = iota // created, not laid out yet
	PhaseShown                   // laid out, scrolled to the current chapter
	PhaseDismissing              // tearing down
	PhaseDismissed               // terminal; the view binding is released
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseShown:
		return "shown"
	case PhaseDismissing:
		return "dismissing"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// DismissListener is implemented by the screen hosting the panel.
type DismissListener interface {
	OnPanelDismissed()
}

// DismissFunc adapts a function to DismissListener.
type DismissFunc func()

// OnPanelDismissed implements DismissListener.
func (f DismissFunc) OnPanelDismissed() { f() }

// Dismiss reasons, for logs.
const (
	reasonHost    = "host"
	reasonKey     = "key"
	reasonDrag    = "drag"
	reasonOutside = "outside"
)

// dismiss runs Dismissing -> Dismissed: store observation stops, the view
// binding is released and the host is told, in that order. Re-entrant calls
// (e.g. the listener closing the panel again) are no-ops.
func (m *Model) dismiss(reason string) {
	if m.phase >= PhaseDismissing {
		return
	}
	m.phase = PhaseDismissing
	m.log.Debug("dismissing", "reason", reason)

	m.store.Unsubscribe(m.sub)
	m.layout.clear()
	m.binding = nil
	m.drag = dragState{}

	m.phase = PhaseDismissed
	if m.listener != nil {
		m.listener.OnPanelDismissed()
	}
}

// Close asks the panel to dismiss itself. Safe to call in any phase.
func (m *Model) Close() {
	m.dismiss(reasonHost)
}

// Phase returns the lifecycle phase.
func (m *Model) Phase() Phase {
	return m.phase
}

// Dismissed reports whether the panel reached its terminal phase.
func (m *Model) Dismissed() bool {
	return m.phase == PhaseDismissed
}
