// Package keymap defines key bindings and action dispatch for the application.
package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chapters/internal/ui/styles"
)

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionChapters Action = "chapters"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionPrevChapter Action = "prev_chapter"
	ActionNextChapter Action = "next_chapter"

	// Chapter sheet actions
	ActionSeekToChapter Action = "seek_to_chapter"
	ActionCloseSheet    Action = "close_sheet"
	ActionScroll        Action = "scroll"
)

// Binding describes a key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "chapters"
}

// All contains all key bindings, in help display order.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionChapters, []string{"c"}, "chapters", "global"},

	{ActionPlayPause, []string{" "}, "play/pause", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "-step", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "+step", "playback"},
	{ActionPrevChapter, []string{"["}, "prev chapter", "playback"},
	{ActionNextChapter, []string{"]"}, "next chapter", "playback"},

	{ActionSeekToChapter, []string{"enter"}, "seek", "chapters"},
	{ActionScroll, []string{"j", "k"}, "scroll", "chapters"},
	{ActionCloseSheet, []string{"esc", "q"}, "close", "chapters"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key returns the binding as a bubbles key binding, with its help text.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(keyLabel(b.Keys), b.Description),
	)
}

// Hints renders the bindings of the given contexts as a one-line key help,
// e.g. "enter seek · j/k scroll · esc/q close".
func Hints(contexts ...string) string {
	return HintsWidth(0, contexts...)
}

// HintsWidth is Hints cut to width columns (0 means no limit).
func HintsWidth(width int, contexts ...string) string {
	var bindings []key.Binding
	for _, ctx := range contexts {
		for _, kb := range ByContext(ctx) {
			bindings = append(bindings, kb.Key())
		}
	}
	return newHelp(width).ShortHelpView(bindings)
}

func newHelp(width int) help.Model {
	t := styles.T()
	h := help.New()
	h.Width = max(width, 0)
	h.ShortSeparator = " · "
	h.Ellipsis = "…"
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.FgBase)
	h.Styles.ShortDesc = t.S().Muted
	h.Styles.ShortSeparator = t.S().Subtle
	h.Styles.Ellipsis = t.S().Subtle
	return h
}

func keyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}
