package chapterpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/chapters"
)

// StoreEventMsg carries a store notification to the panel that observes it.
type StoreEventMsg struct {
	Event chapters.Event
	sub   *chapters.Subscription
}

// storeClosedMsg is returned by a pending wait once observation stopped.
type storeClosedMsg struct {
	sub *chapters.Subscription
}

// waitForStore returns a command that blocks until the next store event or
// until the subscription is torn down.
func waitForStore(sub *chapters.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.Events:
			return StoreEventMsg{Event: e, sub: sub}
		case <-sub.Done:
			return storeClosedMsg{sub: sub}
		}
	}
}
