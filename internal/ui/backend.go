package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fermata-io/menunav/internal/backend"
	"github.com/fermata-io/menunav/internal/menu"
)

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// waitForBackendEvent blocks on the watcher channel and surfaces the next
// poll result as a Bubble Tea message.
func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: event}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	result := m.dispatcher.Handle(eventMsg.event)
	if result.RecentUpdated {
		m.refreshOpenRecent()
	}
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	return nil
}

// refreshOpenRecent rebuilds the Open Recent submenu from the current recent
// entries. The first nine entries get digit mnemonics.
func (m *Model) refreshOpenRecent() {
	entries := m.recents.Entries()
	if len(entries) > m.recentMax {
		entries = entries[:m.recentMax]
	}
	items := make([]menu.Item, 0, len(entries))
	for i, entry := range entries {
		title := filepath.Base(entry.Path)
		if i < 9 {
			title = fmt.Sprintf("&%d %s", i+1, title)
		}
		items = append(items, menu.Item{
			ID:     recentIDPrefix + entry.Path,
			Title:  title,
			Action: "file-open-recent",
		})
	}
	m.menus.SetSubitems(menu.OpenRecentID, items)
}
