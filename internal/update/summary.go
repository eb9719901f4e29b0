package update

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/storage"
)

func (m Model) handleSummaryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.CurrentScreen = ScreenHome
		return m, nil
	case "c":
		return m.copySummary()
	case "a":
		return m.archiveSummary()
	case "h":
		m.Summary.ArchiveVisible = !m.Summary.ArchiveVisible
		if m.Summary.ArchiveVisible {
			m.loadSnapshots()
		}
		return m, nil
	case "x":
		return m.deleteSelectedSnapshot()
	case "up", "k":
		if m.Summary.ArchiveVisible {
			if m.Summary.Cursor > 0 {
				m.Summary.Cursor--
			}
			return m, nil
		}
	case "down", "j":
		if m.Summary.ArchiveVisible {
			if m.Summary.Cursor < len(m.Summary.Snapshots)-1 {
				m.Summary.Cursor++
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.summaryViewport, cmd = m.summaryViewport.Update(msg)
	return m, cmd
}

func (m Model) copySummary() (Model, tea.Cmd) {
	if !m.ClipboardEnabled {
		m.Status = StatusBar{Text: "clipboard disabled", IsError: true}
		return m, nil
	}
	if err := clipboard.WriteAll(m.Summary.Text); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "clipboard error: " + err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "summary copied"}
	return m, nil
}

func (m Model) archiveSummary() (Model, tea.Cmd) {
	if m.archive == nil {
		m.Status = StatusBar{Text: "archive disabled", IsError: true}
		return m, nil
	}
	start, end, ok := m.State.PageRange()
	if !ok {
		m.Status = StatusBar{Text: "set the homework range before archiving", IsError: true}
		return m, nil
	}
	snap := storage.Snapshot{
		ID:        m.newID(),
		BookName:  m.State.BookName,
		StartPage: start,
		EndPage:   end,
		Body:      m.Summary.Text,
		CreatedAt: m.now().UTC(),
	}
	if err := m.archive.CreateSnapshot(context.Background(), snap); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "archive error: " + err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "summary archived"}
	if m.Summary.ArchiveVisible {
		m.loadSnapshots()
	}
	return m, nil
}

func (m *Model) loadSnapshots() {
	if m.archive == nil {
		return
	}
	snaps, err := m.archive.ListSnapshots(context.Background(), storage.SnapshotListFilter{Limit: 20})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "archive error: " + err.Error(), IsError: true}
		return
	}
	m.Summary.Snapshots = snaps
	if m.Summary.Cursor >= len(snaps) {
		m.Summary.Cursor = 0
	}
}

func (m Model) deleteSelectedSnapshot() (Model, tea.Cmd) {
	if m.archive == nil || !m.Summary.ArchiveVisible {
		return m, nil
	}
	if m.Summary.Cursor >= len(m.Summary.Snapshots) {
		return m, nil
	}
	id := m.Summary.Snapshots[m.Summary.Cursor].ID
	if err := m.archive.DeleteSnapshot(context.Background(), id); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "archive error: " + err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "snapshot deleted"}
	m.loadSnapshots()
	return m, nil
}
