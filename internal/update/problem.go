package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/model"
)

func (m Model) handleProblemKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	pr, ok := m.activeProblem()
	if !ok {
		m.gotoScreen(ScreenHome)
		return m, nil
	}
	if m.Problem.MemoActive {
		return m.handleMemoKey(msg, pr)
	}

	switch msg.String() {
	case "esc", "backspace":
		m.gotoScreen(ScreenPage)
		return m, nil
	case "t":
		pr.Status = model.NextStatus(pr.Status)
		m.persist()
		return m, nil
	case "enter", "m":
		m.Problem.MemoActive = true
		m.seedMemoArea()
		m.memoArea.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleMemoKey(msg tea.KeyMsg, pr *model.Problem) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.Problem.MemoActive = false
		m.memoArea.Blur()
		if m.saveMemo(pr) {
			m.Status = StatusBar{Text: "memo saved"}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.memoArea, cmd = m.memoArea.Update(msg)
	return m, cmd
}

// saveMemo writes the editor content back to the problem when it changed.
func (m *Model) saveMemo(pr *model.Problem) bool {
	memo := m.memoArea.Value()
	if memo == pr.Memo {
		return false
	}
	pr.Memo = memo
	m.persist()
	return true
}
