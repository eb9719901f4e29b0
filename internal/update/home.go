package update

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Home.FormActive {
		return m.handleHomeFormKey(msg)
	}

	switch msg.String() {
	case "e":
		m.Home.FormActive = true
		m.seedHomeForm()
		m.focusHomeField(0)
		return m, nil
	case "up", "k":
		if m.Home.Cursor > 0 {
			m.Home.Cursor--
		}
		return m, nil
	case "down", "j":
		if start, end, ok := m.State.PageRange(); ok && m.Home.Cursor < end-start {
			m.Home.Cursor++
		}
		return m, nil
	case " ", "space":
		start, _, ok := m.State.PageRange()
		if !ok {
			return m, nil
		}
		key := strconv.Itoa(start + m.Home.Cursor)
		if unit, ok := m.State.Page(key); ok {
			unit.Done = !unit.Done
			m.persist()
		}
		return m, nil
	case "enter":
		start, _, ok := m.State.PageRange()
		if !ok {
			m.Status = StatusBar{Text: "set the homework range first", IsError: true}
			return m, nil
		}
		m.ActivePage = strconv.Itoa(start + m.Home.Cursor)
		m.gotoScreen(ScreenPage)
		return m, nil
	}
	return m, nil
}

func (m Model) handleHomeFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Home.FormActive = false
		m.blurHomeForm()
		m.seedHomeForm()
		return m, nil
	case "tab":
		m.focusHomeField((m.Home.FormFocus + 1) % 3)
		return m, nil
	case "shift+tab":
		m.focusHomeField((m.Home.FormFocus + 2) % 3)
		return m, nil
	case "enter":
		return m.submitHomeForm()
	}

	var cmd tea.Cmd
	switch m.Home.FormFocus {
	case 0:
		m.bookInput, cmd = m.bookInput.Update(msg)
	case 1:
		m.startPageInput, cmd = m.startPageInput.Update(msg)
	default:
		m.endPageInput, cmd = m.endPageInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitHomeForm() (Model, tea.Cmd) {
	start, err := strconv.Atoi(strings.TrimSpace(m.startPageInput.Value()))
	if err != nil {
		m.Status = StatusBar{Text: "start page must be a number", IsError: true}
		return m, nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(m.endPageInput.Value()))
	if err != nil {
		m.Status = StatusBar{Text: "end page must be a number", IsError: true}
		return m, nil
	}
	// Range first so a rejected range leaves the book name untouched too.
	if err := m.State.SetPageRange(start, end); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.State.BookName = strings.TrimSpace(m.bookInput.Value())
	m.persist()
	m.Home.FormActive = false
	m.Home.Cursor = 0
	m.blurHomeForm()
	m.Status = StatusBar{Text: "homework range saved"}
	return m, nil
}
