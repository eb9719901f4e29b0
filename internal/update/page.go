package update

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/model"
)

func (m Model) handlePageKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	unit, ok := m.activeUnit()
	if !ok {
		m.gotoScreen(ScreenHome)
		return m, nil
	}
	if m.Page.FormActive {
		return m.handlePageFormKey(msg, unit)
	}
	if m.Page.SearchActive {
		return m.handlePageSearchKey(msg)
	}

	visible := m.visibleProblems(unit)
	switch msg.String() {
	case "esc", "backspace":
		m.CurrentScreen = ScreenHome
		return m, nil
	case "d":
		unit.Done = !unit.Done
		m.persist()
		return m, nil
	case "r":
		m.Page.FormActive = true
		m.Page.FormFocus = 0
		m.seedPageForm()
		m.startProblemInput.Focus()
		m.endProblemInput.Blur()
		return m, nil
	case "f":
		m.Page.Filter = nextFilter(m.Page.Filter)
		m.Page.Cursor = 0
		return m, nil
	case "s":
		m.Page.SearchActive = true
		m.searchInput.SetValue(m.Page.Search)
		m.searchInput.Focus()
		return m, nil
	case "up", "k":
		if m.Page.Cursor > 0 {
			m.Page.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Page.Cursor < len(visible)-1 {
			m.Page.Cursor++
		}
		return m, nil
	case "t":
		if m.Page.Cursor < len(visible) {
			key := strconv.Itoa(visible[m.Page.Cursor])
			if pr, ok := unit.Problem(key); ok {
				pr.Status = model.NextStatus(pr.Status)
				m.persist()
			}
		}
		return m, nil
	case "enter":
		if m.Page.Cursor < len(visible) {
			m.ActiveProblem = strconv.Itoa(visible[m.Page.Cursor])
			m.gotoScreen(ScreenProblem)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handlePageFormKey(msg tea.KeyMsg, unit *model.PageUnit) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Page.FormActive = false
		m.startProblemInput.Blur()
		m.endProblemInput.Blur()
		m.seedPageForm()
		return m, nil
	case "tab", "shift+tab":
		m.Page.FormFocus = 1 - m.Page.FormFocus
		if m.Page.FormFocus == 0 {
			m.startProblemInput.Focus()
			m.endProblemInput.Blur()
		} else {
			m.startProblemInput.Blur()
			m.endProblemInput.Focus()
		}
		return m, nil
	case "enter":
		return m.applyProblemRangeForm(unit)
	}

	var cmd tea.Cmd
	if m.Page.FormFocus == 0 {
		m.startProblemInput, cmd = m.startProblemInput.Update(msg)
	} else {
		m.endProblemInput, cmd = m.endProblemInput.Update(msg)
	}
	return m, cmd
}

func (m Model) applyProblemRangeForm(unit *model.PageUnit) (Model, tea.Cmd) {
	start, err := strconv.Atoi(strings.TrimSpace(m.startProblemInput.Value()))
	if err != nil {
		m.Status = StatusBar{Text: "start problem must be a number", IsError: true}
		return m, nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(m.endProblemInput.Value()))
	if err != nil {
		m.Status = StatusBar{Text: "end problem must be a number", IsError: true}
		return m, nil
	}
	if err := unit.ApplyProblemRange(start, end); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.persist()
	m.Page.FormActive = false
	m.Page.Cursor = 0
	m.startProblemInput.Blur()
	m.endProblemInput.Blur()
	m.Status = StatusBar{Text: "problem list created"}
	return m, nil
}

func (m Model) handlePageSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.Page.SearchActive = false
		m.searchInput.Blur()
		m.Page.Cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.Page.Search = m.searchInput.Value()
	return m, cmd
}

// visibleProblems applies the status filter first and the memo search on
// top of it. The search only ever matches question problems, so a
// non-question filter combined with a search yields nothing.
func (m Model) visibleProblems(unit *model.PageUnit) []int {
	search := strings.TrimSpace(m.Page.Search)
	var out []int
	for _, n := range unit.SortedProblemNumbers() {
		pr, ok := unit.Problem(strconv.Itoa(n))
		if !ok {
			continue
		}
		if want, narrow := statusForFilter(m.Page.Filter); narrow && pr.Status != want {
			continue
		}
		if search != "" {
			if pr.Status != model.StatusQuestion || !strings.Contains(pr.Memo, search) {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func statusForFilter(f ProblemFilter) (model.Status, bool) {
	switch f {
	case FilterWrong:
		return model.StatusWrong, true
	case FilterFixed:
		return model.StatusFixedAfterWrong, true
	case FilterQuestion:
		return model.StatusQuestion, true
	default:
		return "", false
	}
}

func nextFilter(f ProblemFilter) ProblemFilter {
	switch f {
	case FilterAll:
		return FilterWrong
	case FilterWrong:
		return FilterFixed
	case FilterFixed:
		return FilterQuestion
	default:
		return FilterAll
	}
}
