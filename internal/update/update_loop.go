package update

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/model"
	"github.com/sandeepkv93/hwcheck/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case SwitchScreenMsg:
		if msg.Page != "" {
			m.ActivePage = msg.Page
		}
		if msg.Problem != "" {
			m.ActiveProblem = msg.Problem
		}
		if isKnownScreen(msg.Screen) {
			m.gotoScreen(msg.Screen)
		} else {
			m.gotoScreen(ScreenHome)
		}
		m.syncBubbleData()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: msg.Text, IsError: msg.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = msg.Err
		m.Status = StatusBar{Text: "error: " + msg.Err.Error(), IsError: true}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		// An open memo editor still holds unsaved text at this point.
		if m.Problem.MemoActive {
			if pr, ok := m.activeProblem(); ok {
				m.saveMemo(pr)
			}
		}
		m.Quitting = true
		return m, tea.Quit
	}
	if m.ConfirmReset {
		return m.handleResetConfirmKey(msg)
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.capturingInput() {
		next, cmd := m.handleScreenKey(msg)
		next.syncBubbleData()
		return next, cmd
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Home:
		m.gotoScreen(ScreenHome)
		m.syncBubbleData()
		return m, nil
	case m.Keys.Summary:
		m.gotoScreen(ScreenSummary)
		m.syncBubbleData()
		return m, nil
	case m.Keys.Reset:
		m.ConfirmReset = true
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	next, cmd := m.handleScreenKey(msg)
	next.syncBubbleData()
	return next, cmd
}

// capturingInput reports whether a text control owns the keyboard, in
// which case global shortcuts must not fire.
func (m Model) capturingInput() bool {
	switch m.CurrentScreen {
	case ScreenHome:
		return m.Home.FormActive
	case ScreenPage:
		return m.Page.FormActive || m.Page.SearchActive
	case ScreenProblem:
		return m.Problem.MemoActive
	default:
		return false
	}
}

func (m Model) handleScreenKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.CurrentScreen {
	case ScreenHome:
		return m.handleHomeKey(msg)
	case ScreenPage:
		return m.handlePageKey(msg)
	case ScreenProblem:
		return m.handleProblemKey(msg)
	case ScreenSummary:
		return m.handleSummaryKey(msg)
	default:
		m.gotoScreen(ScreenHome)
		return m, nil
	}
}

func (m Model) handleResetConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.store != nil {
			if err := m.store.Reset(); err != nil {
				m.ConfirmReset = false
				m.LastError = err
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
		}
		m.State = model.NewAppState()
		m.Home = HomeState{FormActive: true}
		m.Page = PageState{Filter: FilterAll}
		m.Problem = ProblemState{}
		m.Summary = SummaryState{}
		m.ActivePage = ""
		m.ActiveProblem = ""
		m.ConfirmReset = false
		m.Status = StatusBar{Text: "all records deleted"}
		m.seedHomeForm()
		m.gotoScreen(ScreenHome)
		m.syncBubbleData()
		return m, nil
	case "n", "N", "esc":
		m.ConfirmReset = false
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}

	var left string
	right := ""
	switch m.CurrentScreen {
	case ScreenHome:
		left = views.RenderHomePanel(m.homePanelData())
	case ScreenPage:
		left = views.RenderPagePanel(m.pagePanelData())
	case ScreenProblem:
		left = views.RenderProblemPanel(m.problemPanelData())
		right = views.RenderMemoPreview(m.memoViewport.View())
	case ScreenSummary:
		left = views.RenderSummaryPanel(m.summaryPanelData())
		right = views.RenderSnapshotList(m.summaryPanelData())
	}

	if m.ConfirmReset {
		right = views.RenderResetConfirm(true)
	} else if m.Palette.Active {
		right = views.RenderCommandPalette(true, m.commandInput.Value()) + "\n" + right
	}
	if m.HelpVisible {
		right = m.renderHelp()
	}

	header := fmt.Sprintf("hwcheck | screen: %s | page: %s | problem: %s",
		m.CurrentScreen, orDash(m.ActivePage), orDash(m.ActiveProblem))
	footer := "[1] home  [2] summary  [/] command  [R] reset  [?] help  [q] quit"

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   left,
		RightPane:  right,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     footer,
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (m Model) homePanelData() views.HomePanelData {
	data := views.HomePanelData{
		FormActive:     m.Home.FormActive,
		BookInputView:  m.bookInput.View(),
		StartInputView: m.startPageInput.View(),
		EndInputView:   m.endPageInput.View(),
		Notice:         m.Home.Notice,
	}
	start, end, ok := m.State.PageRange()
	if !ok {
		return data
	}
	data.RangeSet = true
	data.DoneCount, data.TotalCount = m.State.Progress()
	if data.TotalCount > 0 {
		data.ProgressView = m.pageProgress.ViewAs(float64(data.DoneCount) / float64(data.TotalCount))
	}
	for p := start; p <= end; p++ {
		unit, ok := m.State.Page(strconv.Itoa(p))
		if !ok {
			continue
		}
		data.Pages = append(data.Pages, views.PageRowData{
			Number:       p,
			Done:         unit.Done,
			RangeCaption: problemRangeCaption(unit),
			Selected:     p-start == m.Home.Cursor,
		})
	}
	return data
}

func (m Model) pagePanelData() views.PagePanelData {
	unit, ok := m.activeUnit()
	if !ok {
		return views.PagePanelData{}
	}
	num, _ := strconv.Atoi(m.ActivePage)
	data := views.PagePanelData{
		PageNumber:     num,
		Done:           unit.Done,
		RangeCaption:   problemRangeCaption(unit),
		FormActive:     m.Page.FormActive,
		StartInputView: m.startProblemInput.View(),
		EndInputView:   m.endProblemInput.View(),
		Filter:         string(m.Page.Filter),
		SearchActive:   m.Page.SearchActive,
		SearchView:     m.searchInput.View(),
		HasRange:       unit.StartProblem != nil && unit.EndProblem != nil,
	}
	for i, n := range m.visibleProblems(unit) {
		pr, ok := unit.Problem(strconv.Itoa(n))
		if !ok {
			continue
		}
		data.Problems = append(data.Problems, views.ProblemRowData{
			Number:      n,
			StatusIcon:  statusIcon(pr.Status),
			StatusLabel: statusLabel(pr.Status),
			HasMemo:     pr.Memo != "",
			Selected:    i == m.Page.Cursor,
		})
	}
	return data
}

func (m Model) problemPanelData() views.ProblemPanelData {
	pr, ok := m.activeProblem()
	if !ok {
		return views.ProblemPanelData{}
	}
	page, _ := strconv.Atoi(m.ActivePage)
	num, _ := strconv.Atoi(m.ActiveProblem)
	return views.ProblemPanelData{
		PageNumber:     page,
		Number:         num,
		StatusIcon:     statusIcon(pr.Status),
		StatusLabel:    statusLabel(pr.Status),
		MemoActive:     m.Problem.MemoActive,
		MemoEditorView: m.memoArea.View(),
	}
}

func (m Model) summaryPanelData() views.SummaryPanelData {
	data := views.SummaryPanelData{
		ViewportView:   m.summaryViewport.View(),
		ArchiveEnabled: m.archive != nil,
		ArchiveVisible: m.Summary.ArchiveVisible,
	}
	for i, snap := range m.Summary.Snapshots {
		data.Snapshots = append(data.Snapshots, views.SnapshotRowData{
			CreatedAt: snap.CreatedAt.Local().Format("2006-01-02 15:04"),
			BookName:  snap.BookName,
			StartPage: snap.StartPage,
			EndPage:   snap.EndPage,
			Selected:  i == m.Summary.Cursor,
		})
	}
	return data
}
