package update

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"
	"github.com/sandeepkv93/hwcheck/internal/model"
	"github.com/sandeepkv93/hwcheck/internal/storage"
	"github.com/sandeepkv93/hwcheck/internal/summary"
	"github.com/sandeepkv93/hwcheck/internal/views"
)

type Screen string

const (
	ScreenHome    Screen = "Home"
	ScreenPage    Screen = "Page"
	ScreenProblem Screen = "Problem"
	ScreenSummary Screen = "Summary"
)

type ProblemFilter string

const (
	FilterAll      ProblemFilter = "All"
	FilterWrong    ProblemFilter = "Wrong"
	FilterFixed    ProblemFilter = "Fixed"
	FilterQuestion ProblemFilter = "Question"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home    string
	Summary string
	Reset   string
	Help    string
	Quit    string
}

type HomeState struct {
	FormActive bool
	FormFocus  int
	Cursor     int
	Notice     string
}

type PageState struct {
	FormActive   bool
	FormFocus    int
	Cursor       int
	Filter       ProblemFilter
	SearchActive bool
	Search       string
}

type ProblemState struct {
	MemoActive bool
}

type SummaryState struct {
	Text           string
	ArchiveVisible bool
	Snapshots      []storage.Snapshot
	Cursor         int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentScreen Screen
	ActivePage    string
	ActiveProblem string
	State         *model.AppState
	Home          HomeState
	Page          PageState
	Problem       ProblemState
	Summary       SummaryState
	Palette       CommandPaletteState
	ConfirmReset  bool
	HelpVisible   bool
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ClipboardEnabled bool

	store   *storage.StateStore
	archive storage.Repository
	now     func() time.Time
	newID   func() string

	// Bubble components used for the form controls
	bookInput         textinput.Model
	startPageInput    textinput.Model
	endPageInput      textinput.Model
	startProblemInput textinput.Model
	endProblemInput   textinput.Model
	searchInput       textinput.Model
	commandInput      textinput.Model
	memoArea          textarea.Model
	pageProgress      progress.Model
	summaryViewport   viewport.Model
	memoViewport      viewport.Model
	helpModel         help.Model
}

type SwitchScreenMsg struct {
	Screen  Screen
	Page    string
	Problem string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	m := Model{
		CurrentScreen: ScreenHome,
		State:         model.NewAppState(),
		Home:          HomeState{FormActive: true},
		Page:          PageState{Filter: FilterAll},
		Keys: GlobalKeyMap{
			Home:    "1",
			Summary: "2",
			Reset:   "R",
			Help:    "?",
			Quit:    "q",
		},
		ClipboardEnabled: true,
		now:              time.Now,
		newID:            uuid.NewString,
	}
	m.initBubbleComponents()
	m.seedHomeForm()
	m.syncBubbleData()
	return m
}

// NewModelWithStore attaches the JSON state store and hydrates any
// previously saved record.
func NewModelWithStore(store *storage.StateStore) Model {
	return NewModelWithConfig(store, nil, DefaultRuntimeConfig())
}

func NewModelWithConfig(store *storage.StateStore, archive storage.Repository, cfg RuntimeConfig) Model {
	m := NewModel()
	m.store = store
	m.archive = archive
	m.ClipboardEnabled = cfg.ClipboardEnabled
	if store != nil {
		if state, ok := store.Load(); ok {
			m.State = state
			m.State.EnsurePages()
			m.Home.FormActive = false
			m.Home.Notice = "previous record loaded ([R] to reset)"
			m.blurHomeForm()
		}
	}
	m.seedHomeForm()
	m.syncBubbleData()
	return m
}

// persist saves the whole state after a mutation. Save failures surface in
// the status bar but never abort the interaction.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.State); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
}

// gotoScreen validates the navigation target. A missing page or problem
// key falls back to Home instead of failing.
func (m *Model) gotoScreen(s Screen) {
	switch s {
	case ScreenPage:
		if _, ok := m.State.Page(m.ActivePage); !ok {
			m.CurrentScreen = ScreenHome
			m.Status = StatusBar{Text: "page not found, back to home", IsError: true}
			return
		}
		m.Page.Cursor = 0
		m.seedPageForm()
		m.CurrentScreen = ScreenPage
	case ScreenProblem:
		unit, ok := m.State.Page(m.ActivePage)
		if !ok {
			m.CurrentScreen = ScreenHome
			m.Status = StatusBar{Text: "page not found, back to home", IsError: true}
			return
		}
		if _, ok := unit.Problem(m.ActiveProblem); !ok {
			m.CurrentScreen = ScreenHome
			m.Status = StatusBar{Text: "problem not found, back to home", IsError: true}
			return
		}
		m.seedMemoArea()
		m.CurrentScreen = ScreenProblem
	case ScreenSummary:
		m.Summary.Text = summary.Build(m.State, m.now())
		m.Summary.Cursor = 0
		m.CurrentScreen = ScreenSummary
	default:
		m.CurrentScreen = ScreenHome
	}
}

func isKnownScreen(s Screen) bool {
	switch s {
	case ScreenHome, ScreenPage, ScreenProblem, ScreenSummary:
		return true
	default:
		return false
	}
}

func (m *Model) initBubbleComponents() {
	m.bookInput = textinput.New()
	m.bookInput.Placeholder = "RPM 수학(상)"
	m.bookInput.CharLimit = 64
	m.bookInput.Width = 24

	m.startPageInput = textinput.New()
	m.startPageInput.Placeholder = "1"
	m.startPageInput.CharLimit = 4
	m.startPageInput.Width = 6

	m.endPageInput = textinput.New()
	m.endPageInput.Placeholder = "1"
	m.endPageInput.CharLimit = 4
	m.endPageInput.Width = 6

	m.startProblemInput = textinput.New()
	m.startProblemInput.Placeholder = "1"
	m.startProblemInput.CharLimit = 4
	m.startProblemInput.Width = 6

	m.endProblemInput = textinput.New()
	m.endProblemInput.Placeholder = "1"
	m.endProblemInput.CharLimit = 4
	m.endProblemInput.Width = 6

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 64
	m.searchInput.Width = 20

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.memoArea = textarea.New()
	m.memoArea.SetWidth(54)
	m.memoArea.SetHeight(8)
	m.memoArea.ShowLineNumbers = false
	m.memoArea.Placeholder = "질문/풀이/실수 포인트"

	m.pageProgress = progress.New(progress.WithDefaultGradient())
	m.summaryViewport = viewport.New(54, 14)
	m.memoViewport = viewport.New(54, 8)
	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	if m.CurrentScreen == ScreenSummary {
		m.summaryViewport.SetContent(m.Summary.Text)
	}
	if m.CurrentScreen == ScreenProblem {
		memo := m.memoArea.Value()
		if !m.Problem.MemoActive {
			if pr, ok := m.activeProblem(); ok {
				memo = pr.Memo
			}
		}
		m.memoViewport.SetContent(views.RenderMarkdown(memo))
	}
}

func (m *Model) seedHomeForm() {
	m.bookInput.SetValue(m.State.BookName)
	if m.State.StartPage != nil {
		m.startPageInput.SetValue(strconv.Itoa(*m.State.StartPage))
	} else {
		m.startPageInput.SetValue("")
	}
	if m.State.EndPage != nil {
		m.endPageInput.SetValue(strconv.Itoa(*m.State.EndPage))
	} else {
		m.endPageInput.SetValue("")
	}
	if m.Home.FormActive {
		m.focusHomeField(m.Home.FormFocus)
	}
}

func (m *Model) seedPageForm() {
	unit, ok := m.State.Page(m.ActivePage)
	if !ok {
		return
	}
	if unit.StartProblem != nil {
		m.startProblemInput.SetValue(strconv.Itoa(*unit.StartProblem))
	} else {
		m.startProblemInput.SetValue("")
	}
	if unit.EndProblem != nil {
		m.endProblemInput.SetValue(strconv.Itoa(*unit.EndProblem))
	} else {
		m.endProblemInput.SetValue("")
	}
}

func (m *Model) seedMemoArea() {
	if pr, ok := m.activeProblem(); ok {
		m.memoArea.SetValue(pr.Memo)
	}
}

func (m *Model) focusHomeField(idx int) {
	m.Home.FormFocus = idx
	m.bookInput.Blur()
	m.startPageInput.Blur()
	m.endPageInput.Blur()
	switch idx {
	case 0:
		m.bookInput.Focus()
	case 1:
		m.startPageInput.Focus()
	default:
		m.endPageInput.Focus()
	}
}

func (m *Model) blurHomeForm() {
	m.bookInput.Blur()
	m.startPageInput.Blur()
	m.endPageInput.Blur()
}

func (m *Model) activeUnit() (*model.PageUnit, bool) {
	return m.State.Page(m.ActivePage)
}

func (m *Model) activeProblem() (*model.Problem, bool) {
	unit, ok := m.activeUnit()
	if !ok {
		return nil, false
	}
	return unit.Problem(m.ActiveProblem)
}
