package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/hwcheck/internal/views"
)

func globalBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "summary")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m Model) screenBindings() []string {
	switch m.CurrentScreen {
	case ScreenHome:
		return []string{
			"e: edit book and page range",
			"j/k: move  space: toggle page done",
			"enter: open page",
		}
	case ScreenPage:
		return []string{
			"d: toggle page done  r: edit problem range",
			"f: cycle status filter  s: memo search",
			"j/k: move  t: cycle status  enter: open problem",
		}
	case ScreenProblem:
		return []string{
			"t: cycle status  enter: edit memo",
			"esc: back to page",
		}
	case ScreenSummary:
		return []string{
			"c: copy to clipboard  a: archive",
			"h: toggle history  x: delete snapshot",
		}
	default:
		return nil
	}
}

func (m Model) renderHelp() string {
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentScreen: string(m.CurrentScreen),
		Bindings:      m.screenBindings(),
		HelpView:      m.helpModel.ShortHelpView(globalBindings()),
	})
}
