package update

import (
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/commands"
	"github.com/sandeepkv93/hwcheck/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.Blur()
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.Blur()
		return m.executePaletteCommand(input)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: "command error: " + commandErrorText(err), IsError: true}
		return m, nil
	}

	result, err := commands.Execute(cmd, commands.Handlers{
		Open:    m.openPageCommand,
		Range:   m.rangeCommand,
		Status:  m.statusCommand,
		Summary: m.summaryCommand,
		Reset:   m.resetCommand,
	})
	if err != nil {
		m.Status = StatusBar{Text: "command error: " + commandErrorText(err), IsError: true}
		return m, nil
	}

	// Handlers run against the receiver copy's pointers, so State changes
	// are visible here; screen changes are re-applied on the copy.
	switch cmd.Type {
	case commands.TypeOpen:
		m.ActivePage = strconv.Itoa(cmd.Open.Page)
		m.gotoScreen(ScreenPage)
	case commands.TypeSummary:
		m.gotoScreen(ScreenSummary)
	case commands.TypeReset:
		m.ConfirmReset = true
	}
	if result.Message != "" {
		m.Status = StatusBar{Text: result.Message}
	}
	m.syncBubbleData()
	return m, nil
}

func commandErrorText(err error) string {
	var cmdErr *commands.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	return err.Error()
}

func (m Model) openPageCommand(args commands.OpenArgs) (commands.Result, error) {
	key := strconv.Itoa(args.Page)
	if _, ok := m.State.Page(key); !ok {
		return commands.Result{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: "page not in range",
		}
	}
	return commands.Result{Message: "opened p." + key}, nil
}

func (m Model) rangeCommand(args commands.RangeArgs) (commands.Result, error) {
	unit, ok := m.activeUnit()
	if !ok {
		return commands.Result{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: "open a page first",
		}
	}
	if err := unit.ApplyProblemRange(args.Start, args.End); err != nil {
		return commands.Result{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: err.Error(),
		}
	}
	m.persist()
	return commands.Result{Message: "problem list created"}, nil
}

func (m Model) statusCommand(args commands.StatusArgs) (commands.Result, error) {
	unit, ok := m.activeUnit()
	if !ok {
		return commands.Result{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: "open a page first",
		}
	}
	pr, ok := unit.Problem(strconv.Itoa(args.Problem))
	if !ok {
		return commands.Result{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: "problem not in range",
		}
	}
	pr.Status = statusFromToken(args.Status)
	m.persist()
	return commands.Result{Message: "status updated"}, nil
}

func (m Model) summaryCommand() (commands.Result, error) {
	return commands.Result{}, nil
}

func (m Model) resetCommand() (commands.Result, error) {
	return commands.Result{}, nil
}

func statusFromToken(token string) model.Status {
	switch token {
	case "wrong":
		return model.StatusWrong
	case "fixed":
		return model.StatusFixedAfterWrong
	case "question":
		return model.StatusQuestion
	default:
		return model.StatusDone
	}
}
