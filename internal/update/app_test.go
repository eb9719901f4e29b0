package update

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/model"
	"github.com/sandeepkv93/hwcheck/internal/storage"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
		m = next
	}
	return m
}

// modelWithRange returns a model on the home list with pages 12..14 set up.
func modelWithRange(t *testing.T) Model {
	t.Helper()
	m := NewModel()
	m.State.BookName = "RPM 수학(상)"
	if err := m.State.SetPageRange(12, 14); err != nil {
		t.Fatalf("SetPageRange: %v", err)
	}
	m.Home.FormActive = false
	m.blurHomeForm()
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.CurrentScreen != ScreenHome {
		t.Fatalf("expected home screen, got %s", m.CurrentScreen)
	}
	if !m.Home.FormActive {
		t.Fatal("expected the setup form active on a fresh model")
	}
	if m.Page.Filter != FilterAll {
		t.Fatalf("expected filter All, got %s", m.Page.Filter)
	}
	if !m.ClipboardEnabled {
		t.Fatal("expected clipboard enabled by default")
	}
}

func TestHomeFormSubmitCreatesPages(t *testing.T) {
	m := NewModel()
	m.bookInput.SetValue("쎈 수학(하)")
	m.startPageInput.SetValue("14")
	m.endPageInput.SetValue("12")

	m = press(t, m, "enter")
	if m.Home.FormActive {
		t.Fatal("form should close after a successful submit")
	}
	if m.State.BookName != "쎈 수학(하)" {
		t.Fatalf("unexpected book name: %q", m.State.BookName)
	}
	start, end, ok := m.State.PageRange()
	if !ok || start != 12 || end != 14 {
		t.Fatalf("expected clamped range 12..14, got %d..%d ok=%v", start, end, ok)
	}
	if len(m.State.Pages) != 3 {
		t.Fatalf("expected 3 page units, got %d", len(m.State.Pages))
	}
}

func TestHomeFormRejectsInvalidPages(t *testing.T) {
	m := NewModel()
	m.bookInput.SetValue("book")
	m.startPageInput.SetValue("0")
	m.endPageInput.SetValue("3")

	m = press(t, m, "enter")
	if !m.Home.FormActive {
		t.Fatal("form should stay open on a rejected range")
	}
	if !m.Status.IsError {
		t.Fatal("expected an error status")
	}
	if m.State.BookName != "" {
		t.Fatalf("book name must not change on rejection, got %q", m.State.BookName)
	}
	if len(m.State.Pages) != 0 {
		t.Fatal("no page units should be created on rejection")
	}
}

func TestHomeListTogglesDoneAndOpensPage(t *testing.T) {
	m := modelWithRange(t)

	m = press(t, m, "j", "space")
	unit, ok := m.State.Page("13")
	if !ok || !unit.Done {
		t.Fatal("expected p.13 toggled done")
	}

	m = press(t, m, "enter")
	if m.CurrentScreen != ScreenPage {
		t.Fatalf("expected page screen, got %s", m.CurrentScreen)
	}
	if m.ActivePage != "13" {
		t.Fatalf("expected active page 13, got %s", m.ActivePage)
	}
}

func TestInvalidPageFallsBackToHome(t *testing.T) {
	m := modelWithRange(t)

	updated, _ := m.Update(SwitchScreenMsg{Screen: ScreenPage, Page: "99"})
	m = updated.(Model)
	if m.CurrentScreen != ScreenHome {
		t.Fatalf("expected fallback to home, got %s", m.CurrentScreen)
	}
	if !m.Status.IsError {
		t.Fatal("expected an error status on fallback")
	}
}

func TestInvalidProblemFallsBackToHome(t *testing.T) {
	m := modelWithRange(t)

	updated, _ := m.Update(SwitchScreenMsg{Screen: ScreenProblem, Page: "12", Problem: "7"})
	m = updated.(Model)
	if m.CurrentScreen != ScreenHome {
		t.Fatalf("expected fallback to home, got %s", m.CurrentScreen)
	}
}

func TestPageProblemRangeAndStatusCycle(t *testing.T) {
	m := modelWithRange(t)
	m.ActivePage = "12"
	m.gotoScreen(ScreenPage)

	m = press(t, m, "r")
	if !m.Page.FormActive {
		t.Fatal("expected the problem range form active")
	}
	m.startProblemInput.SetValue("1")
	m.endProblemInput.SetValue("3")
	m = press(t, m, "enter")
	if m.Page.FormActive {
		t.Fatal("form should close after applying the range")
	}

	unit, _ := m.State.Page("12")
	if got := len(unit.Problems); got != 3 {
		t.Fatalf("expected 3 problems, got %d", got)
	}

	m = press(t, m, "t")
	pr, _ := unit.Problem("1")
	if pr.Status != model.StatusWrong {
		t.Fatalf("expected Wrong after one cycle, got %s", pr.Status)
	}
}

func TestPageRangeRejectionKeepsForm(t *testing.T) {
	m := modelWithRange(t)
	m.ActivePage = "12"
	m.gotoScreen(ScreenPage)

	m = press(t, m, "r")
	m.startProblemInput.SetValue("1")
	m.endProblemInput.SetValue("502")
	m = press(t, m, "enter")
	if !m.Page.FormActive {
		t.Fatal("form should stay open on a rejected range")
	}
	if !m.Status.IsError {
		t.Fatal("expected an error status")
	}
	unit, _ := m.State.Page("12")
	if len(unit.Problems) != 0 {
		t.Fatal("no problems should be created on rejection")
	}
}

func TestPageFilterAndMemoSearch(t *testing.T) {
	m := modelWithRange(t)
	unit, _ := m.State.Page("12")
	if err := unit.ApplyProblemRange(1, 4); err != nil {
		t.Fatalf("ApplyProblemRange: %v", err)
	}
	setProblem := func(key string, s model.Status, memo string) {
		pr, _ := unit.Problem(key)
		pr.Status = s
		pr.Memo = memo
	}
	setProblem("2", model.StatusWrong, "")
	setProblem("3", model.StatusQuestion, "왜 이게 성립하지?")
	setProblem("4", model.StatusQuestion, "부호 실수")

	m.ActivePage = "12"
	m.gotoScreen(ScreenPage)

	m.Page.Filter = FilterWrong
	if got := m.visibleProblems(unit); len(got) != 1 || got[0] != 2 {
		t.Fatalf("wrong filter: got %v", got)
	}

	m.Page.Filter = FilterAll
	m.Page.Search = "성립"
	if got := m.visibleProblems(unit); len(got) != 1 || got[0] != 3 {
		t.Fatalf("memo search: got %v", got)
	}

	// Search narrows within the filter, so a non-question filter plus a
	// search yields nothing.
	m.Page.Filter = FilterWrong
	if got := m.visibleProblems(unit); len(got) != 0 {
		t.Fatalf("wrong filter + search should yield nothing, got %v", got)
	}

	m.Page.Filter = FilterQuestion
	if got := m.visibleProblems(unit); len(got) != 1 || got[0] != 3 {
		t.Fatalf("question filter + search: got %v", got)
	}
}

func TestProblemMemoSave(t *testing.T) {
	m := modelWithRange(t)
	unit, _ := m.State.Page("12")
	if err := unit.ApplyProblemRange(1, 2); err != nil {
		t.Fatalf("ApplyProblemRange: %v", err)
	}
	m.ActivePage = "12"
	m.ActiveProblem = "1"
	m.gotoScreen(ScreenProblem)

	m = press(t, m, "enter")
	if !m.Problem.MemoActive {
		t.Fatal("expected memo editor active")
	}
	m = press(t, m, "이차항 부호 실수")
	m = press(t, m, "esc")
	if m.Problem.MemoActive {
		t.Fatal("memo editor should close on esc")
	}
	pr, _ := unit.Problem("1")
	if pr.Memo != "이차항 부호 실수" {
		t.Fatalf("unexpected memo: %q", pr.Memo)
	}
}

func TestMemoSavedOnQuitWhileEditing(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	store := storage.NewStateStore(statePath, "")

	m := NewModelWithConfig(store, nil, DefaultRuntimeConfig())
	m.Home.FormActive = false
	m.blurHomeForm()
	m.State.BookName = "book"
	if err := m.State.SetPageRange(12, 12); err != nil {
		t.Fatalf("SetPageRange: %v", err)
	}
	unit, _ := m.State.Page("12")
	if err := unit.ApplyProblemRange(1, 1); err != nil {
		t.Fatalf("ApplyProblemRange: %v", err)
	}
	m.ActivePage = "12"
	m.ActiveProblem = "1"
	m.gotoScreen(ScreenProblem)

	m = press(t, m, "enter", "중간에 끊김", "ctrl+c")
	if !m.Quitting {
		t.Fatal("expected the model to quit")
	}
	pr, _ := unit.Problem("1")
	if pr.Memo != "중간에 끊김" {
		t.Fatalf("memo lost on quit: %q", pr.Memo)
	}

	loaded, ok := store.Load()
	if !ok {
		t.Fatal("expected a saved state on disk")
	}
	savedUnit, _ := loaded.Page("12")
	savedPr, _ := savedUnit.Problem("1")
	if savedPr.Memo != "중간에 끊김" {
		t.Fatalf("memo not persisted on quit: %q", savedPr.Memo)
	}
}

func TestSummaryScreenBuildsReport(t *testing.T) {
	m := modelWithRange(t)
	m.now = func() time.Time {
		return time.Date(2026, 8, 25, 21, 0, 0, 0, time.UTC)
	}
	unit, _ := m.State.Page("12")
	if err := unit.ApplyProblemRange(1, 2); err != nil {
		t.Fatalf("ApplyProblemRange: %v", err)
	}
	pr, _ := unit.Problem("2")
	pr.Status = model.StatusWrong

	m = press(t, m, "2")
	if m.CurrentScreen != ScreenSummary {
		t.Fatalf("expected summary screen, got %s", m.CurrentScreen)
	}
	if !strings.Contains(m.Summary.Text, "RPM 수학(상)") {
		t.Fatalf("report should name the book:\n%s", m.Summary.Text)
	}
	if !strings.Contains(m.Summary.Text, "[p.12 2번]") {
		t.Fatalf("report should tag the wrong problem:\n%s", m.Summary.Text)
	}
}

func TestResetConfirmFlow(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	store := storage.NewStateStore(statePath, "")

	m := NewModelWithConfig(store, nil, DefaultRuntimeConfig())
	m.Home.FormActive = false
	m.blurHomeForm()
	if err := m.State.SetPageRange(1, 2); err != nil {
		t.Fatalf("SetPageRange: %v", err)
	}
	m.persist()
	if _, err := os.Stat(statePath); err != nil {
		t.Fatalf("state file should exist before reset: %v", err)
	}

	m = press(t, m, "R")
	if !m.ConfirmReset {
		t.Fatal("expected the reset confirmation")
	}
	m = press(t, m, "n")
	if m.ConfirmReset {
		t.Fatal("n should cancel the confirmation")
	}
	if _, _, ok := m.State.PageRange(); !ok {
		t.Fatal("cancelled reset must keep the state")
	}

	m = press(t, m, "R", "y")
	if m.ConfirmReset {
		t.Fatal("confirmation should close after y")
	}
	if _, _, ok := m.State.PageRange(); ok {
		t.Fatal("expected a fresh state after reset")
	}
	if !m.Home.FormActive {
		t.Fatal("expected the setup form after reset")
	}
	if _, err := os.Stat(statePath); !os.IsNotExist(err) {
		t.Fatalf("state file should be removed, stat err: %v", err)
	}
}

func TestPaletteOpenCommand(t *testing.T) {
	m := modelWithRange(t)

	m = press(t, m, "/")
	if !m.Palette.Active {
		t.Fatal("expected the palette active")
	}
	m = press(t, m, "open 13", "enter")
	if m.Palette.Active {
		t.Fatal("palette should close after running a command")
	}
	if m.CurrentScreen != ScreenPage || m.ActivePage != "13" {
		t.Fatalf("expected page 13 open, got screen=%s page=%s", m.CurrentScreen, m.ActivePage)
	}
}

func TestPaletteOpenRejectsOutOfRangePage(t *testing.T) {
	m := modelWithRange(t)

	m = press(t, m, "/", "open 99", "enter")
	if m.CurrentScreen != ScreenHome {
		t.Fatalf("expected to stay home, got %s", m.CurrentScreen)
	}
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "page not in range") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestPaletteStatusCommand(t *testing.T) {
	m := modelWithRange(t)
	unit, _ := m.State.Page("12")
	if err := unit.ApplyProblemRange(1, 3); err != nil {
		t.Fatalf("ApplyProblemRange: %v", err)
	}
	m.ActivePage = "12"
	m.gotoScreen(ScreenPage)

	m = press(t, m, "/", "status 2 fixed", "enter")
	pr, _ := unit.Problem("2")
	if pr.Status != model.StatusFixedAfterWrong {
		t.Fatalf("expected FixedAfterWrong, got %s", pr.Status)
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m := modelWithRange(t)

	m = press(t, m, "/", "frobnicate", "enter")
	if !m.Status.IsError {
		t.Fatal("expected an error status for an unknown command")
	}
}

func TestSummaryArchiveFlow(t *testing.T) {
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer repo.Close()

	m := modelWithRange(t)
	m.archive = repo
	m.now = func() time.Time {
		return time.Date(2026, 8, 25, 21, 0, 0, 0, time.UTC)
	}
	m.newID = func() string { return "snap-1" }
	m.gotoScreen(ScreenSummary)

	m = press(t, m, "a")
	if m.Status.IsError {
		t.Fatalf("archive failed: %s", m.Status.Text)
	}
	snap, err := repo.GetSnapshot(context.Background(), "snap-1")
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snap.BookName != "RPM 수학(상)" || snap.StartPage != 12 || snap.EndPage != 14 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	m = press(t, m, "h")
	if !m.Summary.ArchiveVisible || len(m.Summary.Snapshots) != 1 {
		t.Fatalf("expected one visible snapshot, got %d", len(m.Summary.Snapshots))
	}

	m = press(t, m, "x")
	if len(m.Summary.Snapshots) != 0 {
		t.Fatal("expected the snapshot deleted")
	}
}

func TestArchiveDisabledWithoutRepository(t *testing.T) {
	m := modelWithRange(t)
	m.gotoScreen(ScreenSummary)

	m = press(t, m, "a")
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "archive disabled") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}
