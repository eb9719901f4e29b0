package views

import (
	"fmt"
	"strings"
)

type PageRowData struct {
	Number       int
	Done         bool
	RangeCaption string
	Selected     bool
}

type HomePanelData struct {
	FormActive     bool
	BookInputView  string
	StartInputView string
	EndInputView   string
	Notice         string
	RangeSet       bool
	DoneCount      int
	TotalCount     int
	ProgressView   string
	Pages          []PageRowData
}

type ProblemRowData struct {
	Number      int
	StatusIcon  string
	StatusLabel string
	HasMemo     bool
	Selected    bool
}

type PagePanelData struct {
	PageNumber     int
	Done           bool
	RangeCaption   string
	FormActive     bool
	StartInputView string
	EndInputView   string
	Filter         string
	SearchActive   bool
	SearchView     string
	HasRange       bool
	Problems       []ProblemRowData
}

type ProblemPanelData struct {
	PageNumber     int
	Number         int
	StatusIcon     string
	StatusLabel    string
	MemoActive     bool
	MemoEditorView string
}

type SnapshotRowData struct {
	CreatedAt string
	BookName  string
	StartPage int
	EndPage   int
	Selected  bool
}

type SummaryPanelData struct {
	ViewportView   string
	ArchiveEnabled bool
	ArchiveVisible bool
	Snapshots      []SnapshotRowData
}

type HelpPanelData struct {
	CurrentScreen string
	Bindings      []string
	HelpView      string
}

func RenderHomePanel(data HomePanelData) string {
	var b strings.Builder
	b.WriteString("home:\n")
	if data.Notice != "" {
		b.WriteString("notice: " + data.Notice + "\n")
	}
	if data.FormActive {
		b.WriteString("setup (tab to move, enter to save, esc to cancel):\n")
	} else {
		b.WriteString("setup ([e] edit):\n")
	}
	b.WriteString("book: " + data.BookInputView + "\n")
	b.WriteString("pages: " + data.StartInputView + " ~ " + data.EndInputView + "\n")

	if !data.RangeSet {
		b.WriteString("\n(set the homework page range first)")
		return strings.TrimSpace(b.String())
	}

	b.WriteString(fmt.Sprintf("\nprogress: %d/%d pages done %s\n", data.DoneCount, data.TotalCount, data.ProgressView))
	b.WriteString("pages ([j/k] move, [space] done, [enter] open):\n")
	for _, row := range data.Pages {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if row.Done {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s p.%d  %s\n", cursor, check, row.Number, row.RangeCaption))
	}
	return strings.TrimSpace(b.String())
}

func RenderPagePanel(data PagePanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("page p.%d:\n", data.PageNumber))
	check := "[ ]"
	if data.Done {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s page done ([d] toggle)  %s\n", check, data.RangeCaption))

	if data.FormActive {
		b.WriteString("problem range (tab to move, enter to apply, esc to cancel):\n")
		b.WriteString("problems: " + data.StartInputView + " ~ " + data.EndInputView + "\n")
	} else {
		b.WriteString("problem range ([r] edit)\n")
	}

	b.WriteString(fmt.Sprintf("filter: %s ([f] cycle)", data.Filter))
	if data.SearchActive {
		b.WriteString("  search: " + data.SearchView)
	} else {
		b.WriteString("  ([s] memo search)")
	}
	b.WriteString("\n")

	if !data.HasRange {
		b.WriteString("\n(apply a problem range to create the problem list)")
		return strings.TrimSpace(b.String())
	}
	if len(data.Problems) == 0 {
		b.WriteString("\n(no problems match the filter)")
		return strings.TrimSpace(b.String())
	}

	b.WriteString("problems ([j/k] move, [t] status, [enter] memo):\n")
	for _, row := range data.Problems {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		memo := ""
		if row.HasMemo {
			memo = " 📝"
		}
		b.WriteString(fmt.Sprintf("%s %d번 %s %s%s\n", cursor, row.Number, row.StatusIcon, row.StatusLabel, memo))
	}
	return strings.TrimSpace(b.String())
}

func RenderProblemPanel(data ProblemPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("problem p.%d / %d번:\n", data.PageNumber, data.Number))
	b.WriteString(fmt.Sprintf("status: %s %s ([t] cycle)\n", data.StatusIcon, data.StatusLabel))
	if data.MemoActive {
		b.WriteString("memo (esc to save):\n")
	} else {
		b.WriteString("memo ([enter] edit):\n")
	}
	b.WriteString(data.MemoEditorView)
	return strings.TrimSpace(b.String())
}

func RenderMemoPreview(previewView string) string {
	if strings.TrimSpace(previewView) == "" {
		return "memo-preview:\n(no memo)"
	}
	return "memo-preview:\n" + previewView
}

func RenderSummaryPanel(data SummaryPanelData) string {
	var b strings.Builder
	b.WriteString("summary ([c] copy")
	if data.ArchiveEnabled {
		b.WriteString(", [a] archive, [h] history")
	}
	b.WriteString("):\n")
	b.WriteString(data.ViewportView)
	return strings.TrimSpace(b.String())
}

func RenderSnapshotList(data SummaryPanelData) string {
	if !data.ArchiveVisible {
		return ""
	}
	var b strings.Builder
	b.WriteString("archive (newest first, [x] delete):\n")
	if len(data.Snapshots) == 0 {
		b.WriteString("(no archived summaries)")
		return b.String()
	}
	for _, row := range data.Snapshots {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		book := row.BookName
		if book == "" {
			book = "(미입력)"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s p.%d~p.%d\n", cursor, row.CreatedAt, book, row.StartPage, row.EndPage))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderResetConfirm(active bool) string {
	if !active {
		return ""
	}
	return "reset-confirm:\ndelete all saved records? [y] reset / [n] keep"
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s screen:\n%s\n%s",
		strings.ToLower(data.CurrentScreen),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
