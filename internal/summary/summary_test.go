package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/hwcheck/internal/model"
)

var testNow = time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)

func TestBuildWithoutRange(t *testing.T) {
	if got := Build(model.NewAppState(), testNow); got != RangeNotSet {
		t.Fatalf("expected range-not-set message, got %q", got)
	}
}

func TestBuildGroupsByStatus(t *testing.T) {
	s := model.NewAppState()
	s.BookName = "RPM 수학(상)"
	if err := s.SetPageRange(1, 2); err != nil {
		t.Fatalf("set page range: %v", err)
	}
	page1, _ := s.Page("1")
	if err := page1.ApplyProblemRange(1, 3); err != nil {
		t.Fatalf("apply range p1: %v", err)
	}
	page1.Problems["3"].Status = model.StatusWrong

	page2, _ := s.Page("2")
	if err := page2.ApplyProblemRange(4, 5); err != nil {
		t.Fatalf("apply range p2: %v", err)
	}
	page2.Problems["5"].Status = model.StatusQuestion
	page2.Problems["5"].Memo = "why"
	page2.Problems["4"].Status = model.StatusFixedAfterWrong

	out := Build(s, testNow)

	if !strings.Contains(out, "- 문제집: RPM 수학(상)") {
		t.Fatalf("missing book line: %q", out)
	}
	if !strings.Contains(out, "- 범위: p.1 ~ p.2") {
		t.Fatalf("missing range line: %q", out)
	}
	if !strings.Contains(out, "- 날짜: 2026-08-25") {
		t.Fatalf("missing date line: %q", out)
	}
	if !strings.Contains(out, "❌ 틀림\n[p.1 3번]") {
		t.Fatalf("wrong section incorrect: %q", out)
	}
	if !strings.Contains(out, "🛠️ 틀렸지만 고침\n[p.2 4번]") {
		t.Fatalf("fixed section incorrect: %q", out)
	}
	if !strings.Contains(out, "❓ 질문 + 메모\n[p.2 5번] why") {
		t.Fatalf("question section incorrect: %q", out)
	}
}

func TestBuildEmptySectionsUsePlaceholder(t *testing.T) {
	s := model.NewAppState()
	if err := s.SetPageRange(1, 1); err != nil {
		t.Fatalf("set page range: %v", err)
	}
	out := Build(s, testNow)

	if !strings.Contains(out, "- 문제집: (미입력)") {
		t.Fatalf("missing book placeholder: %q", out)
	}
	if strings.Count(out, "없음") != 3 {
		t.Fatalf("expected 3 empty-section placeholders: %q", out)
	}
}

func TestBuildQuestionWithoutMemoUsesPlaceholder(t *testing.T) {
	s := model.NewAppState()
	if err := s.SetPageRange(7, 7); err != nil {
		t.Fatalf("set page range: %v", err)
	}
	page, _ := s.Page("7")
	if err := page.ApplyProblemRange(2, 2); err != nil {
		t.Fatalf("apply range: %v", err)
	}
	page.Problems["2"].Status = model.StatusQuestion
	page.Problems["2"].Memo = "   "

	out := Build(s, testNow)
	if !strings.Contains(out, "[p.7 2번] (메모 없음)") {
		t.Fatalf("missing memo placeholder: %q", out)
	}
}

func TestBuildWrongEntriesCommaJoinedQuestionsNewlineJoined(t *testing.T) {
	s := model.NewAppState()
	if err := s.SetPageRange(1, 1); err != nil {
		t.Fatalf("set page range: %v", err)
	}
	page, _ := s.Page("1")
	if err := page.ApplyProblemRange(1, 4); err != nil {
		t.Fatalf("apply range: %v", err)
	}
	page.Problems["1"].Status = model.StatusWrong
	page.Problems["2"].Status = model.StatusWrong
	page.Problems["3"].Status = model.StatusQuestion
	page.Problems["3"].Memo = "first"
	page.Problems["4"].Status = model.StatusQuestion
	page.Problems["4"].Memo = "second"

	out := Build(s, testNow)
	if !strings.Contains(out, "[p.1 1번], [p.1 2번]") {
		t.Fatalf("wrong entries should be comma-joined: %q", out)
	}
	if !strings.Contains(out, "[p.1 3번] first\n[p.1 4번] second") {
		t.Fatalf("question entries should be newline-joined: %q", out)
	}
}

func TestBuildOrdersProblemsNumerically(t *testing.T) {
	s := model.NewAppState()
	if err := s.SetPageRange(3, 3); err != nil {
		t.Fatalf("set page range: %v", err)
	}
	page, _ := s.Page("3")
	if err := page.ApplyProblemRange(8, 12); err != nil {
		t.Fatalf("apply range: %v", err)
	}
	for _, num := range []string{"8", "9", "10", "11", "12"} {
		page.Problems[num].Status = model.StatusWrong
	}

	out := Build(s, testNow)
	want := "[p.3 8번], [p.3 9번], [p.3 10번], [p.3 11번], [p.3 12번]"
	if !strings.Contains(out, want) {
		t.Fatalf("expected numeric order %q in %q", want, out)
	}
}
