// Package summary projects the homework state into the shareable text
// report: a header block followed by one section per problem status.
package summary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/hwcheck/internal/model"
)

const (
	// RangeNotSet is returned when no page range has been recorded yet.
	RangeNotSet = "숙제 범위가 설정되지 않았습니다."

	emptySection = "없음"
	noMemo       = "(메모 없음)"
	noBookName   = "(미입력)"
)

// Build renders the report for the clamped page range. Pages are walked in
// ascending order and problems in ascending numeric order, so the output
// is stable for a given state.
func Build(state *model.AppState, now time.Time) string {
	start, end, ok := state.PageRange()
	if !ok {
		return RangeNotSet
	}

	var wrong, fixed, questions []string
	for p := start; p <= end; p++ {
		unit, exists := state.Page(strconv.Itoa(p))
		if !exists || len(unit.Problems) == 0 {
			continue
		}
		for _, num := range unit.SortedProblemNumbers() {
			pr, exists := unit.Problem(strconv.Itoa(num))
			if !exists {
				continue
			}
			tag := fmt.Sprintf("[p.%d %d번]", p, num)
			switch pr.Status {
			case model.StatusWrong:
				wrong = append(wrong, tag)
			case model.StatusFixedAfterWrong:
				fixed = append(fixed, tag)
			case model.StatusQuestion:
				memo := strings.TrimSpace(pr.Memo)
				if memo == "" {
					memo = noMemo
				}
				questions = append(questions, tag+" "+memo)
			}
		}
	}

	book := state.BookName
	if book == "" {
		book = noBookName
	}

	lines := []string{
		"✅ 오늘 숙제 정리",
		"- 문제집: " + book,
		fmt.Sprintf("- 범위: p.%d ~ p.%d", start, end),
		"- 날짜: " + now.Format("2006-01-02"),
		"",
		"❌ 틀림",
		joinOr(wrong, ", "),
		"",
		"🛠️ 틀렸지만 고침",
		joinOr(fixed, ", "),
		"",
		"❓ 질문 + 메모",
		joinOr(questions, "\n"),
	}
	return strings.Join(lines, "\n")
}

func joinOr(items []string, sep string) string {
	if len(items) == 0 {
		return emptySection
	}
	return strings.Join(items, sep)
}
