package update

import (
	"fmt"

	"github.com/sandeepkv93/hwcheck/internal/model"
)

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusWrong:
		return "❌"
	case model.StatusFixedAfterWrong:
		return "🛠️"
	case model.StatusQuestion:
		return "❓"
	default:
		return "✅"
	}
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusWrong:
		return "틀림"
	case model.StatusFixedAfterWrong:
		return "틀렸지만 고침"
	case model.StatusQuestion:
		return "질문"
	default:
		return "완료"
	}
}

func problemRangeCaption(u *model.PageUnit) string {
	if u == nil || u.StartProblem == nil || u.EndProblem == nil {
		return "(range not set)"
	}
	return fmt.Sprintf("problems: %d~%d", *u.StartProblem, *u.EndProblem)
}
