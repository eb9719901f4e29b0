package model

import (
	"sort"
	"strconv"
)

// Problem is one numbered exercise on a workbook page.
type Problem struct {
	Status Status `json:"status"`
	Memo   string `json:"memo"`
}

func NewProblem() *Problem {
	return &Problem{Status: DefaultStatus}
}

// PageUnit is one workbook page: a completion flag, an optional inclusive
// problem range, and the problems keyed by their decimal number.
type PageUnit struct {
	Done         bool                `json:"done"`
	StartProblem *int                `json:"start_problem,omitempty"`
	EndProblem   *int                `json:"end_problem,omitempty"`
	Problems     map[string]*Problem `json:"problems"`
}

func NewPageUnit() *PageUnit {
	return &PageUnit{Problems: make(map[string]*Problem)}
}

func (u *PageUnit) Problem(key string) (*Problem, bool) {
	pr, ok := u.Problems[key]
	if !ok || pr == nil {
		return nil, false
	}
	return pr, true
}

// SortedProblemNumbers returns the problem numbers in ascending numeric
// order. Map keys that do not parse as integers are skipped.
func (u *PageUnit) SortedProblemNumbers() []int {
	out := make([]int, 0, len(u.Problems))
	for key := range u.Problems {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// AppState is the whole session record: one workbook, one page range, and
// the per-page units keyed by decimal page number.
type AppState struct {
	BookName  string               `json:"book_name"`
	StartPage *int                 `json:"start_page,omitempty"`
	EndPage   *int                 `json:"end_page,omitempty"`
	Pages     map[string]*PageUnit `json:"pages"`
}

func NewAppState() *AppState {
	return &AppState{Pages: make(map[string]*PageUnit)}
}

func (s *AppState) Page(key string) (*PageUnit, bool) {
	u, ok := s.Pages[key]
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// PageRange returns the clamped page bounds, or ok=false when either bound
// is unset.
func (s *AppState) PageRange() (start, end int, ok bool) {
	if s.StartPage == nil || s.EndPage == nil {
		return 0, 0, false
	}
	start, end = ClampRange(*s.StartPage, *s.EndPage)
	return start, end, true
}

// Progress counts completed pages inside the current range.
func (s *AppState) Progress() (done, total int) {
	start, end, ok := s.PageRange()
	if !ok {
		return 0, 0
	}
	total = end - start + 1
	for p := start; p <= end; p++ {
		if u, exists := s.Page(strconv.Itoa(p)); exists && u.Done {
			done++
		}
	}
	return done, total
}

// Normalize repairs a state decoded from disk: nil maps become empty maps,
// nil entries are replaced with defaults, and unknown status tokens fall
// back to DefaultStatus. Missing memos already decode to "".
func (s *AppState) Normalize() {
	if s.Pages == nil {
		s.Pages = make(map[string]*PageUnit)
	}
	for key, unit := range s.Pages {
		if unit == nil {
			unit = NewPageUnit()
			s.Pages[key] = unit
		}
		if unit.Problems == nil {
			unit.Problems = make(map[string]*Problem)
		}
		for num, pr := range unit.Problems {
			if pr == nil {
				pr = NewProblem()
				unit.Problems[num] = pr
			}
			if !pr.Status.IsValid() {
				pr.Status = DefaultStatus
			}
		}
	}
}
