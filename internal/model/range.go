package model

import (
	"errors"
	"strconv"
)

// MaxProblemSpan bounds how many problems a single page range may create.
const MaxProblemSpan = 500

var (
	ErrInvalidRange  = errors.New("model: range bounds must be 1 or greater")
	ErrRangeTooLarge = errors.New("model: range too large (over 500 problems)")
)

// ClampRange swaps the bounds when start > end.
func ClampRange(start, end int) (int, int) {
	if start > end {
		return end, start
	}
	return start, end
}

// ApplyProblemRange sets the page's problem range to [start, end] and
// synchronizes the problem map with it: missing numbers get a default
// problem, numbers outside the new range are dropped, and numbers in the
// intersection keep their status and memo. Validation failures leave the
// unit untouched.
func (u *PageUnit) ApplyProblemRange(start, end int) error {
	if start < 1 || end < 1 {
		return ErrInvalidRange
	}
	start, end = ClampRange(start, end)
	if end-start > MaxProblemSpan {
		return ErrRangeTooLarge
	}

	u.StartProblem = &start
	u.EndProblem = &end
	if u.Problems == nil {
		u.Problems = make(map[string]*Problem)
	}

	keep := make(map[string]bool, end-start+1)
	for n := start; n <= end; n++ {
		key := strconv.Itoa(n)
		keep[key] = true
		if _, ok := u.Problems[key]; !ok {
			u.Problems[key] = NewProblem()
		}
	}
	for key := range u.Problems {
		if !keep[key] {
			delete(u.Problems, key)
		}
	}
	return nil
}

// SetPageRange records the homework page bounds and materializes the page
// units. Bounds are swapped when inverted.
func (s *AppState) SetPageRange(start, end int) error {
	if start < 1 || end < 1 {
		return ErrInvalidRange
	}
	start, end = ClampRange(start, end)
	s.StartPage = &start
	s.EndPage = &end
	s.EnsurePages()
	return nil
}

// EnsurePages creates a page unit for every page in the clamped range.
// Units outside the range are deliberately left alone: shrinking the page
// range must not discard recorded work (unlike problem ranges, which
// prune).
func (s *AppState) EnsurePages() {
	start, end, ok := s.PageRange()
	if !ok {
		return
	}
	s.StartPage = &start
	s.EndPage = &end
	if s.Pages == nil {
		s.Pages = make(map[string]*PageUnit)
	}
	for p := start; p <= end; p++ {
		key := strconv.Itoa(p)
		if _, exists := s.Pages[key]; !exists {
			s.Pages[key] = NewPageUnit()
		}
	}
}
