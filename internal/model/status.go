package model

type Status string

const (
	StatusDone            Status = "Done"
	StatusWrong           Status = "Wrong"
	StatusFixedAfterWrong Status = "FixedAfterWrong"
	StatusQuestion        Status = "Question"
)

// DefaultStatus is assumed whenever a problem is created or a persisted
// status fails to parse.
const DefaultStatus = StatusDone

func (s Status) IsValid() bool {
	switch s {
	case StatusDone, StatusWrong, StatusFixedAfterWrong, StatusQuestion:
		return true
	default:
		return false
	}
}

// NextStatus cycles Done -> Wrong -> FixedAfterWrong -> Question -> Done.
func NextStatus(s Status) Status {
	switch s {
	case StatusDone:
		return StatusWrong
	case StatusWrong:
		return StatusFixedAfterWrong
	case StatusFixedAfterWrong:
		return StatusQuestion
	default:
		return StatusDone
	}
}
