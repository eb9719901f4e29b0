package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Open    func(OpenArgs) (Result, error)
	Range   func(RangeArgs) (Result, error)
	Status  func(StatusArgs) (Result, error)
	Summary func() (Result, error)
	Reset   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeOpen:
		if handlers.Open == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "open handler not configured"}
		}
		return handlers.Open(*cmd.Open)
	case TypeRange:
		if handlers.Range == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "range handler not configured"}
		}
		return handlers.Range(*cmd.Range)
	case TypeStatus:
		if handlers.Status == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "status handler not configured"}
		}
		return handlers.Status(*cmd.Status)
	case TypeSummary:
		if handlers.Summary == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "summary handler not configured"}
		}
		return handlers.Summary()
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
