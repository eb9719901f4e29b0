package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeOpen    Type = "open"
	TypeRange   Type = "range"
	TypeStatus  Type = "status"
	TypeSummary Type = "summary"
	TypeReset   Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type OpenArgs struct {
	Page int
}

type RangeArgs struct {
	Start int
	End   int
}

type StatusArgs struct {
	Problem int
	Status  string
}

type Command struct {
	Type   Type
	Raw    string
	Open   *OpenArgs
	Range  *RangeArgs
	Status *StatusArgs
}

// statusTokens maps palette shorthand to canonical status names.
var statusTokens = map[string]string{
	"done":     "done",
	"wrong":    "wrong",
	"fixed":    "fixed",
	"question": "question",
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeOpen:
		return parseOpen(input, args)
	case TypeRange:
		return parseRange(input, args)
	case TypeStatus:
		return parseStatus(input, args)
	case TypeSummary:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "summary takes no arguments"}
		}
		return Command{Type: TypeSummary, Raw: input}, nil
	case TypeReset:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset takes no arguments"}
		}
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseOpen(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "open requires a page number"}
	}
	page, err := parsePositiveInt(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid page number: %s", args[0])}
	}
	return Command{Type: TypeOpen, Raw: raw, Open: &OpenArgs{Page: page}}, nil
}

func parseRange(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "range requires start and end problem numbers"}
	}
	start, err := parsePositiveInt(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid start problem: %s", args[0])}
	}
	end, err := parsePositiveInt(args[1])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid end problem: %s", args[1])}
	}
	return Command{Type: TypeRange, Raw: raw, Range: &RangeArgs{Start: start, End: end}}, nil
}

func parseStatus(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "status requires a problem number and a status"}
	}
	problem, err := parsePositiveInt(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid problem number: %s", args[0])}
	}
	token, ok := statusTokens[strings.ToLower(args[1])]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown status: %s (want done|wrong|fixed|question)", args[1])}
	}
	return Command{Type: TypeStatus, Raw: raw, Status: &StatusArgs{Problem: problem, Status: token}}, nil
}

func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("not positive: %d", v)
	}
	return v, nil
}
