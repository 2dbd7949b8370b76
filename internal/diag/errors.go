package diag

import (
	"errors"
	"strings"
)

// ErrorCode categorizes fatal errors that abort a generation run.
type ErrorCode string

const (
	CodeInput              ErrorCode = "InputError"
	CodeNetwork            ErrorCode = "NetworkError"
	CodeParse              ErrorCode = "ParseError"
	CodeUnsupportedVersion ErrorCode = "UnsupportedVersion"
	CodeInvalidDefinition  ErrorCode = "InvalidDefinition"
	CodeEmptyEnum          ErrorCode = "EmptyEnum"
	CodeInvalidReference   ErrorCode = "InvalidReference"
)

var (
	ErrInput              = errors.New("invalid input")
	ErrNetwork            = errors.New("network error")
	ErrParse              = errors.New("parse error")
	ErrUnsupportedVersion = errors.New("unsupported document version")
	ErrInvalidDefinition  = errors.New("invalid type definition")
	ErrEmptyEnum          = errors.New("enum without values")
	ErrInvalidReference   = errors.New("invalid reference")
)

var sentinels = map[ErrorCode]error{
	CodeInput:              ErrInput,
	CodeNetwork:            ErrNetwork,
	CodeParse:              ErrParse,
	CodeUnsupportedVersion: ErrUnsupportedVersion,
	CodeInvalidDefinition:  ErrInvalidDefinition,
	CodeEmptyEnum:          ErrEmptyEnum,
	CodeInvalidReference:   ErrInvalidReference,
}

// Error is a fatal error with an optional location and JSON Pointer.
type Error struct {
	Code     ErrorCode
	Message  string
	Location string // file path or URL
	Pointer  string // e.g. "#/definitions/Pet"
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Location != "" {
		b.WriteString(e.Location)
		b.WriteString(": ")
	}
	if e.Pointer != "" {
		b.WriteString(e.Pointer)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches the sentinel error registered for the error's code.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Code]
	return ok && s == target
}

func NewError(code ErrorCode, pointer, message string) *Error {
	return &Error{Code: code, Pointer: pointer, Message: message}
}

func WrapError(code ErrorCode, location, message string, cause error) *Error {
	return &Error{Code: code, Location: location, Message: message, Cause: cause}
}
