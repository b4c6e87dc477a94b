package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUsage      = errors.New("usage error")
	ErrIO         = errors.New("io error")
	ErrParse      = errors.New("parse error")
	ErrEmptyInput = errors.New("empty input")
)

// UsageError is returned when the command line is missing the input path.
type UsageError struct {
	Msg string
}

func NewUsageError(msg string) *UsageError {
	return &UsageError{Msg: msg}
}

func (e *UsageError) Error() string {
	return e.Msg
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// IOError wraps a failure to open or read the sample file.
type IOError struct {
	Path string
	Err  error
}

func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ParseError reports a line that is not a floating-point number. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func NewParseError(line int, text string, err error) *ParseError {
	return &ParseError{Line: line, Text: text, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid sample %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// EmptyInputError is returned when there are no samples to summarize.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "no samples to summarize"
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}
