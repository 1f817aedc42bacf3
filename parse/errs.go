package parse

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLine = errors.New("malformed line")
)

// LineErr is a parse error for one line of input.
type LineErr struct {
	Err  error
	Line int
	Text string
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err.Error(), e.Text)
}

func malformed(line int, text, why string) error {
	return &LineErr{Err: fmt.Errorf("%w: %s", ErrMalformedLine, why), Line: line, Text: text}
}
