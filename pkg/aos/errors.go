package aos

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty             = errors.New("empty expression")
	ErrUnbalanced        = errors.New("unbalanced parentheses")
	ErrEmptyOperand      = errors.New("empty operand")
	ErrUnknownToken      = errors.New("unknown token")
	ErrUnknownOperator   = errors.New("unknown operator")
	ErrUnsupportedFormat = errors.New("format unsupported")
)

// ParseError reports malformed or unsupported input. Input is the offending
// substring, not necessarily the whole expression.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}
