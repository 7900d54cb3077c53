package cli

import (
	"errors"
	"fmt"

	"github.com/wildfunctions/mathplot/pkg/aos"
	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Exit codes.
const (
	exitGeneric     = 1
	exitParse       = 2
	exitUnsupported = 3
	exitConfig      = 4
)

// ExitError is an error that carries a specific process exit code.
// Cobra's RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, err error, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// classify maps an engine error to an ExitError.
func classify(err error) error {
	var unsupported *expr.UnsupportedOperationError
	var parseErr *aos.ParseError
	switch {
	case errors.As(err, &unsupported):
		return exitError(exitUnsupported, err, "%v", err)
	case errors.As(err, &parseErr):
		return exitError(exitParse, err, "%v", err)
	default:
		return exitError(exitGeneric, err, "%v", err)
	}
}
