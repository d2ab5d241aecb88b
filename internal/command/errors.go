package command

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes returned by App.Run
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	// ErrNotInteger indicates that --num-files is not a decimal integer
	ErrNotInteger = errors.New("not a decimal integer")

	// ErrOutOfRange indicates that --num-files does not fit into an int
	ErrOutOfRange = errors.New("integer out of range")
)

// UsageError is returned for command lines that cannot be turned into an invocation.
// No file is touched when it occurs.
type UsageError struct {
	Err error
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError checks if err is, or wraps, a UsageError
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

func unrecognizedArguments(args []string) error {
	return &UsageError{Err: fmt.Errorf("unrecognized arguments: %s", strings.Join(args, " "))}
}
