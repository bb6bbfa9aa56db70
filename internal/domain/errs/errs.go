// Package errs defines the error kinds md reports and maps them to exit statuses.
package errs

import (
	"context"
	"errors"
	"fmt"

	"md/internal/domain/consts"
)

// UsageError reports bad or missing command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return "usage: " + e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// InputError reports a prompt that could not read an answer.
type InputError struct {
	Prompt string
	Err    error
}

func (e *InputError) Error() string { return "input: " + e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// SubprocessError reports an external tool that could not run or exited non-zero.
//
// Code is the status md exits with.
type SubprocessError struct {
	Tool string
	Code int
	Err  error
}

func (e *SubprocessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s exited with status %d: %v", e.Tool, e.Code, e.Err)
	}
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// ExitCode maps an error returned from a run to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return consts.ExitOK
	}

	var (
		usageErr *UsageError
		inputErr *InputError
		subErr   *SubprocessError
	)

	switch {
	case errors.As(err, &subErr):
		return subErr.Code
	case errors.As(err, &usageErr):
		return consts.ExitUsage
	case errors.As(err, &inputErr):
		return consts.ExitFailure
	case errors.Is(err, context.Canceled):
		return consts.ExitInterrupted
	default:
		return consts.ExitFailure
	}
}
