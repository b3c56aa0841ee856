package cli

import (
	"context"
	"errors"

	"github.com/bjaus/gridfile"
)

const (
	ExitOK       = 0
	ExitError    = 1
	ExitUsage    = 2
	ExitCanceled = 130
)

// errUsage marks errors caused by bad arguments or flags.
var errUsage = errors.New("usage error")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, errUsage),
		errors.Is(err, gridfile.ErrUnsupportedFormat),
		errors.Is(err, gridfile.ErrUnsupportedStyle),
		errors.Is(err, gridfile.ErrOutOfRange):
		return ExitUsage
	default:
		return ExitError
	}
}
