package types

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Error tags classify failures by how the run should terminate.
var (
	// ErrTagNeutral marks an intentional early termination that needs no corrective action
	ErrTagNeutral = goerr.NewTag("neutral")
	// ErrTagConfig marks malformed user-supplied configuration
	ErrTagConfig = goerr.NewTag("config")
	// ErrTagRead marks a file that could not be read
	ErrTagRead = goerr.NewTag("read")
	// ErrTagParse marks a file whose content is not well-formed
	ErrTagParse = goerr.NewTag("parse")
	// ErrTagData marks well-formed input that lacks required data
	ErrTagData = goerr.NewTag("data")
	// ErrTagCommand marks a subprocess that failed to launch or exited non-zero
	ErrTagCommand = goerr.NewTag("command")
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitNeutral tells the CI platform the step intentionally did nothing
	ExitNeutral = 78
)

// ExitError is returned when a subprocess terminates with a non-zero exit code
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// IsNeutral reports whether err is an intentional no-op termination
func IsNeutral(err error) bool {
	return err != nil && goerr.HasTag(err, ErrTagNeutral)
}

// ExitCode maps a run result to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsNeutral(err):
		return ExitNeutral
	default:
		return ExitFailure
	}
}

// AsExitError extracts an ExitError from the error chain
func AsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}
