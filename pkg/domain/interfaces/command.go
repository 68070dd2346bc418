package interfaces

import "context"

// CommandRunner executes external commands such as git and the package manager
type CommandRunner interface {
	// Run executes name with args in dir and blocks until it exits.
	// A non-zero exit is reported as *types.ExitError in the error chain.
	Run(ctx context.Context, dir, name string, args ...string) error
}
