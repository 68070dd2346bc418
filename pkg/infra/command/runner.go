package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

type runner struct {
	stdout io.Writer
}

// Option is a functional option for the command runner
type Option func(*runner)

// WithStdout sets where the standard output of commands goes. It is discarded by default.
func WithStdout(w io.Writer) Option {
	return func(r *runner) {
		r.stdout = w
	}
}

// NewRunner creates a CommandRunner backed by os/exec
func NewRunner(opts ...Option) interfaces.CommandRunner {
	r := &runner{
		stdout: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the command and waits for it to exit. No timeout is applied.
func (r *runner) Run(ctx context.Context, dir, name string, args ...string) error {
	logger := ctxlog.From(ctx)

	logger.Info("Executing command",
		"command", name,
		"args", strings.Join(args, " "),
		"dir", dir,
	)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = r.stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return goerr.Wrap(&types.ExitError{
				Code:   exitErr.ExitCode(),
				Stderr: stderr.String(),
			}, "command failed",
				goerr.V("command", name),
				goerr.V("args", args),
				goerr.V("stderr", stderr.String()),
				goerr.T(types.ErrTagCommand),
			)
		}

		return goerr.Wrap(err, "failed to launch command",
			goerr.V("command", name),
			goerr.V("args", args),
			goerr.T(types.ErrTagCommand),
		)
	}

	return nil
}
