package command_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relpub/pkg/domain/types"
	"github.com/m-mizutani/relpub/pkg/infra/command"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
}

func TestRunner_Run_Success(t *testing.T) {
	requireShell(t)
	ctx := context.Background()

	var stdout bytes.Buffer
	runner := command.NewRunner(command.WithStdout(&stdout))

	err := runner.Run(ctx, t.TempDir(), "sh", "-c", "echo hello")
	gt.NoError(t, err)
	gt.String(t, stdout.String()).Contains("hello")
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	requireShell(t)
	ctx := context.Background()
	dir := t.TempDir()

	runner := command.NewRunner()
	err := runner.Run(ctx, dir, "sh", "-c", "touch marker")
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "marker"))
	gt.NoError(t, err)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	requireShell(t)
	ctx := context.Background()

	runner := command.NewRunner()
	err := runner.Run(ctx, t.TempDir(), "sh", "-c", "echo broken >&2; exit 3")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagCommand))

	exitErr, ok := types.AsExitError(err)
	gt.True(t, ok)
	gt.Equal(t, exitErr.Code, 3)
	gt.String(t, exitErr.Stderr).Contains("broken")
}

func TestRunner_Run_LaunchFailure(t *testing.T) {
	ctx := context.Background()

	runner := command.NewRunner()
	err := runner.Run(ctx, t.TempDir(), "relpub-command-that-does-not-exist")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagCommand))

	_, ok := types.AsExitError(err)
	gt.False(t, ok)
}
