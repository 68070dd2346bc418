package types_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relpub/pkg/domain/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: types.ExitOK,
		},
		{
			name: "neutral skip",
			err:  goerr.New("branch mismatch", goerr.T(types.ErrTagNeutral)),
			want: types.ExitNeutral,
		},
		{
			name: "wrapped neutral skip",
			err:  goerr.Wrap(goerr.New("branch mismatch", goerr.T(types.ErrTagNeutral)), "release"),
			want: types.ExitNeutral,
		},
		{
			name: "configuration error",
			err:  goerr.New("bad template", goerr.T(types.ErrTagConfig)),
			want: types.ExitFailure,
		},
		{
			name: "untagged error",
			err:  errors.New("boom"),
			want: types.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, types.ExitCode(tt.err), tt.want)
		})
	}
}

func TestAsExitError(t *testing.T) {
	cause := &types.ExitError{Code: 128, Stderr: "fatal: not a git repository"}
	err := goerr.Wrap(cause, "git failed", goerr.T(types.ErrTagCommand))

	exitErr, ok := types.AsExitError(err)
	gt.True(t, ok)
	gt.Equal(t, exitErr.Code, 128)
	gt.String(t, exitErr.Stderr).Contains("not a git repository")

	_, ok = types.AsExitError(errors.New("other"))
	gt.False(t, ok)
}
