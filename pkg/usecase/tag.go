package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

const remoteName = "origin"

// createTag creates an annotated tag for the release and pushes it.
// An existing tag is reported as a neutral error.
func (uc *releaseUseCase) createTag(ctx context.Context, info *model.ReleaseInfo) error {
	logger := ctxlog.From(ctx)
	ref := "refs/tags/" + info.TagName

	exists, err := uc.tagExists(ctx, ref)
	if err != nil {
		return err
	}
	if exists {
		return goerr.New("tag already exists",
			goerr.V("tag", info.TagName),
			goerr.T(types.ErrTagNeutral),
		)
	}

	author := uc.cfg.Author
	if err := uc.git(ctx, "config", "user.name", author.Name); err != nil {
		return goerr.Wrap(err, "failed to configure commit user name")
	}
	if err := uc.git(ctx, "config", "user.email", author.Email); err != nil {
		return goerr.Wrap(err, "failed to configure commit user email")
	}

	if err := uc.git(ctx, "tag", "-a", info.TagName, "-m", info.TagMessage); err != nil {
		return goerr.Wrap(err, "failed to create tag", goerr.V("tag", info.TagName))
	}
	if err := uc.git(ctx, "push", remoteName, ref); err != nil {
		return goerr.Wrap(err, "failed to push tag", goerr.V("ref", ref))
	}

	logger.Info("Tag created and pushed", "tag", info.TagName, "remote", remoteName)
	return nil
}

// tagExists reports whether ref already resolves in the repository.
// rev-parse exits non-zero when the ref is unknown.
func (uc *releaseUseCase) tagExists(ctx context.Context, ref string) (bool, error) {
	err := uc.git(ctx, "rev-parse", "-q", "--verify", ref)
	if err == nil {
		return true, nil
	}
	if _, ok := types.AsExitError(err); ok {
		return false, nil
	}
	return false, goerr.Wrap(err, "failed to check tag existence", goerr.V("ref", ref))
}

func (uc *releaseUseCase) git(ctx context.Context, args ...string) error {
	return uc.runner.Run(ctx, uc.cfg.Workspace, "git", args...)
}
