package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

type releaseUseCase struct {
	cfg      *model.Config
	runner   interfaces.CommandRunner
	manifest interfaces.ManifestReader
	notifier interfaces.Notifier
}

// Option is a functional option for the release use case
type Option func(*releaseUseCase)

// WithNotifier sets a notifier that is called after a successful publish
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *releaseUseCase) {
		uc.notifier = n
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(
	cfg *model.Config,
	runner interfaces.CommandRunner,
	manifest interfaces.ManifestReader,
	opts ...Option,
) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		cfg:      cfg,
		runner:   runner,
		manifest: manifest,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the release flow: branch gate, commit scan, tag, publish.
// The publish strategy is validated only once a release commit is found.
// A push to another branch returns an error tagged types.ErrTagNeutral.
// The manifest is read only after the branch gate passes.
func (uc *releaseUseCase) Execute(ctx context.Context, event *model.PushEvent) (model.Outcome, error) {
	logger := ctxlog.From(ctx)

	if err := checkBranch(uc.cfg, event); err != nil {
		logger.Info("Push is not to the default branch, skipping",
			"ref", event.Ref,
			"default_branch", uc.cfg.DefaultBranch,
		)
		return model.OutcomeSkipped, err
	}

	manifest, err := uc.manifest.ReadManifest(ctx)
	if err != nil {
		return model.OutcomeFailed, goerr.Wrap(err, "failed to load manifest")
	}

	version, err := manifestVersion(ctx, manifest)
	if err != nil {
		return model.OutcomeFailed, err
	}

	commit, ok := findReleaseCommit(uc.cfg, event.Commits, version)
	if !ok {
		logger.Info("No release commit matches the manifest version",
			"version", version,
			"commits", len(event.Commits),
		)
		return model.OutcomeNoAction, nil
	}

	// Checked before any tag command so a bad strategy never leaves a dangling tag
	if err := uc.cfg.PublishWith.Validate(); err != nil {
		return model.OutcomeFailed, err
	}

	info := &model.ReleaseInfo{
		Version:    version,
		CommitText: commit,
		TagName:    model.Render(uc.cfg.TagName, version),
		TagMessage: model.Render(uc.cfg.TagMessage, version),
	}

	logger.Info("Release commit found",
		"version", info.Version,
		"commit", info.CommitText,
		"tag", info.TagName,
	)

	outcome := model.OutcomePublished
	if uc.cfg.CreateTag {
		if err := uc.createTag(ctx, info); err != nil {
			if types.IsNeutral(err) {
				logger.Info("Tag already exists, skipping tag creation", "tag", info.TagName)
			} else {
				logger.Warn("Failed to create tag, continuing to publish",
					"tag", info.TagName,
					"error", err,
				)
				if exitErr, ok := types.AsExitError(err); ok {
					logger.Warn("Command output", "code", exitErr.Code, "stderr", exitErr.Stderr)
				}
				outcome = model.OutcomeTagFailedButPublished
			}
		}
	} else {
		logger.Info("Tag creation disabled by configuration")
	}

	if err := uc.publish(ctx, info.Version); err != nil {
		if exitErr, ok := types.AsExitError(err); ok {
			logger.Error("Publish command failed", "code", exitErr.Code, "stderr", exitErr.Stderr)
		}
		return model.OutcomePublishFailed, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyRelease(ctx, info, outcome); err != nil {
			logger.Warn("Failed to send release notification", "error", err)
		}
	}

	logger.Info("Release completed", "version", info.Version, "outcome", outcome)
	return outcome, nil
}
