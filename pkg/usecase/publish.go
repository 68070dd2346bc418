package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/model"
)

// publish runs the package-manager command selected by the configured strategy
func (uc *releaseUseCase) publish(ctx context.Context, version string) error {
	logger := ctxlog.From(ctx)

	var name string
	var args []string
	switch uc.cfg.PublishWith {
	case model.PublishWithYarn:
		name = "yarn"
		args = []string{"publish", "--non-interactive", "--new-version", version}
	case model.PublishWithNPM:
		name = "npm"
		args = []string{"publish", "--access", "public"}
	case model.PublishWithSkip:
		logger.Info("Publishing skipped by configuration", "version", version)
		return nil
	default:
		return uc.cfg.PublishWith.Validate()
	}
	args = append(args, uc.cfg.PublishArgs...)

	if err := uc.runner.Run(ctx, uc.cfg.Workspace, name, args...); err != nil {
		return goerr.Wrap(err, "failed to publish package",
			goerr.V("publish_with", string(uc.cfg.PublishWith)),
			goerr.V("version", version),
		)
	}

	logger.Info("Package published", "version", version, "publish_with", uc.cfg.PublishWith)
	return nil
}
