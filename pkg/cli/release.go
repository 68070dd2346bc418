package cli

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/relpub/pkg/controller/github"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/infra/fs"
	"github.com/m-mizutani/relpub/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func releaseAction(runner interfaces.CommandRunner, actionCfg *config.Action, slackCfg *config.Slack) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		logger := ctxlog.From(ctx)

		if err := actionCfg.LoadFile(c.IsSet); err != nil {
			return err
		}

		var payload github.PushEvent
		if err := fs.ReadJSON(actionCfg.EventPath, &payload); err != nil {
			return goerr.Wrap(err, "failed to load event payload")
		}

		event, err := githubcontroller.ExtractPushEvent(&payload)
		if err != nil {
			return err
		}

		input, err := actionCfg.ConfigInput(event.Owner)
		if err != nil {
			return err
		}
		cfg, err := model.NewConfig(input)
		if err != nil {
			return err
		}

		logger.Debug("Resolved configuration",
			slog.String("commit_pattern", cfg.CommitPattern.String()),
			slog.String("tag_name", cfg.TagName),
			slog.Any("author", cfg.Author),
			slog.String("publish_with", string(cfg.PublishWith)),
			slog.String("default_branch", cfg.DefaultBranch),
			slog.String("workspace", cfg.Workspace),
		)

		var opts []usecase.Option
		if notifier := slackCfg.Notifier(event.Repository); notifier != nil {
			opts = append(opts, usecase.WithNotifier(notifier))
		}

		releaseUC := usecase.NewRelease(cfg, runner, fs.NewManifestReader(cfg.Workspace), opts...)
		processor := githubcontroller.NewEventProcessor(releaseUC)

		outcome, err := processor.ProcessPushEvent(ctx, event)
		if err != nil {
			return err
		}

		logger.Info("Run finished", slog.String("outcome", string(outcome)))
		return nil
	}
}
