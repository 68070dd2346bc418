package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/relpub/pkg/cli/config"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/types"
	"github.com/m-mizutani/relpub/pkg/infra/command"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, command.NewRunner(), os.Stderr)
}

func run(ctx context.Context, args []string, runner interfaces.CommandRunner, status io.Writer) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		actionCfg config.Action
		slackCfg  config.Slack
	)
	var logger *slog.Logger
	var reportErrors bool

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, actionCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	app := &cli.Command{
		Name:    "relpub",
		Usage:   "Tag and publish a package when a push contains a release commit",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			reportErrors, err = sentryCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: releaseAction(runner, &actionCfg, &slackCfg),
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}

		if types.IsNeutral(err) {
			logger.Info("Release skipped", slog.String("reason", err.Error()))
			_, _ = color.New(color.FgYellow).Fprintf(status, "skipped: %s\n", err.Error())
			return err
		}

		logger.Error("CLI execution failed", slog.Any("error", err))
		if reportErrors {
			sentryCfg.Report(err)
		}
		_, _ = color.New(color.FgRed).Fprintf(status, "error: %s\n", err.Error())
		return err
	}

	return nil
}
