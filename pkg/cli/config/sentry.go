package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for reporting fatal errors",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("RELPUB_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Destination: &c.Env,
			Sources:     cli.EnvVars("RELPUB_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry client. It returns false when no DSN is set.
func (c *Sentry) Configure() (bool, error) {
	if c.DSN == "" {
		return false, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     "relpub@" + types.Version,
	}); err != nil {
		return false, goerr.Wrap(err, "failed to initialize Sentry", goerr.T(types.ErrTagConfig))
	}

	return true, nil
}

// Report sends err to Sentry and waits for delivery
func (c *Sentry) Report(err error) {
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
