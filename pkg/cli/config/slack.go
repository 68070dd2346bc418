package config

import (
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds release notification configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL notified after publishing",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("RELPUB_SLACK_WEBHOOK_URL"),
		},
	}
}

// Notifier returns a Slack notifier, or nil when no webhook URL is configured
func (c *Slack) Notifier(repository string) interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}
	return slack.NewNotifier(c.WebhookURL, slack.WithRepository(repository))
}
