package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/slack-go/slack"
)

// PostFunc sends a webhook message. slack.PostWebhookContext satisfies it.
type PostFunc func(ctx context.Context, url string, msg *slack.WebhookMessage) error

type notifier struct {
	webhookURL string
	repository string
	post       PostFunc
}

// Option is a functional option for the Slack notifier
type Option func(*notifier)

// WithPostFunc replaces the function that delivers the webhook message
func WithPostFunc(f PostFunc) Option {
	return func(n *notifier) {
		n.post = f
	}
}

// WithRepository sets the repository name shown in the message
func WithRepository(repo string) Option {
	return func(n *notifier) {
		n.repository = repo
	}
}

// NewNotifier creates a Notifier posting to a Slack incoming webhook
func NewNotifier(webhookURL string, opts ...Option) interfaces.Notifier {
	n := &notifier{
		webhookURL: webhookURL,
		post:       slack.PostWebhookContext,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyRelease posts a summary of the release
func (n *notifier) NotifyRelease(ctx context.Context, info *model.ReleaseInfo, outcome model.Outcome) error {
	text := fmt.Sprintf("Published version %s", info.Version)
	if n.repository != "" {
		text = fmt.Sprintf("Published %s version %s", n.repository, info.Version)
	}

	msg := &slack.WebhookMessage{
		Text: text,
		Attachments: []slack.Attachment{
			{
				Color: colorOf(outcome),
				Fields: []slack.AttachmentField{
					{Title: "Tag", Value: info.TagName, Short: true},
					{Title: "Outcome", Value: string(outcome), Short: true},
				},
			},
		},
	}

	if err := n.post(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook",
			goerr.V("version", info.Version),
		)
	}
	return nil
}

func colorOf(outcome model.Outcome) string {
	if outcome == model.OutcomePublished {
		return "good"
	}
	return "warning"
}
