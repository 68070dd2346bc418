package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

// EventProcessor processes CI push events
type EventProcessor struct {
	releaseUC interfaces.ReleaseUseCase
}

// NewEventProcessor creates a new push event processor
func NewEventProcessor(releaseUC interfaces.ReleaseUseCase) *EventProcessor {
	return &EventProcessor{
		releaseUC: releaseUC,
	}
}

// ProcessPushEvent runs the release flow for a push event extracted by ExtractPushEvent
func (p *EventProcessor) ProcessPushEvent(ctx context.Context, pushEvent *model.PushEvent) (model.Outcome, error) {
	logger := ctxlog.From(ctx)

	if pushEvent == nil {
		return model.OutcomeFailed, goerr.New("push event is empty", goerr.T(types.ErrTagData))
	}

	logger.Info("Processing push event",
		"ref", pushEvent.Ref,
		"commits", len(pushEvent.Commits),
		"repository", pushEvent.Repository,
	)

	outcome, err := p.releaseUC.Execute(ctx, pushEvent)
	if err != nil {
		logger.Debug("Push event processing stopped", "outcome", outcome, "neutral", types.IsNeutral(err))
		return outcome, err
	}

	return outcome, nil
}

// ExtractPushEvent extracts the fields used by the release flow from a push event payload
func ExtractPushEvent(event *github.PushEvent) (*model.PushEvent, error) {
	if event == nil {
		return nil, goerr.New("push event payload is empty", goerr.T(types.ErrTagData))
	}

	// Use Get*() helper methods for nil-safe field access
	owner := event.GetRepo().GetOwner()
	commits := make([]string, 0, len(event.Commits))
	for _, c := range event.Commits {
		commits = append(commits, c.GetMessage())
	}

	return &model.PushEvent{
		Ref:        event.GetRef(),
		Repository: event.GetRepo().GetFullName(),
		Owner: model.Author{
			Name:  owner.GetName(),
			Email: owner.GetEmail(),
		},
		Commits: commits,
	}, nil
}
