package interfaces

import (
	"context"

	"github.com/m-mizutani/relpub/pkg/domain/model"
)

// ReleaseUseCase defines the tag-and-publish flow for a single push event
type ReleaseUseCase interface {
	// Execute decides whether the push is a release and, if so, tags and publishes it
	Execute(ctx context.Context, event *model.PushEvent) (model.Outcome, error)
}
