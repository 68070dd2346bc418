package interfaces

import (
	"context"

	"github.com/m-mizutani/relpub/pkg/domain/model"
)

// Notifier reports a finished release to an external channel
type Notifier interface {
	NotifyRelease(ctx context.Context, info *model.ReleaseInfo, outcome model.Outcome) error
}
