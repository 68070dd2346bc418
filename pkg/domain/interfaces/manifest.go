package interfaces

import (
	"context"

	"github.com/m-mizutani/relpub/pkg/domain/model"
)

// ManifestReader loads the package manifest of the workspace
type ManifestReader interface {
	ReadManifest(ctx context.Context) (*model.Manifest, error)
}
