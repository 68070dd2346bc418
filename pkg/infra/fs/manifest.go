package fs

import (
	"context"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/relpub/pkg/domain/interfaces"
	"github.com/m-mizutani/relpub/pkg/domain/model"
)

// ManifestFileName is the manifest file looked up in the workspace
const ManifestFileName = "package.json"

type manifestReader struct {
	path string
}

// NewManifestReader creates a ManifestReader for the package.json in workspace
func NewManifestReader(workspace string) interfaces.ManifestReader {
	return &manifestReader{
		path: filepath.Join(workspace, ManifestFileName),
	}
}

// ReadManifest reads and parses the manifest file
func (r *manifestReader) ReadManifest(ctx context.Context) (*model.Manifest, error) {
	ctxlog.From(ctx).Debug("Reading manifest", "path", r.path)

	var manifest model.Manifest
	if err := ReadJSON(r.path, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
