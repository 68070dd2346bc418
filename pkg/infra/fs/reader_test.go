package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/domain/types"
	"github.com/m-mizutani/relpub/pkg/infra/fs"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadJSON(t *testing.T) {
	t.Run("manifest with version", func(t *testing.T) {
		path := writeFile(t, "package.json", `{"name":"pkg","version":"1.2.3"}`)

		var manifest model.Manifest
		gt.NoError(t, fs.ReadJSON(path, &manifest))
		gt.Value(t, manifest.Version).NotNil()
		gt.Equal(t, *manifest.Version, "1.2.3")
	})

	t.Run("manifest without version", func(t *testing.T) {
		path := writeFile(t, "package.json", `{"name":"pkg"}`)

		var manifest model.Manifest
		gt.NoError(t, fs.ReadJSON(path, &manifest))
		gt.Value(t, manifest.Version).Nil()
	})

	t.Run("generic tree", func(t *testing.T) {
		path := writeFile(t, "event.json", `{"ref":"refs/heads/master","commits":[{"message":"x"}]}`)

		var tree map[string]any
		gt.NoError(t, fs.ReadJSON(path, &tree))
		gt.Equal(t, tree["ref"], any("refs/heads/master"))
	})

	t.Run("missing file", func(t *testing.T) {
		var tree map[string]any
		err := fs.ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &tree)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagRead))
	})

	t.Run("empty path", func(t *testing.T) {
		var tree map[string]any
		err := fs.ReadJSON("", &tree)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagRead))
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeFile(t, "broken.json", `{"version": `)

		var tree map[string]any
		err := fs.ReadJSON(path, &tree)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagParse))
	})
}
