package usecase

import (
	"context"

	"github.com/hashicorp/go-version"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

// manifestVersion returns the version field of the manifest. A missing version is fatal.
func manifestVersion(ctx context.Context, manifest *model.Manifest) (string, error) {
	if manifest == nil || manifest.Version == nil {
		return "", goerr.New("manifest has no version field", goerr.T(types.ErrTagData))
	}

	v := *manifest.Version
	if _, err := version.NewVersion(v); err != nil {
		ctxlog.From(ctx).Warn("Manifest version is not a semantic version",
			"version", v,
			"error", err,
		)
	}
	return v, nil
}

// checkBranch returns a neutral error when the push is not to the default branch
func checkBranch(cfg *model.Config, event *model.PushEvent) error {
	if event.Ref != cfg.BranchRef() {
		return goerr.New("ref is not the default branch",
			goerr.V("ref", event.Ref),
			goerr.V("expected", cfg.BranchRef()),
			goerr.T(types.ErrTagNeutral),
		)
	}
	return nil
}

// findReleaseCommit returns the first commit message whose captured token equals version.
// Versions are compared literally; "v1.2.3" does not match "1.2.3".
func findReleaseCommit(cfg *model.Config, commits []string, version string) (string, bool) {
	for _, msg := range commits {
		m := cfg.CommitPattern.FindStringSubmatch(msg)
		if len(m) < 2 {
			continue
		}
		if m[1] == version {
			return msg, true
		}
	}
	return "", false
}
