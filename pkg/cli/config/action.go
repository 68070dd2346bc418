package config

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/model"
	"github.com/m-mizutani/relpub/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Default values of the release action
const (
	// The Release or Version prefix is required. A bare "1.2.3" commit is not a release.
	DefaultCommitPattern = `^(?:Release|Version) (\S+)`
	DefaultTagName       = "v%s"
	DefaultTagMessage    = "v%s"
	DefaultPublishWith   = "yarn"
	DefaultBranch        = "master"
	DefaultWorkspace     = "/github/workspace"
	DefaultEventPath     = "/github/workflow/event.json"
)

// Action holds configuration of the release action
type Action struct {
	CommitPattern string
	TagName       string
	TagMessage    string
	CommitUser    string
	CommitEmail   string
	PublishWith   string
	PublishArgs   string
	CreateTag     bool
	DefaultBranch string
	Workspace     string
	EventPath     string
	ConfigFile    string
}

// envVars binds a setting to its variable and the INPUT_ prefixed alias
// used by action runners. Action runners export inputs the workflow did
// not supply as empty variables, so empty values fall through to the
// next source and finally to the flag default.
func envVars(key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(nonEmptyEnv(key), nonEmptyEnv("INPUT_"+key))
}

type nonEmptyEnv string

func (e nonEmptyEnv) Lookup() (string, bool) {
	v, ok := os.LookupEnv(string(e))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (e nonEmptyEnv) IsFromEnv() bool { return true }

func (e nonEmptyEnv) Key() string { return string(e) }

func (e nonEmptyEnv) String() string {
	return fmt.Sprintf("environment variable %q", string(e))
}

func (e nonEmptyEnv) GoString() string {
	return fmt.Sprintf("nonEmptyEnv(%q)", string(e))
}

// Flags returns CLI flags for the release action
func (c *Action) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "commit-pattern",
			Usage:       "Regular expression with one capture group matched against commit messages",
			Value:       DefaultCommitPattern,
			Destination: &c.CommitPattern,
			Sources:     envVars("COMMIT_PATTERN"),
		},
		&cli.StringFlag{
			Name:        "tag-name",
			Usage:       "Tag name template, %s is replaced with the version",
			Value:       DefaultTagName,
			Destination: &c.TagName,
			Sources:     envVars("TAG_NAME"),
		},
		&cli.StringFlag{
			Name:        "tag-message",
			Usage:       "Tag message template, %s is replaced with the version",
			Value:       DefaultTagMessage,
			Destination: &c.TagMessage,
			Sources:     envVars("TAG_MESSAGE"),
		},
		&cli.StringFlag{
			Name:        "commit-user",
			Usage:       "Tag author name (default: repository owner)",
			Destination: &c.CommitUser,
			Sources:     envVars("COMMIT_USER"),
		},
		&cli.StringFlag{
			Name:        "commit-email",
			Usage:       "Tag author email (default: repository owner)",
			Destination: &c.CommitEmail,
			Sources:     envVars("COMMIT_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "publish-with",
			Usage:       "Publish strategy (yarn, npm, skip)",
			Value:       DefaultPublishWith,
			Destination: &c.PublishWith,
			Sources:     envVars("PUBLISH_WITH"),
		},
		&cli.StringFlag{
			Name:        "publish-args",
			Usage:       "Extra arguments appended to the publish command",
			Destination: &c.PublishArgs,
			Sources:     envVars("PUBLISH_ARGS"),
		},
		&cli.BoolFlag{
			Name:        "create-tag",
			Usage:       "Create and push a git tag for the release",
			Value:       true,
			Destination: &c.CreateTag,
			Sources:     envVars("CREATE_TAG"),
		},
		&cli.StringFlag{
			Name:        "default-branch",
			Usage:       "Branch that releases are made from",
			Value:       DefaultBranch,
			Destination: &c.DefaultBranch,
			Sources:     envVars("DEFAULT_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Directory containing package.json and the git checkout",
			Value:       DefaultWorkspace,
			Destination: &c.Workspace,
			Sources:     envVars("GITHUB_WORKSPACE"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path of the push event payload",
			Value:       DefaultEventPath,
			Destination: &c.EventPath,
			Sources:     envVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Optional TOML file with release settings",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("RELPUB_CONFIG"),
		},
	}
}

// fileConfig is the layout of the optional TOML settings file
type fileConfig struct {
	CommitPattern *string `toml:"commit_pattern"`
	TagName       *string `toml:"tag_name"`
	TagMessage    *string `toml:"tag_message"`
	CommitUser    *string `toml:"commit_user"`
	CommitEmail   *string `toml:"commit_email"`
	PublishWith   *string `toml:"publish_with"`
	PublishArgs   *string `toml:"publish_args"`
	CreateTag     *bool   `toml:"create_tag"`
	DefaultBranch *string `toml:"default_branch"`
}

// LoadFile applies settings from ConfigFile. Settings for which isSet
// reports true were given by flag or environment and are kept.
func (c *Action) LoadFile(isSet func(name string) bool) error {
	if c.ConfigFile == "" {
		return nil
	}

	raw, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file",
			goerr.V("path", c.ConfigFile),
			goerr.T(types.ErrTagRead),
		)
	}

	var file fileConfig
	if err := toml.Unmarshal(raw, &file); err != nil {
		return goerr.Wrap(err, "failed to parse config file",
			goerr.V("path", c.ConfigFile),
			goerr.T(types.ErrTagParse),
		)
	}

	applyString := func(name string, src *string, dst *string) {
		if src != nil && !isSet(name) {
			*dst = *src
		}
	}
	applyString("commit-pattern", file.CommitPattern, &c.CommitPattern)
	applyString("tag-name", file.TagName, &c.TagName)
	applyString("tag-message", file.TagMessage, &c.TagMessage)
	applyString("commit-user", file.CommitUser, &c.CommitUser)
	applyString("commit-email", file.CommitEmail, &c.CommitEmail)
	applyString("publish-with", file.PublishWith, &c.PublishWith)
	applyString("publish-args", file.PublishArgs, &c.PublishArgs)
	applyString("default-branch", file.DefaultBranch, &c.DefaultBranch)
	if file.CreateTag != nil && !isSet("create-tag") {
		c.CreateTag = *file.CreateTag
	}

	return nil
}

// ConfigInput builds the raw model configuration. Author fields that
// were not configured fall back to owner.
func (c *Action) ConfigInput(owner model.Author) (model.ConfigInput, error) {
	publishArgs, err := shellquote.Split(c.PublishArgs)
	if err != nil {
		return model.ConfigInput{}, goerr.Wrap(err, "invalid publish args",
			goerr.V("publish_args", c.PublishArgs),
			goerr.T(types.ErrTagConfig),
		)
	}

	author := owner
	if c.CommitUser != "" {
		author.Name = c.CommitUser
	}
	if c.CommitEmail != "" {
		author.Email = c.CommitEmail
	}

	return model.ConfigInput{
		CommitPattern: c.CommitPattern,
		TagName:       c.TagName,
		TagMessage:    c.TagMessage,
		Author:        author,
		PublishWith:   c.PublishWith,
		PublishArgs:   publishArgs,
		CreateTag:     c.CreateTag,
		DefaultBranch: c.DefaultBranch,
		Workspace:     c.Workspace,
	}, nil
}
