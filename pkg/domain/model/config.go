package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

// Placeholder is replaced with the manifest version in tag templates
const Placeholder = "%s"

// PublishStrategy selects the external publish command
type PublishStrategy string

const (
	PublishWithYarn PublishStrategy = "yarn"
	PublishWithNPM  PublishStrategy = "npm"
	PublishWithSkip PublishStrategy = "skip"
)

// Validate checks the strategy is one that can be dispatched
func (s PublishStrategy) Validate() error {
	switch s {
	case PublishWithYarn, PublishWithNPM, PublishWithSkip:
		return nil
	default:
		return goerr.New("unsupported publish strategy",
			goerr.V("publish_with", string(s)),
			goerr.T(types.ErrTagConfig),
		)
	}
}

// Author is the identity used for the annotated tag
type Author struct {
	Name  string
	Email string
}

// Config is the resolved configuration of a single run. It is not modified after NewConfig returns.
type Config struct {
	CommitPattern *regexp.Regexp
	TagName       string
	TagMessage    string
	Author        Author
	PublishWith   PublishStrategy
	PublishArgs   []string
	CreateTag     bool
	DefaultBranch string
	Workspace     string
}

// ConfigInput is the raw, unvalidated form of Config
type ConfigInput struct {
	CommitPattern string
	TagName       string
	TagMessage    string
	Author        Author
	PublishWith   string
	PublishArgs   []string
	CreateTag     bool
	DefaultBranch string
	Workspace     string
}

// NewConfig validates input and builds a Config. PublishWith is not
// checked here: an unsupported strategy only fails a run that is about
// to release, see PublishStrategy.Validate.
func NewConfig(input ConfigInput) (*Config, error) {
	pattern, err := regexp.Compile(input.CommitPattern)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid commit pattern",
			goerr.V("commit_pattern", input.CommitPattern),
			goerr.T(types.ErrTagConfig),
		)
	}
	if pattern.NumSubexp() != 1 {
		return nil, goerr.New("commit pattern must have exactly one capture group",
			goerr.V("commit_pattern", input.CommitPattern),
			goerr.V("groups", pattern.NumSubexp()),
			goerr.T(types.ErrTagConfig),
		)
	}

	templates := []struct {
		option string
		value  string
	}{
		{option: "tag_name", value: input.TagName},
		{option: "tag_message", value: input.TagMessage},
	}
	for _, tmpl := range templates {
		if !strings.Contains(tmpl.value, Placeholder) {
			return nil, goerr.New("template is missing placeholder",
				goerr.V("option", tmpl.option),
				goerr.V("template", tmpl.value),
				goerr.V("placeholder", Placeholder),
				goerr.T(types.ErrTagConfig),
			)
		}
	}

	return &Config{
		CommitPattern: pattern,
		TagName:       input.TagName,
		TagMessage:    input.TagMessage,
		Author:        input.Author,
		PublishWith:   PublishStrategy(input.PublishWith),
		PublishArgs:   input.PublishArgs,
		CreateTag:     input.CreateTag,
		DefaultBranch: input.DefaultBranch,
		Workspace:     input.Workspace,
	}, nil
}

// BranchRef returns the full ref of the default branch
func (c *Config) BranchRef() string {
	return "refs/heads/" + c.DefaultBranch
}

// Render substitutes every placeholder occurrence in tmpl with version
func Render(tmpl, version string) string {
	return strings.ReplaceAll(tmpl, Placeholder, version)
}
