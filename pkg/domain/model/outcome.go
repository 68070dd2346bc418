package model

// Outcome describes how a run ended. It is only observable through logs and the exit code.
type Outcome string

const (
	OutcomeSkipped               Outcome = "skipped"
	OutcomeNoAction              Outcome = "no_action"
	OutcomePublished             Outcome = "published"
	OutcomeTagFailedButPublished Outcome = "tag_failed_but_published"
	OutcomePublishFailed         Outcome = "publish_failed"
	OutcomeFailed                Outcome = "failed"
)

// ReleaseInfo represents the release selected from a push event
type ReleaseInfo struct {
	Version    string // Manifest version
	CommitText string // Message of the commit that triggered the release
	TagName    string // Rendered tag name
	TagMessage string // Rendered tag message
}
