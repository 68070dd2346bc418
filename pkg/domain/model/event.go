package model

// PushEvent represents the parts of a CI push event payload the release flow reads
type PushEvent struct {
	Ref        string   // Git ref that was pushed, e.g. refs/heads/master
	Repository string   // owner/name
	Owner      Author   // Repository owner identity
	Commits    []string // Commit messages in payload order
}
