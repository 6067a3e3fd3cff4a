// Package git wraps version-control operations behind a narrow capability
// interface so the materialization pipeline can be tested with fakes.
package git

import "context"

// Config keys the scaffolder reads for author identity.
const (
	ConfigUserName  = "user.name"
	ConfigUserEmail = "user.email"
)

// Client is the version-control capability used by the template loader and
// the project materializer.
type Client interface {
	// Clone clones the repository at url into dest.
	Clone(ctx context.Context, url, dest string) error

	// Init initializes a fresh repository at dest.
	Init(dest string) error

	// Commit stages everything under dest and creates one commit.
	Commit(dest, message string) error

	// IsAvailable reports whether version-control operations can run at all.
	IsAvailable() bool

	// ConfigValue looks up a configured value such as user.name. The second
	// return is false when the key is unset or the config is unreadable.
	ConfigValue(key string) (string, bool)
}
