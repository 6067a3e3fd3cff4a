package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	oerrors "github.com/forgelabs/forge/internal/errors"
)

// Fallback identity used when no user.name/user.email is configured.
const (
	fallbackAuthorName  = "Forge User"
	fallbackAuthorEmail = "forge@localhost"
)

// GoGitClient implements Client on top of go-git.
type GoGitClient struct {
	sshAuth  transport.AuthMethod
	httpAuth transport.AuthMethod
}

// NewClient creates a go-git backed client, detecting authentication from
// SSH keys and environment tokens.
func NewClient() *GoGitClient {
	return &GoGitClient{
		sshAuth:  trySSHAuth(),
		httpAuth: tryHTTPAuth(),
	}
}

// authFor selects the auth method matching the URL's transport. go-git's
// transports reject a mismatched AuthMethod before any network I/O, so an
// SSH key must never be handed to an http(s) clone and vice versa.
func (c *GoGitClient) authFor(url string) transport.AuthMethod {
	switch {
	case strings.HasPrefix(url, "ssh://"), strings.HasPrefix(url, "git@"):
		return c.sshAuth
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return c.httpAuth
	default:
		return nil
	}
}

// Clone clones the repository at url into dest.
func (c *GoGitClient) Clone(ctx context.Context, url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("creating parent directory for %s", dest))
	}

	_, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{
		URL:  url,
		Auth: c.authFor(url),
	})
	if err != nil {
		return fmt.Errorf("%w: cloning %s: %w", oerrors.ErrGitClone, url, err)
	}

	return nil
}

// Init initializes a fresh repository at dest.
func (c *GoGitClient) Init(dest string) error {
	if _, err := gogit.PlainInit(dest, false); err != nil {
		return fmt.Errorf("%w: initializing repository at %s: %w", oerrors.ErrGit, dest, err)
	}
	return nil
}

// Commit stages everything under dest and creates one commit with the
// configured identity, falling back to a fixed placeholder identity.
func (c *GoGitClient) Commit(dest, message string) error {
	repo, err := gogit.PlainOpen(dest)
	if err != nil {
		return fmt.Errorf("%w: opening repository at %s: %w", oerrors.ErrGit, dest, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("%w: getting worktree: %w", oerrors.ErrGit, err)
	}

	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("%w: staging files: %w", oerrors.ErrGit, err)
	}

	name, ok := c.ConfigValue(ConfigUserName)
	if !ok {
		name = fallbackAuthorName
	}
	email, ok := c.ConfigValue(ConfigUserEmail)
	if !ok {
		email = fallbackAuthorEmail
	}

	_, err = wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: creating commit: %w", oerrors.ErrGit, err)
	}

	return nil
}

// IsAvailable reports true: go-git is compiled in, so the capability cannot
// be missing the way an external binary can. The method exists so fakes and
// future exec-based clients can report honestly.
func (c *GoGitClient) IsAvailable() bool {
	return true
}

// ConfigValue reads a key from the global git configuration.
func (c *GoGitClient) ConfigValue(key string) (string, bool) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return "", false
	}

	var value string
	switch key {
	case ConfigUserName:
		value = cfg.User.Name
	case ConfigUserEmail:
		value = cfg.User.Email
	default:
		return "", false
	}

	if value == "" {
		return "", false
	}
	return value, true
}

// trySSHAuth attempts to configure SSH authentication from common key paths.
func trySSHAuth() transport.AuthMethod {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	keyPaths := []string{
		filepath.Join(homeDir, ".ssh", "id_ed25519"),
		filepath.Join(homeDir, ".ssh", "id_rsa"),
		filepath.Join(homeDir, ".ssh", "id_ecdsa"),
	}

	for _, keyPath := range keyPaths {
		if _, err := os.Stat(keyPath); err == nil {
			auth, err := ssh.NewPublicKeysFromFile("git", keyPath, "")
			if err == nil {
				return auth
			}
		}
	}

	return nil
}

// tryHTTPAuth attempts to configure HTTP authentication from env tokens.
func tryHTTPAuth() transport.AuthMethod {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "x-access-token",
			Password: token,
		}
	}

	if token := os.Getenv("GITLAB_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "gitlab-ci-token",
			Password: token,
		}
	}

	if token := os.Getenv("GIT_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "git",
			Password: token,
		}
	}

	return nil
}
