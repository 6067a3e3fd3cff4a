package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	require.NotNil(t, client)
	assert.True(t, client.IsAvailable())
}

func TestAuthForURLScheme(t *testing.T) {
	sshAuth := &ssh.PublicKeys{}
	httpAuth := &http.BasicAuth{Username: "git", Password: "token"}
	client := &GoGitClient{sshAuth: sshAuth, httpAuth: httpAuth}

	tests := []struct {
		name string
		url  string
		want transport.AuthMethod
	}{
		{name: "https uses token auth", url: "https://github.com/forgelabs/rust-starter", want: httpAuth},
		{name: "http uses token auth", url: "http://localhost/templates/go-starter", want: httpAuth},
		{name: "ssh scheme uses key auth", url: "ssh://git@github.com/forgelabs/rust-starter", want: sshAuth},
		{name: "scp-like uses key auth", url: "git@github.com:forgelabs/rust-starter.git", want: sshAuth},
		{name: "local path gets no auth", url: "/srv/templates/rust-starter", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.authFor(tt.url))
		})
	}
}

func TestCloneHTTPSWithSSHKeyDetected(t *testing.T) {
	// A detected SSH key must never be handed to an https clone; go-git's
	// HTTP transport rejects it before any network I/O. The canceled
	// context keeps the clone off the network either way.
	client := &GoGitClient{sshAuth: &ssh.PublicKeys{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Clone(ctx, "https://github.com/forgelabs/rust-starter", filepath.Join(t.TempDir(), "dest"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, transport.ErrInvalidAuthMethod)
}

func TestInitAndCommit(t *testing.T) {
	client := NewClient()
	dir := t.TempDir()

	require.NoError(t, client.Init(dir))
	assert.DirExists(t, filepath.Join(dir, ".git"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	require.NoError(t, client.Commit(dir, "Initial commit from forge"))

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "Initial commit from forge", commit.Message)
	assert.NotEmpty(t, commit.Author.Name)
	assert.NotEmpty(t, commit.Author.Email)
}

func TestCommitOnMissingRepo(t *testing.T) {
	client := NewClient()
	err := client.Commit(filepath.Join(t.TempDir(), "no-repo"), "msg")
	assert.Error(t, err)
}

func TestConfigValueUnknownKey(t *testing.T) {
	client := NewClient()
	_, ok := client.ConfigValue("core.editor")
	assert.False(t, ok)
}
