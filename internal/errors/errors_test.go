//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrTemplateNotFound, ErrGitClone)
	assert.NotEqual(t, ErrGitClone, ErrGit)
	assert.NotEqual(t, ErrDirectoryExists, ErrIO)
	assert.NotEqual(t, ErrConfig, ErrGitNotAvailable)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "git clone failed",
		Message:  "remote hung up",
		Location: "/home/user/.cache/forge/rust-starter",
		Context:  map[string]string{"Repository": "https://example.com/tpl.git"},
		Hint:     "Check network connectivity",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: git clone failed")
	assert.Contains(t, output, "Location: /home/user/.cache/forge/rust-starter")
	assert.Contains(t, output, "Repository: https://example.com/tpl.git")
	assert.Contains(t, output, "remote hung up")
	assert.Contains(t, output, "Hint: Check network connectivity")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrTemplateNotFound,
	}

	assert.True(t, errors.Is(detail, ErrTemplateNotFound))
	assert.Equal(t, ErrTemplateNotFound, detail.Unwrap())
}

func TestNewTemplateNotFoundError(t *testing.T) {
	err := NewTemplateNotFoundError("python", []string{"rust", "go"})

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
	assert.Contains(t, err.Error(), `"python"`)
	assert.Contains(t, err.Error(), "rust, go")
}

func TestNewDirectoryExistsError(t *testing.T) {
	err := NewDirectoryExistsError("/tmp/my-project")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryExists))
	assert.Contains(t, err.Error(), "/tmp/my-project")
	assert.Contains(t, err.Error(), "--yes")
}

func TestNewGitCloneError(t *testing.T) {
	cause := errors.New("authentication required")
	err := NewGitCloneError("https://example.com/tpl.git", cause)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrGitClone))
	assert.ErrorIs(t, err, cause)
}

func TestWrapIO(t *testing.T) {
	err := WrapIO(fs.ErrPermission, "copying file")

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "copying file")
}
