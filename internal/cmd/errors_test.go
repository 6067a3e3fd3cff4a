package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/forgelabs/forge/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "explicit exit error wins",
			err:  NewExitError(errors.New("boom"), ExitIOError),
			want: ExitIOError,
		},
		{
			name: "template not found",
			err:  fmt.Errorf("lookup: %w", oerrors.ErrTemplateNotFound),
			want: ExitNotFound,
		},
		{
			name: "directory exists",
			err:  oerrors.NewDirectoryExistsError("/tmp/demo"),
			want: ExitDirectoryExists,
		},
		{
			name: "clone failure",
			err:  oerrors.NewGitCloneError("https://example.com/tpl.git", errors.New("auth")),
			want: ExitGitError,
		},
		{
			name: "local git failure",
			err:  fmt.Errorf("commit: %w", oerrors.ErrGit),
			want: ExitGitError,
		},
		{
			name: "io failure",
			err:  oerrors.WrapIO(errors.New("disk full"), "copying"),
			want: ExitIOError,
		},
		{
			name: "git unavailable",
			err:  oerrors.Wrap(oerrors.ErrGitNotAvailable, "startup"),
			want: ExitGitUnavailable,
		},
		{
			name: "unknown error",
			err:  errors.New("mystery"),
			want: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestWrapExit(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, WrapExit(nil))
	})

	t.Run("sentinel chain determines code", func(t *testing.T) {
		err := WrapExit(oerrors.NewDirectoryExistsError("/tmp/demo"))

		var exitErr *ExitError
		assert.True(t, errors.As(err, &exitErr))
		assert.Equal(t, ExitDirectoryExists, exitErr.Code)

		// The original sentinel stays reachable through the wrapper
		assert.True(t, errors.Is(err, oerrors.ErrDirectoryExists))
	})
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewExitError(inner, ExitGeneralError)

	assert.Equal(t, "inner", err.Error())
	assert.Equal(t, inner, err.Unwrap())
}
