package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitSuccess, "Success"},
		{ExitGeneralError, "General Error"},
		{ExitNotFound, "Not Found"},
		{ExitGitError, "Git Error"},
		{ExitDirectoryExists, "Directory Exists"},
		{ExitIOError, "IO Error"},
		{ExitGitUnavailable, "Git Unavailable"},
		{99, "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCodeName(tt.code))
	}
}
