// Package errors provides sentinel errors for the forge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrTemplateNotFound indicates an unknown language identifier.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrGitClone indicates a template repository clone failure.
	ErrGitClone = errors.New("git clone failed")

	// ErrGit indicates a local git operation failure (init, commit).
	ErrGit = errors.New("git error")

	// ErrGitNotAvailable indicates the git capability check failed.
	ErrGitNotAvailable = errors.New("git not available")

	// ErrDirectoryExists indicates a materialization target collision.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrIO indicates a filesystem read/write/copy/remove failure.
	ErrIO = errors.New("io error")

	// ErrConfig indicates malformed or unreadable user preferences.
	ErrConfig = errors.New("configuration error")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewTemplateNotFoundError creates a template-not-found error for a language.
func NewTemplateNotFoundError(language string, known []string) error {
	return &DetailError{
		Type:    "template not found",
		Message: fmt.Sprintf("no template registered for language %q", language),
		Hint:    fmt.Sprintf("Known languages: %s", strings.Join(known, ", ")),
		Cause:   ErrTemplateNotFound,
	}
}

// NewDirectoryExistsError creates a destination-collision error.
func NewDirectoryExistsError(path string) error {
	return &DetailError{
		Type:     "directory already exists",
		Message:  fmt.Sprintf("target directory %s already exists", path),
		Location: path,
		Hint:     "Pass --yes to overwrite, or choose a different name.",
		Cause:    ErrDirectoryExists,
	}
}

// NewGitCloneError creates a clone failure error for a repository URL.
func NewGitCloneError(repository string, cause error) error {
	return &DetailError{
		Type:    "git clone failed",
		Message: fmt.Sprintf("cloning %s: %v", repository, cause),
		Context: map[string]string{"Repository": repository},
		Hint:    "Check network connectivity and repository access.",
		Cause:   fmt.Errorf("%w: %w", ErrGitClone, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapIO wraps a filesystem error with ErrIO and a description.
func WrapIO(err error, message string) error {
	return fmt.Errorf("%s: %w: %w", message, ErrIO, err)
}
