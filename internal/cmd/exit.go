// Package cmd provides command implementations for the forge CLI.
package cmd

// Exit codes for the forge CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitNotFound indicates an unknown language or template.
	ExitNotFound = 2

	// ExitGitError indicates a clone or local repository operation failed.
	ExitGitError = 3

	// ExitDirectoryExists indicates the materialization target collided.
	ExitDirectoryExists = 4

	// ExitIOError indicates a filesystem failure.
	ExitIOError = 5

	// ExitGitUnavailable indicates the git capability check failed.
	ExitGitUnavailable = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitNotFound:
		return "Not Found"
	case ExitGitError:
		return "Git Error"
	case ExitDirectoryExists:
		return "Directory Exists"
	case ExitIOError:
		return "IO Error"
	case ExitGitUnavailable:
		return "Git Unavailable"
	default:
		return "Unknown"
	}
}
