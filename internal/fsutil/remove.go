//go:build !windows

package fsutil

import (
	"fmt"
	"os"

	oerrors "github.com/forgelabs/forge/internal/errors"
)

// RemoveTreeRobust deletes a directory tree. Removing a path that does not
// exist is a no-op success. On POSIX platforms a single removal attempt
// suffices; the retry dance lives in the Windows variant.
func RemoveTreeRobust(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("removing directory %s", path))
	}

	return nil
}
