//go:build windows

package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	oerrors "github.com/forgelabs/forge/internal/errors"
)

const (
	// maxRemoveAttempts bounds the retry loop for directory removal.
	maxRemoveAttempts = 5

	// removeRetryDelay is the base backoff; attempt n waits n times this.
	removeRetryDelay = 100 * time.Millisecond
)

// RemoveTreeRobust deletes a directory tree, tolerating the transient
// access-denied failures Windows produces for read-only or recently-closed
// files. Removing a path that does not exist is a no-op success.
func RemoveTreeRobust(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	// Read-only attributes block deletion on Windows. Clearing them is
	// advisory: a failure here just means the removal below may need its
	// retries.
	clearReadOnly(path)

	var lastErr error
	for attempt := 1; attempt <= maxRemoveAttempts; attempt++ {
		if err := os.RemoveAll(path); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < maxRemoveAttempts {
			time.Sleep(time.Duration(attempt) * removeRetryDelay)
		}
	}

	return oerrors.WrapIO(lastErr,
		fmt.Sprintf("removing directory %s after %d attempts", path, maxRemoveAttempts))
}

// clearReadOnly strips read-only bits from every entry under path,
// best-effort.
func clearReadOnly(path string) {
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		_ = os.Chmod(p, info.Mode()|0o200)
		return nil
	})
}
