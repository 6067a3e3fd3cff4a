// Package fsutil provides filesystem helpers for template materialization.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	oerrors "github.com/forgelabs/forge/internal/errors"
)

// CopyTree recursively copies src into dst, creating dst (and parents) if
// absent. Entries whose base name appears in exclude are skipped at every
// depth. Existing files in dst are left alone unless a source entry of the
// same name overwrites them. The first failure aborts the remaining tree;
// no partial-copy cleanup is attempted.
func CopyTree(src, dst string, exclude map[string]struct{}) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("creating directory %s", dst))
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("reading directory %s", src))
	}

	for _, entry := range entries {
		name := entry.Name()
		if _, skip := exclude[name]; skip {
			continue
		}

		srcPath := filepath.Join(src, name)
		dstPath := filepath.Join(dst, name)

		// Resolve through symlinks so a linked directory is walked,
		// matching the copy-through-link behavior of the file path below.
		info, err := os.Stat(srcPath)
		if err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("stat %s", srcPath))
		}

		if info.IsDir() {
			if err := CopyTree(srcPath, dstPath, exclude); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

// copyFile copies a single regular file byte-for-byte. Symlinks are followed,
// not preserved.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("opening %s", src))
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("creating %s", dst))
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return oerrors.WrapIO(err, fmt.Sprintf("copying %s to %s", src, dst))
	}

	if err := out.Close(); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("closing %s", dst))
	}

	return nil
}

// IsDirEmpty reports whether path is a directory with no entries.
func IsDirEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, oerrors.WrapIO(err, fmt.Sprintf("reading directory %s", path))
	}
	return len(entries) == 0, nil
}
