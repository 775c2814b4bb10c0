package fileutil

import (
	"fmt"
	"os"
)

// TempSuffix is appended to the target path to name the staging file used by
// WriteFileAtomic.
const TempSuffix = ".tmp"

// WriteFileAtomic writes data to path+TempSuffix, syncs it and renames it over
// path, so readers see either the old content or the new content. The temp
// file is removed on failure.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) (err error) {
	tmpPath := path + TempSuffix
	out, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// FileMode returns the permission bits of path, or fallback when it cannot be
// stat'ed.
func FileMode(path string, fallback os.FileMode) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}
