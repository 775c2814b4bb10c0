package drafts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"threads-cli/internal/services"
)

// AppDirName is the directory created under the cache root.
const AppDirName = "threads-cli"

// emptyContent is the canonical empty store.
var emptyContent = []byte("[]\n")

// CacheDir returns the directory bare draft filenames are placed in, without
// creating it.
func CacheDir() (string, error) {
	root := os.Getenv("XDG_CACHE_HOME")
	if root == "" {
		home := strings.TrimSpace(os.Getenv("HOME"))
		if home == "" {
			return "", services.Wrap(services.ErrConfiguration, "drafts", "resolve path", "HOME environment variable is not set", nil)
		}
		root = filepath.Join(home, ".cache")
	}
	return filepath.Join(root, AppDirName), nil
}

// ResolvePath returns the location of the drafts store for path and guarantees
// a file exists there. Existing content is never modified.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", services.Wrap(services.ErrValidation, "drafts", "resolve path", "drafts file path is empty", nil)
	}

	resolved := path
	if isBareName(path) {
		exists, err := fileExists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			dir, err := CacheDir()
			if err != nil {
				return "", err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create drafts directory %q: %w", dir, err)
			}
			resolved = filepath.Join(dir, path)
		}
	}

	if err := ensureFile(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

func isBareName(path string) bool {
	return !strings.ContainsRune(path, '/') && !strings.ContainsRune(path, filepath.Separator)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat drafts file %q: %w", path, err)
}

// ensureFile creates path with the empty store content unless something is
// already there. O_EXCL keeps a concurrently created file intact.
func ensureFile(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create drafts file %q: %w", path, err)
	}
	if _, err := file.Write(emptyContent); err != nil {
		file.Close()
		return fmt.Errorf("initialize drafts file %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close drafts file %q: %w", path, err)
	}
	return nil
}
