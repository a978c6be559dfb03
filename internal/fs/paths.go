package fs

import (
	"os"
	"path/filepath"
)

// Parent returns the parent of path. The filesystem root has no parent.
func Parent(path string) (string, bool) {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// IsAccessible reports whether path is a directory that can be opened for
// listing.
func IsAccessible(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// Exists reports whether path exists and is a directory.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Resolve makes path absolute, defaulting to the working directory.
func Resolve(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		return os.UserHomeDir()
	}
	return filepath.Abs(path)
}
