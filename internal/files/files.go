package files

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/mozilla-ai/helpspec/internal/perms"
)

// AppDirName returns the name used for helpspec's own directories and files.
func AppDirName() string {
	return "helpspec"
}

// EnsureAtLeastRegularDir creates a directory with standard permissions if it doesn't exist,
// and verifies that it has at least the required regular permissions if it already exists.
// It does not attempt to repair ownership or permissions: if they are wrong, it returns an error.
// Used for the artifacts directory.
func EnsureAtLeastRegularDir(fs afero.Fs, path string) error {
	return ensureAtLeastDir(fs, path, perms.RegularDir)
}

// ensureAtLeastDir creates a directory with the specified permissions if it doesn't exist,
// and verifies that it has at least the required permissions if it already exists.
// Symlinked directories are rejected when the filesystem can tell.
func ensureAtLeastDir(fs afero.Fs, path string, perm os.FileMode) error {
	if err := fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", path, err)
	}

	info, err := lstat(fs, path)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("path '%s' is a symlink, not a directory", path)
	}

	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a directory", path)
	}

	if !isPermissionAcceptable(info.Mode().Perm(), perm) {
		return fmt.Errorf(
			"incorrect permissions for directory '%s' (%#o, want %#o or more restrictive)",
			path, info.Mode().Perm(),
			perm,
		)
	}

	return nil
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}

	return fs.Stat(path)
}

// isPermissionAcceptable checks if the actual permissions are acceptable for the required permissions.
// It returns true if the actual permissions are equal to or more restrictive than required.
// "More restrictive" means: no permission bit set in actual that isn't also set in required.
func isPermissionAcceptable(actual, required os.FileMode) bool {
	return (actual & ^required) == 0
}
