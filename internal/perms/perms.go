// Package perms holds the file and directory modes used when helpspec writes to disk.
package perms

import "os"

const (
	// RegularFile is used for the config file, the spec file and debug artifacts.
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir is used for the artifacts directory.
	// Mode 0755: owner read/write/execute, group read/execute, others read/execute.
	RegularDir os.FileMode = 0o755
)
