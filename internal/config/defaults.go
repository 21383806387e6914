package config

// DefaultGit returns the configuration written by 'helpspec init': every git command with built-in help,
// and the exceptions known for it.
func DefaultGit() *Config {
	cfg := Default()
	cfg.Commands = []string{
		"add", "am", "annotate", "apply", "archimport", "archive", "bisect", "blame", "branch", "bundle",
		"cat-file", "check-attr", "check-ignore", "check-mailmap", "checkout", "checkout-index",
		"check-ref-format", "cherry", "cherry-pick", "citool", "clean", "clone", "column", "commit",
		"commit-graph", "commit-graph read", "commit-graph verify", "commit-graph write", "commit-tree",
		"config", "count-objects", "credential", "credential-cache", "credential-store",
		"cvsexportcommit", "cvsimport", "cvsserver", "daemon", "describe", "diff", "diff-files",
		"diff-index", "diff-tree", "difftool", "fast-export", "fast-import", "fetch", "fetch-pack",
		"filter-branch", "fmt-merge-msg", "for-each-ref", "format-patch", "fsck", "gc",
		"get-tar-commit-id", "grep", "gui", "hash-object", "help", "http-backend", "http-fetch",
		"http-push", "imap-send", "index-pack", "init", "instaweb", "interpret-trailers", "log",
		"ls-files", "ls-remote", "ls-tree", "mailinfo", "mailsplit", "merge", "merge-base", "merge-file",
		"merge-index", "merge-one-file", "mergetool", "merge-tree", "mktag", "mktree", "mv", "name-rev",
		"notes", "notes add", "notes copy", "notes append", "notes edit", "notes show", "notes merge",
		"notes remove", "notes prune", "notes get-ref", "p4", "pack-objects", "pack-redundant",
		"pack-refs", "parse-remote", "patch-id", "prune", "prune-packed", "pull", "push", "quiltimport",
		"read-tree", "rebase", "receive-pack", "reflog", "reflog show", "reflog expire", "reflog delete",
		"reflog exists", "remote", "remote add", "remote rename", "remote set-head", "remote show",
		"remote prune", "remote update", "remote set-branches", "remote get-url", "remote set-url",
		"repack", "replace", "request-pull", "rerere", "reset", "revert", "rev-list", "rev-parse", "rm",
		"send-email", "send-pack", "shell", "shortlog", "show", "show-branch", "show-index", "show-ref",
		"sh-i18n", "sh-setup", "stash", "stage", "status", "stripspace", "submodule", "svn",
		"symbolic-ref", "tag", "unpack-file", "unpack-objects", "update-index", "update-ref",
		"update-server-info", "upload-archive", "upload-pack", "var", "verify-commit", "verify-pack",
		"verify-tag", "whatchanged", "worktree", "write-tree",
	}
	cfg.NoHelpAll = []string{
		"bisect", "commit-tree", "credential", "cvsexportcommit", "cvsimport", "diff", "fast-import",
		"filter-branch", "http-push", "mailsplit", "reflog", "rev-parse", "send-email", "stash", "svn",
		"unpack-file", "upload-archive",
	}
	cfg.Skip = []string{
		"archimport", "citool", "credential-cache", "cvsserver", "gui", "http-backend", "p4",
		"parse-remote", "sh-i18n", "sh-setup", "shell",
	}
	cfg.Adhoc = []string{
		"diff-files", "diff-index", "diff-tree", "rev-list", "send-email", "svn",
	}

	return cfg
}
