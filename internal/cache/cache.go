// Package cache keeps captured help on disk so repeated runs need not invoke the tool again.
package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/mozilla-ai/helpspec/internal/capture"
	"github.com/mozilla-ai/helpspec/internal/files"
)

var _ capture.Source = (*Cache)(nil)

// Cache wraps a capture source and stores what it returns, one file per help variant,
// in the layout read by capture.DirSource.
// NewCache should be used to create instances of Cache.
type Cache struct {
	fs     afero.Fs
	source capture.Source
	stored *capture.DirSource

	// dir is the directory where cache files are stored.
	dir string

	// ttl is the time-to-live for cached entries.
	ttl time.Duration

	// enabled determines if caching is enabled.
	enabled bool

	// refresh forces cache refresh when true.
	refresh bool

	// logger is used for logging cache operations.
	logger hclog.Logger
}

// NewCache creates a cache in front of source.
func NewCache(fs afero.Fs, source capture.Source, logger hclog.Logger, opts ...Option) (*Cache, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if source == nil {
		return nil, fmt.Errorf("capture source cannot be nil")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	options, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		fs:      fs,
		source:  source,
		dir:     options.dir,
		logger:  logger.Named("cache"),
		enabled: options.enabled,
		refresh: options.refreshCache,
		ttl:     options.ttl,
	}

	// Only create cache directory if caching is enabled.
	if options.enabled {
		if err := files.EnsureAtLeastRegularDir(fs, options.dir); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		if c.stored, err = capture.NewDirSource(fs, options.dir); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Dir returns the directory holding cached help.
func (c *Cache) Dir() string {
	return c.dir
}

// Capture returns the cached help for command while it is fresh, and otherwise captures it from
// the wrapped source and stores it. Failing to read or write the cache is logged, never returned.
func (c *Cache) Capture(ctx context.Context, command string) (capture.Capture, error) {
	if !c.enabled {
		return c.source.Capture(ctx, command)
	}

	visiblePath := c.stored.VisiblePath(command)

	switch {
	case c.refresh:
		c.logger.Debug("Cache refresh requested", "command", command)
	case c.isExpired(visiblePath):
		c.logger.Debug("Cache expired or missing", "command", command, "path", visiblePath)
	default:
		cached, err := c.stored.Capture(ctx, command)
		if err == nil {
			c.logger.Debug("Using cached help", "command", command, "path", visiblePath)
			return cached, nil
		}
		c.logger.Warn("Failed to read cached help, capturing again", "command", command, "error", err)
	}

	captured, err := c.source.Capture(ctx, command)
	if err != nil {
		return capture.Capture{}, err
	}

	if err := c.store(command, captured); err != nil {
		c.logger.Warn(
			"Failed to update cache",
			"command", command,
			"path", visiblePath,
			"error", err,
		)
	}

	return captured, nil
}

// store writes both variants of a capture. A command without a complete variant has no complete file.
func (c *Cache) store(command string, captured capture.Capture) error {
	if err := c.write(c.stored.VisiblePath(command), captured.Visible); err != nil {
		return err
	}

	completePath := c.stored.CompletePath(command)
	if !captured.HasComplete {
		if err := c.fs.Remove(completePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove stale cache file: %w", err)
		}
		return nil
	}

	return c.write(completePath, captured.Complete)
}

// write saves lines to path through a temporary file, so a reader never sees a partial file.
func (c *Cache) write(path string, lines []string) error {
	tmpFile, err := afero.TempFile(c.fs, c.dir, "tmp-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = c.fs.Remove(tmpPath) // Clean up on any error.
	}()

	if _, err := tmpFile.WriteString(joinLines(lines)); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	_ = tmpFile.Close()

	// Atomically rename to final location.
	if err := c.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename cache file: %w", err)
	}

	c.logger.Trace("Cached help", "path", path)
	return nil
}

// isExpired checks if a cache file is expired based on modification time.
func (c *Cache) isExpired(path string) bool {
	info, err := c.fs.Stat(path)
	if err != nil {
		return true // Treat missing as expired.
	}
	return time.Since(info.ModTime()) > c.ttl
}

// joinLines is the inverse of capture.SplitLines.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// DefaultDir returns the per-user directory for cached help.
func DefaultDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user cache directory: %w", err)
	}

	return filepath.Join(dir, files.AppDirName(), "captures"), nil
}
