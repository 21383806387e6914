package capture

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

var _ Source = (*DirSource)(nil)

const (
	visibleSuffix  = ".visible.txt"
	completeSuffix = ".complete.txt"
)

// DirSource reads help captured earlier, one '<slug>.visible.txt' and an optional
// '<slug>.complete.txt' per command.
type DirSource struct {
	fs  afero.Fs
	dir string
}

// NewDirSource returns a source reading from dir on fs.
func NewDirSource(fs afero.Fs, dir string) (*DirSource, error) {
	ok, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("checking capture directory '%s': %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("capture directory '%s' does not exist", dir)
	}

	return &DirSource{fs: fs, dir: dir}, nil
}

// VisiblePath returns the file holding the visible help of command.
func (s *DirSource) VisiblePath(command string) string {
	return filepath.Join(s.dir, Slug(command)+visibleSuffix)
}

// CompletePath returns the file holding the complete help of command.
func (s *DirSource) CompletePath(command string) string {
	return filepath.Join(s.dir, Slug(command)+completeSuffix)
}

// Capture reads the files for command. A missing complete file means there is no complete variant.
func (s *DirSource) Capture(_ context.Context, command string) (Capture, error) {
	visiblePath := s.VisiblePath(command)
	visible, err := readLines(s.fs, visiblePath)
	if err != nil {
		return Capture{}, fmt.Errorf("%w: command '%s': %w", ErrCaptureNotFound, command, err)
	}

	c := Capture{
		Visible:       visible,
		VisibleOrigin: visiblePath,
	}

	completePath := s.CompletePath(command)
	ok, err := afero.Exists(s.fs, completePath)
	if err != nil {
		return Capture{}, fmt.Errorf("checking '%s': %w", completePath, err)
	}
	if !ok {
		return c, nil
	}

	complete, err := readLines(s.fs, completePath)
	if err != nil {
		return Capture{}, fmt.Errorf("reading '%s': %w", completePath, err)
	}
	c.Complete = complete
	c.HasComplete = true
	c.CompleteOrigin = completePath

	return c, nil
}
