package capture

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

var _ Source = (*FileSource)(nil)

// FileSource serves a single pair of help files, whatever command is asked for.
type FileSource struct {
	fs       afero.Fs
	visible  string
	complete string
}

// NewFileSource returns a source reading visible and, when not empty, complete from fs.
func NewFileSource(fs afero.Fs, visible string, complete string) (*FileSource, error) {
	visible = strings.TrimSpace(visible)
	if visible == "" {
		return nil, fmt.Errorf("visible help file cannot be empty")
	}

	return &FileSource{
		fs:       fs,
		visible:  visible,
		complete: strings.TrimSpace(complete),
	}, nil
}

func (s *FileSource) Capture(_ context.Context, command string) (Capture, error) {
	visible, err := readLines(s.fs, s.visible)
	if err != nil {
		return Capture{}, fmt.Errorf("%w: command '%s': %w", ErrCaptureNotFound, command, err)
	}

	c := Capture{
		Visible:       visible,
		VisibleOrigin: s.visible,
	}
	if s.complete == "" {
		return c, nil
	}

	complete, err := readLines(s.fs, s.complete)
	if err != nil {
		return Capture{}, fmt.Errorf("%w: command '%s': %w", ErrCaptureNotFound, command, err)
	}
	c.Complete = complete
	c.HasComplete = true
	c.CompleteOrigin = s.complete

	return c, nil
}

func readLines(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	return SplitLines(string(data)), nil
}
