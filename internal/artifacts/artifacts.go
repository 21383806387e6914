// Package artifacts writes the spec file and the optional debugging logs produced while extracting.
// Every file is plain text appended to in command order, so a run can be compared with a previous one using diff.
package artifacts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/mozilla-ai/helpspec/internal/capture"
	"github.com/mozilla-ai/helpspec/internal/files"
	"github.com/mozilla-ai/helpspec/internal/helptext"
	"github.com/mozilla-ai/helpspec/internal/perms"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

const (
	DefaultSpecFile   = "command-specs.txt"
	RawHelpFile       = "rawhelp.txt"
	ParseHelpFile     = "parsehelp.txt"
	TestHelpFile      = "testhelp.txt"
	UsageOnlyFile     = "usageonly.txt"
	UsageNonBlankFile = "usagenonblank.txt"
)

const (
	commandRule = "==================="
	sectionRule = "-----------"
	captureRule = "-----------------------------------"
	originRule  = "--------"
	noteRule    = "--------------------"
)

// Toggles selects which artifacts are written.
type Toggles struct {
	// Specs writes the spec file.
	Specs bool

	// Raw writes the captured help of each command.
	Raw bool

	// Parse writes the blocks and parsed entries of each command.
	Parse bool

	// Test writes the captured and regenerated help of each command, and the verdict.
	Test bool

	// Debug writes the usage-only and unterminated-usage listings.
	Debug bool

	// Markdown writes the specs as a Markdown document.
	Markdown bool

	// HTML writes the specs as an HTML page.
	HTML bool
}

// Writer appends artifacts to files in a single directory.
type Writer struct {
	fs       afero.Fs
	dir      string
	specFile string
	toggles  Toggles
	logger   hclog.Logger

	mu sync.Mutex
}

// NewWriter returns a writer placing artifacts in dir, creating it when needed.
// An empty specFile uses DefaultSpecFile.
func NewWriter(fs afero.Fs, dir string, specFile string, toggles Toggles, logger hclog.Logger) (*Writer, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	specFile = strings.TrimSpace(specFile)
	if specFile == "" {
		specFile = DefaultSpecFile
	}

	if err := files.EnsureAtLeastRegularDir(fs, dir); err != nil {
		return nil, err
	}

	return &Writer{
		fs:       fs,
		dir:      dir,
		specFile: specFile,
		toggles:  toggles,
		logger:   logger.Named("artifacts"),
	}, nil
}

// Path returns the location of an artifact file.
func (w *Writer) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(w.dir, name)
}

// SpecPath returns the location of the spec file.
func (w *Writer) SpecPath() string {
	return w.Path(w.specFile)
}

// Reset removes artifact files left by a previous run, whether or not they are enabled now.
func (w *Writer) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, name := range []string{
		w.specFile,
		MarkdownFile,
		HTMLFile,
		RawHelpFile,
		ParseHelpFile,
		TestHelpFile,
		UsageOnlyFile,
		UsageNonBlankFile,
	} {
		path := w.Path(name)
		if err := w.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing stale artifact '%s': %w", path, err)
		}
	}

	return nil
}

// WriteSpecs appends the canonical form of specs to the spec file.
func (w *Writer) WriteSpecs(specs ...*spec.CommandSpec) error {
	if !w.toggles.Specs || len(specs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := spec.Encode(&buf, specs...); err != nil {
		return err
	}

	return w.append(w.specFile, buf.Bytes())
}

// WriteRaw appends the captured help of command.
func (w *Writer) WriteRaw(command string, c capture.Capture) error {
	if !w.toggles.Raw {
		return nil
	}

	var buf bytes.Buffer
	writeLines(&buf, captureRule, origin(c.VisibleOrigin, command), originRule)
	writeLines(&buf, c.Visible...)
	if c.HasComplete {
		writeLines(&buf, originRule, origin(c.CompleteOrigin, command), originRule)
		writeLines(&buf, c.Complete...)
	}

	return w.append(RawHelpFile, buf.Bytes())
}

// WriteParse appends the intermediate stages of an extraction.
func (w *Writer) WriteParse(command string, ex *helptext.Extraction) error {
	if !w.toggles.Parse || ex == nil {
		return nil
	}

	var buf bytes.Buffer
	writeLines(&buf, commandRule, command, sectionRule)
	writeLines(&buf, ex.Blocks.Usage...)
	writeLines(&buf, sectionRule)
	writeTagged(&buf, ex.Blocks.Options)
	writeLines(&buf, sectionRule)
	writeTagged(&buf, ex.Rejoined)
	writeLines(&buf, sectionRule)
	if err := spec.Encode(&buf, ex.Spec); err != nil {
		return err
	}

	return w.append(ParseHelpFile, buf.Bytes())
}

// WriteTest appends the captured and regenerated help of command and the verification verdict.
// The complete variants are only written when complete help was captured.
func (w *Writer) WriteTest(command string, c capture.Capture, rendered helptext.Rendered, verifyErr error) error {
	if !w.toggles.Test {
		return nil
	}

	var buf bytes.Buffer
	writeLines(&buf, commandRule, command)
	writeLines(&buf, sectionRule+" old:")
	writeLines(&buf, c.Visible...)
	writeLines(&buf, sectionRule+" new:")
	writeLines(&buf, rendered.Visible...)
	if c.HasComplete {
		writeLines(&buf, sectionRule+" old:")
		writeLines(&buf, c.Complete...)
		writeLines(&buf, sectionRule+" new:")
		writeLines(&buf, rendered.Complete...)
	}
	writeLines(&buf, sectionRule)

	var mismatch *helptext.MismatchError
	switch {
	case verifyErr == nil:
		writeLines(&buf, "Generated matches original")
	case errors.As(verifyErr, &mismatch):
		writeLines(&buf, "Error: "+mismatch.Error())
		_, _ = io.WriteString(&buf, mismatch.Diff())
	default:
		writeLines(&buf, "Error: "+verifyErr.Error())
	}

	return w.append(TestHelpFile, buf.Bytes())
}

// WriteUsageNotes records commands whose help has no options block,
// and commands whose usage block was not terminated by a blank line.
func (w *Writer) WriteUsageNotes(command string, ex *helptext.Extraction) error {
	if !w.toggles.Debug || ex == nil {
		return nil
	}

	if len(ex.Blocks.Options) == 0 {
		if err := w.appendNote(UsageOnlyFile, command, ex.Blocks.Usage); err != nil {
			return err
		}
	}
	if ex.Blocks.UnterminatedUsage {
		if err := w.appendNote(UsageNonBlankFile, command, ex.Blocks.Usage); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) appendNote(name string, command string, usage []string) error {
	var buf bytes.Buffer
	writeLines(&buf, noteRule, command)
	writeLines(&buf, usage...)

	return w.append(name, buf.Bytes())
}

func (w *Writer) append(name string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.Path(name)
	f, err := w.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perms.RegularFile)
	if err != nil {
		return fmt.Errorf("opening artifact '%s': %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing artifact '%s': %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing artifact '%s': %w", path, err)
	}

	w.logger.Trace("Wrote artifact", "path", path, "bytes", len(data))

	return nil
}

func origin(o string, command string) string {
	if o == "" {
		return command
	}

	return o
}

func writeLines(buf *bytes.Buffer, lines ...string) {
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
}

// writeTagged writes lines, marking hidden ones with a leading '#'.
func writeTagged(buf *bytes.Buffer, lines []helptext.LineTag) {
	for _, l := range lines {
		if l.Hidden {
			buf.WriteByte('#')
		}
		buf.WriteString(l.Text)
		buf.WriteByte('\n')
	}
}
