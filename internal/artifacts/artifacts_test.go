package artifacts

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/mozilla-ai/helpspec/internal/capture"
	"github.com/mozilla-ai/helpspec/internal/helptext"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

var allToggles = Toggles{Specs: true, Raw: true, Parse: true, Test: true, Debug: true}

func newTestWriter(t *testing.T, toggles Toggles) (*Writer, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	w, err := NewWriter(fs, "/out", "", toggles, nil)
	require.NoError(t, err)

	return w, fs
}

func readArtifact(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, filepath.Join("/out", name))
	require.NoError(t, err)

	return string(data)
}

func sampleExtraction(t *testing.T) (capture.Capture, *helptext.Extraction) {
	t.Helper()

	c := capture.Capture{
		Visible:        []string{"usage: git x", "", "    -a, --all             everything", ""},
		Complete:       []string{"usage: git x", "", "    -a, --all             everything", "    --debug", ""},
		HasComplete:    true,
		VisibleOrigin:  "git x -h",
		CompleteOrigin: "git x --help-all",
	}

	ex, err := helptext.Extract("x", c.Visible, c.Complete)
	require.NoError(t, err)

	return c, ex
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	_, err := NewWriter(nil, "/out", "", allToggles, nil)
	require.Error(t, err)

	w, fs := newTestWriter(t, allToggles)
	require.Equal(t, "/out/"+DefaultSpecFile, w.SpecPath())

	ok, err := afero.DirExists(fs, "/out")
	require.NoError(t, err)
	require.True(t, ok)

	w, err = NewWriter(fs, "/out", "/elsewhere/git-specs.txt", allToggles, nil)
	require.NoError(t, err)
	require.Equal(t, "/elsewhere/git-specs.txt", w.SpecPath())
}

func TestWriter_Reset(t *testing.T) {
	t.Parallel()

	w, fs := newTestWriter(t, Toggles{})
	require.NoError(t, afero.WriteFile(fs, "/out/"+TestHelpFile, []byte("stale"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/out/"+DefaultSpecFile, []byte("stale"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/out/"+MarkdownFile, []byte("stale"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/out/"+HTMLFile, []byte("stale"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/out/unrelated.txt", []byte("keep"), 0o644))

	require.NoError(t, w.Reset())

	for _, name := range []string{TestHelpFile, DefaultSpecFile, MarkdownFile, HTMLFile} {
		ok, err := afero.Exists(fs, "/out/"+name)
		require.NoError(t, err)
		require.False(t, ok, name)
	}

	ok, err := afero.Exists(fs, "/out/unrelated.txt")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWriter_DisabledArtifactsNotCreated(t *testing.T) {
	t.Parallel()

	w, fs := newTestWriter(t, Toggles{})
	c, ex := sampleExtraction(t)

	require.NoError(t, w.WriteSpecs(ex.Spec))
	require.NoError(t, w.WriteRaw("x", c))
	require.NoError(t, w.WriteParse("x", ex))
	require.NoError(t, w.WriteTest("x", c, helptext.Render(ex.Spec), nil))
	require.NoError(t, w.WriteUsageNotes("x", ex))

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWriter_WriteSpecs(t *testing.T) {
	t.Parallel()

	w, fs := newTestWriter(t, allToggles)
	_, ex := sampleExtraction(t)

	require.NoError(t, w.WriteSpecs(ex.Spec))
	require.NoError(t, w.WriteSpecs(&spec.CommandSpec{ID: "y", DisplayName: "y", Usage: []string{"usage: git y"}}))

	got := readArtifact(t, fs, DefaultSpecFile)
	require.Equal(t, `command x "x"
    usage
        "usage: git x"
    option all
        shortname: a
        longname: all
        type: bool
        help: "everything"
    option debug
        longname: debug
        hidden
        type: bool
command y "y"
    usage
        "usage: git y"
`, got)
}

func TestWriter_WriteRaw(t *testing.T) {
	t.Parallel()

	w, fs := newTestWriter(t, allToggles)
	c, _ := sampleExtraction(t)

	require.NoError(t, w.WriteRaw("x", c))

	got := readArtifact(t, fs, RawHelpFile)
	require.True(t, strings.HasPrefix(got, captureRule+"\ngit x -h\n"+originRule+"\nusage: git x\n"))
	require.Contains(t, got, originRule+"\ngit x --help-all\n"+originRule+"\n")
	require.Contains(t, got, "    --debug\n")
}

func TestWriter_WriteParse(t *testing.T) {
	t.Parallel()

	w, fs := newTestWriter(t, allToggles)
	_, ex := sampleExtraction(t)

	require.NoError(t, w.WriteParse("x", ex))

	got := readArtifact(t, fs, ParseHelpFile)
	require.True(t, strings.HasPrefix(got, commandRule+"\nx\n"+sectionRule+"\nusage: git x\n\n"+sectionRule+"\n"))
	require.Contains(t, got, "#    --debug\n")
	require.Contains(t, got, "command x \"x\"\n")
}

func TestWriter_WriteTest(t *testing.T) {
	t.Parallel()

	t.Run("match", func(t *testing.T) {
		t.Parallel()

		w, fs := newTestWriter(t, allToggles)
		c, ex := sampleExtraction(t)
		rendered := helptext.Render(ex.Spec)

		require.NoError(t, w.WriteTest("x", c, rendered, helptext.Verify("x", rendered, c.Visible, c.Complete)))

		got := readArtifact(t, fs, TestHelpFile)
		require.Equal(t, 2, strings.Count(got, sectionRule+" old:\n"))
		require.True(t, strings.HasSuffix(got, sectionRule+"\nGenerated matches original\n"))
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()

		w, fs := newTestWriter(t, allToggles)
		c, ex := sampleExtraction(t)
		c.Visible = []string{"usage: git x", "", "    -a, --all             all of it", ""}
		rendered := helptext.Render(ex.Spec)

		verifyErr := helptext.Verify("x", rendered, c.Visible, c.Complete)
		require.Error(t, verifyErr)
		require.NoError(t, w.WriteTest("x", c, rendered, verifyErr))

		got := readArtifact(t, fs, TestHelpFile)
		require.Contains(t, got, "Error: ")
		require.Contains(t, got, "visible help differs at line 3")
		require.Contains(t, got, "+    -a, --all             everything\n")
	})
}

func TestWriter_WriteUsageNotes(t *testing.T) {
	t.Parallel()

	w, fs := newTestWriter(t, allToggles)

	usageOnly, err := helptext.Extract("write-tree", []string{"usage: git write-tree", ""}, nil)
	require.NoError(t, err)
	require.NoError(t, w.WriteUsageNotes("write-tree", usageOnly))

	unterminated, err := helptext.Extract("tool", []string{"usage: git tool", "", "Actions", "    -l, --list            list"}, nil)
	require.NoError(t, err)
	require.NoError(t, w.WriteUsageNotes("tool", unterminated))

	require.Equal(t, noteRule+"\nwrite-tree\nusage: git write-tree\n\n", readArtifact(t, fs, UsageOnlyFile))
	require.Equal(t, noteRule+"\ntool\nusage: git tool\n\n", readArtifact(t, fs, UsageNonBlankFile))
}
