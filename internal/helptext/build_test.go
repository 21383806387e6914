package helptext

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mozilla-ai/helpspec/internal/errors"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

func readFixture(t *testing.T, name string) []string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestExtract_RoundTrip(t *testing.T) {
	t.Parallel()

	visible := readFixture(t, "commit.visible.txt")
	complete := readFixture(t, "commit.complete.txt")

	ex, err := Extract("commit", visible, complete)
	require.NoError(t, err)
	require.False(t, ex.Alignment.Ambiguous())
	require.Equal(t, len(complete)-len(visible), ex.Alignment.HiddenCount())

	s := ex.Spec
	require.Equal(t, "commit", s.ID)
	require.Equal(t, []string{"usage: git commit [<options>] [--] <pathspec>...", ""}, s.Usage)
	require.Len(t, s.Entries, 18)
	require.Equal(t, 2, s.HiddenCount())

	names := make([]string, 0, len(s.Entries))
	for _, o := range s.Options() {
		names = append(names, o.Name)
	}
	require.Equal(t, []string{
		"quiet", "verbose", "file", "author", "date", "message", "reeditMessage", "squash",
		"debugInternal", "untrackedFiles", "depth", "nUM", "longHelpOption",
		"allowEmptyMessageWithoutHelp", "dryRun",
	}, names)

	require.Equal(t, spec.NewGroupLine(), s.Entries[2])
	require.Equal(t, spec.NewTextLine("Commit message options"), s.Entries[3])

	depth := s.Options()[10]
	require.Equal(t, spec.Option{
		Name:     "depth",
		LongName: "depth",
		Argument: "[=<n>]",
		Type:     spec.ArgTypeInt,
		Hidden:   true,
		Optional: true,
		Help:     "limit the depth of the history walk",
	}, *depth)

	message := s.Options()[5]
	require.Equal(t, "m", message.ShortName)
	require.Equal(t, "<message>", message.Argument)
	require.Equal(t, "commit message", message.Help)

	rendered := Render(s)
	require.Equal(t, visible, rendered.Visible)
	require.Equal(t, complete, rendered.Complete)
	require.NoError(t, Verify(s.DisplayName, rendered, visible, complete))
}

func TestExtract_HiddenLinesConserved(t *testing.T) {
	t.Parallel()

	visible := readFixture(t, "commit.visible.txt")
	complete := readFixture(t, "commit.complete.txt")

	ex, err := Extract("commit", visible, complete)
	require.NoError(t, err)

	rendered := Render(ex.Spec)
	require.Equal(t, len(rendered.Complete)-len(rendered.Visible), ex.Alignment.HiddenCount())
}

func TestExtract_VisibleOnly(t *testing.T) {
	t.Parallel()

	visible := readFixture(t, "commit.visible.txt")

	ex, err := Extract("commit", visible, nil)
	require.NoError(t, err)
	require.Zero(t, ex.Spec.HiddenCount())

	rendered := Render(ex.Spec)
	require.Equal(t, visible, rendered.Visible)
	require.Equal(t, visible, rendered.Complete)
}

func TestBuildSpec(t *testing.T) {
	t.Parallel()

	t.Run("command identifier from display name", func(t *testing.T) {
		t.Parallel()

		s, err := BuildSpec("commit-graph read", []string{"usage: git commit-graph read", ""}, nil)
		require.NoError(t, err)
		require.Equal(t, "commitGraphRead", s.ID)
		require.Equal(t, "commit-graph read", s.DisplayName)
		require.Empty(t, s.Entries)
	})

	t.Run("digit leading option name", func(t *testing.T) {
		t.Parallel()

		s, err := BuildSpec("apply", nil, tagged("    -3, --3way            attempt three-way merge"))
		require.NoError(t, err)
		require.Len(t, s.Options(), 1)
		require.Equal(t, "_3way", s.Options()[0].Name)
	})

	t.Run("short name only", func(t *testing.T) {
		t.Parallel()

		s, err := BuildSpec("mv", nil, tagged("    -k                    skip move/rename errors"))
		require.NoError(t, err)
		require.Equal(t, "k", s.Options()[0].Name)
	})

	t.Run("malformed option", func(t *testing.T) {
		t.Parallel()

		_, err := BuildSpec("broken", nil, tagged("    -"))
		require.ErrorIs(t, err, errors.ErrMalformedOption)
		require.Contains(t, err.Error(), "command 'broken'")
	})
}
