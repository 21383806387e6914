package helptext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mozilla-ai/helpspec/internal/spec"
)

func TestLayoutOption(t *testing.T) {
	t.Parallel()

	pad := strings.Repeat(" ", helpColumn)

	tests := []struct {
		name string
		opt  spec.Option
		want []string
	}{
		{
			name: "label and help on one row",
			opt:  spec.Option{ShortName: "q", LongName: "quiet", Help: "be quiet"},
			want: []string{"    -q, --quiet           be quiet"},
		},
		{
			name: "bare short label",
			opt:  spec.Option{ShortName: "z"},
			want: []string{"    -z"},
		},
		{
			name: "overflowing label",
			opt:  spec.Option{LongName: "abcdefghijklmnopqrstuvwx", Help: "short help"},
			want: []string{
				"    --abcdefghijklmnopqrstuvwx",
				pad + "short help",
			},
		},
		{
			name: "label at the overflow width",
			opt:  spec.Option{LongName: "abcdefghijklmnopqrs", Help: "x"},
			want: []string{
				"    --abcdefghijklmnopqrs",
				pad + "x",
			},
		},
		{
			name: "overflowing label without help",
			opt:  spec.Option{LongName: "allow-empty-message-without-help"},
			want: []string{"    --allow-empty-message-without-help", ""},
		},
		{
			name: "numeric placeholder",
			opt:  spec.Option{Numeric: true, Help: "show only the last NUM lines"},
			want: []string{"    -NUM                  show only the last NUM lines"},
		},
		{
			name: "attached optional argument",
			opt:  spec.Option{LongName: "depth", Argument: "[=<n>]", Optional: true, Help: "limit"},
			want: []string{"    --depth[=<n>]         limit"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, LayoutOption(&tc.opt))
		})
	}
}

func TestLayoutOption_WrapsAtLastSpaceInWindow(t *testing.T) {
	t.Parallel()

	// A 24 column label, and 200 columns of help whose only space in the window is at offset 40.
	help := strings.Repeat("a", 40) + " " + strings.Repeat("b", 159)
	opt := &spec.Option{LongName: "abcdefghijklmnopqr", Help: help}

	rows := LayoutOption(opt)
	pad := strings.Repeat(" ", helpColumn)

	require.Equal(t, []string{
		"    --abcdefghijklmnopqr  " + strings.Repeat("a", 40),
		pad + strings.Repeat("b", wrapWindow),
		pad + strings.Repeat("b", wrapWindow),
		pad + strings.Repeat("b", 51),
	}, rows)
	require.Len(t, rows[0], helpColumn+40)

	for _, row := range rows {
		require.Less(t, len(row), lineLimit)
	}
}

func TestBreakPoint(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, breakPoint("hello world"))
	require.Equal(t, wrapWindow, breakPoint(strings.Repeat("x", 80)))
	require.Equal(t, 3, breakPoint("abc"))
	// A space at offset zero is not a break point.
	require.Equal(t, wrapWindow, breakPoint(" "+strings.Repeat("x", 80)))
}

func TestRender(t *testing.T) {
	t.Parallel()

	s := &spec.CommandSpec{
		ID:          "notesAdd",
		DisplayName: "notes add",
		Usage:       []string{"usage: git notes add [<options>] [<object>]", ""},
		Entries: []spec.Entry{
			spec.NewOptionEntry(spec.Option{Name: "force", ShortName: "f", LongName: "force", Help: "replace existing notes"}),
			spec.NewGroupLine(),
			spec.NewTextLine("Internal options"),
			spec.NewOptionEntry(spec.Option{Name: "ref", LongName: "ref", Argument: "<notes-ref>", Hidden: true, Help: "use notes from <notes-ref>"}),
		},
	}

	got := Render(s)

	require.Equal(t, []string{
		"usage: git notes add [<options>] [<object>]",
		"",
		"    -f, --force           replace existing notes",
		"",
		"Internal options",
		"",
	}, got.Visible)
	require.Equal(t, []string{
		"usage: git notes add [<options>] [<object>]",
		"",
		"    -f, --force           replace existing notes",
		"",
		"Internal options",
		"    --ref <notes-ref>     use notes from <notes-ref>",
		"",
	}, got.Complete)
}

func TestRender_UsageOnly(t *testing.T) {
	t.Parallel()

	s := &spec.CommandSpec{
		ID:          "writeTree",
		DisplayName: "write-tree",
		Usage:       []string{"usage: git write-tree [--missing-ok] [--prefix=<prefix>/]", ""},
	}

	got := Render(s)
	require.Equal(t, s.Usage, got.Visible)
	require.Equal(t, s.Usage, got.Complete)
}
