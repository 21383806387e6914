package helptext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	helpspecerrors "github.com/mozilla-ai/helpspec/internal/errors"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	rendered := Rendered{
		Visible:  []string{"usage: git x", "", "    -a                    all", ""},
		Complete: []string{"usage: git x", "", "    -a                    all", "    --debug", ""},
	}

	tests := []struct {
		name        string
		visible     []string
		complete    []string
		wantErr     bool
		wantVariant string
		wantLine    int
	}{
		{
			name:     "both variants match",
			visible:  rendered.Visible,
			complete: rendered.Complete,
		},
		{
			name:    "complete not captured",
			visible: rendered.Visible,
		},
		{
			name:        "visible content differs",
			visible:     []string{"usage: git x", "", "    -a                    everything", ""},
			complete:    rendered.Complete,
			wantErr:     true,
			wantVariant: VariantVisible,
			wantLine:    3,
		},
		{
			name:        "visible is shorter",
			visible:     []string{"usage: git x", ""},
			wantErr:     true,
			wantVariant: VariantVisible,
			wantLine:    3,
		},
		{
			name:        "complete differs",
			visible:     rendered.Visible,
			complete:    []string{"usage: git x", "", "    -a                    all", ""},
			wantErr:     true,
			wantVariant: VariantComplete,
			wantLine:    4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Verify("x", rendered, tc.visible, tc.complete)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, helpspecerrors.ErrRoundTripMismatch)

			var mismatch *MismatchError
			require.True(t, errors.As(err, &mismatch))
			require.Equal(t, "x", mismatch.Command)
			require.Equal(t, tc.wantVariant, mismatch.Variant)
			require.Equal(t, tc.wantLine, mismatch.Line)
		})
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()

	t.Run("content", func(t *testing.T) {
		t.Parallel()

		err := &MismatchError{
			Command:   "commit",
			Variant:   VariantVisible,
			Captured:  []string{"usage: git commit", "    -a                    all"},
			Generated: []string{"usage: git commit", "    -a                    every"},
			Line:      2,
		}

		require.Contains(t, err.Error(), "command 'commit': visible help differs at line 2")
		require.Contains(t, err.Error(), `generated "    -a                    every"`)
		require.Contains(t, err.Error(), `captured "    -a                    all"`)

		gen, ok := err.GeneratedLine()
		require.True(t, ok)
		require.Equal(t, "    -a                    every", gen)

		diff := err.Diff()
		require.Contains(t, diff, "--- captured visible")
		require.Contains(t, diff, "+++ generated visible")
		require.Contains(t, diff, "-    -a                    all")
		require.Contains(t, diff, "+    -a                    every")
	})

	t.Run("length", func(t *testing.T) {
		t.Parallel()

		err := &MismatchError{
			Command:   "commit",
			Variant:   VariantComplete,
			Captured:  []string{"usage: git commit", ""},
			Generated: []string{"usage: git commit"},
			Line:      2,
		}

		require.Contains(t, err.Error(), "captured complete help has 2 lines, generated has 1 lines")
		require.Contains(t, err.Error(), "generated (end of output)")

		_, ok := err.GeneratedLine()
		require.False(t, ok)
		line, ok := err.CapturedLine()
		require.True(t, ok)
		require.Equal(t, "", line)
	})
}
