package cmd

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestBaseCmd_Logger(t *testing.T) {
	t.Parallel()

	t.Run("set logger is returned", func(t *testing.T) {
		t.Parallel()

		l := hclog.NewNullLogger()
		c := &BaseCmd{}
		c.SetLogger(l)
		require.Equal(t, l, c.Logger())
	})

	t.Run("fallback logger is cached", func(t *testing.T) {
		t.Parallel()

		c := &BaseCmd{}
		first := c.Logger()
		require.NotNil(t, first)
		require.Equal(t, "helpspec", first.Name())
		require.Same(t, first, c.Logger())
	})
}

func TestBaseCmd_ColorEnabled(t *testing.T) {
	t.Parallel()

	c := &BaseCmd{}
	require.False(t, c.ColorEnabled(&bytes.Buffer{}))
}
