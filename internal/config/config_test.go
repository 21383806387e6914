package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoader_InitThenLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	loader := &DefaultLoader{Fs: fs}

	require.NoError(t, loader.Init("/work/.helpspec.toml"))

	err := loader.Init("/work/.helpspec.toml")
	require.ErrorContains(t, err, "already exists")

	cfg, err := loader.Load("/work/.helpspec.toml")
	require.NoError(t, err)

	want := DefaultGit()
	assert.Equal(t, want.Tool, cfg.Tool)
	assert.Equal(t, want.Commands, cfg.Commands)
	assert.Equal(t, want.NoHelpAll, cfg.NoHelpAll)
	assert.Equal(t, want.Skip, cfg.Skip)
	assert.Equal(t, want.Adhoc, cfg.Adhoc)
	assert.Equal(t, want.Artifacts, cfg.Artifacts)
	assert.Equal(t, "/work/.helpspec.toml", cfg.Path())
}

func TestDefaultLoader_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		content        string
		expectedErrMsg string
		check          func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults fill missing values",
			content: `
commands = ["commit", "notes add"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultTool, cfg.Tool)
				assert.Equal(t, DefaultHelpFlag, cfg.HelpFlag)
				assert.Equal(t, DefaultHelpAllFlag, cfg.HelpAllFlag)
				assert.Equal(t, DefaultSpecFile, cfg.Artifacts.SpecFile)
				assert.True(t, cfg.Artifacts.Specs)
				assert.False(t, cfg.StrictAlignment)
			},
		},
		{
			name: "all values",
			content: `
tool = "hg"
help_flag = "--help"
help_all_flag = "--help --verbose"
commands = ["commit", "log"]
no_help_all = ["log"]
strict_alignment = true
timeout = "1m30s"
env = ["HGPLAIN=1"]

[artifacts]
dir = "out"
spec_file = "hg-specs.txt"
specs = false
test = true
debug = true
markdown = true
html = true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "hg", cfg.Tool)
				assert.Equal(t, "--help --verbose", cfg.HelpAllFlag)
				assert.True(t, cfg.StrictAlignment)
				assert.False(t, cfg.HasHelpAll("log"))
				assert.True(t, cfg.HasHelpAll("commit"))
				assert.Equal(t, []string{"HGPLAIN=1"}, cfg.Env)
				timeout, err := cfg.InvocationTimeout()
				require.NoError(t, err)
				assert.Equal(t, 90*time.Second, timeout)
				assert.Equal(t, ArtifactsConfig{
					Dir:      "out",
					SpecFile: "hg-specs.txt",
					Specs:    false,
					Test:     true,
					Debug:    true,
					Markdown: true,
					HTML:     true,
				}, cfg.Artifacts)
			},
		},
		{
			name:           "unknown key",
			content:        `comands = ["commit"]`,
			expectedErrMsg: "unknown key 'comands'",
		},
		{
			name:           "malformed toml",
			content:        `commands = [`,
			expectedErrMsg: "failed to decode config",
		},
		{
			name:           "empty tool",
			content:        `tool = " "`,
			expectedErrMsg: "'tool'",
		},
		{
			name:           "duplicate command",
			content:        `commands = ["commit", "commit"]`,
			expectedErrMsg: "duplicate command 'commit'",
		},
		{
			name:           "blank command",
			content:        `commands = ["commit", ""]`,
			expectedErrMsg: "command name cannot be empty",
		},
		{
			name:           "malformed timeout",
			content:        `timeout = "soon"`,
			expectedErrMsg: "timeout 'soon'",
		},
		{
			name:           "negative timeout",
			content:        `timeout = "-5s"`,
			expectedErrMsg: "'timeout'",
		},
		{
			name:           "env without value",
			content:        `env = ["LANG"]`,
			expectedErrMsg: "'env'",
		},
		{
			name: "reference to unknown command",
			content: `
commands = ["commit"]
adhoc = ["svn"]
`,
			expectedErrMsg: "'adhoc' lists 'svn'",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/cfg.toml", []byte(tc.content), 0o644))

			cfg, err := (&DefaultLoader{Fs: fs}).Load("/cfg.toml")
			if tc.expectedErrMsg != "" {
				require.ErrorIs(t, err, ErrConfigLoadFailed)
				require.ErrorContains(t, err, tc.expectedErrMsg)
				return
			}

			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestDefaultLoader_Load_Missing(t *testing.T) {
	t.Parallel()

	loader := &DefaultLoader{Fs: afero.NewMemMapFs()}

	_, err := loader.Load("/nope.toml")
	require.ErrorIs(t, err, ErrConfigLoadFailed)
	require.ErrorContains(t, err, "run: 'helpspec init'")

	_, err = loader.Load("  ")
	require.ErrorContains(t, err, "path cannot be empty")
}

func TestConfig_Extractable(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Commands = []string{"add", "gui", "commit", "shell"}
	cfg.Skip = []string{"gui", "shell"}
	cfg.Adhoc = []string{"commit"}

	require.NoError(t, cfg.Validate())
	require.Equal(t, []string{"add", "commit"}, cfg.Extractable())
	require.True(t, cfg.IsSkipped("gui"))
	require.True(t, cfg.IsAdhoc("commit"))
	require.False(t, cfg.IsAdhoc("add"))
}

func TestConfig_InvocationTimeout(t *testing.T) {
	t.Parallel()

	cfg := Default()
	timeout, err := cfg.InvocationTimeout()
	require.NoError(t, err)
	require.Zero(t, timeout)

	cfg.Timeout = " 250ms "
	timeout, err = cfg.InvocationTimeout()
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, timeout)

	cfg.Timeout = "0s"
	_, err = cfg.InvocationTimeout()
	require.ErrorIs(t, err, ErrInvalidValue)
}
