package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarConfigFile = "HELPSPEC_CONFIG_FILE"
	EnvVarLogPath    = "HELPSPEC_LOG_PATH"
	EnvVarLogLevel   = "HELPSPEC_LOG_LEVEL"

	// Defaults
	DefaultConfigFile = ".helpspec.toml"
	DefaultLogPath    = ""
	DefaultLogLevel   = "info"

	// Flag names
	FlagNameConfigFile = "config-file"
	FlagNameLogPath    = "log-path"
	FlagNameLogLevel   = "log-level"
)

var (
	ConfigFile string
	LogPath    string
	LogLevel   string
)

// InitFlags registers the global flags on fs. Values not already set fall back to their
// environment variable, then to the default.
func InitFlags(fs *pflag.FlagSet) {
	initConfigFile(fs)
	initLogger(fs)
}

func initConfigFile(fs *pflag.FlagSet) {
	if ConfigFile == "" {
		ConfigFile = fromEnv(EnvVarConfigFile, DefaultConfigFile)
	}
	fs.StringVar(&ConfigFile, FlagNameConfigFile, ConfigFile, "path to config file")
}

func initLogger(fs *pflag.FlagSet) {
	if LogPath == "" {
		LogPath = fromEnv(EnvVarLogPath, DefaultLogPath)
	}
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")

	if LogLevel == "" {
		LogLevel = strings.ToLower(fromEnv(EnvVarLogLevel, DefaultLogLevel))
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for helpspec logs (trace, debug, info, warn, error, off)")
}

func fromEnv(name string, fallback string) string {
	if env := strings.TrimSpace(os.Getenv(name)); env != "" {
		return env
	}

	return fallback
}
