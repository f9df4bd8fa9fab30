package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyDB       = "db"
	KeyLogFile  = "log.file"
	KeyLogLevel = "log.level"
	KeyVerbose  = "verbose"

	envPrefix = "HUDDLE"
)

// Config is the resolved runtime configuration. Precedence, highest first:
// flags, HUDDLE_* environment variables, config file, defaults.
type Config struct {
	DBPath     string
	LogFile    string
	LogLevel   string
	Verbose    bool
	ConfigFile string // empty when no file was read
}

// RegisterFlags adds the global flags that feed Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ~/.huddle/config.yaml)")
	fs.String(KeyDB, "", "path to the SQLite database")
	fs.BoolP(KeyVerbose, "v", false, "log to stderr instead of the log file")
}

// Load resolves the configuration. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	baseDir := filepath.Join(home, ".huddle")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDB, filepath.Join(baseDir, "nfl_data.db"))
	v.SetDefault(KeyLogFile, filepath.Join(baseDir, "huddle.log"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyVerbose, false)

	var explicitFile string
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			explicitFile = f.Value.String()
		}
		for _, key := range []string{KeyDB, KeyVerbose} {
			if f := fs.Lookup(key); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.AddConfigPath(baseDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{
		DBPath:     expandHome(v.GetString(KeyDB), home),
		LogFile:    expandHome(v.GetString(KeyLogFile), home),
		LogLevel:   v.GetString(KeyLogLevel),
		Verbose:    v.GetBool(KeyVerbose),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
