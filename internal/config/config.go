package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Discovery settings
	SourcePath    string   `mapstructure:"source_path"`
	GeneratedFile string   `mapstructure:"generated_file"`
	PathsToIgnore []string `mapstructure:"paths_to_ignore"`

	// Output settings
	LogLevel    string `mapstructure:"log_level"`
	NoColor     bool   `mapstructure:"no_color"`
	Progress    bool   `mapstructure:"progress"`
	Interactive bool   `mapstructure:"interactive"`

	// Command flags
	Flags Flags `mapstructure:"-"`
}

// Flags holds command-line flags
type Flags struct {
	LogLevel    string
	NoColor     bool
	Progress    bool
	Interactive bool
	Output      string
	TestCases   bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		SourcePath:    DefaultSourcePath,
		GeneratedFile: DefaultGeneratedFile,
		LogLevel:      DefaultLogLevel,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the .env file, an optional config file
// and MINUNIT_* environment variables, in increasing order of precedence.
// An empty path means DefaultConfigFile in the working directory, which may be absent.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}

	cfg := New()

	vip := viper.New()
	vip.SetConfigType("yaml")
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("source_path", cfg.SourcePath)
	vip.SetDefault("generated_file", cfg.GeneratedFile)
	vip.SetDefault("paths_to_ignore", cfg.PathsToIgnore)
	vip.SetDefault("log_level", cfg.LogLevel)
	vip.SetDefault("no_color", false)
	vip.SetDefault("progress", false)
	vip.SetDefault("interactive", false)

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
		if explicit || !missing {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ApplyFlags copies parsed flags into the config. Set flags override loaded values.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.Progress {
		c.Progress = true
	}
	if flags.Interactive {
		c.Interactive = true
	}
	if flags.Output != "" {
		c.GeneratedFile = flags.Output
	}
}

// GetSourcePath returns the discovery root, using args[0] if provided
func (c *Config) GetSourcePath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return filepath.Clean(args[0])
	}
	return filepath.Clean(c.SourcePath)
}
