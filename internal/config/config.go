// Package config loads the gitmcp configuration from
// ~/.config/gitmcp/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultTimeout bounds each git invocation unless configured otherwise.
// The external tool can hang indefinitely on network or lock contention,
// so the server always ships with an explicit bound.
const DefaultTimeout = 5 * time.Minute

// LogConfig holds log file settings for serve mode.
// Rotation is handled by lumberjack.
type LogConfig struct {
	File       string `toml:"file"` // empty = default state path
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

// Config holds the gitmcp configuration.
type Config struct {
	GitBin      string        `toml:"git_bin"`
	DefaultRepo string        `toml:"default_repo"`
	Timeout     time.Duration `toml:"-"` // parsed from the timeout string
	Log         LogConfig     `toml:"log"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		GitBin:  "git",
		Timeout: DefaultTimeout,
		Log: LogConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns error if path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitmcp", "config.toml"), nil
}

// DefaultLogPath returns the default serve-mode log file location.
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "gitmcp", "gitmcp.log"), nil
}

// rawConfig is used for initial TOML parsing before the timeout string
// is converted to a duration.
type rawConfig struct {
	GitBin      string    `toml:"git_bin"`
	DefaultRepo string    `toml:"default_repo"`
	Timeout     string    `toml:"timeout"`
	Log         LogConfig `toml:"log"`
}

// Load reads config from ~/.config/gitmcp/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if raw.GitBin != "" {
		cfg.GitBin = raw.GitBin
	}
	if raw.Log.MaxSize > 0 {
		cfg.Log.MaxSize = raw.Log.MaxSize
	}
	if raw.Log.MaxBackups > 0 {
		cfg.Log.MaxBackups = raw.Log.MaxBackups
	}
	if raw.Log.MaxAge > 0 {
		cfg.Log.MaxAge = raw.Log.MaxAge
	}
	cfg.Log.Compress = raw.Log.Compress

	// Validate and expand default_repo (must be absolute or start with ~)
	if err := ValidatePath(raw.DefaultRepo, "default_repo"); err != nil {
		return Default(), err
	}
	if raw.DefaultRepo != "" {
		expanded, err := expandPath(raw.DefaultRepo)
		if err != nil {
			return Default(), fmt.Errorf("expand default_repo: %w", err)
		}
		cfg.DefaultRepo = expanded
	}

	// Validate and expand log.file
	if err := ValidatePath(raw.Log.File, "log.file"); err != nil {
		return Default(), err
	}
	if raw.Log.File != "" {
		expanded, err := expandPath(raw.Log.File)
		if err != nil {
			return Default(), fmt.Errorf("expand log.file: %w", err)
		}
		cfg.Log.File = expanded
	}

	// Parse timeout ("0" disables the bound)
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			if raw.Timeout == "0" {
				d = 0
			} else {
				return Default(), fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
			}
		}
		if d < 0 {
			return Default(), fmt.Errorf("invalid timeout %q: must not be negative", raw.Timeout)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

const defaultConfig = `# gitmcp configuration

# Path to the git executable. Defaults to "git" resolved from PATH.
# git_bin = "git"

# Working directory used when a tool call carries no "repo" field.
# Must be an absolute path or start with ~ (no relative paths).
# Defaults to the server's own working directory.
# default_repo = "~/Code/myrepo"

# Per-request timeout for git invocations. A clone over a slow network
# or a hung credential helper would otherwise block the server forever.
# Duration string like "30s", "5m". "0" disables the bound.
# timeout = "5m"

# Log file settings for serve mode. Stdout carries the protocol stream,
# so diagnostics go to a rotating file (and to stderr when it is a
# terminal).
# [log]
# file = "~/.local/state/gitmcp/gitmcp.log"
# max_size = 10      # megabytes per file
# max_backups = 3    # rotated files to keep
# max_age = 30       # days to keep rotated files
# compress = false
`

// Init creates a default config file at ~/.config/gitmcp/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
