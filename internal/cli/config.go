package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mermaidgen/pkg/errors"
)

// Config holds defaults read from the TOML config file. Command-line flags
// take precedence over every value here.
type Config struct {
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
	Docs   DocsConfig   `toml:"docs"`
}

// RenderConfig configures the render command.
type RenderConfig struct {
	// Direction, when set, replaces the direction of every rendered document.
	Direction string `toml:"direction"`
	// Format is the default output format: mermaid, markdown or json.
	Format string `toml:"format"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DocsConfig configures the docs command.
type DocsConfig struct {
	// HTML also writes a sanitized .html page next to each .md page.
	HTML bool `toml:"html"`
}

// DefaultConfig returns the values used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{Format: formatMermaid},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the config file at path on top of [DefaultConfig].
// An empty path means the default location; a missing default file is not
// an error, but a missing explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && stderrors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		if stderrors.Is(err, os.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file")
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config file %s", path)
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the config file using XDG standard (~/.config/mermaidgen/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func defaultConfigHint() string {
	return "$XDG_CONFIG_HOME/" + appName + "/config.toml"
}
