// Package config is responsible for finding and parsing the coverlookup user
// configuration and merging it with the default one.
//
// The user configuration is a TOML file. Its default location is
// $XDG_CONFIG_HOME/coverlookup/config.toml on Linux/BSD and
// %AppData%/CoverLookup/config.toml on Windows.
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/ironsmile/coverlookup/src/helpers"
	"github.com/ironsmile/coverlookup/src/version"
)

// ConfigName is the file name of the user configuration.
const ConfigName = "config.toml"

//go:embed config.default.toml
var defaultConfig []byte

// Config is the configuration type. It should contain representation for everything
// in config.toml.
type Config struct {
	UserAgent       string        `toml:"user_agent"`
	LogLevel        string        `toml:"log_level"`
	Timeout         time.Duration `toml:"timeout"`
	MusicBrainz     ServiceConfig `toml:"musicbrainz"`
	CoverArtArchive ServiceConfig `toml:"coverartarchive"`
	Server          ServerConfig  `toml:"server"`
}

// ServiceConfig describes where a web service is.
type ServiceConfig struct {
	URL string `toml:"url"`
}

// ServerConfig holds the settings of the HTTP lookup server.
type ServerConfig struct {
	Listen       string        `toml:"listen"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Default returns the configuration used when there is no user configuration at
// all.
func Default() *Config {
	cfg := &Config{
		UserAgent: fmt.Sprintf(
			"coverlookup/%s ( https://github.com/ironsmile/coverlookup )",
			version.Version,
		),
	}
	if _, err := toml.Decode(string(defaultConfig), cfg); err != nil {
		panic(fmt.Sprintf("parsing embedded default config: %s", err))
	}
	return cfg
}

// FindAndParse finds the configuration file at `path`, parsing it and merging it on
// top of the default configuration. Only keys present in the file override the
// defaults. An empty path means UserConfigPath(). When the file does not exist it
// is created with the default configuration.
func FindAndParse(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = UserConfigPath()
		if err != nil {
			return nil, err
		}
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking for config file: %w", err)
	}

	if !exists {
		if err := CopyDefaultOverUser(fs, path); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if err := cfg.parse(fs, path); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// parse decodes the TOML file at `filename` on top of the values already in cfg.
func (cfg *Config) parse(fs afero.Fs, filename string) error {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", filename, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", filename, undecoded[0].String())
	}

	return nil
}

func (cfg *Config) validate() error {
	if cfg.UserAgent == "" {
		return fmt.Errorf("user_agent must not be empty")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.MusicBrainz.URL == "" || cfg.CoverArtArchive.URL == "" {
		return fmt.Errorf("service URLs must not be empty")
	}
	return nil
}

// UserConfigPath returns the full path to the place where the user's configuration
// file should be.
func UserConfigPath() (string, error) {
	dir, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigName), nil
}

// CopyDefaultOverUser will create (or replace if necessary) the user configuration
// at `path` using the default configuration.
func CopyDefaultOverUser(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	return nil
}
