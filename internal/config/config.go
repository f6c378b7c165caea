// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads tangoutil configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvPath is the environment variable holding the config file path.
	EnvPath = "TANGO_CONFIG"

	// EnvDataDir is the environment variable holding deck directories
	// separated by DataDirSeparator.
	EnvDataDir = "TANGO_DATA_DIR"

	// DataDirSeparator separates directories in EnvDataDir. It must match
	// the env-separator tag of Config.DataDirs.
	DataDirSeparator = ":"
)

// Config is the tangoutil configuration.
type Config struct {
	// DataDirs are directories searched for decks.
	DataDirs []string `yaml:"data_dirs" env:"TANGO_DATA_DIR" env-separator:":"`

	Deck DeckConfig `yaml:"deck"`
	Log  LogConfig  `yaml:"log"`
}

// DeckConfig holds deck parsing settings.
type DeckConfig struct {
	TagColumn int    `yaml:"tag_column" env:"TANGO_TAG_COLUMN" env-default:"0"`
	TagPrefix string `yaml:"tag_prefix" env:"TANGO_TAG_PREFIX" env-default:"eggrolls-JLPT10k-v3::"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"TANGO_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"TANGO_LOG_FORMAT" env-default:"text"`
}

// EnvDataDirs returns the non-empty directories listed in EnvDataDir.
func EnvDataDirs() []string {
	var dirs []string
	for _, dir := range strings.Split(os.Getenv(EnvDataDir), DataDirSeparator) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "tango", "config.yaml")
	}
	return ""
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path is taken from TANGO_CONFIG
// and falls back to DefaultPath. A missing default file is not an error.
func Load() (*Config, error) {
	path := os.Getenv(EnvPath)
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath()
	}
	return LoadFile(path, explicitPath)
}

// LoadFile reads configuration from path and environment variables. If
// required is false a missing file is ignored.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Deck.TagColumn == 1 {
		errs = append(errs, errors.New("deck.tag_column: column 1 holds the expression"))
	}
	return errors.Join(errs...)
}
