// Copyright 2024 The Normtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the normtime command from a TOML
// file, NORMTIME_* environment variables and command line flags.
package config // import "go.normtime.net/internal/config"

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"go.normtime.net/i18n"
	"go.normtime.net/normtime"
)

const (
	// EnvPrefix prefixes the environment variables, e.g. NORMTIME_LOCALE.
	EnvPrefix = "NORMTIME"
	// Name is the base name of the config file searched in the working
	// and home directories.
	Name = ".normtime"
)

// ErrExists is returned by WriteDefault for an existing file.
var ErrExists = errors.New("config file already exists")

// Config holds the runtime configuration of the normtime command.
// Values are populated from .normtime.toml, NORMTIME_* env vars, and CLI flags.
type Config struct {
	// EpochOffset is the Unix time of the normtime zero point.
	EpochOffset int64  `mapstructure:"epoch_offset" toml:"epoch_offset"`
	Locale      string `mapstructure:"locale" toml:"locale"`
	HistoryFile string `mapstructure:"history_file" toml:"history_file"`
	Verbose     bool   `mapstructure:"verbose" toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EpochOffset: normtime.EpochOffset,
		Locale:      "en",
		HistoryFile: "",
		Verbose:     false,
	}
}

// Init points v at the config file and environment. An empty path searches
// for .normtime.toml in the working directory and then the home directory;
// a missing file is fine in that case. An explicit path must exist.
func Init(v *viper.Viper, fs afero.Fs, path string) error {
	v.SetFs(fs)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	def := Default()
	v.SetDefault("epoch_offset", def.EpochOffset)
	v.SetDefault("locale", def.Locale)
	v.SetDefault("history_file", def.HistoryFile)
	v.SetDefault("verbose", def.Verbose)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Bridge returns the bridge to the common era calendar.
func (c Config) Bridge() normtime.Bridge {
	return normtime.Bridge{Offset: c.EpochOffset}
}

// Tag returns the language of Locale.
func (c Config) Tag() (language.Tag, error) {
	tag, err := i18n.ParseTag(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// WriteDefault writes the default configuration as TOML to path. It does
// not replace an existing file unless overwrite is set.
func WriteDefault(fs afero.Fs, path string, overwrite bool) error {
	if exists, err := afero.Exists(fs, path); err != nil {
		return err
	} else if exists && !overwrite {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	data, err := toml.Marshal(Default())
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}
