// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config contains configuration settings.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the public DigitalOcean API endpoint.
	DefaultAPIURL = "https://api.digitalocean.com"

	// MaxPerPage is the largest page size the DigitalOcean API accepts.
	MaxPerPage = 200
)

type Settings struct {
	Logging      Logging      `yaml:"logging"`
	DigitalOcean DigitalOcean `yaml:"digitalocean"`
}

type Logging struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"warn" env-description:"minimum log level"`
}

type DigitalOcean struct {
	Token   string        `yaml:"token" env:"DO_API_KEY" env-description:"DigitalOcean API token"`
	URL     string        `yaml:"url" env:"DO_API_URL" env-default:"https://api.digitalocean.com" env-description:"DigitalOcean API base URL"`
	Timeout time.Duration `yaml:"timeout" env:"DO_API_TIMEOUT" env-default:"30s" env-description:"per-request HTTP timeout"`
	PerPage int           `yaml:"per_page" env:"DO_API_PER_PAGE" env-default:"200" env-description:"page size for paginated listings"`
}

// NewSettings reads settings from the given config files, later files
// overriding earlier ones, with environment variables applied on top.
// With no files it reads from the environment alone.
func NewSettings(configFiles ...string) (*Settings, error) {
	var cfg Settings

	if len(configFiles) == 0 {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "failed to read config from environment")
		}
		return &cfg, nil
	}

	for _, cfgFile := range configFiles {
		if cfgFile == "" {
			continue
		}

		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("no config file %s: %w", cfgFile, err)
		}

		if err := cleanenv.ReadConfig(cfgFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", cfgFile, err)
		}
	}
	return &cfg, nil
}

func (s *Settings) Validate() error {
	if err := s.Logging.Validate(); err != nil {
		return err
	}

	if err := s.DigitalOcean.Validate(); err != nil {
		return err
	}

	return nil
}

func (s *Settings) ToYAML() ([]byte, error) {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode into yaml: %w", err)
	}
	return raw, nil
}

func (l *Logging) Validate() error {
	l.Level = strings.TrimSpace(l.Level)
	if l.Level == "" {
		l.Level = "warn"
	}
	return nil
}

func (d *DigitalOcean) Validate() error {
	d.Token = strings.TrimSpace(d.Token)
	d.URL = strings.TrimRight(strings.TrimSpace(d.URL), "/")

	if d.Token == "" {
		return errors.New("no API token configured")
	}
	if d.URL == "" {
		d.URL = DefaultAPIURL
	}
	if d.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if d.PerPage < 1 || d.PerPage > MaxPerPage {
		return errors.Errorf("per_page must be between 1 and %d", MaxPerPage)
	}
	return nil
}
