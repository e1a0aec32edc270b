// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/config"
)

func TestNewSettings_FromEnvironment(t *testing.T) {
	t.Setenv("DO_API_KEY", "env-token")

	cfg, err := config.NewSettings()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "env-token", cfg.DigitalOcean.Token)
	assert.Equal(t, config.DefaultAPIURL, cfg.DigitalOcean.URL)
	assert.Equal(t, 30*time.Second, cfg.DigitalOcean.Timeout)
	assert.Equal(t, config.MaxPerPage, cfg.DigitalOcean.PerPage)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestNewSettings_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
digitalocean:
  token: file-token
  per_page: 25
`), 0o644))

	cfg, err := config.NewSettings(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "file-token", cfg.DigitalOcean.Token)
	assert.Equal(t, 25, cfg.DigitalOcean.PerPage)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// unset fields fall back to their defaults
	assert.Equal(t, 30*time.Second, cfg.DigitalOcean.Timeout)
	assert.Equal(t, config.DefaultAPIURL, cfg.DigitalOcean.URL)
}

func TestNewSettings_MissingFile(t *testing.T) {
	_, err := config.NewSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_RequiresToken(t *testing.T) {
	cfg := &config.Settings{
		DigitalOcean: config.DigitalOcean{
			URL:     config.DefaultAPIURL,
			Timeout: time.Second,
			PerPage: 200,
		},
	}
	require.Error(t, cfg.Validate())
}

func TestValidate_BoundsPerPage(t *testing.T) {
	cfg := &config.Settings{
		DigitalOcean: config.DigitalOcean{
			Token:   "tok",
			URL:     config.DefaultAPIURL,
			Timeout: time.Second,
			PerPage: 500,
		},
	}
	require.Error(t, cfg.Validate())
}

func TestValidate_TrimsAndNormalizes(t *testing.T) {
	cfg := &config.Settings{
		DigitalOcean: config.DigitalOcean{
			Token:   "  tok  ",
			URL:     "https://api.example.test/",
			Timeout: time.Second,
			PerPage: 10,
		},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "tok", cfg.DigitalOcean.Token)
	assert.Equal(t, "https://api.example.test", cfg.DigitalOcean.URL)
}

func TestToYAML(t *testing.T) {
	cfg := &config.Settings{
		DigitalOcean: config.DigitalOcean{Token: "tok"},
	}
	raw, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "token: tok")
}
