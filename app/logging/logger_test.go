// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/logging"
)

func TestLevelForVerbosity(t *testing.T) {
	cases := []struct {
		count int
		want  zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{-1, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, logging.LevelForVerbosity(tc.count))
	}
}

func TestNewLogger_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(logging.WithWriter(&buf))
	require.NoError(t, err)

	logger.Info().Msg("suppressed")
	logger.Warn().Msg("emitted")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "emitted")
}

func TestNewLogger_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(logging.WithLevel("debug"), logging.WithWriter(&buf))
	require.NoError(t, err)

	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewLogger_RejectsBadLevel(t *testing.T) {
	_, err := logging.NewLogger(logging.WithLevel("loud"))
	require.Error(t, err)
}

func TestNewLogger_RejectsNilWriter(t *testing.T) {
	_, err := logging.NewLogger(logging.WithWriter(nil))
	require.Error(t, err)
}

func TestRetryableHTTPAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(logging.WithLevel("debug"), logging.WithWriter(&buf))
	require.NoError(t, err)

	adapter := logging.NewRetryableHTTPAdapter(logger)
	adapter.Debug("performing request", "method", "GET", "url", "https://api.example.test")

	out := buf.String()
	assert.Contains(t, out, "performing request")
	assert.Contains(t, out, "https://api.example.test")
}

func TestRetryableHTTPAdapter_NilLoggerIsSafe(t *testing.T) {
	adapter := logging.NewRetryableHTTPAdapter(nil)
	assert.NotPanics(t, func() {
		adapter.Error("boom", "key", "value")
	})
}
