// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// RetryableHTTPAdapter adapts a zerolog.Logger to retryablehttp.LeveledLogger
// so transport-level chatter lands in the same sink as everything else.
type RetryableHTTPAdapter struct {
	logger *zerolog.Logger
}

var _ retryablehttp.LeveledLogger = (*RetryableHTTPAdapter)(nil)

func NewRetryableHTTPAdapter(logger *zerolog.Logger) *RetryableHTTPAdapter {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &RetryableHTTPAdapter{logger: logger}
}

func (a *RetryableHTTPAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func (a *RetryableHTTPAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.logger.Warn().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func (a *RetryableHTTPAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func (a *RetryableHTTPAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.logger.Debug().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

// kvsToMap converts go-retryablehttp's key-value pairs to a map for zerolog.
func kvsToMap(keysAndValues ...interface{}) map[string]interface{} {
	m := make(map[string]interface{})
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			m[key] = keysAndValues[i+1]
		}
	}
	return m
}
