// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package logging builds the zerolog loggers used across the plugin.
//
// Diagnostic output always goes to stderr so the status line on stdout
// stays parseable by the monitoring system.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type LoggerOpts struct {
	level  zerolog.Level
	writer io.Writer
}

type LoggerOpt func(*LoggerOpts) error

// WithLevel sets the minimum level from its textual name ("debug", "info", ...).
func WithLevel(level string) LoggerOpt {
	return func(o *LoggerOpts) error {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", level)
		}
		o.level = parsed
		return nil
	}
}

// WithVerbosity maps a repeatable -v count onto a level.
func WithVerbosity(count int) LoggerOpt {
	return func(o *LoggerOpts) error {
		o.level = LevelForVerbosity(count)
		return nil
	}
}

func WithWriter(w io.Writer) LoggerOpt {
	return func(o *LoggerOpts) error {
		if w == nil {
			return errors.New("nil writer")
		}
		o.writer = w
		return nil
	}
}

// LevelForVerbosity converts a -v flag count into a zerolog level.
// Three or more enables trace, which includes raw API response bodies.
func LevelForVerbosity(count int) zerolog.Level {
	switch {
	case count <= 0:
		return zerolog.WarnLevel
	case count == 1:
		return zerolog.InfoLevel
	case count == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func NewLogger(opts ...LoggerOpt) (*zerolog.Logger, error) {
	options := &LoggerOpts{
		level:  zerolog.WarnLevel,
		writer: zerolog.ConsoleWriter{Out: os.Stderr},
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := zerolog.New(options.writer).Level(options.level).With().Timestamp().Logger()
	return &logger, nil
}
