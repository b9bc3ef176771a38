/*
 * Copyright 2025 Glowsign Labs.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides JSON structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the log output, level and time format.
type Config struct {
	Level      string `json:"level"`
	Debug      bool   `json:"debug"`
	Output     string `json:"output"`
	TimeFormat string `json:"time_format"`
}

type zeroLogger struct {
	logger zerolog.Logger
}

// New builds a Logger from config. Level defaults to info; Debug overrides
// Level.
func New(config Config) (Logger, error) {
	var output io.Writer = os.Stdout

	if config.Output == "stderr" {
		output = os.Stderr
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	} else {
		zerolog.TimeFieldFormat = time.RFC3339
	}

	zl := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zeroLogger{logger: zl}, nil
}

// NewTestLogger returns a logger that discards everything; intended for
// tests.
func NewTestLogger() Logger {
	return &zeroLogger{logger: zerolog.New(io.Discard)}
}

func (l *zeroLogger) Trace() *zerolog.Event { return l.logger.Trace() }
func (l *zeroLogger) Debug() *zerolog.Event { return l.logger.Debug() }
func (l *zeroLogger) Info() *zerolog.Event  { return l.logger.Info() }
func (l *zeroLogger) Warn() *zerolog.Event  { return l.logger.Warn() }
func (l *zeroLogger) Error() *zerolog.Event { return l.logger.Error() }
func (l *zeroLogger) Fatal() *zerolog.Event { return l.logger.Fatal() }

func (l *zeroLogger) With() zerolog.Context { return l.logger.With() }

func (l *zeroLogger) WithComponent(component string) Logger {
	return &zeroLogger{logger: l.logger.With().Str("component", component).Logger()}
}
