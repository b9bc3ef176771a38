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

// Package config loads typed service configuration from JSON files.
package config

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/glowsign/screenhub/pkg/logger"
)

var (
	errInvalidConfigPtr = errors.New("config must be a non-nil pointer")
	errLoadConfigFailed = errors.New("failed to load configuration")
)

// Validator is implemented by config structs that can check and default
// themselves after loading.
type Validator interface {
	Validate() error
}

// ConfigLoader loads raw configuration into dst.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Config holds the configuration loading dependencies.
type Config struct {
	loader ConfigLoader
	logger logger.Logger
}

// NewConfig initializes a Config with a file loader and the given logger.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Config{
		loader: &FileConfigLoader{},
		logger: log,
	}
}

// LoadAndValidate loads the file at path into cfg, then runs cfg.Validate
// when the struct implements Validator.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errInvalidConfigPtr
	}

	if err := c.loader.Load(ctx, path, cfg); err != nil {
		return fmt.Errorf("%w: %w", errLoadConfigFailed, err)
	}

	if validator, ok := cfg.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	c.logger.Debug().Str("path", path).Msg("Configuration loaded")

	return nil
}
