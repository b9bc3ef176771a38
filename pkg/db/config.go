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

package db

import (
	"fmt"
	"net/url"
)

// Config describes the Postgres connection owned by the admin panel.
type Config struct {
	Host           string `json:"host"`
	Port           int    `json:"port,omitempty"`
	Database       string `json:"database"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	SSLMode        string `json:"ssl_mode,omitempty"`
	MaxConnections int32  `json:"max_connections,omitempty"`
}

// Validate ensures the configuration is valid and fills defaults.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errHostRequired
	}

	if c.Database == "" {
		return errDatabaseRequired
	}

	if c.Port == 0 {
		c.Port = 5432
	}

	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}

	return nil
}

// connString builds the postgres URL for pgxpool.
func (c *Config) connString() string {
	connURL := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}

	if c.Username != "" {
		if c.Password != "" {
			connURL.User = url.UserPassword(c.Username, c.Password)
		} else {
			connURL.User = url.User(c.Username)
		}
	}

	query := connURL.Query()
	query.Set("sslmode", c.SSLMode)
	connURL.RawQuery = query.Encode()

	return connURL.String()
}
