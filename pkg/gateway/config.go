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

package gateway

import (
	"time"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/kv"
	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

const (
	defaultReconcileInterval = 60 * time.Second

	// presenceCallTimeout bounds every presence-store round trip; a timeout
	// degrades to a not-found result rather than failing the caller.
	presenceCallTimeout = 2 * time.Second

	// writeDeadline bounds a single outbound frame write.
	writeDeadline = 10 * time.Second

	// maxFrameSize caps an inbound device frame.
	maxFrameSize = 64 * 1024

	// newDeviceWindow is how recently a device row must have been created for
	// a registration to report it as newly provisioned.
	newDeviceWindow = 5 * time.Second
)

// Config holds the gateway service configuration.
type Config struct {
	ListenAddr        string          `json:"listen_addr"`
	AdminListenAddr   string          `json:"admin_listen_addr"`
	ReconcileInterval models.Duration `json:"reconcile_interval,omitempty"`
	KV                kv.Config       `json:"kv"`
	Database          db.Config       `json:"database"`
	Logging           *logger.Config  `json:"logging,omitempty"`
}

// Validate checks the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.AdminListenAddr == "" {
		c.AdminListenAddr = ":8091"
	}

	if c.ReconcileInterval == 0 {
		c.ReconcileInterval = models.Duration(defaultReconcileInterval)
	}

	if err := c.KV.Validate(); err != nil {
		return err
	}

	return c.Database.Validate()
}
