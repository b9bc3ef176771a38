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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/kv"
	"github.com/glowsign/screenhub/pkg/models"
)

func validConfig() Config {
	return Config{
		ListenAddr: ":8090",
		KV:         kv.Config{NATSURL: "nats://localhost:4222"},
		Database:   db.Config{Host: "localhost", Database: "screenhub"},
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8091", cfg.AdminListenAddr)
	assert.Equal(t, time.Minute, time.Duration(cfg.ReconcileInterval))
}

func TestConfigValidateKeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.AdminListenAddr = ":9000"
	cfg.ReconcileInterval = models.Duration(30 * time.Second)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":9000", cfg.AdminListenAddr)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.ReconcileInterval))
}

func TestConfigValidateRequiresListenAddr(t *testing.T) {
	cfg := validConfig()
	cfg.ListenAddr = ""

	assert.ErrorIs(t, cfg.Validate(), errListenAddrRequired)
}

func TestConfigValidatePropagatesNestedErrors(t *testing.T) {
	cfg := validConfig()
	cfg.KV.NATSURL = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())
}
