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

package kv

import (
	"time"

	"github.com/glowsign/screenhub/pkg/models"
)

const (
	defaultBucket    = "screenhub-presence"
	defaultBucketTTL = 300 * time.Second
)

// Config holds the configuration for the shared KV store.
type Config struct {
	NATSURL   string          `json:"nats_url"`
	Bucket    string          `json:"bucket,omitempty"`
	Domain    string          `json:"domain,omitempty"`     // Optional JetStream domain
	BucketTTL models.Duration `json:"bucket_ttl,omitempty"` // TTL for entries, defaults to 300s
}

// Validate ensures the configuration is valid and fills defaults. Entries
// must always expire; an omitted TTL gets the 300s default rather than
// disabling expiry.
func (c *Config) Validate() error {
	if c.NATSURL == "" {
		return errNatsURLRequired
	}

	if c.BucketTTL < 0 {
		return errBucketTTLInvalid
	}

	if c.BucketTTL == 0 {
		c.BucketTTL = models.Duration(defaultBucketTTL)
	}

	if c.Bucket == "" {
		c.Bucket = defaultBucket
	}

	return nil
}

// TTL returns the configured entry TTL as a time.Duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.BucketTTL)
}
