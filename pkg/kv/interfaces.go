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

//go:generate mockgen -destination=mock_kv.go -package=kv github.com/glowsign/screenhub/pkg/kv KVStore

// Package kv provides the shared TTL key/value store backing cross-process
// presence state.
package kv

import (
	"context"
)

// KVStore is the interface to a shared, TTL-expiring key/value store.
// Entries expire at the bucket TTL; every successful Put refreshes the clock.
type KVStore interface {
	// Get retrieves the value associated with the given key.
	// Returns the value, a boolean indicating if the key was found, and an
	// error if the operation fails.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores a value under the given key, refreshing its TTL.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the key and its associated value from the store.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every live key in the bucket. An empty bucket yields an
	// empty slice, not an error.
	Keys(ctx context.Context) ([]string, error)

	// Close shuts down the KV store, releasing any resources.
	Close() error
}
