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
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsStore implements KVStore on a NATS JetStream key/value bucket with a
// bucket-level TTL.
type NatsStore struct {
	nc *nats.Conn
	kv jetstream.KeyValue
}

// NewNatsStore connects to NATS and creates (or binds to) the configured
// bucket.
func NewNatsStore(ctx context.Context, cfg *Config) (*NatsStore, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	var js jetstream.JetStream
	if cfg.Domain != "" {
		js, err = jetstream.NewWithDomain(nc, cfg.Domain)
	} else {
		js, err = jetstream.New(nc)
	}

	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kvConfig := jetstream.KeyValueConfig{
		Bucket: cfg.Bucket,
	}

	if ttl := cfg.TTL(); ttl > 0 {
		kvConfig.TTL = ttl // TTL is bucket level; every Put refreshes it
	}

	kvBucket, err := js.CreateKeyValue(ctx, kvConfig)
	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create KV bucket: %w", err)
	}

	return &NatsStore{
		nc: nc,
		kv: kvBucket,
	}, nil
}

func (n *NatsStore) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	var entry jetstream.KeyValueEntry

	entry, err = n.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return entry.Value(), true, nil
}

func (n *NatsStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := n.kv.Put(ctx, key, value)
	if err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}

	return nil
}

func (n *NatsStore) Delete(ctx context.Context, key string) error {
	err := n.kv.Delete(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (n *NatsStore) Keys(ctx context.Context) ([]string, error) {
	lister, err := n.kv.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var keys []string
	for key := range lister.Keys() {
		keys = append(keys, key)
	}

	return keys, nil
}

func (n *NatsStore) Close() error {
	n.nc.Close()

	return nil
}

// Ensure NatsStore implements the store interface.
var _ KVStore = (*NatsStore)(nil)
