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
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/glowsign/screenhub/pkg/kv"
	"github.com/glowsign/screenhub/pkg/logger"
)

// Presence store key prefixes. One bucket holds all three key families; the
// bucket-level TTL expires entries that stop being refreshed.
const (
	connMACPrefix    = "conn.mac."
	connHandlePrefix = "conn.handle."
	heartbeatPrefix  = "heartbeat."
)

// Presence is the gateway's adapter over the shared TTL key/value store. It
// holds the cross-process truth for identifier↔handle mappings and heartbeat
// timestamps.
//
// Every store call is bounded by presenceCallTimeout. A store failure
// degrades to a not-found result or a no-op; it is never surfaced to devices
// and never fatal.
type Presence struct {
	store     kv.KVStore
	registry  *Registry
	transport Transport
	logger    logger.Logger
}

// NewPresence creates a presence adapter over store. registry is the fallback
// truth for connections this process serves when the store cannot answer;
// transport is consulted by IsOnline to confirm a resolved handle is actually
// open.
func NewPresence(store kv.KVStore, registry *Registry, transport Transport, log logger.Logger) *Presence {
	return &Presence{
		store:     store,
		registry:  registry,
		transport: transport,
		logger:    log.WithComponent("presence"),
	}
}

// encodeIdentifier makes an identifier usable as a store key segment.
// NATS KV keys cannot contain colons, so "aa:bb:cc" becomes "aa=bb=cc";
// decodeIdentifier reverses this. "=" never appears in device identifiers,
// so dash-separated identifiers survive the round trip unchanged.
func encodeIdentifier(identifier string) string {
	return strings.ReplaceAll(normalizeIdentifier(identifier), ":", "=")
}

func decodeIdentifier(key string) string {
	return strings.ReplaceAll(key, "=", ":")
}

func (p *Presence) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, presenceCallTimeout)
}

func (p *Presence) put(ctx context.Context, key string, value []byte) {
	ctx, cancel := p.bound(ctx)
	defer cancel()

	if err := p.store.Put(ctx, key, value); err != nil {
		p.logger.Debug().Err(err).Str("key", key).Msg("Presence store put failed")
	}
}

func (p *Presence) get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := p.bound(ctx)
	defer cancel()

	value, found, err := p.store.Get(ctx, key)
	if err != nil {
		p.logger.Debug().Err(err).Str("key", key).Msg("Presence store get failed")
		return nil, false
	}

	return value, found
}

func (p *Presence) delete(ctx context.Context, key string) {
	ctx, cancel := p.bound(ctx)
	defer cancel()

	if err := p.store.Delete(ctx, key); err != nil {
		p.logger.Debug().Err(err).Str("key", key).Msg("Presence store delete failed")
	}
}

// SetConnection stores the forward and reverse identifier↔handle mappings,
// refreshing their TTL.
func (p *Presence) SetConnection(ctx context.Context, identifier, handle string) {
	encoded := encodeIdentifier(identifier)
	p.put(ctx, connMACPrefix+encoded, []byte(handle))
	p.put(ctx, connHandlePrefix+handle, []byte(normalizeIdentifier(identifier)))
}

// SetHeartbeat records ts as the last heartbeat for identifier.
func (p *Presence) SetHeartbeat(ctx context.Context, identifier string, ts time.Time) {
	value := strconv.FormatInt(ts.Unix(), 10)
	p.put(ctx, heartbeatPrefix+encodeIdentifier(identifier), []byte(value))
}

// GetHeartbeat returns the last heartbeat for identifier as unix seconds.
func (p *Presence) GetHeartbeat(ctx context.Context, identifier string) (int64, bool) {
	value, found := p.get(ctx, heartbeatPrefix+encodeIdentifier(identifier))
	if !found {
		return 0, false
	}

	ts, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return 0, false
	}

	return ts, true
}

// ResolveHandle returns the connection handle for identifier, if tracked.
func (p *Presence) ResolveHandle(ctx context.Context, identifier string) (string, bool) {
	value, found := p.get(ctx, connMACPrefix+encodeIdentifier(identifier))
	if !found {
		return "", false
	}

	return string(value), true
}

// ResolveIdentifier returns the identifier bound to handle, if tracked.
func (p *Presence) ResolveIdentifier(ctx context.Context, handle string) (string, bool) {
	value, found := p.get(ctx, connHandlePrefix+handle)
	if !found {
		return "", false
	}

	return string(value), true
}

// IsOnline reports whether identifier resolves to a handle the transport
// holds open. When the store cannot produce a live mapping the registry is
// the sole source of truth, so a connection this process still serves stays
// online through a store outage.
func (p *Presence) IsOnline(ctx context.Context, identifier string) bool {
	if handle, found := p.ResolveHandle(ctx, identifier); found && p.transport.IsEstablished(handle) {
		return true
	}

	conn, err := p.registry.Lookup(identifier)
	if err != nil {
		return false
	}

	return p.transport.IsEstablished(conn.Handle)
}

// ClearByIdentifier removes the forward, reverse and heartbeat keys for
// identifier.
func (p *Presence) ClearByIdentifier(ctx context.Context, identifier string) {
	if handle, found := p.ResolveHandle(ctx, identifier); found {
		p.delete(ctx, connHandlePrefix+handle)
	}

	encoded := encodeIdentifier(identifier)
	p.delete(ctx, connMACPrefix+encoded)
	p.delete(ctx, heartbeatPrefix+encoded)
}

// ClearByHandle removes all keys associated with the connection behind
// handle.
func (p *Presence) ClearByHandle(ctx context.Context, handle string) {
	if identifier, found := p.ResolveIdentifier(ctx, handle); found {
		encoded := encodeIdentifier(identifier)
		p.delete(ctx, connMACPrefix+encoded)
		p.delete(ctx, heartbeatPrefix+encoded)
	}

	p.delete(ctx, connHandlePrefix+handle)
}

// TrackedIdentifiers enumerates every identifier with a live forward mapping.
func (p *Presence) TrackedIdentifiers(ctx context.Context) ([]string, error) {
	listCtx, cancel := p.bound(ctx)
	defer cancel()

	keys, err := p.store.Keys(listCtx)
	if err != nil {
		return nil, err
	}

	identifiers := make([]string, 0, len(keys))

	for _, key := range keys {
		encoded, ok := strings.CutPrefix(key, connMACPrefix)
		if !ok {
			continue
		}

		identifiers = append(identifiers, decodeIdentifier(encoded))
	}

	return identifiers, nil
}

// Reset purges every presence key. Used once at startup to drop state left
// over from a previous process group.
func (p *Presence) Reset(ctx context.Context) error {
	listCtx, cancel := p.bound(ctx)
	defer cancel()

	keys, err := p.store.Keys(listCtx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		p.delete(ctx, key)
	}

	return nil
}
