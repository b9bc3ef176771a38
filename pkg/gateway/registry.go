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
	"strings"
	"sync"
	"time"
)

// DeviceConnection is the registry's record of one live device connection.
// Exactly one exists per identifier; a re-registration replaces it.
type DeviceConnection struct {
	Identifier    string
	Handle        string
	DeviceID      int64
	Active        bool
	LastHeartbeat time.Time
}

// Registry is the in-memory table of live device connections, used for
// hot-path lookups during frame handling. Identifiers are case-insensitive
// and stored lowercased.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]DeviceConnection
	clock Clock
}

// NewRegistry creates an empty registry. A nil clock defaults to the real
// clock.
func NewRegistry(clock Clock) *Registry {
	if clock == nil {
		clock = realClock{}
	}

	return &Registry{
		conns: make(map[string]DeviceConnection),
		clock: clock,
	}
}

func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Register inserts or replaces the entry for identifier and stamps its
// heartbeat. It returns the replaced entry, if any, so the caller can
// dispose of a superseded connection.
func (r *Registry) Register(identifier, handle string, deviceID int64, active bool) (prev DeviceConnection, replaced bool) {
	key := normalizeIdentifier(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, replaced = r.conns[key]
	r.conns[key] = DeviceConnection{
		Identifier:    key,
		Handle:        handle,
		DeviceID:      deviceID,
		Active:        active,
		LastHeartbeat: r.clock.Now(),
	}

	return prev, replaced
}

// Touch refreshes the heartbeat for identifier and returns its cached
// activation flag, or ErrNotTracked.
func (r *Registry) Touch(identifier string) (active bool, err error) {
	key := normalizeIdentifier(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[key]
	if !ok {
		return false, ErrNotTracked
	}

	conn.LastHeartbeat = r.clock.Now()
	r.conns[key] = conn

	return conn.Active, nil
}

// Lookup returns the connection for identifier, or ErrNotTracked.
func (r *Registry) Lookup(identifier string) (DeviceConnection, error) {
	key := normalizeIdentifier(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[key]
	if !ok {
		return DeviceConnection{}, ErrNotTracked
	}

	return conn, nil
}

// FindByHandle scans for the connection holding handle. Used by disconnect
// handling when the reverse presence mapping is unavailable.
func (r *Registry) FindByHandle(handle string) (DeviceConnection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conn := range r.conns {
		if conn.Handle == handle {
			return conn, nil
		}
	}

	return DeviceConnection{}, ErrNotTracked
}

// SetActivation updates the cached activation flag for identifier. It
// reports whether the identifier was tracked.
func (r *Registry) SetActivation(identifier string, active bool) bool {
	key := normalizeIdentifier(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[key]
	if !ok {
		return false
	}

	conn.Active = active
	r.conns[key] = conn

	return true
}

// Remove deletes the entry for identifier. Removing an untracked identifier
// is a no-op.
func (r *Registry) Remove(identifier string) {
	key := normalizeIdentifier(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, key)
}

// Snapshot returns a copy of every tracked connection. Iteration happens on
// the copy so callers never hold the registry lock.
func (r *Registry) Snapshot() []DeviceConnection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]DeviceConnection, 0, len(r.conns))
	for _, conn := range r.conns {
		out = append(out, conn)
	}

	return out
}

// Len reports the number of tracked connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
