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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry(nil)

	_, replaced := r.Register("AA:BB:CC:DD:EE:01", "h1", 7, true)
	assert.False(t, replaced)

	// Identifiers are case-insensitive.
	conn, err := r.Lookup("aa:bb:cc:dd:ee:01")
	require.NoError(t, err)
	assert.Equal(t, "h1", conn.Handle)
	assert.Equal(t, int64(7), conn.DeviceID)
	assert.True(t, conn.Active)

	_, err = r.Lookup("aa:bb:cc:dd:ee:02")
	assert.ErrorIs(t, err, ErrNotTracked)
}

func TestRegistryDuplicateRegistrationLastWriterWins(t *testing.T) {
	r := NewRegistry(nil)

	r.Register("aa:bb:cc:dd:ee:01", "h1", 7, false)
	prev, replaced := r.Register("AA:BB:CC:DD:EE:01", "h2", 7, false)

	require.True(t, replaced)
	assert.Equal(t, "h1", prev.Handle)

	conn, err := r.Lookup("aa:bb:cc:dd:ee:01")
	require.NoError(t, err)
	assert.Equal(t, "h2", conn.Handle)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryTouch(t *testing.T) {
	clock := newFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	r := NewRegistry(clock)

	r.Register("aa:bb:cc:dd:ee:01", "h1", 7, true)

	before, err := r.Lookup("aa:bb:cc:dd:ee:01")
	require.NoError(t, err)

	clock.advance(30 * time.Second)

	active, err := r.Touch("aa:bb:cc:dd:ee:01")
	require.NoError(t, err)
	assert.True(t, active)

	after, err := r.Lookup("aa:bb:cc:dd:ee:01")
	require.NoError(t, err)
	assert.True(t, after.LastHeartbeat.After(before.LastHeartbeat))

	_, err = r.Touch("ff:ff:ff:ff:ff:ff")
	assert.ErrorIs(t, err, ErrNotTracked)
}

func TestRegistryFindByHandle(t *testing.T) {
	r := NewRegistry(nil)

	r.Register("aa:bb:cc:dd:ee:01", "h1", 1, false)
	r.Register("aa:bb:cc:dd:ee:02", "h2", 2, true)

	conn, err := r.FindByHandle("h2")
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:02", conn.Identifier)

	_, err = r.FindByHandle("h3")
	assert.ErrorIs(t, err, ErrNotTracked)
}

func TestRegistrySetActivation(t *testing.T) {
	r := NewRegistry(nil)

	r.Register("aa:bb:cc:dd:ee:01", "h1", 1, false)

	assert.True(t, r.SetActivation("AA:BB:CC:DD:EE:01", true))

	conn, err := r.Lookup("aa:bb:cc:dd:ee:01")
	require.NoError(t, err)
	assert.True(t, conn.Active)

	assert.False(t, r.SetActivation("ff:ff:ff:ff:ff:ff", true))
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(nil)

	r.Register("aa:bb:cc:dd:ee:01", "h1", 1, false)
	r.Remove("aa:bb:cc:dd:ee:01")

	_, err := r.Lookup("aa:bb:cc:dd:ee:01")
	assert.ErrorIs(t, err, ErrNotTracked)

	// Removing again is a no-op.
	r.Remove("aa:bb:cc:dd:ee:01")
	assert.Equal(t, 0, r.Len())
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry(nil)

	r.Register("aa:bb:cc:dd:ee:01", "h1", 1, false)
	r.Register("aa:bb:cc:dd:ee:02", "h2", 2, true)

	snap := r.Snapshot()
	assert.Len(t, snap, 2)

	// Mutating after the snapshot does not affect it.
	r.Remove("aa:bb:cc:dd:ee:01")
	assert.Len(t, snap, 2)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry(nil)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			mac := "aa:bb:cc:dd:ee:01"
			r.Register(mac, "h1", 1, n%2 == 0)
			_, _ = r.Touch(mac)
			_, _ = r.Lookup(mac)
			r.Snapshot()
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, r.Len())
}
