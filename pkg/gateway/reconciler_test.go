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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

type reconcilerFixture struct {
	reconciler *Reconciler
	registry   *Registry
	presence   *Presence
	store      *memKV
	transport  *stubTransport
	db         *db.MockService
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	store := newMemKV()
	transport := newStubTransport("h1")
	log := logger.NewTestLogger()

	registry := NewRegistry(nil)
	presence := NewPresence(store, registry, transport, log)
	reconciler := NewReconciler(registry, presence, mockDB, nil, time.Minute, log)

	return &reconcilerFixture{
		reconciler: reconciler,
		registry:   registry,
		presence:   presence,
		store:      store,
		transport:  transport,
		db:         mockDB,
	}
}

func TestStartupResetClearsEverything(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.presence.SetConnection(ctx, testMAC, "stale-handle")
	f.presence.SetHeartbeat(ctx, testMAC, time.Now())

	f.db.EXPECT().ResetAllDevicesOffline(gomock.Any()).Return(int64(3), nil)

	require.NoError(t, f.reconciler.startupReset(ctx))

	keys, err := f.store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestStartupResetFailsWhenPersistenceFails(t *testing.T) {
	f := newReconcilerFixture(t)

	f.db.EXPECT().ResetAllDevicesOffline(gomock.Any()).Return(int64(0), assert.AnError)

	assert.Error(t, f.reconciler.startupReset(context.Background()))
}

func TestTickMarksDeadConnectionsOffline(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	// Live device: handle h1 is established on the transport.
	f.registry.Register("aa:bb:cc:dd:ee:01", "h1", 1, true)
	f.presence.SetConnection(ctx, "aa:bb:cc:dd:ee:01", "h1")

	// Dead device: tracked by presence and registry, but its handle is gone.
	f.registry.Register("aa:bb:cc:dd:ee:02", "h2", 2, true)
	f.presence.SetConnection(ctx, "aa:bb:cc:dd:ee:02", "h2")

	f.db.EXPECT().UpdateDeviceOnline(gomock.Any(), int64(2), false).Return(nil)

	f.reconciler.Tick(ctx)

	// The live device is untouched.
	_, err := f.registry.Lookup("aa:bb:cc:dd:ee:01")
	assert.NoError(t, err)

	// The dead one is cleared everywhere.
	_, err = f.registry.Lookup("aa:bb:cc:dd:ee:02")
	assert.ErrorIs(t, err, ErrNotTracked)

	_, found := f.presence.ResolveHandle(ctx, "aa:bb:cc:dd:ee:02")
	assert.False(t, found)
}

func TestTickFallsBackToRegistryWhenStoreDown(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.registry.Register("aa:bb:cc:dd:ee:01", "h1", 1, true)
	f.registry.Register("aa:bb:cc:dd:ee:02", "h2", 2, true)

	f.store.setFailing(true)

	// Device 2's handle is not established, so it goes offline even with the
	// store down; the presence clear becomes a no-op.
	f.db.EXPECT().UpdateDeviceOnline(gomock.Any(), int64(2), false).Return(nil)

	f.reconciler.Tick(ctx)

	_, err := f.registry.Lookup("aa:bb:cc:dd:ee:01")
	assert.NoError(t, err)

	_, err = f.registry.Lookup("aa:bb:cc:dd:ee:02")
	assert.ErrorIs(t, err, ErrNotTracked)
}

func TestTickResolvesDeviceByMACWhenRegistryLost(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	// Presence tracks an identifier the registry has lost (restart without
	// reconnect). The persisted record is the only way to find the device.
	f.presence.SetConnection(ctx, testMAC, "gone")

	f.db.EXPECT().DeviceByMAC(gomock.Any(), testMAC).Return(&models.Device{ID: 9, MACAddress: testMAC}, nil)
	f.db.EXPECT().UpdateDeviceOnline(gomock.Any(), int64(9), false).Return(nil)

	f.reconciler.Tick(ctx)

	_, found := f.presence.ResolveHandle(ctx, testMAC)
	assert.False(t, found)
}

func TestReconcilerStartAndStop(t *testing.T) {
	f := newReconcilerFixture(t)

	f.db.EXPECT().ResetAllDevicesOffline(gomock.Any()).Return(int64(0), nil)

	errCh := make(chan error, 1)

	go func() {
		errCh <- f.reconciler.Start(context.Background())
	}()

	// Give Start a moment to pass the startup reset before stopping.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, f.reconciler.Stop(context.Background()))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
