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

	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

type pusherFixture struct {
	pusher    *Pusher
	registry  *Registry
	presence  *Presence
	store     *memKV
	transport *stubTransport
	clock     *fixedClock
}

func newPusherFixture(t *testing.T) *pusherFixture {
	t.Helper()

	store := newMemKV()
	transport := newStubTransport("h1")
	clock := newFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	log := logger.NewTestLogger()

	registry := NewRegistry(clock)
	presence := NewPresence(store, registry, transport, log)
	pusher := NewPusher(registry, presence, transport, clock, log)

	return &pusherFixture{
		pusher:    pusher,
		registry:  registry,
		presence:  presence,
		store:     store,
		transport: transport,
		clock:     clock,
	}
}

func (f *pusherFixture) connect(ctx context.Context, mac, handle string, deviceID int64, active bool) {
	f.registry.Register(mac, handle, deviceID, active)
	f.presence.SetConnection(ctx, mac, handle)
}

func TestPushUnresolvableIdentifierReturnsFalse(t *testing.T) {
	f := newPusherFixture(t)

	ok := f.pusher.PushContent(context.Background(), testMAC, &models.Content{ID: 5})
	assert.False(t, ok)
	assert.Empty(t, f.transport.sentFrames("h1"))
}

func TestPushStaleHandleReturnsFalse(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)
	f.transport.CloseHandle("h1")

	ok := f.pusher.PushContent(ctx, testMAC, &models.Content{ID: 5})
	assert.False(t, ok)
}

func TestPushContentDelivers(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	content := &models.Content{ID: 5, Title: "promo", ContentType: 2, ContentURL: "https://cdn.example/p.mp4", Duration: 30, Thumbnail: "t.png"}

	ok := f.pusher.PushContent(ctx, testMAC, content)
	require.True(t, ok)

	frames := f.transport.sentFrames("h1")
	require.Len(t, frames, 1)

	frame, isPush := frames[0].(pushContentFrame)
	require.True(t, isPush)
	assert.Equal(t, framePushContent, frame.Type)
	assert.Equal(t, int64(5), frame.Data.ContentID)
	assert.Equal(t, 30, frame.Data.Duration)
	assert.False(t, frame.Data.IsTemp)
}

func TestPushFallsBackToRegistryWhenStoreDegraded(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)
	f.store.setFailing(true)

	ok := f.pusher.PushContent(ctx, testMAC, &models.Content{ID: 5})
	assert.True(t, ok)
}

func TestPushTempContentOverridesDuration(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	content := &models.Content{ID: 5, Duration: 30}

	ok := f.pusher.PushTempContent(ctx, testMAC, content, 10)
	require.True(t, ok)

	frames := f.transport.sentFrames("h1")
	require.Len(t, frames, 1)

	frame := frames[0].(pushContentFrame)
	assert.Equal(t, frameTempContent, frame.Type)
	assert.True(t, frame.Data.IsTemp)
	assert.Equal(t, 10, frame.Data.Duration)
}

func TestPushTempContentKeepsDurationWithoutOverride(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	ok := f.pusher.PushTempContent(ctx, testMAC, &models.Content{ID: 5, Duration: 30}, 0)
	require.True(t, ok)

	frame := f.transport.sentFrames("h1")[0].(pushContentFrame)
	assert.Equal(t, 30, frame.Data.Duration)
}

func TestPushActiveStatusSyncsRegistry(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, false)

	ok := f.pusher.PushActiveStatus(ctx, testMAC, true, "activated")
	require.True(t, ok)

	conn, err := f.registry.Lookup(testMAC)
	require.NoError(t, err)
	assert.True(t, conn.Active)

	frame := f.transport.sentFrames("h1")[0].(activeStatusFrame)
	assert.Equal(t, 1, frame.Active)
	assert.Equal(t, "activated", frame.Msg)
}

func TestPushDisplayModeChange(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	ok := f.pusher.PushDisplayModeChange(ctx, testMAC, models.DisplayModeDirectOnly)
	require.True(t, ok)

	frame := f.transport.sentFrames("h1")[0].(displayModeChangeFrame)
	assert.Equal(t, models.DisplayModeDirectOnly, frame.DisplayMode)
	assert.Equal(t, "direct only", frame.ModeName)
}

func TestPushBatchControlStampsTimestamp(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	ok := f.pusher.PushBatchControl(ctx, testMAC, "restart", "maintenance window")
	require.True(t, ok)

	frame := f.transport.sentFrames("h1")[0].(batchControlFrame)
	assert.Equal(t, "restart", frame.Action)
	assert.Equal(t, f.clock.Now().Unix(), frame.Timestamp)
}

func TestPushRefresh(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	ok := f.pusher.PushRefresh(ctx, testMAC, "content updated")
	require.True(t, ok)

	frame := f.transport.sentFrames("h1")[0].(refreshFrame)
	assert.Equal(t, "content updated", frame.Message)
}

func TestPushContentResponse(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)

	device := &models.Device{ID: 7, DisplayMode: models.DisplayModeDirectOnly}
	direct := &models.Content{ID: 5, Status: 1}
	res := Resolve(device.DisplayMode, direct, nil)

	ok := f.pusher.PushContentResponse(ctx, testMAC, device, res, "mode changed")
	require.True(t, ok)

	frame := f.transport.sentFrames("h1")[0].(contentResponse)
	assert.True(t, frame.Success)
	require.NotNil(t, frame.Data)
	assert.Equal(t, int64(7), frame.Data.DeviceID)
	require.Len(t, frame.Data.PrimaryContents, 1)
}

func TestPushWriteFailureReturnsFalse(t *testing.T) {
	f := newPusherFixture(t)
	ctx := context.Background()

	f.connect(ctx, testMAC, "h1", 7, true)
	f.transport.sendErr = assert.AnError

	ok := f.pusher.PushRefresh(ctx, testMAC, "nope")
	assert.False(t, ok)
}
