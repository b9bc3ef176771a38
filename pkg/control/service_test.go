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

package control

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

const testMAC = "aa:bb:cc:dd:ee:01"

type serviceFixture struct {
	service  *Service
	db       *db.MockService
	pusher   *MockDevicePusher
	presence *MockPresenceReader
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		db:       db.NewMockService(ctrl),
		pusher:   NewMockDevicePusher(ctrl),
		presence: NewMockPresenceReader(ctrl),
	}

	f.service = NewService(f.db, f.pusher, f.presence, logger.NewTestLogger())

	return f
}

func activeDevice() *models.Device {
	return &models.Device{
		ID:          7,
		MACAddress:  testMAC,
		Status:      models.DeviceActive,
		DisplayMode: models.DisplayModePlaylistPriority,
	}
}

func TestSwitchDisplayModeInvalidMode(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.SwitchDisplayMode(context.Background(), 7, models.DisplayMode(9))
	assert.ErrorIs(t, err, ErrInvalidDisplayMode)
}

func TestSwitchDisplayModePersistsAndPushes(t *testing.T) {
	f := newServiceFixture(t)
	device := activeDevice()

	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(device, nil)
	f.db.EXPECT().UpdateDisplayMode(gomock.Any(), int64(7), models.DisplayModeDirectOnly).Return(nil)
	f.pusher.EXPECT().PushDisplayModeChange(gomock.Any(), testMAC, models.DisplayModeDirectOnly).Return(true)

	// After a delivered mode change the freshly resolved content follows.
	direct := &models.Content{ID: 5, Status: 1}
	f.db.EXPECT().DeviceDirectContent(gomock.Any(), int64(7)).Return(direct, nil)
	f.db.EXPECT().DevicePlaylistItems(gomock.Any(), int64(7)).Return(nil, nil)
	f.pusher.EXPECT().PushContentResponse(gomock.Any(), testMAC, device, gomock.Any(), "display mode changed").Return(true)

	outcome, err := f.service.SwitchDisplayMode(context.Background(), 7, models.DisplayModeDirectOnly)
	require.NoError(t, err)
	assert.True(t, outcome.Pushed)
	assert.Equal(t, testMAC, outcome.MAC)
}

func TestSwitchDisplayModeOfflineDeviceSkipsContentPush(t *testing.T) {
	f := newServiceFixture(t)
	device := activeDevice()

	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(device, nil)
	f.db.EXPECT().UpdateDisplayMode(gomock.Any(), int64(7), models.DisplayModeDirectOnly).Return(nil)
	f.pusher.EXPECT().PushDisplayModeChange(gomock.Any(), testMAC, models.DisplayModeDirectOnly).Return(false)

	outcome, err := f.service.SwitchDisplayMode(context.Background(), 7, models.DisplayModeDirectOnly)
	require.NoError(t, err)
	assert.False(t, outcome.Pushed)
}

func TestPushContentDisabledContent(t *testing.T) {
	f := newServiceFixture(t)

	f.db.EXPECT().ContentByID(gomock.Any(), int64(5)).Return(&models.Content{ID: 5, Status: 0}, nil)

	_, err := f.service.PushContent(context.Background(), PushContentRequest{DeviceID: 7, ContentID: 5})
	assert.ErrorIs(t, err, ErrContentDisabled)
}

func TestPushContentInactiveDevice(t *testing.T) {
	f := newServiceFixture(t)

	f.db.EXPECT().ContentByID(gomock.Any(), int64(5)).Return(&models.Content{ID: 5, Status: 1}, nil)
	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(&models.Device{ID: 7, MACAddress: testMAC, Status: models.DeviceInactive}, nil)

	_, err := f.service.PushContent(context.Background(), PushContentRequest{DeviceID: 7, ContentID: 5})
	assert.ErrorIs(t, err, ErrDeviceNotActive)
}

func TestPushContentOfflineDevice(t *testing.T) {
	f := newServiceFixture(t)

	f.db.EXPECT().ContentByID(gomock.Any(), int64(5)).Return(&models.Content{ID: 5, Status: 1}, nil)
	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(activeDevice(), nil)
	f.presence.EXPECT().IsOnline(gomock.Any(), testMAC).Return(false)

	_, err := f.service.PushContent(context.Background(), PushContentRequest{DeviceID: 7, ContentID: 5})
	assert.ErrorIs(t, err, ErrDeviceOffline)
}

func TestPushContentPersistsCurrentContent(t *testing.T) {
	f := newServiceFixture(t)
	content := &models.Content{ID: 5, Status: 1}

	f.db.EXPECT().ContentByID(gomock.Any(), int64(5)).Return(content, nil)
	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(activeDevice(), nil)
	f.presence.EXPECT().IsOnline(gomock.Any(), testMAC).Return(true)
	f.db.EXPECT().SetCurrentContent(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, contentID *int64) error {
			require.NotNil(t, contentID)
			assert.Equal(t, int64(5), *contentID)

			return nil
		})
	f.pusher.EXPECT().PushContent(gomock.Any(), testMAC, content).Return(true)

	outcome, err := f.service.PushContent(context.Background(), PushContentRequest{DeviceID: 7, ContentID: 5})
	require.NoError(t, err)
	assert.True(t, outcome.Pushed)
}

func TestPushTempContentSkipsPersistence(t *testing.T) {
	f := newServiceFixture(t)
	content := &models.Content{ID: 5, Status: 1, Duration: 30}

	f.db.EXPECT().ContentByID(gomock.Any(), int64(5)).Return(content, nil)
	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(activeDevice(), nil)
	f.presence.EXPECT().IsOnline(gomock.Any(), testMAC).Return(true)
	// No SetCurrentContent expectation: a temp push must not persist.
	f.pusher.EXPECT().PushTempContent(gomock.Any(), testMAC, content, 10).Return(true)

	outcome, err := f.service.PushContent(context.Background(), PushContentRequest{DeviceID: 7, ContentID: 5, IsTemp: true, Duration: 10})
	require.NoError(t, err)
	assert.True(t, outcome.Pushed)
}

func TestBroadcastControlUnknownAction(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.BroadcastControl(context.Background(), "detonate", nil, "")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestBroadcastControlRestart(t *testing.T) {
	f := newServiceFixture(t)

	devices := []models.Device{
		{ID: 1, MACAddress: "aa:bb:cc:dd:ee:01"},
		{ID: 2, MACAddress: "aa:bb:cc:dd:ee:02"},
	}

	f.db.EXPECT().ListDevices(gomock.Any(), db.ListDevicesFilter{IDs: []int64{1, 2}}).Return(devices, nil)
	f.pusher.EXPECT().PushBatchControl(gomock.Any(), "aa:bb:cc:dd:ee:01", ActionRestart, "maintenance").Return(true)
	f.pusher.EXPECT().PushBatchControl(gomock.Any(), "aa:bb:cc:dd:ee:02", ActionRestart, "maintenance").Return(false)

	result, err := f.service.BroadcastControl(context.Background(), ActionRestart, []int64{1, 2}, "maintenance")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].Pushed)
	assert.False(t, result.Results[1].Pushed)
}

func TestBroadcastControlActivateDeactivate(t *testing.T) {
	f := newServiceFixture(t)

	devices := []models.Device{{ID: 1, MACAddress: testMAC}}

	f.db.EXPECT().ListDevices(gomock.Any(), gomock.Any()).Return(devices, nil).Times(2)
	f.pusher.EXPECT().PushActiveStatus(gomock.Any(), testMAC, true, "").Return(true)
	f.pusher.EXPECT().PushActiveStatus(gomock.Any(), testMAC, false, "").Return(true)

	_, err := f.service.BroadcastControl(context.Background(), ActionActivate, nil, "")
	require.NoError(t, err)

	_, err = f.service.BroadcastControl(context.Background(), ActionDeactivate, nil, "")
	require.NoError(t, err)
}

func TestBroadcastControlRefresh(t *testing.T) {
	f := newServiceFixture(t)

	devices := []models.Device{{ID: 1, MACAddress: testMAC}}

	f.db.EXPECT().ListDevices(gomock.Any(), gomock.Any()).Return(devices, nil)
	f.pusher.EXPECT().PushRefresh(gomock.Any(), testMAC, "new content").Return(true)

	result, err := f.service.BroadcastControl(context.Background(), ActionRefresh, nil, "new content")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
}

func TestNotifyActiveStatus(t *testing.T) {
	f := newServiceFixture(t)

	f.db.EXPECT().DeviceByID(gomock.Any(), int64(7)).Return(activeDevice(), nil)
	f.pusher.EXPECT().PushActiveStatus(gomock.Any(), testMAC, true, "activated").Return(true)

	outcome, err := f.service.NotifyActiveStatus(context.Background(), 7, true, "activated")
	require.NoError(t, err)
	assert.True(t, outcome.Pushed)
}

func TestDeviceStatusesMergesLiveState(t *testing.T) {
	f := newServiceFixture(t)

	contentID := int64(5)
	devices := []models.Device{
		{ID: 1, MACAddress: "aa:bb:cc:dd:ee:01", CurrentContentID: &contentID},
		{ID: 2, MACAddress: "aa:bb:cc:dd:ee:02"},
	}

	f.db.EXPECT().ListDevices(gomock.Any(), gomock.Any()).Return(devices, nil)

	f.presence.EXPECT().IsOnline(gomock.Any(), "aa:bb:cc:dd:ee:01").Return(true)
	f.presence.EXPECT().GetHeartbeat(gomock.Any(), "aa:bb:cc:dd:ee:01").Return(int64(1748779200), true)
	f.db.EXPECT().ContentByID(gomock.Any(), int64(5)).Return(&models.Content{ID: 5, Title: "promo"}, nil)

	f.presence.EXPECT().IsOnline(gomock.Any(), "aa:bb:cc:dd:ee:02").Return(false)
	f.presence.EXPECT().GetHeartbeat(gomock.Any(), "aa:bb:cc:dd:ee:02").Return(int64(0), false)

	statuses, err := f.service.DeviceStatuses(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, "online", statuses[0].WebsocketStatus)
	require.NotNil(t, statuses[0].LastHeartbeat)
	assert.Equal(t, int64(1748779200), *statuses[0].LastHeartbeat)
	require.NotNil(t, statuses[0].CurrentContent)
	assert.Equal(t, "promo", statuses[0].CurrentContent.Title)

	assert.Equal(t, "offline", statuses[1].WebsocketStatus)
	assert.Nil(t, statuses[1].LastHeartbeat)
	assert.Nil(t, statuses[1].CurrentContent)
}
