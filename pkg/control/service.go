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
	"errors"
	"fmt"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/gateway"
	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

// Broadcast control actions.
const (
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
	ActionRefresh    = "refresh"
	ActionRestart    = "restart"
	ActionShutdown   = "shutdown"
)

// Service implements the administrator control plane over the persistence
// layer and the gateway's push surface.
type Service struct {
	db       db.Service
	pusher   DevicePusher
	presence PresenceReader
	logger   logger.Logger
}

// NewService creates the control service.
func NewService(dbSvc db.Service, pusher DevicePusher, presence PresenceReader, log logger.Logger) *Service {
	return &Service{
		db:       dbSvc,
		pusher:   pusher,
		presence: presence,
		logger:   log.WithComponent("control"),
	}
}

// PushOutcome reports whether an operation's frame reached the device.
// Delivery is best-effort; a false Pushed is not an error.
type PushOutcome struct {
	DeviceID int64  `json:"device_id"`
	MAC      string `json:"mac_address"`
	Pushed   bool   `json:"pushed"`
}

// SwitchDisplayMode persists a new precedence policy for the device, then
// notifies it: first the mode change, then the content resolved under the
// new mode so the device does not have to ask.
func (s *Service) SwitchDisplayMode(ctx context.Context, deviceID int64, mode models.DisplayMode) (*PushOutcome, error) {
	if !mode.Valid() {
		return nil, ErrInvalidDisplayMode
	}

	device, err := s.db.DeviceByID(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("device lookup failed: %w", err)
	}

	if err := s.db.UpdateDisplayMode(ctx, deviceID, mode); err != nil {
		return nil, fmt.Errorf("display mode update failed: %w", err)
	}

	device.DisplayMode = mode

	pushed := s.pusher.PushDisplayModeChange(ctx, device.MACAddress, mode)

	if pushed {
		res, resErr := s.resolveDevice(ctx, device)
		if resErr != nil {
			s.logger.Warn().Err(resErr).Int64("device_id", deviceID).Msg("Resolution after mode switch failed")
		} else {
			s.pusher.PushContentResponse(ctx, device.MACAddress, device, res, "display mode changed")
		}
	}

	s.logger.Info().
		Int64("device_id", deviceID).
		Int("display_mode", int(mode)).
		Bool("pushed", pushed).
		Msg("Display mode switched")

	return &PushOutcome{DeviceID: deviceID, MAC: device.MACAddress, Pushed: pushed}, nil
}

// PushContentRequest targets one device with one content item. A temp push
// shows the content once for Duration seconds without touching the device's
// persisted current content.
type PushContentRequest struct {
	DeviceID  int64 `json:"device_id"`
	ContentID int64 `json:"content_id"`
	IsTemp    bool  `json:"is_temp"`
	Duration  int   `json:"duration"`
}

// PushContent delivers a content item to an active, online device. Non-temp
// pushes also persist the content as the device's direct assignment.
func (s *Service) PushContent(ctx context.Context, req PushContentRequest) (*PushOutcome, error) {
	content, err := s.db.ContentByID(ctx, req.ContentID)
	if err != nil {
		return nil, fmt.Errorf("content lookup failed: %w", err)
	}

	if !content.Enabled() {
		return nil, ErrContentDisabled
	}

	device, err := s.db.DeviceByID(ctx, req.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("device lookup failed: %w", err)
	}

	if !device.Active() {
		return nil, ErrDeviceNotActive
	}

	if !s.presence.IsOnline(ctx, device.MACAddress) {
		return nil, ErrDeviceOffline
	}

	if !req.IsTemp {
		if err := s.db.SetCurrentContent(ctx, device.ID, &content.ID); err != nil {
			return nil, fmt.Errorf("current content update failed: %w", err)
		}
	}

	var pushed bool
	if req.IsTemp {
		pushed = s.pusher.PushTempContent(ctx, device.MACAddress, content, req.Duration)
	} else {
		pushed = s.pusher.PushContent(ctx, device.MACAddress, content)
	}

	s.logger.Info().
		Int64("device_id", device.ID).
		Int64("content_id", content.ID).
		Bool("is_temp", req.IsTemp).
		Bool("pushed", pushed).
		Msg("Content pushed")

	return &PushOutcome{DeviceID: device.ID, MAC: device.MACAddress, Pushed: pushed}, nil
}

// BroadcastResult summarizes one broadcast across its targets.
type BroadcastResult struct {
	Action    string        `json:"action"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Results   []PushOutcome `json:"results"`
}

// BroadcastControl sends a control action to the given devices, or to every
// device when deviceIDs is empty. activate/deactivate sync the connection's
// activation state; refresh asks devices to re-request content; restart and
// shutdown are passed through as batch control commands.
func (s *Service) BroadcastControl(ctx context.Context, action string, deviceIDs []int64, msg string) (*BroadcastResult, error) {
	switch action {
	case ActionActivate, ActionDeactivate, ActionRefresh, ActionRestart, ActionShutdown:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	devices, err := s.db.ListDevices(ctx, db.ListDevicesFilter{IDs: deviceIDs})
	if err != nil {
		return nil, fmt.Errorf("device list failed: %w", err)
	}

	result := &BroadcastResult{Action: action, Results: make([]PushOutcome, 0, len(devices))}

	for i := range devices {
		device := &devices[i]

		var pushed bool

		switch action {
		case ActionActivate:
			pushed = s.pusher.PushActiveStatus(ctx, device.MACAddress, true, msg)
		case ActionDeactivate:
			pushed = s.pusher.PushActiveStatus(ctx, device.MACAddress, false, msg)
		case ActionRefresh:
			pushed = s.pusher.PushRefresh(ctx, device.MACAddress, msg)
		default:
			pushed = s.pusher.PushBatchControl(ctx, device.MACAddress, action, msg)
		}

		if pushed {
			result.Succeeded++
		} else {
			result.Failed++
		}

		result.Results = append(result.Results, PushOutcome{
			DeviceID: device.ID,
			MAC:      device.MACAddress,
			Pushed:   pushed,
		})
	}

	s.logger.Info().
		Str("action", action).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("Broadcast control complete")

	return result, nil
}

// NotifyActiveStatus pushes the device's activation state to its live
// connection. The status field itself is owned by the admin CRUD layer;
// this keeps the connection's cached flag and the device display in sync
// after that layer changes it.
func (s *Service) NotifyActiveStatus(ctx context.Context, deviceID int64, active bool, msg string) (*PushOutcome, error) {
	device, err := s.db.DeviceByID(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("device lookup failed: %w", err)
	}

	pushed := s.pusher.PushActiveStatus(ctx, device.MACAddress, active, msg)

	return &PushOutcome{DeviceID: device.ID, MAC: device.MACAddress, Pushed: pushed}, nil
}

// DeviceStatuses merges persisted device rows with live gateway state.
func (s *Service) DeviceStatuses(ctx context.Context, deviceIDs []int64) ([]models.DeviceStatus, error) {
	devices, err := s.db.ListDevices(ctx, db.ListDevicesFilter{IDs: deviceIDs})
	if err != nil {
		return nil, fmt.Errorf("device list failed: %w", err)
	}

	statuses := make([]models.DeviceStatus, 0, len(devices))

	for i := range devices {
		device := devices[i]

		status := models.DeviceStatus{Device: device, WebsocketStatus: "offline"}

		if s.presence.IsOnline(ctx, device.MACAddress) {
			status.WebsocketStatus = "online"
		}

		if hb, found := s.presence.GetHeartbeat(ctx, device.MACAddress); found {
			status.LastHeartbeat = &hb
		}

		if device.CurrentContentID != nil {
			content, contentErr := s.db.ContentByID(ctx, *device.CurrentContentID)
			if contentErr == nil {
				status.CurrentContent = content
			} else if !errors.Is(contentErr, db.ErrNotFound) {
				s.logger.Warn().Err(contentErr).Int64("device_id", device.ID).Msg("Current content lookup failed")
			}
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

func (s *Service) resolveDevice(ctx context.Context, device *models.Device) (gateway.Resolution, error) {
	direct, err := s.db.DeviceDirectContent(ctx, device.ID)
	if err != nil {
		return gateway.Resolution{}, err
	}

	items, err := s.db.DevicePlaylistItems(ctx, device.ID)
	if err != nil {
		return gateway.Resolution{}, err
	}

	return gateway.Resolve(device.DisplayMode, direct, items), nil
}
