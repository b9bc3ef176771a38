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
	"errors"
	"strings"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

// Handler dispatches inbound device frames and owns the per-connection
// register/heartbeat/get_content/disconnect state machine. All collaborators
// are injected; nothing in this package holds process-wide state.
type Handler struct {
	registry  *Registry
	presence  *Presence
	db        db.Service
	transport Transport
	clock     Clock
	logger    logger.Logger
}

// NewHandler creates a frame handler. A nil clock defaults to the real
// clock.
func NewHandler(registry *Registry, presence *Presence, dbSvc db.Service, transport Transport, clock Clock, log logger.Logger) *Handler {
	if clock == nil {
		clock = realClock{}
	}

	return &Handler{
		registry:  registry,
		presence:  presence,
		db:        dbSvc,
		transport: transport,
		clock:     clock,
		logger:    log.WithComponent("handler"),
	}
}

// HandleFrame processes one raw inbound frame from the connection behind
// handle and returns the frame to send back, or nil when no reply is due.
// Failures are contained per-connection; HandleFrame never panics the
// server.
func (h *Handler) HandleFrame(ctx context.Context, handle string, raw []byte) any {
	frame, err := decodeFrame(raw)
	if err != nil {
		return newErrorFrame("malformed frame")
	}

	switch frame.Type {
	case frameRegister:
		return h.handleRegister(ctx, handle, frame)
	case frameHeartbeat:
		return h.handleHeartbeat(ctx, handle, frame)
	case frameGetContent:
		return h.handleGetContent(ctx, handle, frame)
	default:
		return newErrorFrame("unknown message type: " + string(frame.Type))
	}
}

// defaultDeviceName derives the provisioning name for an unknown device:
// "SmartScreen-" plus the last eight characters of the identifier, separators
// stripped, uppercased.
func defaultDeviceName(identifier string) string {
	compact := strings.NewReplacer(":", "", "-", "").Replace(identifier)
	compact = strings.ToUpper(compact)

	if len(compact) > 8 {
		compact = compact[len(compact)-8:]
	}

	return "SmartScreen-" + compact
}

func (h *Handler) handleRegister(ctx context.Context, handle string, frame inboundFrame) any {
	if frame.MAC == "" {
		return registerAck{Type: frameRegisterAck, Success: false, Msg: "missing mac address"}
	}

	mac := normalizeIdentifier(frame.MAC)
	isNew := false

	device, err := h.db.DeviceByMAC(ctx, mac)

	switch {
	case errors.Is(err, db.ErrNotFound):
		name := frame.DeviceName
		if name == "" {
			name = defaultDeviceName(mac)
		}

		device = &models.Device{
			MACAddress:  mac,
			DeviceName:  name,
			Status:      models.DeviceInactive,
			IsOnline:    true,
			DisplayMode: models.DisplayModePlaylistPriority,
		}

		if err := h.db.CreateDevice(ctx, device); err != nil {
			h.logger.Error().Err(err).Str("mac", mac).Msg("Device auto-create failed")
			return registerAck{Type: frameRegisterAck, Success: false, Msg: "device registration failed"}
		}

		isNew = true
	case err != nil:
		h.logger.Error().Err(err).Str("mac", mac).Msg("Device lookup failed")
		return registerAck{Type: frameRegisterAck, Success: false, Msg: "device registration failed"}
	default:
		if err := h.db.UpdateDeviceOnline(ctx, device.ID, true); err != nil {
			h.logger.Warn().Err(err).Str("mac", mac).Msg("Failed to mark device online")
		}

		isNew = h.clock.Now().Sub(device.CreatedAt) < newDeviceWindow
	}

	// Last writer wins: a superseded connection for the same identifier is
	// force-closed so it cannot linger as an orphaned handle.
	if prev, replaced := h.registry.Register(mac, handle, device.ID, device.Active()); replaced && prev.Handle != handle {
		h.logger.Info().
			Str("mac", mac).
			Str("old_handle", prev.Handle).
			Str("new_handle", handle).
			Msg("Duplicate registration, closing superseded connection")
		h.presence.ClearByHandle(ctx, prev.Handle)
		h.transport.CloseHandle(prev.Handle)
	}

	h.presence.SetConnection(ctx, mac, handle)
	h.presence.SetHeartbeat(ctx, mac, h.clock.Now())

	h.logger.Info().
		Str("mac", mac).
		Int64("device_id", device.ID).
		Bool("is_new", isNew).
		Bool("active", device.Active()).
		Msg("Device registered")

	return registerAck{
		Type:        frameRegisterAck,
		Success:     true,
		Active:      activeFlag(device.Active()),
		DeviceID:    device.ID,
		IsNewDevice: isNew,
		Msg:         "registered",
	}
}

func (h *Handler) handleHeartbeat(ctx context.Context, handle string, frame inboundFrame) any {
	if frame.MAC == "" {
		return heartbeatAck{Type: frameHeartbeatAck, Success: false, Msg: "missing mac address"}
	}

	mac := normalizeIdentifier(frame.MAC)

	active, err := h.registry.Touch(mac)
	if errors.Is(err, ErrNotTracked) {
		// Heartbeat is self-healing: after a restart the registry is empty
		// but the device is still connected, so re-register it from the
		// persisted record instead of rejecting.
		device, dbErr := h.db.DeviceByMAC(ctx, mac)
		if dbErr != nil {
			if !errors.Is(dbErr, db.ErrNotFound) {
				h.logger.Error().Err(dbErr).Str("mac", mac).Msg("Device lookup failed during heartbeat")
			}

			return heartbeatAck{Type: frameHeartbeatAck, Success: false, Msg: "unknown device"}
		}

		h.registry.Register(mac, handle, device.ID, device.Active())
		h.presence.SetConnection(ctx, mac, handle)

		active = device.Active()

		h.logger.Debug().Str("mac", mac).Msg("Heartbeat re-registered untracked device")
	}

	h.presence.SetHeartbeat(ctx, mac, h.clock.Now())

	return heartbeatAck{
		Type:    frameHeartbeatAck,
		Success: true,
		Active:  activeFlag(active),
		Msg:     "ok",
	}
}

func (h *Handler) handleGetContent(ctx context.Context, handle string, frame inboundFrame) any {
	if frame.MAC == "" {
		return contentResponse{Type: frameContentResponse, Success: false, Msg: "missing mac address"}
	}

	mac := normalizeIdentifier(frame.MAC)

	conn, err := h.registry.Lookup(mac)
	if errors.Is(err, ErrNotTracked) {
		device, dbErr := h.db.DeviceByMAC(ctx, mac)
		if dbErr != nil {
			return contentResponse{Type: frameContentResponse, Success: false, Msg: "unknown device"}
		}

		h.registry.Register(mac, handle, device.ID, device.Active())
		h.presence.SetConnection(ctx, mac, handle)

		conn, _ = h.registry.Lookup(mac)
	}

	// Inactive devices are refused before any resolution work happens.
	if !conn.Active {
		return contentResponse{Type: frameContentResponse, Success: false, Msg: "device not activated"}
	}

	device, err := h.db.DeviceByID(ctx, conn.DeviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("mac", mac).Msg("Device load failed during get_content")
		return contentResponse{Type: frameContentResponse, Success: false, Msg: "device lookup failed"}
	}

	resolution, err := h.resolveDevice(ctx, device)
	if err != nil {
		return contentResponse{Type: frameContentResponse, Success: false, Msg: "content lookup failed"}
	}

	data := buildContentData(device, resolution)

	if resolution.Empty() {
		return contentResponse{Type: frameContentResponse, Success: false, Msg: "no playable content", Data: data}
	}

	return contentResponse{Type: frameContentResponse, Success: true, Msg: "ok", Data: data}
}

// resolveDevice loads the device's content associations and runs resolution.
func (h *Handler) resolveDevice(ctx context.Context, device *models.Device) (Resolution, error) {
	direct, err := h.db.DeviceDirectContent(ctx, device.ID)
	if err != nil {
		h.logger.Error().Err(err).Int64("device_id", device.ID).Msg("Direct content load failed")
		return Resolution{}, err
	}

	items, err := h.db.DevicePlaylistItems(ctx, device.ID)
	if err != nil {
		h.logger.Error().Err(err).Int64("device_id", device.ID).Msg("Playlist load failed")
		return Resolution{}, err
	}

	return Resolve(device.DisplayMode, direct, items), nil
}

func buildContentData(device *models.Device, res Resolution) *contentData {
	items := res.PlaylistItems
	if items == nil {
		items = []models.PlaylistItem{}
	}

	return &contentData{
		DeviceID:          device.ID,
		DisplayMode:       device.DisplayMode,
		DisplayModeName:   res.ModeName,
		DirectContent:     res.Direct,
		PlaylistContents:  items,
		PrimaryContents:   res.Primary,
		SecondaryContents: res.Secondary,
		TotalContents:     res.TotalCount(),
	}
}

// HandleDisconnect tears down state for a closed connection. The identifier
// is resolved via the reverse presence mapping, falling back to a registry
// scan; if neither knows the handle, nothing happens.
func (h *Handler) HandleDisconnect(ctx context.Context, handle string) {
	mac, found := h.presence.ResolveIdentifier(ctx, handle)

	var deviceID int64

	if found {
		if conn, err := h.registry.Lookup(mac); err == nil {
			deviceID = conn.DeviceID
		}
	} else {
		conn, err := h.registry.FindByHandle(handle)
		if err != nil {
			h.logger.Debug().Str("handle", handle).Msg("Disconnect for unknown handle")
			return
		}

		mac = conn.Identifier
		deviceID = conn.DeviceID
	}

	if deviceID == 0 {
		if device, err := h.db.DeviceByMAC(ctx, mac); err == nil {
			deviceID = device.ID
		}
	}

	if deviceID != 0 {
		if err := h.db.UpdateDeviceOnline(ctx, deviceID, false); err != nil {
			h.logger.Warn().Err(err).Str("mac", mac).Msg("Failed to mark device offline")
		}
	}

	h.registry.Remove(mac)
	h.presence.ClearByIdentifier(ctx, mac)
	h.presence.ClearByHandle(ctx, handle)

	h.logger.Info().Str("mac", mac).Str("handle", handle).Msg("Device disconnected")
}
