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

//go:generate mockgen -destination=mock_db.go -package=db github.com/glowsign/screenhub/pkg/db Service

// Package db is the gateway's view of the relational store owning devices,
// contents and playlists. The admin panel's CRUD layer owns the schema; the
// gateway reads it and writes back only presence-related fields.
package db

import (
	"context"

	"github.com/glowsign/screenhub/pkg/models"
)

// ListDevicesFilter narrows ListDevices. Zero value means all devices.
type ListDevicesFilter struct {
	IDs        []int64
	OnlyActive bool
	OnlyOnline bool
}

// Service is the persistence contract consumed by the gateway and the
// control layer.
type Service interface {
	// DeviceByMAC looks a device up by its hardware address (stored
	// lowercased). Returns ErrNotFound when no such device exists.
	DeviceByMAC(ctx context.Context, mac string) (*models.Device, error)

	// DeviceByID returns ErrNotFound when no such device exists.
	DeviceByID(ctx context.Context, id int64) (*models.Device, error)

	// CreateDevice inserts the device and fills ID and CreatedAt.
	CreateDevice(ctx context.Context, device *models.Device) error

	// UpdateDeviceOnline flips the online flag; going online also stamps
	// last_online_time.
	UpdateDeviceOnline(ctx context.Context, id int64, online bool) error

	// ResetAllDevicesOffline marks every device offline and reports how many
	// rows changed.
	ResetAllDevicesOffline(ctx context.Context) (int64, error)

	// UpdateDisplayMode persists a new display mode for the device.
	UpdateDisplayMode(ctx context.Context, id int64, mode models.DisplayMode) error

	// SetCurrentContent persists the device's direct content reference;
	// nil clears it.
	SetCurrentContent(ctx context.Context, id int64, contentID *int64) error

	// ContentByID returns ErrNotFound when no such content exists.
	ContentByID(ctx context.Context, id int64) (*models.Content, error)

	// DeviceDirectContent returns the device's directly-assigned content if
	// present and enabled, else nil.
	DeviceDirectContent(ctx context.Context, deviceID int64) (*models.Content, error)

	// DevicePlaylistItems returns the ordered expansion of all enabled
	// playlists assigned to the device, enabled items only, ordered by
	// playlist assignment order then item order.
	DevicePlaylistItems(ctx context.Context, deviceID int64) ([]models.PlaylistItem, error)

	// ListDevices returns devices matching the filter, newest first.
	ListDevices(ctx context.Context, filter ListDevicesFilter) ([]models.Device, error)

	// Close releases the underlying pool.
	Close() error
}
