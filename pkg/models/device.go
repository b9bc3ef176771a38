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

// Package models holds the shared data types for the screen gateway.
package models

import "time"

// DisplayMode selects which of {direct content, playlist content} a device
// plays first.
type DisplayMode int

const (
	// DisplayModePlaylistPriority plays playlist items first, direct content
	// as fallback.
	DisplayModePlaylistPriority DisplayMode = 1
	// DisplayModeDirectPriority plays direct content first, playlist items
	// as fallback.
	DisplayModeDirectPriority DisplayMode = 2
	// DisplayModePlaylistOnly ignores direct content entirely.
	DisplayModePlaylistOnly DisplayMode = 3
	// DisplayModeDirectOnly ignores playlist content entirely.
	DisplayModeDirectOnly DisplayMode = 4
)

// Valid reports whether m is one of the four known modes.
func (m DisplayMode) Valid() bool {
	return m >= DisplayModePlaylistPriority && m <= DisplayModeDirectOnly
}

// Name returns the human-readable policy name used on the wire.
func (m DisplayMode) Name() string {
	switch m {
	case DisplayModePlaylistPriority:
		return "playlist priority"
	case DisplayModeDirectPriority:
		return "direct priority"
	case DisplayModePlaylistOnly:
		return "playlist only"
	case DisplayModeDirectOnly:
		return "direct only"
	default:
		return "unknown"
	}
}

// Device activation states as persisted.
const (
	DeviceInactive = 0
	DeviceActive   = 1
)

// Device is a physical display unit as stored by the persistence layer.
// The gateway reads it and writes back only the online/last-seen fields.
type Device struct {
	ID               int64       `json:"id" db:"id"`
	MACAddress       string      `json:"mac_address" db:"mac_address"`
	DeviceName       string      `json:"device_name" db:"device_name"`
	Status           int         `json:"status" db:"status"`
	IsOnline         bool        `json:"is_online" db:"is_online"`
	DisplayMode      DisplayMode `json:"display_mode" db:"display_mode"`
	CurrentContentID *int64      `json:"current_content_id" db:"current_content_id"`
	LastOnlineTime   *time.Time  `json:"last_online_time" db:"last_online_time"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

// Active reports whether the device has been activated by an administrator.
func (d *Device) Active() bool {
	return d.Status == DeviceActive
}

// Content is a playable item (image, video, web page).
type Content struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	ContentType int    `json:"content_type" db:"content_type"`
	ContentURL  string `json:"content_url" db:"content_url"`
	Thumbnail   string `json:"thumbnail" db:"thumbnail"`
	Duration    int    `json:"duration" db:"duration"`
	Status      int    `json:"status" db:"status"`
}

// Enabled reports whether the content may be played.
func (c *Content) Enabled() bool {
	return c.Status == 1
}

// PlaylistItem is one content row of a device's playlist expansion, carrying
// the playlist it came from and both sort positions.
type PlaylistItem struct {
	Content
	PlaylistID   int64  `json:"playlist_id" db:"playlist_id"`
	PlaylistName string `json:"playlist_name" db:"playlist_name"`
	PlayMode     int    `json:"play_mode" db:"play_mode"`
	PlaylistSort int    `json:"playlist_sort" db:"playlist_sort"`
	ContentSort  int    `json:"content_sort" db:"content_sort"`
}

// DeviceStatus is a device row enriched with live gateway state, as reported
// to administrators.
type DeviceStatus struct {
	Device
	WebsocketStatus string   `json:"websocket_status"`
	LastHeartbeat   *int64   `json:"last_heartbeat"`
	CurrentContent  *Content `json:"current_content"`
}
