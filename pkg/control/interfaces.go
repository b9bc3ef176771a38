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

//go:generate mockgen -destination=mock_control.go -package=control github.com/glowsign/screenhub/pkg/control DevicePusher,PresenceReader

// Package control is the administrator-facing control plane: switch display
// modes, push content, broadcast control actions and report live device
// status, all delivered through the gateway's outbound push operations.
package control

import (
	"context"

	"github.com/glowsign/screenhub/pkg/gateway"
	"github.com/glowsign/screenhub/pkg/models"
)

// DevicePusher is the subset of the gateway's push surface the control
// layer consumes. Every push reports whether the frame was delivered to an
// established connection.
type DevicePusher interface {
	PushActiveStatus(ctx context.Context, identifier string, active bool, msg string) bool
	PushContent(ctx context.Context, identifier string, content *models.Content) bool
	PushTempContent(ctx context.Context, identifier string, content *models.Content, duration int) bool
	PushDisplayModeChange(ctx context.Context, identifier string, mode models.DisplayMode) bool
	PushBatchControl(ctx context.Context, identifier, action, msg string) bool
	PushRefresh(ctx context.Context, identifier, msg string) bool
	PushContentResponse(ctx context.Context, identifier string, device *models.Device, res gateway.Resolution, msg string) bool
}

// PresenceReader is the read-only presence view used for status reporting.
type PresenceReader interface {
	IsOnline(ctx context.Context, identifier string) bool
	GetHeartbeat(ctx context.Context, identifier string) (int64, bool)
}
