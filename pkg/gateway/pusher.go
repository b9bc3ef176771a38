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

	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

// Pusher exposes the outbound push operations the admin control layer
// invokes. Every push is fire-and-forget: it reports false when the
// identifier does not resolve to an established connection or the write
// fails; no retry, no acknowledgment.
type Pusher struct {
	registry  *Registry
	presence  *Presence
	transport Transport
	clock     Clock
	logger    logger.Logger
}

// NewPusher creates a pusher. A nil clock defaults to the real clock.
func NewPusher(registry *Registry, presence *Presence, transport Transport, clock Clock, log logger.Logger) *Pusher {
	if clock == nil {
		clock = realClock{}
	}

	return &Pusher{
		registry:  registry,
		presence:  presence,
		transport: transport,
		clock:     clock,
		logger:    log.WithComponent("pusher"),
	}
}

// resolveTarget maps an identifier to an established connection handle. It
// prefers the presence store; if the store has degraded, the registry is the
// fallback truth.
func (p *Pusher) resolveTarget(ctx context.Context, identifier string) (string, bool) {
	handle, found := p.presence.ResolveHandle(ctx, identifier)
	if !found {
		conn, err := p.registry.Lookup(identifier)
		if err != nil {
			return "", false
		}

		handle = conn.Handle
	}

	if !p.transport.IsEstablished(handle) {
		return "", false
	}

	return handle, true
}

func (p *Pusher) send(ctx context.Context, identifier string, frame any) bool {
	handle, ok := p.resolveTarget(ctx, identifier)
	if !ok {
		p.logger.Debug().Str("mac", identifier).Msg("Push target unreachable")
		return false
	}

	if err := p.transport.Send(handle, frame); err != nil {
		p.logger.Warn().Err(err).Str("mac", identifier).Msg("Push write failed")
		return false
	}

	return true
}

// PushActiveStatus notifies the device of its new activation state and syncs
// the registry's cached flag so subsequent get_content calls see it.
func (p *Pusher) PushActiveStatus(ctx context.Context, identifier string, active bool, msg string) bool {
	p.registry.SetActivation(identifier, active)

	return p.send(ctx, identifier, activeStatusFrame{
		Type:   frameActiveStatus,
		Active: activeFlag(active),
		Msg:    msg,
	})
}

// PushContent sends a content item for immediate display.
func (p *Pusher) PushContent(ctx context.Context, identifier string, content *models.Content) bool {
	return p.send(ctx, identifier, pushContentFrame{
		Type: framePushContent,
		Data: newContentPayload(content),
	})
}

// PushTempContent sends a content item for temporary display. duration
// overrides the content's own duration for this showing only; the device
// reverts to its resolved content afterwards.
func (p *Pusher) PushTempContent(ctx context.Context, identifier string, content *models.Content, duration int) bool {
	payload := newContentPayload(content)
	payload.IsTemp = true

	if duration > 0 {
		payload.Duration = duration
	}

	return p.send(ctx, identifier, pushContentFrame{
		Type: frameTempContent,
		Data: payload,
	})
}

// PushDisplayModeChange notifies the device that its precedence policy
// changed.
func (p *Pusher) PushDisplayModeChange(ctx context.Context, identifier string, mode models.DisplayMode) bool {
	return p.send(ctx, identifier, displayModeChangeFrame{
		Type:        frameDisplayModeChange,
		DisplayMode: mode,
		ModeName:    mode.Name(),
	})
}

// PushBatchControl sends a broadcast control action (restart, shutdown, ...)
// to one device.
func (p *Pusher) PushBatchControl(ctx context.Context, identifier, action, msg string) bool {
	return p.send(ctx, identifier, batchControlFrame{
		Type:      frameBatchControl,
		Action:    action,
		Message:   msg,
		Timestamp: p.clock.Now().Unix(),
	})
}

// PushRefresh asks the device to re-request its content.
func (p *Pusher) PushRefresh(ctx context.Context, identifier, msg string) bool {
	return p.send(ctx, identifier, refreshFrame{
		Type:    frameRefresh,
		Message: msg,
	})
}

// PushContentResponse sends an unsolicited content_response carrying a full
// resolution, used after an administrator changes what a device should play.
func (p *Pusher) PushContentResponse(ctx context.Context, identifier string, device *models.Device, res Resolution, msg string) bool {
	return p.send(ctx, identifier, contentResponse{
		Type:    frameContentResponse,
		Success: !res.Empty(),
		Msg:     msg,
		Data:    buildContentData(device, res),
	})
}
