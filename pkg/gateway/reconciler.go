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
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/logger"
)

// Reconciler periodically audits tracked identifiers against actual
// connection liveness, corrects drift between the registry, the presence
// store and the persisted online flags, and logs an online/offline summary.
type Reconciler struct {
	registry *Registry
	presence *Presence
	db       db.Service
	clock    Clock
	interval time.Duration
	logger   logger.Logger

	ticking   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewReconciler creates a reconciler ticking at interval. A nil clock
// defaults to the real clock.
func NewReconciler(registry *Registry, presence *Presence, dbSvc db.Service, clock Clock, interval time.Duration, log logger.Logger) *Reconciler {
	if clock == nil {
		clock = realClock{}
	}

	return &Reconciler{
		registry: registry,
		presence: presence,
		db:       dbSvc,
		clock:    clock,
		interval: interval,
		logger:   log.WithComponent("reconciler"),
		done:     make(chan struct{}),
	}
}

// Start implements the lifecycle.Service interface. It performs the startup
// reset, then ticks until the context is canceled or Stop is called.
func (r *Reconciler) Start(ctx context.Context) error {
	if err := r.startupReset(ctx); err != nil {
		return fmt.Errorf("startup reset failed: %w", err)
	}

	ticker := r.clock.Ticker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("Starting presence reconciler")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.done:
			return nil
		case <-ticker.Chan():
			// Single-flight: a tick still running when the next is due
			// means the next is skipped, never queued.
			if !r.ticking.CompareAndSwap(false, true) {
				r.logger.Warn().Msg("Reconciliation tick still running, skipping")
				continue
			}

			r.wg.Add(1)

			go func() {
				defer r.wg.Done()
				defer r.ticking.Store(false)

				r.Tick(ctx)
			}()
		}
	}
}

// Stop implements the lifecycle.Service interface.
func (r *Reconciler) Stop(_ context.Context) error {
	r.closeOnce.Do(func() {
		close(r.done)
	})

	r.wg.Wait()

	return nil
}

// startupReset guards against stale state surviving a restart: every
// persisted device goes offline and the presence bucket is purged. Devices
// still connected re-establish themselves through registration and
// self-healing heartbeats.
func (r *Reconciler) startupReset(ctx context.Context) error {
	count, err := r.db.ResetAllDevicesOffline(ctx)
	if err != nil {
		return err
	}

	if err := r.presence.Reset(ctx); err != nil {
		// A degraded presence store is tolerated everywhere else, so it is
		// tolerated here too.
		r.logger.Warn().Err(err).Msg("Presence reset failed, continuing with stale store")
	}

	r.logger.Info().Int64("devices_reset", count).Msg("Startup presence reset complete")

	return nil
}

// Tick runs one reconciliation pass. Exported so tests and operators can
// trigger a pass without waiting for the ticker.
func (r *Reconciler) Tick(ctx context.Context) {
	identifiers, err := r.presence.TrackedIdentifiers(ctx)
	if err != nil {
		r.logger.Debug().Err(err).Msg("Presence store unavailable, reconciling from registry")

		identifiers = identifiers[:0]
		for _, conn := range r.registry.Snapshot() {
			identifiers = append(identifiers, conn.Identifier)
		}
	}

	var online, offline int

	for _, mac := range identifiers {
		// IsOnline falls back to the registry when the store cannot answer,
		// so identifiers this process still serves are never swept.
		if r.presence.IsOnline(ctx, mac) {
			online++
			continue
		}

		offline++
		r.markOffline(ctx, mac)
	}

	r.logger.Info().
		Int("online", online).
		Int("offline", offline).
		Int("tracked", len(identifiers)).
		Msg("Presence reconciliation complete")
}

// markOffline clears a dead identifier everywhere it is tracked.
func (r *Reconciler) markOffline(ctx context.Context, mac string) {
	if conn, err := r.registry.Lookup(mac); err == nil && conn.DeviceID != 0 {
		if err := r.db.UpdateDeviceOnline(ctx, conn.DeviceID, false); err != nil {
			r.logger.Warn().Err(err).Str("mac", mac).Msg("Failed to persist offline state")
		}
	} else if device, err := r.db.DeviceByMAC(ctx, mac); err == nil {
		if err := r.db.UpdateDeviceOnline(ctx, device.ID, false); err != nil {
			r.logger.Warn().Err(err).Str("mac", mac).Msg("Failed to persist offline state")
		}
	}

	r.registry.Remove(mac)
	r.presence.ClearByIdentifier(ctx, mac)
}
