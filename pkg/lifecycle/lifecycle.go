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

// Package lifecycle runs long-lived services with signal-driven shutdown.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowsign/screenhub/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Service is a long-running component. Start blocks until the context is
// canceled or the service fails; Stop releases resources.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Run starts every service and blocks until one of them fails or the
// process receives SIGINT/SIGTERM, then stops them all in reverse order
// under a shutdown timeout. The first failure is returned.
func Run(ctx context.Context, log logger.Logger, services ...Service) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, len(services))

	for _, svc := range services {
		go func(svc Service) {
			if err := svc.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
				return
			}

			errCh <- nil
		}(svc)
	}

	var runErr error

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			runErr = err
			log.Error().Err(err).Msg("Service failed, shutting down")
		}
	}

	stop()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(stopCtx); err != nil {
			log.Error().Err(err).Msg("Service stop failed")

			if runErr == nil {
				runErr = fmt.Errorf("stop failed: %w", err)
			}
		}
	}

	return runErr
}
