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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/glowsign/screenhub/pkg/config"
	"github.com/glowsign/screenhub/pkg/control"
	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/gateway"
	"github.com/glowsign/screenhub/pkg/kv"
	"github.com/glowsign/screenhub/pkg/lifecycle"
	"github.com/glowsign/screenhub/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/screenhub/gateway.json", "Path to gateway config file")
	flag.Parse()

	ctx := context.Background()

	cfgLoader := config.NewConfig(nil)

	var cfg gateway.Config
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logConfig := logger.DefaultConfig()
	if cfg.Logging != nil {
		logConfig = *cfg.Logging
	}

	mainLogger, err := logger.New(logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbSvc, err := db.New(ctx, &cfg.Database, mainLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbSvc.Close(); err != nil {
			mainLogger.Error().Err(err).Msg("Error closing database")
		}
	}()

	kvStore, err := kv.NewNatsStore(ctx, &cfg.KV)
	if err != nil {
		return fmt.Errorf("failed to connect to presence store: %w", err)
	}
	defer func() {
		if err := kvStore.Close(); err != nil {
			mainLogger.Error().Err(err).Msg("Error closing presence store")
		}
	}()

	// The server is the Transport the other components push through; the
	// handler is attached after construction because it needs the server.
	server := gateway.NewServer(cfg.ListenAddr, mainLogger)
	registry := gateway.NewRegistry(nil)
	presence := gateway.NewPresence(kvStore, registry, server, mainLogger)
	handler := gateway.NewHandler(registry, presence, dbSvc, server, nil, mainLogger)
	server.SetHandler(handler)

	pusher := gateway.NewPusher(registry, presence, server, nil, mainLogger)
	reconciler := gateway.NewReconciler(registry, presence, dbSvc, nil, time.Duration(cfg.ReconcileInterval), mainLogger)

	controlSvc := control.NewService(dbSvc, pusher, presence, mainLogger)
	adminAPI := control.NewAPIServer(cfg.AdminListenAddr, controlSvc, mainLogger)

	return lifecycle.Run(ctx, mainLogger, server, adminAPI, reconciler)
}
