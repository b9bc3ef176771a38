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
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/glowsign/screenhub/pkg/db"
	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

// APIServer exposes the control plane over HTTP for the admin panel.
type APIServer struct {
	listenAddr string
	service    *Service
	logger     logger.Logger

	httpSrv   *http.Server
	done      chan struct{}
	closeOnce sync.Once
}

// NewAPIServer creates the admin HTTP server.
func NewAPIServer(listenAddr string, service *Service, log logger.Logger) *APIServer {
	return &APIServer{
		listenAddr: listenAddr,
		service:    service,
		logger:     log.WithComponent("control-api"),
		done:       make(chan struct{}),
	}
}

// Router builds the route table. Exposed for tests.
func (s *APIServer) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/devices/status", s.handleDeviceStatuses).Methods("GET")
	router.HandleFunc("/api/devices/control", s.handleBroadcastControl).Methods("POST")
	router.HandleFunc("/api/devices/{id}/display-mode", s.handleSwitchDisplayMode).Methods("POST")
	router.HandleFunc("/api/devices/{id}/content", s.handlePushContent).Methods("POST")
	router.HandleFunc("/api/devices/{id}/active", s.handleNotifyActiveStatus).Methods("POST")

	return router
}

// Start implements the lifecycle.Service interface.
func (s *APIServer) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.listenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info().Str("addr", s.listenAddr).Msg("Starting control API")

	errCh := make(chan error, 1)

	go func() {
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}
}

// Stop implements the lifecycle.Service interface.
func (s *APIServer) Stop(ctx context.Context) error {
	s.closeOnce.Do(func() {
		close(s.done)
	})

	if s.httpSrv == nil {
		return nil
	}

	return s.httpSrv.Shutdown(ctx)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *APIServer) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("Response encoding failed")
	}
}

// writeServiceError maps control/persistence errors to HTTP statuses.
func (s *APIServer) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidDisplayMode),
		errors.Is(err, ErrUnknownAction):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrContentDisabled),
		errors.Is(err, ErrDeviceNotActive),
		errors.Is(err, ErrDeviceOffline):
		writeError(w, err.Error(), http.StatusConflict)
	default:
		s.logger.Error().Err(err).Msg("Control operation failed")
		writeError(w, "internal error", http.StatusInternalServerError)
	}
}

func deviceIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (s *APIServer) handleSwitchDisplayMode(w http.ResponseWriter, r *http.Request) {
	deviceID, err := deviceIDFromRequest(r)
	if err != nil {
		writeError(w, "invalid device id", http.StatusBadRequest)
		return
	}

	var req struct {
		DisplayMode models.DisplayMode `json:"display_mode"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := s.service.SwitchDisplayMode(r.Context(), deviceID, req.DisplayMode)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, outcome)
}

func (s *APIServer) handlePushContent(w http.ResponseWriter, r *http.Request) {
	deviceID, err := deviceIDFromRequest(r)
	if err != nil {
		writeError(w, "invalid device id", http.StatusBadRequest)
		return
	}

	var req PushContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.DeviceID = deviceID

	outcome, err := s.service.PushContent(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, outcome)
}

func (s *APIServer) handleNotifyActiveStatus(w http.ResponseWriter, r *http.Request) {
	deviceID, err := deviceIDFromRequest(r)
	if err != nil {
		writeError(w, "invalid device id", http.StatusBadRequest)
		return
	}

	var req struct {
		Active bool   `json:"active"`
		Msg    string `json:"msg"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := s.service.NotifyActiveStatus(r.Context(), deviceID, req.Active, req.Msg)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, outcome)
}

func (s *APIServer) handleBroadcastControl(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action    string  `json:"action"`
		DeviceIDs []int64 `json:"device_ids"`
		Message   string  `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.service.BroadcastControl(r.Context(), req.Action, req.DeviceIDs, req.Message)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, result)
}

func (s *APIServer) handleDeviceStatuses(w http.ResponseWriter, r *http.Request) {
	var deviceIDs []int64

	if raw := r.URL.Query().Get("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				writeError(w, "invalid device id: "+part, http.StatusBadRequest)
				return
			}

			deviceIDs = append(deviceIDs, id)
		}
	}

	statuses, err := s.service.DeviceStatuses(r.Context(), deviceIDs)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, statuses)
}
