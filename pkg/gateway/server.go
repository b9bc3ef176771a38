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
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/glowsign/screenhub/pkg/logger"
)

// deviceConn wraps one websocket connection. Writes are serialized through
// mu; gorilla/websocket allows only one concurrent writer.
type deviceConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (d *deviceConn) writeJSON(frame any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
		return err
	}

	return d.conn.WriteJSON(frame)
}

func (d *deviceConn) close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	_ = d.conn.Close()
}

// Server is the websocket endpoint devices connect to. It owns the
// handle → connection table and implements Transport for the handler,
// pusher and presence components.
type Server struct {
	listenAddr string
	handler    *Handler
	logger     logger.Logger

	mu    sync.RWMutex
	conns map[string]*deviceConn

	httpSrv   *http.Server
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewServer creates the device-facing websocket server. The frame handler is
// attached afterwards via SetHandler; handler construction needs the server
// as its Transport.
func NewServer(listenAddr string, log logger.Logger) *Server {
	return &Server{
		listenAddr: listenAddr,
		logger:     log.WithComponent("gateway"),
		conns:      make(map[string]*deviceConn),
		done:       make(chan struct{}),
	}
}

// SetHandler attaches the frame handler. Must be called before Start.
func (s *Server) SetHandler(handler *Handler) {
	s.handler = handler
}

// Send implements Transport.
func (s *Server) Send(handle string, frame any) error {
	s.mu.RLock()
	conn, ok := s.conns[handle]
	s.mu.RUnlock()

	if !ok {
		return ErrUnknownHandle
	}

	return conn.writeJSON(frame)
}

// IsEstablished implements Transport.
func (s *Server) IsEstablished(handle string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.conns[handle]

	return ok
}

// CloseHandle implements Transport. The connection's read loop observes the
// close and runs the usual disconnect teardown.
func (s *Server) CloseHandle(handle string) {
	s.mu.RLock()
	conn, ok := s.conns[handle]
	s.mu.RUnlock()

	if ok {
		conn.close()
	}
}

// Start implements the lifecycle.Service interface. It serves until the
// context is canceled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.handleDeviceSocket)

	s.httpSrv = &http.Server{
		Addr:              s.listenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info().Str("addr", s.listenAddr).Msg("Starting device gateway")

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

// Stop implements the lifecycle.Service interface. It stops accepting new
// connections, closes every live device connection and waits for their read
// loops to drain.
func (s *Server) Stop(ctx context.Context) error {
	s.closeOnce.Do(func() {
		close(s.done)
	})

	var err error
	if s.httpSrv != nil {
		err = s.httpSrv.Shutdown(ctx)
	}

	s.mu.RLock()
	for _, conn := range s.conns {
		conn.close()
	}
	s.mu.RUnlock()

	s.wg.Wait()

	return err
}

var deviceUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Devices connect directly, not from browsers; origin checks do not
	// apply.
	CheckOrigin: func(*http.Request) bool { return true },
}

func (s *Server) handleDeviceSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := deviceUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Str("remote_addr", r.RemoteAddr).Msg("Websocket upgrade failed")
		return
	}

	handle := uuid.NewString()
	conn := &deviceConn{conn: ws}

	s.mu.Lock()
	s.conns[handle] = conn
	s.mu.Unlock()

	s.logger.Info().
		Str("handle", handle).
		Str("remote_addr", r.RemoteAddr).
		Msg("Device connection established")

	s.wg.Add(1)

	go s.readLoop(handle, conn)
}

// readLoop pumps frames from one device until the connection dies, then
// runs disconnect teardown.
func (s *Server) readLoop(handle string, conn *deviceConn) {
	defer s.wg.Done()

	ctx := context.Background()

	conn.conn.SetReadLimit(maxFrameSize)

	for {
		_, raw, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Str("handle", handle).Msg("Device connection closed unexpectedly")
			}

			break
		}

		resp := s.handler.HandleFrame(ctx, handle, raw)
		if resp == nil {
			continue
		}

		if err := conn.writeJSON(resp); err != nil {
			s.logger.Warn().Err(err).Str("handle", handle).Msg("Response write failed")
			break
		}
	}

	s.mu.Lock()
	delete(s.conns, handle)
	s.mu.Unlock()

	conn.close()

	s.handler.HandleDisconnect(ctx, handle)
}
