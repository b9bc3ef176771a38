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

//go:generate mockgen -destination=mock_gateway.go -package=gateway github.com/glowsign/screenhub/pkg/gateway Transport,Clock,Ticker

// Package gateway implements the device presence and content-push gateway:
// the websocket server devices connect to, the in-memory connection registry,
// the shared TTL presence store, the content resolver and the outbound push
// operations consumed by the admin control layer.
package gateway

import "time"

// Transport is the gateway's view of the socket layer. A handle is an opaque
// per-connection identifier valid only while the connection is open.
type Transport interface {
	// Send marshals frame as JSON and writes it to the connection behind
	// handle. Best-effort: an unknown handle or a write failure is an error,
	// never a retry.
	Send(handle string, frame any) error

	// IsEstablished reports whether handle refers to a currently open
	// connection on this process.
	IsEstablished(handle string) bool

	// CloseHandle force-closes the connection behind handle, if open.
	CloseHandle(handle string)
}

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}
