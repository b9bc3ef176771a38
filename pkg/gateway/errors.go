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

import "errors"

var (
	// ErrNotTracked is returned by the registry when no live connection is
	// known for an identifier.
	ErrNotTracked = errors.New("connection not tracked")

	// ErrUnknownHandle is returned by the transport for a handle that does
	// not refer to an open connection.
	ErrUnknownHandle = errors.New("unknown connection handle")

	errListenAddrRequired = errors.New("listen_addr is required")
)
