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

import "errors"

var (
	// ErrInvalidDisplayMode rejects display modes outside 1..4.
	ErrInvalidDisplayMode = errors.New("invalid display mode")

	// ErrContentDisabled rejects pushing content that is not enabled.
	ErrContentDisabled = errors.New("content is disabled")

	// ErrDeviceNotActive rejects pushes to devices an administrator has not
	// activated.
	ErrDeviceNotActive = errors.New("device is not activated")

	// ErrDeviceOffline rejects pushes to devices without a live connection.
	ErrDeviceOffline = errors.New("device is offline")

	// ErrUnknownAction rejects broadcast actions outside the supported set.
	ErrUnknownAction = errors.New("unknown control action")
)
