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
	"encoding/json"
	"errors"

	"github.com/glowsign/screenhub/pkg/models"
)

// frameType discriminates JSON frames on the wire.
type frameType string

// Inbound frame types.
const (
	frameRegister   frameType = "register"
	frameHeartbeat  frameType = "heartbeat"
	frameGetContent frameType = "get_content"
)

// Outbound frame types.
const (
	frameRegisterAck       frameType = "register_ack"
	frameHeartbeatAck      frameType = "heartbeat_ack"
	frameContentResponse   frameType = "content_response"
	framePushContent       frameType = "push_content"
	frameTempContent       frameType = "temp_content"
	frameDisplayModeChange frameType = "display_mode_change"
	frameBatchControl      frameType = "batch_control"
	frameActiveStatus      frameType = "active_status"
	frameRefresh           frameType = "refresh"
	frameError             frameType = "error"
)

var errMalformedFrame = errors.New("malformed frame")

// inboundFrame is a device frame decoded once up front. The Type field is
// matched exhaustively by the handler; anything unrecognized gets an error
// frame back.
type inboundFrame struct {
	Type       frameType `json:"type"`
	MAC        string    `json:"mac"`
	DeviceName string    `json:"device_name,omitempty"`
}

// decodeFrame parses raw into an inboundFrame. A frame that is not JSON or
// carries no type is malformed.
func decodeFrame(raw []byte) (inboundFrame, error) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return inboundFrame{}, errMalformedFrame
	}

	if frame.Type == "" {
		return inboundFrame{}, errMalformedFrame
	}

	return frame, nil
}

// activeFlag renders an activation state as the 0|1 the wire protocol uses.
func activeFlag(active bool) int {
	if active {
		return 1
	}

	return 0
}

type registerAck struct {
	Type        frameType `json:"type"`
	Success     bool      `json:"success"`
	Active      int       `json:"active"`
	DeviceID    int64     `json:"device_id,omitempty"`
	IsNewDevice bool      `json:"is_new_device"`
	Msg         string    `json:"msg"`
}

type heartbeatAck struct {
	Type    frameType `json:"type"`
	Success bool      `json:"success"`
	Active  int       `json:"active"`
	Msg     string    `json:"msg"`
}

// contentData is the diagnostic payload of a content_response, present on
// both success and no-playable-content outcomes.
type contentData struct {
	DeviceID          int64                 `json:"device_id"`
	DisplayMode       models.DisplayMode    `json:"display_mode"`
	DisplayModeName   string                `json:"display_mode_name"`
	DirectContent     *models.Content       `json:"direct_content"`
	PlaylistContents  []models.PlaylistItem `json:"playlist_contents"`
	PrimaryContents   []models.Content      `json:"primary_contents"`
	SecondaryContents []models.Content      `json:"secondary_contents"`
	TotalContents     int                   `json:"total_contents"`
}

type contentResponse struct {
	Type    frameType    `json:"type"`
	Success bool         `json:"success"`
	Msg     string       `json:"msg"`
	Data    *contentData `json:"data,omitempty"`
}

// contentPayload is the body of push_content and temp_content frames.
type contentPayload struct {
	ContentID   int64  `json:"content_id"`
	ContentType int    `json:"content_type"`
	ContentURL  string `json:"content_url"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	Thumbnail   string `json:"thumbnail"`
	IsTemp      bool   `json:"is_temp,omitempty"`
}

type pushContentFrame struct {
	Type frameType      `json:"type"`
	Data contentPayload `json:"data"`
}

type displayModeChangeFrame struct {
	Type        frameType          `json:"type"`
	DisplayMode models.DisplayMode `json:"display_mode"`
	ModeName    string             `json:"mode_name"`
}

type batchControlFrame struct {
	Type      frameType `json:"type"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	Timestamp int64     `json:"timestamp"`
}

type activeStatusFrame struct {
	Type   frameType `json:"type"`
	Active int       `json:"active"`
	Msg    string    `json:"msg"`
}

type refreshFrame struct {
	Type    frameType `json:"type"`
	Message string    `json:"message"`
}

type errorFrame struct {
	Type frameType `json:"type"`
	Msg  string    `json:"msg"`
}

func newErrorFrame(msg string) errorFrame {
	return errorFrame{Type: frameError, Msg: msg}
}

func newContentPayload(content *models.Content) contentPayload {
	return contentPayload{
		ContentID:   content.ID,
		ContentType: content.ContentType,
		ContentURL:  content.ContentURL,
		Title:       content.Title,
		Duration:    content.Duration,
		Thumbnail:   content.Thumbnail,
	}
}
