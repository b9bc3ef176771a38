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

import "github.com/glowsign/screenhub/pkg/models"

// Resolution is the ordered outcome of content resolution for one device.
// Primary holds what the device should play first; Secondary is the
// fallback. Both empty means the device has nothing playable.
type Resolution struct {
	Direct        *models.Content
	PlaylistItems []models.PlaylistItem
	Primary       []models.Content
	Secondary     []models.Content
	ModeName      string
}

// Empty reports whether the resolution produced nothing playable.
func (r *Resolution) Empty() bool {
	return len(r.Primary) == 0 && len(r.Secondary) == 0
}

// TotalCount is the number of distinct candidates across both tiers.
func (r *Resolution) TotalCount() int {
	return len(r.Primary) + len(r.Secondary)
}

// Resolve maps a device's display mode and its already-loaded content
// associations to ordered primary and secondary candidate lists. direct must
// be nil if the device has no enabled direct content; items must already be
// filtered to enabled items in playlist order. Resolve performs no I/O.
func Resolve(mode models.DisplayMode, direct *models.Content, items []models.PlaylistItem) Resolution {
	res := Resolution{
		Direct:        direct,
		PlaylistItems: items,
		ModeName:      mode.Name(),
	}

	playlist := make([]models.Content, 0, len(items))
	for _, item := range items {
		playlist = append(playlist, item.Content)
	}

	var directList []models.Content
	if direct != nil {
		directList = []models.Content{*direct}
	}

	switch mode {
	case models.DisplayModePlaylistPriority:
		res.Primary = playlist
		res.Secondary = directList
	case models.DisplayModeDirectPriority:
		res.Primary = directList
		res.Secondary = playlist
	case models.DisplayModePlaylistOnly:
		res.Primary = playlist
	case models.DisplayModeDirectOnly:
		res.Primary = directList
	default:
		// Unknown modes resolve to nothing playable.
	}

	if res.Primary == nil {
		res.Primary = []models.Content{}
	}

	if res.Secondary == nil {
		res.Secondary = []models.Content{}
	}

	return res
}
