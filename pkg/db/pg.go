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

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowsign/screenhub/pkg/logger"
	"github.com/glowsign/screenhub/pkg/models"
)

// PgService implements Service on a pgx connection pool.
type PgService struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New dials the configured Postgres cluster and returns the persistence
// service.
func New(ctx context.Context, cfg *Config, log logger.Logger) (*PgService, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.connString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = cfg.MaxConnections
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PgService{pool: pool, logger: log.WithComponent("db")}, nil
}

const deviceColumns = `id, mac_address, device_name, status, is_online, display_mode,
	current_content_id, last_online_time, created_at, updated_at`

func scanDevice(row pgx.Row) (*models.Device, error) {
	var d models.Device

	err := row.Scan(&d.ID, &d.MACAddress, &d.DeviceName, &d.Status, &d.IsOnline,
		&d.DisplayMode, &d.CurrentContentID, &d.LastOnlineTime, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan device: %w", err)
	}

	return &d, nil
}

func (s *PgService) DeviceByMAC(ctx context.Context, mac string) (*models.Device, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE mac_address = $1`, mac)

	return scanDevice(row)
}

func (s *PgService) DeviceByID(ctx context.Context, id int64) (*models.Device, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id)

	return scanDevice(row)
}

func (s *PgService) CreateDevice(ctx context.Context, device *models.Device) error {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO devices
			(mac_address, device_name, status, is_online, display_mode, current_content_id, last_online_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		device.MACAddress, device.DeviceName, device.Status, device.IsOnline,
		device.DisplayMode, device.CurrentContentID, device.LastOnlineTime)

	if err := row.Scan(&device.ID, &device.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert device: %w", err)
	}

	return nil
}

func (s *PgService) UpdateDeviceOnline(ctx context.Context, id int64, online bool) error {
	var err error

	if online {
		_, err = s.pool.Exec(ctx,
			`UPDATE devices SET is_online = TRUE, last_online_time = $2, updated_at = now() WHERE id = $1`,
			id, time.Now())
	} else {
		_, err = s.pool.Exec(ctx,
			`UPDATE devices SET is_online = FALSE, updated_at = now() WHERE id = $1`, id)
	}

	if err != nil {
		return fmt.Errorf("failed to update online flag for device %d: %w", id, err)
	}

	return nil
}

func (s *PgService) ResetAllDevicesOffline(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE devices SET is_online = FALSE, updated_at = now() WHERE is_online = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset devices offline: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (s *PgService) UpdateDisplayMode(ctx context.Context, id int64, mode models.DisplayMode) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE devices SET display_mode = $2, updated_at = now() WHERE id = $1`, id, mode)
	if err != nil {
		return fmt.Errorf("failed to update display mode for device %d: %w", id, err)
	}

	return nil
}

func (s *PgService) SetCurrentContent(ctx context.Context, id int64, contentID *int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE devices SET current_content_id = $2, updated_at = now() WHERE id = $1`, id, contentID)
	if err != nil {
		return fmt.Errorf("failed to set current content for device %d: %w", id, err)
	}

	return nil
}

func (s *PgService) ContentByID(ctx context.Context, id int64) (*models.Content, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, content_type, content_url, thumbnail, duration, status
		 FROM contents WHERE id = $1`, id)

	var c models.Content

	err := row.Scan(&c.ID, &c.Title, &c.ContentType, &c.ContentURL, &c.Thumbnail, &c.Duration, &c.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan content: %w", err)
	}

	return &c, nil
}

func (s *PgService) DeviceDirectContent(ctx context.Context, deviceID int64) (*models.Content, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT c.id, c.title, c.content_type, c.content_url, c.thumbnail, c.duration, c.status
		 FROM devices d
		 JOIN contents c ON c.id = d.current_content_id
		 WHERE d.id = $1 AND c.status = 1`, deviceID)

	var c models.Content

	err := row.Scan(&c.ID, &c.Title, &c.ContentType, &c.ContentURL, &c.Thumbnail, &c.Duration, &c.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // no direct content is not an error
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan direct content: %w", err)
	}

	return &c, nil
}

func (s *PgService) DevicePlaylistItems(ctx context.Context, deviceID int64) ([]models.PlaylistItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.title, c.content_type, c.content_url, c.thumbnail, c.duration, c.status,
			p.id, p.name, p.play_mode, dp.sort_order, pc.sort_order
		 FROM device_playlists dp
		 JOIN playlists p ON p.id = dp.playlist_id
		 JOIN playlist_contents pc ON pc.playlist_id = p.id
		 JOIN contents c ON c.id = pc.content_id
		 WHERE dp.device_id = $1 AND p.status = 1 AND c.status = 1
		 ORDER BY dp.sort_order ASC, pc.sort_order ASC`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist items: %w", err)
	}
	defer rows.Close()

	var items []models.PlaylistItem

	for rows.Next() {
		var item models.PlaylistItem

		err := rows.Scan(&item.ID, &item.Title, &item.ContentType, &item.ContentURL,
			&item.Thumbnail, &item.Duration, &item.Status,
			&item.PlaylistID, &item.PlaylistName, &item.PlayMode,
			&item.PlaylistSort, &item.ContentSort)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist items: %w", err)
	}

	return items, nil
}

func (s *PgService) ListDevices(ctx context.Context, filter ListDevicesFilter) ([]models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices`
	args := []interface{}{}
	clause := " WHERE"

	if len(filter.IDs) > 0 {
		args = append(args, filter.IDs)
		query += fmt.Sprintf("%s id = ANY($%d)", clause, len(args))
		clause = " AND"
	}

	if filter.OnlyActive {
		query += clause + " status = 1"
		clause = " AND"
	}

	if filter.OnlyOnline {
		query += clause + " is_online = TRUE"
	}

	query += " ORDER BY id DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	var devices []models.Device

	for rows.Next() {
		var d models.Device

		err := rows.Scan(&d.ID, &d.MACAddress, &d.DeviceName, &d.Status, &d.IsOnline,
			&d.DisplayMode, &d.CurrentContentID, &d.LastOnlineTime, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}

		devices = append(devices, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read devices: %w", err)
	}

	return devices, nil
}

func (s *PgService) Close() error {
	s.pool.Close()

	return nil
}

var _ Service = (*PgService)(nil)
