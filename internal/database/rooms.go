package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roombook/internal/models"

	"github.com/google/uuid"
)

func (db *DB) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.RoomID == "" {
		room.RoomID = uuid.NewString()
	}

	query := `INSERT INTO rooms (room_id, room_status, building_id) VALUES (?, ?, ?)`
	_, err := db.db.ExecContext(ctx, query, room.RoomID, room.RoomStatus, room.BuildingID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (db *DB) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	var r models.Room
	query := `SELECT room_id, room_status, building_id FROM rooms WHERE room_id = ?`
	err := db.db.QueryRowContext(ctx, query, id).Scan(&r.RoomID, &r.RoomStatus, &r.BuildingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if err := db.expandRoom(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *DB) ListRooms(ctx context.Context) ([]*models.Room, error) {
	query := `SELECT room_id, room_status, building_id FROM rooms ORDER BY room_id`
	rows, err := db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		r := &models.Room{}
		if err := rows.Scan(&r.RoomID, &r.RoomStatus, &r.BuildingID); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	for _, r := range rooms {
		if err := db.expandRoom(ctx, r); err != nil {
			return nil, err
		}
	}
	return rooms, nil
}

func (db *DB) UpdateRoom(ctx context.Context, room *models.Room) error {
	query := `UPDATE rooms SET room_status = ? WHERE room_id = ?`
	result, err := db.db.ExecContext(ctx, query, room.RoomStatus, room.RoomID)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRoomStatus changes only the status column, leaving every other
// room field untouched.
func (db *DB) UpdateRoomStatus(ctx context.Context, id, status string) error {
	result, err := db.db.ExecContext(ctx, `UPDATE rooms SET room_status = ? WHERE room_id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) DeleteRoom(ctx context.Context, id string) error {
	result, err := db.db.ExecContext(ctx, `DELETE FROM rooms WHERE room_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// expandRoom attaches the owning building without re-expanding its relations.
func (db *DB) expandRoom(ctx context.Context, r *models.Room) error {
	var b models.Building
	query := `SELECT building_id, floor FROM buildings WHERE building_id = ?`
	err := db.db.QueryRowContext(ctx, query, r.BuildingID).Scan(&b.BuildingID, &b.Floor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to get room building: %w", err)
	}
	r.Building = &b
	return nil
}
