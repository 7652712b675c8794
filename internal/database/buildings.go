package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roombook/internal/models"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}

func (db *DB) CreateBuilding(ctx context.Context, building *models.Building) error {
	if building.BuildingID == "" {
		building.BuildingID = uuid.NewString()
	}

	query := `INSERT INTO buildings (building_id, floor) VALUES (?, ?)`
	_, err := db.db.ExecContext(ctx, query, building.BuildingID, building.Floor)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create building: %w", err)
	}
	return nil
}

func (db *DB) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	var b models.Building
	query := `SELECT building_id, floor FROM buildings WHERE building_id = ?`
	err := db.db.QueryRowContext(ctx, query, id).Scan(&b.BuildingID, &b.Floor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	if err := db.expandBuilding(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (db *DB) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	query := `SELECT building_id, floor FROM buildings ORDER BY building_id`
	rows, err := db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	defer rows.Close()

	var buildings []*models.Building
	for rows.Next() {
		b := &models.Building{}
		if err := rows.Scan(&b.BuildingID, &b.Floor); err != nil {
			return nil, fmt.Errorf("failed to scan building: %w", err)
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	for _, b := range buildings {
		if err := db.expandBuilding(ctx, b); err != nil {
			return nil, err
		}
	}
	return buildings, nil
}

func (db *DB) UpdateBuilding(ctx context.Context, building *models.Building) error {
	query := `UPDATE buildings SET floor = ? WHERE building_id = ?`
	result, err := db.db.ExecContext(ctx, query, building.Floor, building.BuildingID)
	if err != nil {
		return fmt.Errorf("failed to update building: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) DeleteBuilding(ctx context.Context, id string) error {
	result, err := db.db.ExecContext(ctx, `DELETE FROM buildings WHERE building_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete building: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// expandBuilding loads the rooms and bookings owned by the building.
// Read-path only, mirrors the relational include on list/get.
func (db *DB) expandBuilding(ctx context.Context, b *models.Building) error {
	rooms, err := db.roomsByBuilding(ctx, b.BuildingID)
	if err != nil {
		return err
	}
	b.Rooms = rooms

	bookings, err := db.bookingsByBuilding(ctx, b.BuildingID)
	if err != nil {
		return err
	}
	b.Bookings = bookings
	return nil
}

func (db *DB) roomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error) {
	query := `SELECT room_id, room_status, building_id FROM rooms WHERE building_id = ? ORDER BY room_id`
	rows, err := db.db.QueryContext(ctx, query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get building rooms: %w", err)
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
	return rooms, rows.Err()
}

func (db *DB) bookingsByBuilding(ctx context.Context, buildingID string) ([]*models.Booking, error) {
	query := bookingColumns + ` FROM bookings WHERE building_id = ? ORDER BY start_time`
	rows, err := db.db.QueryContext(ctx, query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get building bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
