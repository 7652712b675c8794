package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roombook/internal/models"

	"github.com/google/uuid"
)

const bookingColumns = `SELECT booking_id, name, description, start_time, end_time,
               created_by, modified_by, type, repeat_type, repeat_day,
               building_id, last_update`

const firstRoomQuery = `SELECT room_id, room_status FROM rooms
              WHERE building_id = ? ORDER BY room_id LIMIT 1`

// The overlap test is closed on both ends: existing.start <= requested.end
// AND existing.end >= requested.start, so touching endpoints conflict.
const overlapQuery = `SELECT booking_id FROM bookings
              WHERE building_id = ? AND start_time <= ? AND end_time >= ?
              AND booking_id != ?
              ORDER BY start_time LIMIT 1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.BookingID, &b.Name, &b.Description, &b.StartTime, &b.EndTime,
		&b.CreatedBy, &b.ModifiedBy, &b.Type, &b.RepeatType, &b.RepeatDay,
		&b.BuildingID, &b.LastUpdate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}
	return b, nil
}

// CheckAvailability reports whether the room associated with the building can
// be booked for [start, end]. A booking named by excludeBookingID is omitted
// from the conflict search; pass "" to exclude nothing.
func (db *DB) CheckAvailability(ctx context.Context, buildingID string, start, end time.Time, excludeBookingID string) (*models.AvailabilityResult, error) {
	return checkAvailability(ctx, db.db, buildingID, start, end, excludeBookingID)
}

func checkAvailability(ctx context.Context, q dbtx, buildingID string, start, end time.Time, excludeBookingID string) (*models.AvailabilityResult, error) {
	var roomID, roomStatus string
	err := q.QueryRowContext(ctx, firstRoomQuery, buildingID).Scan(&roomID, &roomStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.AvailabilityResult{Available: false, Reason: models.ReasonRoomNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room for building %s: %w", buildingID, err)
	}

	if roomStatus != models.RoomStatusAvailable {
		return &models.AvailabilityResult{Available: false, Reason: models.ReasonRoomUnavailable}, nil
	}

	var conflictID string
	err = q.QueryRowContext(ctx, overlapQuery, buildingID, end.UTC(), start.UTC(), excludeBookingID).Scan(&conflictID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.AvailabilityResult{Available: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search conflicting bookings: %w", err)
	}
	return &models.AvailabilityResult{Available: false, Reason: models.ReasonRoomAlreadyBooked}, nil
}

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return insertBooking(ctx, db.db, booking)
}

func insertBooking(ctx context.Context, q dbtx, booking *models.Booking) error {
	if booking.BookingID == "" {
		booking.BookingID = uuid.NewString()
	}

	query := `INSERT INTO bookings (
                booking_id, name, description, start_time, end_time,
                created_by, modified_by, type, repeat_type, repeat_day,
                building_id, last_update
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := q.ExecContext(ctx, query,
		booking.BookingID,
		booking.Name,
		booking.Description,
		booking.StartTime.UTC(),
		booking.EndTime.UTC(),
		booking.CreatedBy,
		booking.ModifiedBy,
		booking.Type,
		booking.RepeatType,
		booking.RepeatDay,
		booking.BuildingID,
		booking.LastUpdate.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	query := bookingColumns + ` FROM bookings WHERE booking_id = ?`
	b, err := scanBooking(db.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := db.expandBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (db *DB) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	query := bookingColumns + ` FROM bookings ORDER BY start_time`
	rows, err := db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	for _, b := range bookings {
		if err := db.expandBooking(ctx, b); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

func (db *DB) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	return updateBooking(ctx, db.db, booking)
}

func updateBooking(ctx context.Context, q dbtx, booking *models.Booking) error {
	query := `UPDATE bookings SET
                name = ?, description = ?, start_time = ?, end_time = ?,
                modified_by = ?, type = ?, repeat_type = ?, repeat_day = ?,
                last_update = ?
              WHERE booking_id = ?`
	result, err := q.ExecContext(ctx, query,
		booking.Name,
		booking.Description,
		booking.StartTime.UTC(),
		booking.EndTime.UTC(),
		booking.ModifiedBy,
		booking.Type,
		booking.RepeatType,
		booking.RepeatDay,
		booking.LastUpdate.UTC(),
		booking.BookingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) DeleteBooking(ctx context.Context, id string) error {
	result, err := db.db.ExecContext(ctx, `DELETE FROM bookings WHERE booking_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateBookingIfAvailable runs the availability check and the insert inside
// one transaction, closing the race between concurrent create calls that the
// plain check-then-create sequence leaves open.
func (db *DB) CreateBookingIfAvailable(ctx context.Context, booking *models.Booking) (*models.AvailabilityResult, error) {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := checkAvailability(ctx, tx, booking.BuildingID, booking.StartTime, booking.EndTime, "")
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return result, nil
	}

	if err := insertBooking(ctx, tx, booking); err != nil {
		return nil, err
	}
	return result, tx.Commit()
}

// UpdateBookingIfAvailable is the transactional variant of UpdateBooking: the
// conflict search excludes the booking being moved so it never collides with
// its own prior interval.
func (db *DB) UpdateBookingIfAvailable(ctx context.Context, booking *models.Booking) (*models.AvailabilityResult, error) {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := checkAvailability(ctx, tx, booking.BuildingID, booking.StartTime, booking.EndTime, booking.BookingID)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return result, nil
	}

	if err := updateBooking(ctx, tx, booking); err != nil {
		return nil, err
	}
	return result, tx.Commit()
}

func (db *DB) expandBooking(ctx context.Context, b *models.Booking) error {
	var building models.Building
	query := `SELECT building_id, floor FROM buildings WHERE building_id = ?`
	err := db.db.QueryRowContext(ctx, query, b.BuildingID).Scan(&building.BuildingID, &building.Floor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to get booking building: %w", err)
	}
	b.Building = &building
	return nil
}
