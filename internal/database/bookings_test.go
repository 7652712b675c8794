package database

import (
	"context"
	"testing"
	"time"

	"roombook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tenAM    = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	elevenAM = time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	noon     = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
)

func TestCheckAvailabilityNoRoom(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateBuilding(ctx, &models.Building{BuildingID: "b1", Floor: 1}))

	result, err := db.CheckAvailability(ctx, "b1", tenAM, elevenAM, "")
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, models.ReasonRoomNotFound, result.Reason)
}

func TestCheckAvailabilityRoomNotAvailable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, status := range []string{models.RoomStatusMaintenance, models.RoomStatusUnavailable} {
		buildingID := "b-" + status
		seedBuildingWithRoom(t, db, buildingID, "r-"+status, status)

		result, err := db.CheckAvailability(ctx, buildingID, tenAM, elevenAM, "")
		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, models.ReasonRoomUnavailable, result.Reason)
	}
}

func TestCheckAvailabilityOverlap(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	existing := testBooking("b1", tenAM, elevenAM)
	require.NoError(t, db.CreateBooking(ctx, existing))

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		available bool
	}{
		{"identical interval", tenAM, elevenAM, false},
		{"contained interval", tenAM.Add(15 * time.Minute), tenAM.Add(30 * time.Minute), false},
		{"surrounding interval", tenAM.Add(-time.Hour), noon, false},
		// Closed-interval policy: a booking starting exactly when the
		// existing one ends still conflicts.
		{"touching start", elevenAM, noon, false},
		{"touching end", tenAM.Add(-time.Hour), tenAM, false},
		{"one minute after", elevenAM.Add(time.Minute), noon, true},
		{"one minute before", tenAM.Add(-time.Hour), tenAM.Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := db.CheckAvailability(ctx, "b1", tt.start, tt.end, "")
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.Available)
			if !tt.available {
				assert.Equal(t, models.ReasonRoomAlreadyBooked, result.Reason)
			}
		})
	}
}

func TestCheckAvailabilityExcludesBooking(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	existing := testBooking("b1", tenAM, elevenAM)
	require.NoError(t, db.CreateBooking(ctx, existing))

	// The booking overlaps itself without the exclusion.
	result, err := db.CheckAvailability(ctx, "b1", tenAM, elevenAM, "")
	require.NoError(t, err)
	assert.False(t, result.Available)

	result, err = db.CheckAvailability(ctx, "b1", tenAM, elevenAM, existing.BookingID)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.Reason)
}

func TestCheckAvailabilityIgnoresOtherBuildings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)
	seedBuildingWithRoom(t, db, "b2", "r2", models.RoomStatusAvailable)

	require.NoError(t, db.CreateBooking(ctx, testBooking("b1", tenAM, elevenAM)))

	result, err := db.CheckAvailability(ctx, "b2", tenAM, elevenAM, "")
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestBookingCRUDRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	booking := testBooking("b1", tenAM, elevenAM)
	booking.Description = "daily sync"
	booking.RepeatDay = "TUESDAY"
	require.NoError(t, db.CreateBooking(ctx, booking))
	require.NotEmpty(t, booking.BookingID, "store should assign an id when absent")

	got, err := db.GetBooking(ctx, booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.Name, got.Name)
	assert.Equal(t, booking.Description, got.Description)
	assert.Equal(t, booking.CreatedBy, got.CreatedBy)
	assert.Equal(t, booking.RepeatDay, got.RepeatDay)
	assert.True(t, got.StartTime.Equal(tenAM))
	assert.True(t, got.EndTime.Equal(elevenAM))
	require.NotNil(t, got.Building, "get should expand the building")
	assert.Equal(t, "b1", got.Building.BuildingID)

	got.Name = "retro"
	got.LastUpdate = time.Now()
	require.NoError(t, db.UpdateBooking(ctx, got))

	updated, err := db.GetBooking(ctx, booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "retro", updated.Name)

	require.NoError(t, db.DeleteBooking(ctx, booking.BookingID))
	_, err = db.GetBooking(ctx, booking.BookingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingNotFoundErrors(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.GetBooking(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.UpdateBooking(ctx, &models.Booking{BookingID: "missing", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.DeleteBooking(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	booking := testBooking("b1", tenAM, elevenAM)
	booking.BookingID = "fixed"
	require.NoError(t, db.CreateBooking(ctx, booking))

	again := testBooking("b1", elevenAM, noon)
	again.BookingID = "fixed"
	assert.ErrorIs(t, db.CreateBooking(ctx, again), ErrDuplicateID)
}

func TestListBookingsExpandsBuilding(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	require.NoError(t, db.CreateBooking(ctx, testBooking("b1", tenAM, elevenAM)))
	require.NoError(t, db.CreateBooking(ctx, testBooking("b1", noon, noon.Add(time.Hour))))

	bookings, err := db.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		require.NotNil(t, b.Building)
		assert.Equal(t, "b1", b.Building.BuildingID)
	}
	// Ordered by start time.
	assert.True(t, bookings[0].StartTime.Before(bookings[1].StartTime))
}

func TestCreateBookingIfAvailable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	first := testBooking("b1", tenAM, elevenAM)
	result, err := db.CreateBookingIfAvailable(ctx, first)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.NotEmpty(t, first.BookingID)

	// Conflicting insert is rejected and nothing is written.
	second := testBooking("b1", tenAM.Add(30*time.Minute), noon)
	result, err = db.CreateBookingIfAvailable(ctx, second)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, models.ReasonRoomAlreadyBooked, result.Reason)

	bookings, err := db.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestUpdateBookingIfAvailableExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedBuildingWithRoom(t, db, "b1", "r1", models.RoomStatusAvailable)

	booking := testBooking("b1", tenAM, elevenAM)
	require.NoError(t, db.CreateBooking(ctx, booking))

	// Moving within its own interval must not self-conflict.
	booking.StartTime = tenAM.Add(15 * time.Minute)
	booking.EndTime = elevenAM.Add(15 * time.Minute)
	result, err := db.UpdateBookingIfAvailable(ctx, booking)
	require.NoError(t, err)
	assert.True(t, result.Available)

	got, err := db.GetBooking(ctx, booking.BookingID)
	require.NoError(t, err)
	assert.True(t, got.StartTime.Equal(tenAM.Add(15*time.Minute)))
}
