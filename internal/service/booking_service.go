package service

import (
	"context"
	"time"

	"roombook/internal/domain"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

// BookingService orchestrates booking reads and writes, running the
// availability check before every create and update.
type BookingService struct {
	store        domain.Store
	serializable bool
	logger       *zerolog.Logger
}

// NewBookingService builds the booking manager. When serializable is true the
// availability check and the write run inside a single store transaction;
// otherwise check-then-write is two store calls and concurrent requests can
// race (the original design, kept as the default).
func NewBookingService(store domain.Store, serializable bool, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:        store,
		serializable: serializable,
		logger:       logger,
	}
}

func (s *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.store.ListBookings(ctx)
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.store.GetBooking(ctx, id)
}

func (s *BookingService) CheckAvailability(ctx context.Context, buildingID string, start, end time.Time, excludeBookingID string) (*models.AvailabilityResult, error) {
	return s.store.CheckAvailability(ctx, buildingID, start, end, excludeBookingID)
}

func (s *BookingService) CreateBooking(ctx context.Context, req *models.Booking) (*models.Booking, error) {
	booking := *req
	applyBookingDefaults(&booking)
	if err := validateBooking(&booking); err != nil {
		return nil, err
	}

	booking.LastUpdate = time.Now()

	if s.serializable {
		result, err := s.store.CreateBookingIfAvailable(ctx, &booking)
		if err != nil {
			return nil, err
		}
		if !result.Available {
			return nil, &ConflictError{Reason: result.Reason}
		}
		return &booking, nil
	}

	result, err := s.store.CheckAvailability(ctx, booking.BuildingID, booking.StartTime, booking.EndTime, "")
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, &ConflictError{Reason: result.Reason}
	}

	if err := s.store.CreateBooking(ctx, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, id string, fields *models.BookingUpdate) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeBookingUpdate(booking, fields)
	if err := validateBooking(booking); err != nil {
		return nil, err
	}

	booking.LastUpdate = time.Now()

	if s.serializable {
		result, err := s.store.UpdateBookingIfAvailable(ctx, booking)
		if err != nil {
			return nil, err
		}
		if !result.Available {
			return nil, &ConflictError{Reason: result.Reason}
		}
		return booking, nil
	}

	// The booking being moved is excluded from the conflict search so it
	// never collides with its own prior interval.
	result, err := s.store.CheckAvailability(ctx, booking.BuildingID, booking.StartTime, booking.EndTime, booking.BookingID)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, &ConflictError{Reason: result.Reason}
	}

	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.store.DeleteBooking(ctx, id)
}

func applyBookingDefaults(b *models.Booking) {
	if b.Type == "" {
		b.Type = models.BookingTypeOnce
	}
	if b.RepeatType == "" {
		b.RepeatType = models.RepeatNone
	}
}

func validateBooking(b *models.Booking) error {
	if b.BuildingID == "" {
		return invalidField("buildingId", "is required")
	}
	if b.StartTime.IsZero() || b.EndTime.IsZero() {
		return invalidField("startTime", "startTime and endTime are required")
	}
	if !b.EndTime.After(b.StartTime) {
		return invalidField("endTime", "must be after startTime")
	}
	if !models.IsValidBookingType(b.Type) {
		return invalidField("type", "must be one of DAILY, WEEKLY, MONTHLY, ONCE")
	}
	if !models.IsValidRepeatType(b.RepeatType) {
		return invalidField("repeatType", "must be one of EVERY_DAY, EVERY_WEEK, EVERY_MONTH, NONE")
	}
	if b.RepeatDay != "" && !models.IsValidRepeatDay(b.RepeatDay) {
		return invalidField("repeatDay", "must be a weekday name")
	}
	return nil
}

func mergeBookingUpdate(b *models.Booking, fields *models.BookingUpdate) {
	if fields == nil {
		return
	}
	if fields.Name != nil {
		b.Name = *fields.Name
	}
	if fields.Description != nil {
		b.Description = *fields.Description
	}
	if fields.StartTime != nil {
		b.StartTime = *fields.StartTime
	}
	if fields.EndTime != nil {
		b.EndTime = *fields.EndTime
	}
	if fields.ModifiedBy != nil {
		b.ModifiedBy = *fields.ModifiedBy
	}
	if fields.Type != nil {
		b.Type = *fields.Type
	}
	if fields.RepeatType != nil {
		b.RepeatType = *fields.RepeatType
	}
	if fields.RepeatDay != nil {
		b.RepeatDay = *fields.RepeatDay
	}
}
