package domain

import (
	"context"
	"time"

	"roombook/internal/models"
)

// Store abstracts the persistence layer for buildings, rooms and bookings.
type Store interface {
	CreateBuilding(ctx context.Context, building *models.Building) error
	GetBuilding(ctx context.Context, id string) (*models.Building, error)
	ListBuildings(ctx context.Context) ([]*models.Building, error)
	UpdateBuilding(ctx context.Context, building *models.Building) error
	DeleteBuilding(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	UpdateRoomStatus(ctx context.Context, id, status string) error
	DeleteRoom(ctx context.Context, id string) error

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	DeleteBooking(ctx context.Context, id string) error

	CheckAvailability(ctx context.Context, buildingID string, start, end time.Time, excludeBookingID string) (*models.AvailabilityResult, error)
	CreateBookingIfAvailable(ctx context.Context, booking *models.Booking) (*models.AvailabilityResult, error)
	UpdateBookingIfAvailable(ctx context.Context, booking *models.Booking) (*models.AvailabilityResult, error)

	Close() error
}

type BookingService interface {
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, req *models.Booking) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, fields *models.BookingUpdate) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, buildingID string, start, end time.Time, excludeBookingID string) (*models.AvailabilityResult, error)
}

type BuildingService interface {
	ListBuildings(ctx context.Context) ([]*models.Building, error)
	GetBuilding(ctx context.Context, id string) (*models.Building, error)
	CreateBuilding(ctx context.Context, b *models.Building) (*models.Building, error)
	UpdateBuilding(ctx context.Context, id string, fields *models.BuildingUpdate) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id string) error
}

type RoomService interface {
	ListRooms(ctx context.Context) ([]*models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	CreateRoom(ctx context.Context, r *models.Room) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, fields *models.RoomUpdate) (*models.Room, error)
	UpdateRoomStatus(ctx context.Context, id, status string) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}
