package service

import (
	"context"

	"roombook/internal/domain"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

type RoomService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewRoomService(store domain.Store, logger *zerolog.Logger) *RoomService {
	return &RoomService{store: store, logger: logger}
}

func (s *RoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.store.ListRooms(ctx)
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.store.GetRoom(ctx, id)
}

func (s *RoomService) CreateRoom(ctx context.Context, r *models.Room) (*models.Room, error) {
	room := models.Room{
		RoomID:     r.RoomID,
		RoomStatus: r.RoomStatus,
		BuildingID: r.BuildingID,
	}
	if room.RoomStatus == "" {
		room.RoomStatus = models.RoomStatusAvailable
	}
	if err := validateRoomStatus(room.RoomStatus); err != nil {
		return nil, err
	}
	if room.BuildingID == "" {
		return nil, invalidField("buildingId", "is required")
	}

	if err := s.store.CreateRoom(ctx, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id string, fields *models.RoomUpdate) (*models.Room, error) {
	room, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields != nil && fields.RoomStatus != nil {
		if err := validateRoomStatus(*fields.RoomStatus); err != nil {
			return nil, err
		}
		room.RoomStatus = *fields.RoomStatus
	}

	if err := s.store.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateRoomStatus changes the status in isolation; no other room field is
// read or written.
func (s *RoomService) UpdateRoomStatus(ctx context.Context, id, status string) (*models.Room, error) {
	if err := validateRoomStatus(status); err != nil {
		return nil, err
	}
	if err := s.store.UpdateRoomStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.store.GetRoom(ctx, id)
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	return s.store.DeleteRoom(ctx, id)
}

func validateRoomStatus(status string) error {
	if !models.IsValidRoomStatus(status) {
		return invalidField("roomStatus", "must be one of AVAILABLE, UNAVAILABLE, MAINTENANCE")
	}
	return nil
}
