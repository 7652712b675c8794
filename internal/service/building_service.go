package service

import (
	"context"

	"roombook/internal/domain"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

type BuildingService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewBuildingService(store domain.Store, logger *zerolog.Logger) *BuildingService {
	return &BuildingService{store: store, logger: logger}
}

func (s *BuildingService) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	return s.store.ListBuildings(ctx)
}

func (s *BuildingService) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	return s.store.GetBuilding(ctx, id)
}

func (s *BuildingService) CreateBuilding(ctx context.Context, b *models.Building) (*models.Building, error) {
	building := models.Building{
		BuildingID: b.BuildingID,
		Floor:      b.Floor,
	}
	if err := s.store.CreateBuilding(ctx, &building); err != nil {
		return nil, err
	}
	return &building, nil
}

func (s *BuildingService) UpdateBuilding(ctx context.Context, id string, fields *models.BuildingUpdate) (*models.Building, error) {
	building, err := s.store.GetBuilding(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields != nil && fields.Floor != nil {
		building.Floor = *fields.Floor
	}

	if err := s.store.UpdateBuilding(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *BuildingService) DeleteBuilding(ctx context.Context, id string) error {
	return s.store.DeleteBuilding(ctx, id)
}
