package service

import (
	"context"
	"testing"

	"roombook/internal/database"
	"roombook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBuildingStripsRelations(t *testing.T) {
	store := new(mockStore)
	svc := NewBuildingService(store, &testLogger)

	store.On("CreateBuilding", mock.Anything, mock.AnythingOfType("*models.Building")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*models.Building)
			assert.Nil(t, b.Rooms)
			assert.Nil(t, b.Bookings)
		}).
		Return(nil)

	_, err := svc.CreateBuilding(context.Background(), &models.Building{
		BuildingID: "b1",
		Floor:      3,
		Rooms:      []*models.Room{{RoomID: "smuggled"}},
	})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateBuildingFloorOnly(t *testing.T) {
	store := new(mockStore)
	svc := NewBuildingService(store, &testLogger)

	store.On("GetBuilding", mock.Anything, "b1").Return(&models.Building{BuildingID: "b1", Floor: 1}, nil)
	store.On("UpdateBuilding", mock.Anything, mock.AnythingOfType("*models.Building")).Return(nil)

	floor := 5
	building, err := svc.UpdateBuilding(context.Background(), "b1", &models.BuildingUpdate{Floor: &floor})
	require.NoError(t, err)
	assert.Equal(t, 5, building.Floor)
	store.AssertExpectations(t)
}

func TestUpdateBuildingNotFound(t *testing.T) {
	store := new(mockStore)
	svc := NewBuildingService(store, &testLogger)

	store.On("GetBuilding", mock.Anything, "missing").Return(nil, database.ErrNotFound)

	_, err := svc.UpdateBuilding(context.Background(), "missing", &models.BuildingUpdate{})
	assert.ErrorIs(t, err, database.ErrNotFound)
}
