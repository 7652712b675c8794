package database

import (
	"context"
	"fmt"

	"roombook/internal/models"
)

// ApplySeed inserts the configured buildings and rooms if they do not exist
// yet. Existing rows are left untouched so the seed can run on every start.
func (db *DB) ApplySeed(ctx context.Context, buildings []models.Building) error {
	for _, b := range buildings {
		_, err := db.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO buildings (building_id, floor) VALUES (?, ?)`,
			b.BuildingID, b.Floor)
		if err != nil {
			return fmt.Errorf("failed to seed building %s: %w", b.BuildingID, err)
		}

		for _, r := range b.Rooms {
			status := r.RoomStatus
			if status == "" {
				status = models.RoomStatusAvailable
			}
			_, err := db.db.ExecContext(ctx,
				`INSERT OR IGNORE INTO rooms (room_id, room_status, building_id) VALUES (?, ?, ?)`,
				r.RoomID, status, b.BuildingID)
			if err != nil {
				return fmt.Errorf("failed to seed room %s: %w", r.RoomID, err)
			}
		}
	}

	db.logger.Info().Int("buildings", len(buildings)).Msg("seed applied")
	return nil
}
