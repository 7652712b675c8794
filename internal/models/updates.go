package models

import "time"

// Update payloads carry the explicit set of fields callers may change.
// Nil means "leave as is". Identifiers and relations are not updatable.

type BookingUpdate struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	ModifiedBy  *string    `json:"modifiedBy"`
	Type        *string    `json:"type"`
	RepeatType  *string    `json:"repeatType"`
	RepeatDay   *string    `json:"repeatDay"`
}

type BuildingUpdate struct {
	Floor *int `json:"floor"`
}

type RoomUpdate struct {
	RoomStatus *string `json:"roomStatus"`
}
