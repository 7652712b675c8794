package models

import "time"

type Building struct {
	BuildingID string     `json:"buildingId" yaml:"building_id"`
	Floor      int        `json:"floor" yaml:"floor"`
	Rooms      []*Room    `json:"rooms,omitempty" yaml:"rooms,omitempty"`
	Bookings   []*Booking `json:"bookings,omitempty" yaml:"-"`
}

type Room struct {
	RoomID     string    `json:"roomId" yaml:"room_id"`
	RoomStatus string    `json:"roomStatus" yaml:"room_status"` // AVAILABLE, UNAVAILABLE, MAINTENANCE
	BuildingID string    `json:"buildingId" yaml:"building_id"`
	Building   *Building `json:"building,omitempty" yaml:"-"`
}

type Booking struct {
	BookingID   string    `json:"bookingId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	CreatedBy   string    `json:"createdBy"`
	ModifiedBy  string    `json:"modifiedBy"`
	Type        string    `json:"type"`       // DAILY, WEEKLY, MONTHLY, ONCE
	RepeatType  string    `json:"repeatType"` // EVERY_DAY, EVERY_WEEK, EVERY_MONTH, NONE
	RepeatDay   string    `json:"repeatDay"`  // MONDAY .. SUNDAY
	BuildingID  string    `json:"buildingId"`
	Building    *Building `json:"building,omitempty"`
	LastUpdate  time.Time `json:"lastUpdate"`
}

// AvailabilityResult is the outcome of the room availability check.
// Reason is empty when Available is true.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
