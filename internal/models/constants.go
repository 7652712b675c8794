package models

const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusUnavailable = "UNAVAILABLE"
	RoomStatusMaintenance = "MAINTENANCE"
)

const (
	BookingTypeDaily   = "DAILY"
	BookingTypeWeekly  = "WEEKLY"
	BookingTypeMonthly = "MONTHLY"
	BookingTypeOnce    = "ONCE"
)

const (
	RepeatEveryDay   = "EVERY_DAY"
	RepeatEveryWeek  = "EVERY_WEEK"
	RepeatEveryMonth = "EVERY_MONTH"
	RepeatNone       = "NONE"
)

// Availability check failure reasons surfaced to API clients.
const (
	ReasonRoomNotFound      = "Room not found"
	ReasonRoomUnavailable   = "Room is currently unavailable or under maintenance"
	ReasonRoomAlreadyBooked = "Room is already booked for this time period"
)

var roomStatuses = map[string]bool{
	RoomStatusAvailable:   true,
	RoomStatusUnavailable: true,
	RoomStatusMaintenance: true,
}

var bookingTypes = map[string]bool{
	BookingTypeDaily:   true,
	BookingTypeWeekly:  true,
	BookingTypeMonthly: true,
	BookingTypeOnce:    true,
}

var repeatTypes = map[string]bool{
	RepeatEveryDay:   true,
	RepeatEveryWeek:  true,
	RepeatEveryMonth: true,
	RepeatNone:       true,
}

var repeatDays = map[string]bool{
	"MONDAY":    true,
	"TUESDAY":   true,
	"WEDNESDAY": true,
	"THURSDAY":  true,
	"FRIDAY":    true,
	"SATURDAY":  true,
	"SUNDAY":    true,
}

func IsValidRoomStatus(status string) bool {
	return roomStatuses[status]
}

func IsValidBookingType(t string) bool {
	return bookingTypes[t]
}

func IsValidRepeatType(t string) bool {
	return repeatTypes[t]
}

func IsValidRepeatDay(day string) bool {
	return repeatDays[day]
}
