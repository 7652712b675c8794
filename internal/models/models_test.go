package models

import "testing"

func TestIsValidRoomStatus(t *testing.T) {
	valid := []string{RoomStatusAvailable, RoomStatusUnavailable, RoomStatusMaintenance}
	for _, s := range valid {
		if !IsValidRoomStatus(s) {
			t.Errorf("expected %q to be a valid room status", s)
		}
	}
	for _, s := range []string{"", "available", "BROKEN"} {
		if IsValidRoomStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestIsValidBookingType(t *testing.T) {
	valid := []string{BookingTypeDaily, BookingTypeWeekly, BookingTypeMonthly, BookingTypeOnce}
	for _, s := range valid {
		if !IsValidBookingType(s) {
			t.Errorf("expected %q to be a valid booking type", s)
		}
	}
	if IsValidBookingType("HOURLY") {
		t.Errorf("expected HOURLY to be rejected")
	}
}

func TestIsValidRepeatType(t *testing.T) {
	valid := []string{RepeatEveryDay, RepeatEveryWeek, RepeatEveryMonth, RepeatNone}
	for _, s := range valid {
		if !IsValidRepeatType(s) {
			t.Errorf("expected %q to be a valid repeat type", s)
		}
	}
	if IsValidRepeatType("EVERY_YEAR") {
		t.Errorf("expected EVERY_YEAR to be rejected")
	}
}

func TestIsValidRepeatDay(t *testing.T) {
	for _, s := range []string{"MONDAY", "SUNDAY"} {
		if !IsValidRepeatDay(s) {
			t.Errorf("expected %q to be a valid repeat day", s)
		}
	}
	for _, s := range []string{"monday", "FUNDAY", ""} {
		if IsValidRepeatDay(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
