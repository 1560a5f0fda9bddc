package models

import (
	"time"
)

// Checkin records that a participant was present on one event day.
// The row's existence is the check-in state: toggling off deletes it.
// The unique index on (participant_id, event_day) is the source of truth
// under concurrent toggles.
type Checkin struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ParticipantID uint      `json:"participant_id" gorm:"not null;uniqueIndex:idx_checkins_participant_day"`
	EventDay      int       `json:"event_day" gorm:"not null;uniqueIndex:idx_checkins_participant_day"`
	Timestamp     time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

// EventDays are the valid values for Checkin.EventDay.
var EventDays = []int{1, 2, 3}

// ValidEventDay reports whether day is one of the event's days.
func ValidEventDay(day int) bool {
	for _, d := range EventDays {
		if day == d {
			return true
		}
	}
	return false
}
