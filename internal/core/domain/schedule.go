package domain

import (
	"errors"
	"time"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// ShiftWindow is a recurring working window on one weekday, expressed as
// "HH:MM" local wall-clock strings.
type ShiftWindow struct {
	Weekday time.Weekday `json:"weekday" bson:"weekday"`
	Start   string       `json:"start" bson:"start"`
	End     string       `json:"end" bson:"end"`
}

// WorkSchedule is the weekly shift assignment for one user.
type WorkSchedule struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	UserID    string        `json:"user_id" bson:"user_id"`
	Shifts    []ShiftWindow `json:"shifts" bson:"shifts"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
