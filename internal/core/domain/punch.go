package domain

import (
	"errors"
	"time"
)

// PunchKind distinguishes the two directions of a time-clock punch.
type PunchKind string

const (
	PunchIn  PunchKind = "in"
	PunchOut PunchKind = "out"
)

var ErrPunchNotFound = errors.New("punch record not found")
var ErrDuplicatePunch = errors.New("duplicate punch")

// PunchRecord is a single clock-in or clock-out event for a user.
type PunchRecord struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Kind      PunchKind `json:"kind" bson:"kind"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
}
