package domain

import (
	"errors"
	"time"
)

// LeaveStatus represents the lifecycle state of a leave request.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCompleted LeaveStatus = "completed"
)

// leaveTransitions defines the allowed state machine transitions.
var leaveTransitions = map[LeaveStatus][]LeaveStatus{
	LeavePending:  {LeaveApproved, LeaveRejected},
	LeaveApproved: {LeaveCompleted},
}

var ErrInvalidLeaveTransition = errors.New("invalid leave status transition")
var ErrLeaveNotFound = errors.New("leave request not found")
var ErrInvalidLeaveDates = errors.New("leave end date precedes start date")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	for _, allowed := range leaveTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s LeaveStatus) IsTerminal() bool {
	return len(leaveTransitions[s]) == 0
}

// LeaveRequest is a span of requested absence for one user.
// StartDate and EndDate are calendar dates; their time-of-day is always
// midnight UTC. The remaining timestamps are full instants.
type LeaveRequest struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"user_id" bson:"user_id"`
	ManagerID   string      `json:"manager_id,omitempty" bson:"manager_id,omitempty"`
	Reason      string      `json:"reason,omitempty" bson:"reason,omitempty"`
	StartDate   time.Time   `json:"start_date" bson:"start_date"`
	EndDate     time.Time   `json:"end_date" bson:"end_date"`
	Status      LeaveStatus `json:"status" bson:"status"`
	RequestedAt time.Time   `json:"requested_at" bson:"requested_at"`
	DecisionAt  *time.Time  `json:"decision_at,omitempty" bson:"decision_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

// Overdue reports whether the request is approved and its end date lies
// strictly before the given calendar date.
func (r *LeaveRequest) Overdue(asOf time.Time) bool {
	return r.Status == LeaveApproved && r.EndDate.Before(asOf)
}
