package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Leave request / response types ---

type createLeaveRequest struct {
	Reason    string `json:"reason"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type leaveResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	ManagerID   string     `json:"manager_id,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	DecisionAt  *time.Time `json:"decision_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// --- Schedule / punch request types ---

type shiftWindowRequest struct {
	Weekday int    `json:"weekday" validate:"min=0,max=6"`
	Start   string `json:"start"   validate:"required,datetime=15:04"`
	End     string `json:"end"     validate:"required,datetime=15:04"`
}

type assignScheduleRequest struct {
	Shifts []shiftWindowRequest `json:"shifts" validate:"required,min=1,dive"`
}

type punchRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=in out"`
	Notes string `json:"notes"`
}

// --- Department request types ---

type departmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id"`
}
