package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-system/internal/core/domain"
)

// CreateLeaveInput carries the fields needed to file a leave request.
type CreateLeaveInput struct {
	UserID    string
	Reason    string
	StartDate time.Time
	EndDate   time.Time
}

// LeaveService covers the request/decision flows plus the overdue
// completion sweep executed by the background scheduler.
type LeaveService interface {
	Create(ctx context.Context, input CreateLeaveInput) (*domain.LeaveRequest, error)
	Approve(ctx context.Context, id, managerID string) (*domain.LeaveRequest, error)
	Reject(ctx context.Context, id, managerID string) (*domain.LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.LeaveRequest, error)
	// CompleteOverdue transitions every approved request whose end date has
	// passed to completed. Returns the number of requests transitioned.
	CompleteOverdue(ctx context.Context) (int, error)
}
