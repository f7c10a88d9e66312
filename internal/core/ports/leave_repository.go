package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-system/internal/core/domain"
)

// LeaveRepository defines persistence operations for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	// ListByUser returns all leave requests filed by the given user,
	// most recent first.
	ListByUser(ctx context.Context, userID string) ([]*domain.LeaveRequest, error)
	// FindOverdueApproved returns approved requests whose end date is
	// strictly before asOf (a midnight-UTC calendar date).
	FindOverdueApproved(ctx context.Context, asOf time.Time) ([]*domain.LeaveRequest, error)
	Update(ctx context.Context, req *domain.LeaveRequest) error
}
