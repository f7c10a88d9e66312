package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-system/internal/core/domain"
)

// DepartmentService covers department CRUD.
type DepartmentService interface {
	Create(ctx context.Context, name, description, managerID string) (*domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleService covers weekly schedule assignment.
type ScheduleService interface {
	Assign(ctx context.Context, userID string, shifts []domain.ShiftWindow) (*domain.WorkSchedule, error)
	GetByUser(ctx context.Context, userID string) (*domain.WorkSchedule, error)
}

// PunchService covers time-clock punches.
type PunchService interface {
	Punch(ctx context.Context, userID string, kind domain.PunchKind, notes string) (*domain.PunchRecord, error)
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]*domain.PunchRecord, error)
}
