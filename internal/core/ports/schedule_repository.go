package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-system/internal/core/domain"
)

// ScheduleRepository defines persistence operations for work schedules.
type ScheduleRepository interface {
	// Upsert stores the schedule for its user, replacing any existing one.
	Upsert(ctx context.Context, schedule *domain.WorkSchedule) (*domain.WorkSchedule, error)
	FindByUser(ctx context.Context, userID string) (*domain.WorkSchedule, error)
}

// PunchRepository defines persistence operations for time-clock punches.
type PunchRepository interface {
	Insert(ctx context.Context, punch *domain.PunchRecord) (*domain.PunchRecord, error)
	// ListByUser returns punches for the user within [from, to), oldest first.
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]*domain.PunchRecord, error)
}
