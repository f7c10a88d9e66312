package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

type scheduleService struct {
	repo   ports.ScheduleRepository
	logger zerolog.Logger
}

// NewScheduleService returns a ScheduleService implementation.
func NewScheduleService(repo ports.ScheduleRepository, logger zerolog.Logger) ports.ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Assign(ctx context.Context, userID string, shifts []domain.ShiftWindow) (*domain.WorkSchedule, error) {
	now := time.Now().UTC()
	schedule := &domain.WorkSchedule{
		UserID:    userID,
		Shifts:    shifts,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.repo.Upsert(ctx, schedule)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Int("shifts", len(shifts)).Msg("schedule assigned")
	return stored, nil
}

func (s *scheduleService) GetByUser(ctx context.Context, userID string) (*domain.WorkSchedule, error) {
	return s.repo.FindByUser(ctx, userID)
}
