package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

type leaveService struct {
	repo   ports.LeaveRepository
	now    func() time.Time
	logger zerolog.Logger
}

// NewLeaveService returns a LeaveService implementation. The clock defaults
// to time.Now in UTC and is overridable for tests.
func NewLeaveService(repo ports.LeaveRepository, logger zerolog.Logger) ports.LeaveService {
	return &leaveService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (s *leaveService) Create(ctx context.Context, input ports.CreateLeaveInput) (*domain.LeaveRequest, error) {
	start := truncateToDate(input.StartDate)
	end := truncateToDate(input.EndDate)
	if end.Before(start) {
		return nil, domain.ErrInvalidLeaveDates
	}

	req := &domain.LeaveRequest{
		UserID:      input.UserID,
		Reason:      input.Reason,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.LeavePending,
		RequestedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("leave_id", created.ID).Str("user_id", created.UserID).Msg("leave request filed")
	return created, nil
}

func (s *leaveService) Approve(ctx context.Context, id, managerID string) (*domain.LeaveRequest, error) {
	return s.decide(ctx, id, managerID, domain.LeaveApproved)
}

func (s *leaveService) Reject(ctx context.Context, id, managerID string) (*domain.LeaveRequest, error) {
	return s.decide(ctx, id, managerID, domain.LeaveRejected)
}

func (s *leaveService) decide(ctx context.Context, id, managerID string, next domain.LeaveStatus) (*domain.LeaveRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !req.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidLeaveTransition, req.Status, next)
	}

	now := s.now()
	req.Status = next
	req.ManagerID = managerID
	req.DecisionAt = &now

	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Str("leave_id", req.ID).Str("manager_id", managerID).Str("status", string(next)).Msg("leave request decided")
	return req, nil
}

func (s *leaveService) ListByUser(ctx context.Context, userID string) ([]*domain.LeaveRequest, error) {
	return s.repo.ListByUser(ctx, userID)
}

// CompleteOverdue transitions every approved leave request whose end date
// lies strictly before today to completed. Each request is an independent
// unit of work: a failed update is logged and skipped so the rest of the
// batch still runs. Idempotent — completed requests no longer match the
// overdue query.
func (s *leaveService) CompleteOverdue(ctx context.Context) (int, error) {
	now := s.now()
	today := truncateToDate(now)

	overdue, err := s.repo.FindOverdueApproved(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("find overdue leave: %w", err)
	}

	completed := 0
	for _, req := range overdue {
		ts := now
		req.Status = domain.LeaveCompleted
		req.CompletedAt = &ts

		if err := s.repo.Update(ctx, req); err != nil {
			s.logger.Error().Err(err).Str("leave_id", req.ID).Msg("failed to complete overdue leave")
			continue
		}
		completed++
	}

	if completed > 0 {
		s.logger.Info().Int("completed", completed).Int("overdue", len(overdue)).Msg("overdue leave swept")
	}
	return completed, nil
}

// truncateToDate strips the time-of-day, leaving a midnight-UTC calendar date.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
